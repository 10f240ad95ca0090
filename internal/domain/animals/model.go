package animals

// Animal es un paciente de la clínica. TutorID es el usuario dueño del registro.
type Animal struct {
	ID      int64
	Name    string
	Species string
	Breed   *string
	TutorID int64
}
