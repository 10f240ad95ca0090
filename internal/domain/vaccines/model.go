package vaccines

import "time"

// Vaccine es una aplicación registrada a un animal. El dueño es el tutor del animal.
type Vaccine struct {
	ID              int64
	Name            string
	ApplicationDate time.Time
	ExpirationDate  time.Time
	AnimalID        int64
}
