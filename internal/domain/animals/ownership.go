package animals

import "context"

// TutorOf expone el tutorID de un animal.
// Lo usan vacunas y alertas sin depender del modelo completo.
func (s *Service) TutorOf(ctx context.Context, animalID int64) (int64, error) {
	a, err := s.GetByID(ctx, animalID)
	if err != nil {
		return 0, err
	}
	return a.TutorID, nil
}
