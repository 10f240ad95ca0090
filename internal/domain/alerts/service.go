package alerts

import (
	"context"
	"errors"
	"time"

	"vetstock/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("alert not found")
)

// Recorder cuenta alertas emitidas (Prometheus en prod).
type Recorder interface {
	AlertEmitted(alertType string)
}

type Service struct {
	repo     Repository
	log      logger.Logger
	recorder Recorder
	now      func() time.Time
}

// NewService: log y recorder pueden ser nil.
func NewService(repo Repository, log logger.Logger, recorder Recorder) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:     repo,
		log:      log.With(map[string]any{"component": "alerts"}),
		recorder: recorder,
		now:      time.Now,
	}
}

// CheckStock evalúa un producto recién escrito y persiste las alertas que correspondan.
// Un fallo al persistir se loguea y no se propaga: la escritura del producto ya ocurrió.
func (s *Service) CheckStock(ctx context.Context, level StockLevel) []Alert {
	return s.emit(ctx, EvaluateStock(level))
}

// CheckVaccine evalúa el vencimiento de una vacuna recién creada.
func (s *Service) CheckVaccine(ctx context.Context, v VaccineExpiry) []Alert {
	d, ok := EvaluateVaccine(v, s.now())
	if !ok {
		return nil
	}
	return s.emit(ctx, []Draft{d})
}

func (s *Service) emit(ctx context.Context, drafts []Draft) []Alert {
	out := make([]Alert, 0, len(drafts))
	for _, d := range drafts {
		itemID := d.ItemID
		a, err := s.repo.Create(ctx, Alert{
			Type:      d.Type,
			Message:   d.Message,
			CreatedAt: s.now(),
			UserID:    d.UserID,
			ItemID:    &itemID,
			Resolved:  false,
		})
		if err != nil {
			s.log.Error("alert emission failed", map[string]any{
				"type":    string(d.Type),
				"user_id": d.UserID,
				"item_id": d.ItemID,
				"err":     err,
			})
			continue
		}
		if s.recorder != nil {
			s.recorder.AlertEmitted(string(a.Type))
		}
		s.log.Debug("alert emitted", map[string]any{"alert_id": a.ID, "type": string(a.Type), "user_id": a.UserID})
		out = append(out, a)
	}
	return out
}

func (s *Service) GetByID(ctx context.Context, id int64) (Alert, error) {
	if id <= 0 {
		return Alert{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Alert, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Resolve marca la alerta como resuelta (no se borra). Idempotente.
func (s *Service) Resolve(ctx context.Context, id int64) (Alert, error) {
	if id <= 0 {
		return Alert{}, ErrInvalidInput
	}
	if err := s.repo.Resolve(ctx, id); err != nil {
		return Alert{}, err
	}
	return s.repo.GetByID(ctx, id)
}
