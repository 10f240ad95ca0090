package vaccines

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"vetstock/internal/domain/animals"
	"vetstock/internal/middleware"
	"vetstock/internal/platform/httpx"
	"vetstock/internal/platform/validate"
)

// RegisterRoutes monta /api/vaccines. La autorización pasa por el tutor del animal.
func RegisterRoutes(r chi.Router, svc *Service, animalsSvc *animals.Service) {
	r.Route("/api/vaccines", func(vr chi.Router) {
		vr.Get("/", listVaccinesHandler(svc, animalsSvc))
		vr.Post("/", createVaccineHandler(svc, animalsSvc))

		vr.Get("/{vaccineID}", getVaccineHandler(svc, animalsSvc))
		vr.Put("/{vaccineID}", updateVaccineHandler(svc, animalsSvc))
		vr.Delete("/{vaccineID}", deleteVaccineHandler(svc, animalsSvc))
	})
}

type createVaccineRequest struct {
	Name            string `json:"name" validate:"required"`
	ApplicationDate string `json:"applicationDate" validate:"required"` // YYYY-MM-DD o RFC3339
	ExpirationDate  string `json:"expirationDate" validate:"required"`
	AnimalID        int64  `json:"animalId" validate:"required,gt=0"`
}

type updateVaccineRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1"`
	ApplicationDate *string `json:"applicationDate"`
	ExpirationDate  *string `json:"expirationDate"`
	AnimalID        *int64  `json:"animalId" validate:"omitempty,gt=0"`
}

type vaccineResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	ApplicationDate time.Time `json:"applicationDate"`
	ExpirationDate  time.Time `json:"expirationDate"`
	AnimalID        int64     `json:"animalId"`
}

type animalSummary struct {
	Name    string `json:"name"`
	Species string `json:"species"`
}

type vaccineWithAnimalResponse struct {
	vaccineResponse
	Animal animalSummary `json:"animal"`
}

const unknownAnimal = "Desconhecido"

// listVaccinesHandler godoc
// @Summary Listar vacinas
// @Description Vacinas de todos os animais do usuário, com nome e espécie do animal.
// @Tags vaccines
// @Produce json
// @Success 200 {array} vaccineWithAnimalResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 402 {object} httpx.ErrorResponse
// @Router /api/vaccines [get]
func listVaccinesHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		items, err := svc.ListByTutor(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}

		out := make([]vaccineWithAnimalResponse, 0, len(items))
		for _, v := range items {
			summary := animalSummary{Name: unknownAnimal, Species: unknownAnimal}
			if a, err := animalsSvc.GetByID(r.Context(), v.AnimalID); err == nil {
				summary = animalSummary{Name: a.Name, Species: a.Species}
			}
			out = append(out, vaccineWithAnimalResponse{
				vaccineResponse: toVaccineResponse(v),
				Animal:          summary,
			})
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createVaccineHandler godoc
// @Summary Registrar vacina
// @Description Registra a vacina de um animal do usuário e gera alerta se vencer em até 30 dias.
// @Tags vaccines
// @Accept json
// @Produce json
// @Param payload body createVaccineRequest true "Dados da vacina"
// @Success 201 {object} vaccineResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse "Animal não encontrado"
// @Router /api/vaccines [post]
func createVaccineHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createVaccineRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		applied, err := parseDate(req.ApplicationDate)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "applicationDate inválida")
			return
		}
		expires, err := parseDate(req.ExpirationDate)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "expirationDate inválida")
			return
		}

		if !authorizeAnimal(w, r, animalsSvc, req.AnimalID) {
			return
		}

		v, err := svc.Create(r.Context(), CreateInput{
			Name:            req.Name,
			ApplicationDate: applied,
			ExpirationDate:  expires,
			AnimalID:        req.AnimalID,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toVaccineResponse(v))
	}
}

// getVaccineHandler godoc
// @Summary Obter vacina
// @Tags vaccines
// @Produce json
// @Param vaccineID path int true "ID da vacina"
// @Success 200 {object} vaccineResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/vaccines/{vaccineID} [get]
func getVaccineHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, ok := loadOwned(w, r, svc, animalsSvc)
		if !ok {
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toVaccineResponse(v))
	}
}

// updateVaccineHandler godoc
// @Summary Atualizar vacina
// @Description Merge parcial. Trocar animalId exige acesso ao novo animal. Não gera alertas.
// @Tags vaccines
// @Accept json
// @Produce json
// @Param vaccineID path int true "ID da vacina"
// @Param payload body updateVaccineRequest true "Campos a alterar"
// @Success 200 {object} vaccineResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/vaccines/{vaccineID} [put]
func updateVaccineHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := loadOwned(w, r, svc, animalsSvc)
		if !ok {
			return
		}

		var req updateVaccineRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		in := UpdateInput{Name: req.Name, AnimalID: req.AnimalID}
		if req.ApplicationDate != nil {
			t, err := parseDate(*req.ApplicationDate)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "applicationDate inválida")
				return
			}
			in.ApplicationDate = &t
		}
		if req.ExpirationDate != nil {
			t, err := parseDate(*req.ExpirationDate)
			if err != nil {
				httpx.WriteError(w, http.StatusBadRequest, "expirationDate inválida")
				return
			}
			in.ExpirationDate = &t
		}

		if req.AnimalID != nil && *req.AnimalID != current.AnimalID {
			if !authorizeAnimal(w, r, animalsSvc, *req.AnimalID) {
				return
			}
		}

		updated, err := svc.Update(r.Context(), current.ID, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toVaccineResponse(updated))
	}
}

// deleteVaccineHandler godoc
// @Summary Excluir vacina
// @Tags vaccines
// @Param vaccineID path int true "ID da vacina"
// @Success 204
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/vaccines/{vaccineID} [delete]
func deleteVaccineHandler(svc *Service, animalsSvc *animals.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := loadOwned(w, r, svc, animalsSvc)
		if !ok {
			return
		}
		if err := svc.Delete(r.Context(), current.ID); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// loadOwned: vacuna del path (404) -> animal (404) -> tutor o admin (403).
func loadOwned(w http.ResponseWriter, r *http.Request, svc *Service, animalsSvc *animals.Service) (Vaccine, bool) {
	id, ok := httpx.PathID(r, "vaccineID")
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "ID de vacina inválido")
		return Vaccine{}, false
	}

	v, err := svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return Vaccine{}, false
	}

	if !authorizeAnimal(w, r, animalsSvc, v.AnimalID) {
		return Vaccine{}, false
	}
	return v, true
}

func authorizeAnimal(w http.ResponseWriter, r *http.Request, animalsSvc *animals.Service, animalID int64) bool {
	claims, _ := middleware.GetClaims(r.Context())

	tutorID, err := animalsSvc.TutorOf(r.Context(), animalID)
	if err != nil {
		if errors.Is(err, animals.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Animal não encontrado")
			return false
		}
		httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
		return false
	}
	if !claims.CanAccess(tutorID) {
		httpx.WriteError(w, http.StatusForbidden, "Permissão negada")
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrDateOrder):
		httpx.WriteError(w, http.StatusBadRequest, "A data de vencimento não pode ser anterior à data de aplicação")
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, "Dados inválidos")
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Vacina não encontrada")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
	}
}

// parseDate acepta YYYY-MM-DD (medianoche UTC) o RFC3339.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func toVaccineResponse(v Vaccine) vaccineResponse {
	return vaccineResponse{
		ID:              v.ID,
		Name:            v.Name,
		ApplicationDate: v.ApplicationDate,
		ExpirationDate:  v.ExpirationDate,
		AnimalID:        v.AnimalID,
	}
}
