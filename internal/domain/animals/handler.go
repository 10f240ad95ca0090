package animals

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vetstock/internal/middleware"
	"vetstock/internal/platform/httpx"
	"vetstock/internal/platform/patch"
	"vetstock/internal/platform/validate"
)

// RegisterRoutes monta /api/animals. El router ya exige sesión y entitlement.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc))
		ar.Post("/", createAnimalHandler(svc))

		// dueño (tutor) o admin
		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Put("/{animalID}", updateAnimalHandler(svc))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc))
	})
}

type createAnimalRequest struct {
	Name    string  `json:"name" validate:"required"`
	Species string  `json:"species" validate:"required"`
	Breed   *string `json:"breed"`
	// tutorId del body se ignora: siempre es el usuario de la sesión.
}

type updateAnimalRequest struct {
	Name    *string             `json:"name" validate:"omitempty,min=1"`
	Species *string             `json:"species" validate:"omitempty,min=1"`
	Breed   patch.Field[string] `json:"breed"`
}

type animalResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Breed   *string `json:"breed"`
	TutorID int64   `json:"tutorId"`
}

// listAnimalsHandler godoc
// @Summary Listar animais
// @Description Animais cujo tutor é o usuário da sessão.
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 402 {object} httpx.ErrorResponse
// @Router /api/animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		items, err := svc.ListByTutor(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createAnimalHandler godoc
// @Summary Cadastrar animal
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Dados do animal"
// @Success 201 {object} animalResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 402 {object} httpx.ErrorResponse
// @Router /api/animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req createAnimalRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		a, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:    req.Name,
			Species: req.Species,
			Breed:   req.Breed,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// getAnimalHandler godoc
// @Summary Obter animal
// @Tags animals
// @Produce json
// @Param animalID path int true "ID do animal"
// @Success 200 {object} animalResponse
// @Failure 400 {object} httpx.ErrorResponse "ID inválido"
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Atualizar animal
// @Description Merge parcial; breed aceita null. tutorId não muda.
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path int true "ID do animal"
// @Param payload body updateAnimalRequest true "Campos a alterar"
// @Success 200 {object} animalResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/animals/{animalID} [put]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}

		var req updateAnimalRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		updated, err := svc.Update(r.Context(), current.ID, UpdateInput{
			Name:    req.Name,
			Species: req.Species,
			Breed:   req.Breed,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toAnimalResponse(updated))
	}
}

// deleteAnimalHandler godoc
// @Summary Excluir animal
// @Tags animals
// @Param animalID path int true "ID do animal"
// @Success 204
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/animals/{animalID} [delete]
func deleteAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := loadOwned(w, r, svc)
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

// loadOwned resuelve el animal del path y exige tutor o admin.
// Si devuelve false ya escribió la respuesta.
func loadOwned(w http.ResponseWriter, r *http.Request, svc *Service) (Animal, bool) {
	claims, _ := middleware.GetClaims(r.Context())

	id, ok := httpx.PathID(r, "animalID")
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "ID inválido")
		return Animal{}, false
	}

	a, err := svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return Animal{}, false
	}

	if !claims.CanAccess(a.TutorID) {
		httpx.WriteError(w, http.StatusForbidden, "Permissão negada")
		return Animal{}, false
	}
	return a, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, "Dados inválidos")
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Animal não encontrado")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:      a.ID,
		Name:    a.Name,
		Species: a.Species,
		Breed:   a.Breed,
		TutorID: a.TutorID,
	}
}
