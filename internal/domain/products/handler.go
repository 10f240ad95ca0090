package products

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vetstock/internal/middleware"
	"vetstock/internal/platform/httpx"
	"vetstock/internal/platform/patch"
	"vetstock/internal/platform/validate"
)

// RegisterRoutes monta /api/products. El router ya exige sesión y entitlement.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/products", func(pr chi.Router) {
		pr.Get("/", listProductsHandler(svc))
		pr.Post("/", createProductHandler(svc))

		pr.Get("/{productID}", getProductHandler(svc))
		pr.Put("/{productID}", updateProductHandler(svc))
		pr.Delete("/{productID}", deleteProductHandler(svc))
	})
}

type createProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Quantity    *int    `json:"quantity" validate:"required,gte=0"`
	MinQuantity *int    `json:"minQuantity" validate:"required,gte=0"`
	MaxQuantity *int    `json:"maxQuantity" validate:"omitempty,gte=0"`
	Category    *string `json:"category"`
}

type updateProductRequest struct {
	Name        *string             `json:"name" validate:"omitempty,min=1"`
	Quantity    *int                `json:"quantity" validate:"omitempty,gte=0"`
	MinQuantity *int                `json:"minQuantity" validate:"omitempty,gte=0"`
	MaxQuantity patch.Field[int]    `json:"maxQuantity"`
	Category    patch.Field[string] `json:"category"`
}

type productResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	MinQuantity int     `json:"minQuantity"`
	MaxQuantity *int    `json:"maxQuantity"`
	Category    *string `json:"category"`
	UserID      int64   `json:"userId"`
}

// listProductsHandler godoc
// @Summary Listar produtos
// @Tags products
// @Produce json
// @Success 200 {array} productResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 402 {object} httpx.ErrorResponse
// @Router /api/products [get]
func listProductsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}

		out := make([]productResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toProductResponse(p))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// createProductHandler godoc
// @Summary Cadastrar produto
// @Description Cria o produto e gera alertas de estoque mínimo/máximo quando aplicável.
// @Tags products
// @Accept json
// @Produce json
// @Param payload body createProductRequest true "Dados do produto"
// @Success 201 {object} productResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 402 {object} httpx.ErrorResponse
// @Router /api/products [post]
func createProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req createProductRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:        req.Name,
			Quantity:    *req.Quantity,
			MinQuantity: *req.MinQuantity,
			MaxQuantity: req.MaxQuantity,
			Category:    req.Category,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusCreated, toProductResponse(p))
	}
}

// getProductHandler godoc
// @Summary Obter produto
// @Tags products
// @Produce json
// @Param productID path int true "ID do produto"
// @Success 200 {object} productResponse
// @Failure 400 {object} httpx.ErrorResponse "ID inválido"
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/products/{productID} [get]
func getProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toProductResponse(p))
	}
}

// updateProductHandler godoc
// @Summary Atualizar produto
// @Description Merge parcial; maxQuantity e category aceitam null. Reavalia os alertas de estoque.
// @Tags products
// @Accept json
// @Produce json
// @Param productID path int true "ID do produto"
// @Param payload body updateProductRequest true "Campos a alterar"
// @Success 200 {object} productResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/products/{productID} [put]
func updateProductHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, ok := loadOwned(w, r, svc)
		if !ok {
			return
		}

		var req updateProductRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		updated, err := svc.Update(r.Context(), current.ID, UpdateInput{
			Name:        req.Name,
			Quantity:    req.Quantity,
			MinQuantity: req.MinQuantity,
			MaxQuantity: req.MaxQuantity,
			Category:    req.Category,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toProductResponse(updated))
	}
}

// deleteProductHandler godoc
// @Summary Excluir produto
// @Tags products
// @Param productID path int true "ID do produto"
// @Success 204
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/products/{productID} [delete]
func deleteProductHandler(svc *Service) http.HandlerFunc {
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

func loadOwned(w http.ResponseWriter, r *http.Request, svc *Service) (Product, bool) {
	claims, _ := middleware.GetClaims(r.Context())

	id, ok := httpx.PathID(r, "productID")
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "ID inválido")
		return Product{}, false
	}

	p, err := svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return Product{}, false
	}
	if !claims.CanAccess(p.UserID) {
		httpx.WriteError(w, http.StatusForbidden, "Permissão negada")
		return Product{}, false
	}
	return p, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, "Dados inválidos")
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Produto não encontrado")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
	}
}

func toProductResponse(p Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Quantity:    p.Quantity,
		MinQuantity: p.MinQuantity,
		MaxQuantity: p.MaxQuantity,
		Category:    p.Category,
		UserID:      p.UserID,
	}
}
