package users

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vetstock/internal/domain/entitlement"
	"vetstock/internal/middleware"
	"vetstock/internal/platform/httpx"
	"vetstock/internal/platform/validate"
)

// Sessions abre y cierra la sesión por cookie del usuario.
type Sessions interface {
	Start(ctx context.Context, w http.ResponseWriter, userID int64) error
	End(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// RegisterRoutes monta auth y perfil. authLimit se aplica a login/register (puede ser nil).
func RegisterRoutes(r chi.Router, svc *Service, sessions Sessions, authLimit func(http.Handler) http.Handler) {
	if authLimit == nil {
		authLimit = func(next http.Handler) http.Handler { return next }
	}

	r.With(authLimit).Post("/api/register", registerHandler(svc, sessions))
	r.With(authLimit).Post("/api/login", loginHandler(svc, sessions))
	r.Post("/api/logout", logoutHandler(sessions))

	r.With(middleware.RequireAuth).Get("/api/user", currentUserHandler(svc))
	r.With(middleware.RequireAuth).Put("/api/user", updateUserHandler(svc))
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	UserType string `json:"userType" validate:"omitempty,oneof=admin user"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
}

type userResponse struct {
	ID                   int64     `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	UserType             Role      `json:"userType"`
	Active               bool      `json:"active"`
	TrialStartDate       time.Time `json:"trialStartDate"`
	StripeCustomerID     *string   `json:"stripeCustomerId"`
	StripeSubscriptionID *string   `json:"stripeSubscriptionId"`
	IsSubscribed         bool      `json:"isSubscribed"`
	TrialDaysLeft        int       `json:"trialDaysLeft"`
}

// registerHandler godoc
// @Summary Registrar usuário
// @Description Cria a conta, inicia o trial de 7 dias e abre a sessão (cookie vetstock.sid).
// @Description userType=admin só é aceito de uma sessão de administrador, que continua aberta.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Dados do usuário"
// @Success 201 {object} userResponse
// @Failure 400 {object} httpx.ErrorResponse "validação / email em uso"
// @Failure 403 {object} httpx.ErrorResponse "userType=admin sem sessão de administrador"
// @Failure 429 {object} httpx.ErrorResponse
// @Router /api/register [post]
func registerHandler(svc *Service, sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		caller, authed := middleware.GetClaims(r.Context())
		byAdmin := authed && caller.IsAdmin()
		if Role(req.UserType) == RoleAdmin && !byAdmin {
			httpx.WriteError(w, http.StatusForbidden, "Apenas administradores podem criar contas de administrador")
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     Role(req.UserType),
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrEmailTaken):
				httpx.WriteError(w, http.StatusBadRequest, "Este email já está em uso")
			case errors.Is(err, ErrInvalidInput):
				httpx.WriteError(w, http.StatusBadRequest, "Dados inválidos")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
			}
			return
		}

		// un admin creando cuentas conserva su propia sesión
		if !byAdmin {
			if err := sessions.Start(r.Context(), w, u.ID); err != nil {
				httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
				return
			}
		}

		httpx.WriteJSON(w, http.StatusCreated, newUserResponse(u, svc.StatusAt(u, u.TrialStartDate)))
	}
}

// loginHandler godoc
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciais"
// @Success 200 {object} userResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse "Email ou senha inválidos"
// @Failure 429 {object} httpx.ErrorResponse
// @Router /api/login [post]
func loginHandler(svc *Service, sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		u, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) {
				httpx.WriteError(w, http.StatusUnauthorized, "Email ou senha inválidos")
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}

		if err := sessions.Start(r.Context(), w, u.ID); err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toUserResponse(svc, u))
	}
}

// logoutHandler godoc
// @Summary Logout
// @Tags auth
// @Success 200
// @Router /api/logout [post]
func logoutHandler(sessions Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.End(r.Context(), w, r); err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

// currentUserHandler godoc
// @Summary Usuário atual
// @Description Devolve o usuário da sessão com o estado de assinatura/trial.
// @Tags auth
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /api/user [get]
func currentUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		u, err := svc.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				httpx.WriteError(w, http.StatusUnauthorized, "Não autenticado")
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toUserResponse(svc, u))
	}
}

// updateUserHandler godoc
// @Summary Atualizar perfil
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body updateUserRequest true "Campos a alterar"
// @Success 200 {object} userResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /api/user [put]
func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req updateUserRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := validate.Struct(req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		u, err := svc.UpdateProfile(r.Context(), claims.UserID, ProfileInput{Name: req.Name, Email: req.Email})
		if err != nil {
			switch {
			case errors.Is(err, ErrEmailTaken):
				httpx.WriteError(w, http.StatusBadRequest, "Este email já está em uso")
			case errors.Is(err, ErrInvalidInput):
				httpx.WriteError(w, http.StatusBadRequest, "Dados inválidos")
			case errors.Is(err, ErrNotFound):
				httpx.WriteError(w, http.StatusUnauthorized, "Não autenticado")
			default:
				httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
			}
			return
		}

		httpx.WriteJSON(w, http.StatusOK, toUserResponse(svc, u))
	}
}

func toUserResponse(svc *Service, u User) userResponse {
	return newUserResponse(u, svc.Status(u))
}

func newUserResponse(u User, st entitlement.Status) userResponse {
	return userResponse{
		ID:                   u.ID,
		Name:                 u.Name,
		Email:                u.Email,
		UserType:             u.Role,
		Active:               u.Active,
		TrialStartDate:       u.TrialStartDate,
		StripeCustomerID:     u.StripeCustomerID,
		StripeSubscriptionID: u.StripeSubscriptionID,
		IsSubscribed:         st.IsSubscribed,
		TrialDaysLeft:        st.TrialDaysLeft,
	}
}
