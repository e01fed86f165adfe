package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/campus-laundry/internal/entities"
	"github.com/SergeyBogomolovv/campus-laundry/internal/middleware"
	"github.com/SergeyBogomolovv/campus-laundry/internal/service"
	"github.com/SergeyBogomolovv/campus-laundry/internal/session"
	"github.com/SergeyBogomolovv/campus-laundry/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AuthService interface {
	SignUp(ctx context.Context, in service.SignUpInput) (service.AuthResult, error)
	SignIn(ctx context.Context, email, password string) (service.AuthResult, error)
	SignOut(ctx context.Context, token string) error
	Profile(ctx context.Context, userID uuid.UUID) (entities.Profile, error)
}

type AuthHandler struct {
	logger       *slog.Logger
	validate     *validator.Validate
	svc          AuthService
	authenticate func(http.Handler) http.Handler
}

func NewAuthHandler(logger *slog.Logger, svc AuthService, authenticate func(http.Handler) http.Handler) *AuthHandler {
	return &AuthHandler{
		logger:       logger.With(slog.String("handler", "auth")),
		validate:     validator.New(),
		svc:          svc,
		authenticate: authenticate,
	}
}

func (h *AuthHandler) Init(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/sign-up", h.SignUp)
		r.Post("/sign-in", h.SignIn)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)
			r.Post("/sign-out", h.SignOut)
			r.Get("/session", h.Session)
		})
	})
}

// SignUp godoc
// @Summary      Register a student
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      SignUpRequest  true  "Account details"
// @Success      201  {object}  AuthResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      409  {object}  utils.ErrorResponse "Email already registered"
// @Router       /auth/sign-up [post]
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.svc.SignUp(r.Context(), SignUpRequestToInput(req))
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, AuthResultToJSON(res), http.StatusCreated)
}

// SignIn godoc
// @Summary      Sign in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      SignInRequest  true  "Credentials"
// @Success      200  {object}  AuthResponse
// @Failure      400  {object}  utils.ValidationErrorResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /auth/sign-in [post]
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	res, err := h.svc.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, AuthResultToJSON(res), http.StatusOK)
}

// SignOut godoc
// @Summary      Revoke the current token
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /auth/sign-out [post]
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SignOut(r.Context(), middleware.BearerToken(r)); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session godoc
// @Summary      Current session and profile
// @Tags         auth
// @Security     BearerAuth
// @Success      200  {object}  SessionResponse
// @Failure      401  {object}  utils.ErrorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	sess, err := session.Require(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	profile, err := h.svc.Profile(r.Context(), sess.UserID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	utils.WriteJSON(w, SessionResponse{
		Session: SessionEntityToJSON(sess),
		Profile: ProfileEntityToJSON(profile),
	}, http.StatusOK)
}
