package auth

import (
	"cyclebook/infras/otel"
	"cyclebook/internal/domains/auth/model/dto"
	"cyclebook/internal/domains/auth/service"
	"cyclebook/shared/constant"
	"cyclebook/shared/failure"
	"cyclebook/shared/validator"
	"cyclebook/transport/http/middleware"
	"cyclebook/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	msgLoggedOut     = "Logged out successfully"
	msgPasswordReset = "Password reset successful"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/register-or-login", handler.RegisterOrLogin)
	r.Get("/verify-token", handler.VerifyToken)
	r.Post("/logout", handler.Logout)
	r.Post("/reset-password", handler.ResetPassword)
}

// RegisterOrLogin signs an account in, creating it on first use.
// @Summary Register or log in
// @Description Logs in when (email, role) exists, otherwise creates the account. Both return a session token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterOrLoginRequest true "Credentials"
// @Success 200 {object} response.Data[dto.AuthResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/register-or-login [post]
func (handler *Handler) RegisterOrLogin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterOrLogin")
	defer scope.End()

	req := dto.RegisterOrLoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RegisterOrLogin(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register or login")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Account signed in with role " + res.Role)

	response.WithJSON(w, http.StatusOK, res)
}

// VerifyToken reports the role behind the caller's session.
// @Summary Verify token
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.VerifyTokenResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/verify-token [get]
// @Security BearerAuth
func (handler *Handler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyToken")
	defer scope.End()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		response.WithError(w, failure.MissingTokenError)

		return
	}

	res, err := handler.service.VerifyToken(ctx, session.AccountID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify token")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Logout revokes the caller's token until it would have expired anyway.
// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/logout [post]
// @Security BearerAuth
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		response.WithError(w, failure.MissingTokenError)

		return
	}

	if err := handler.service.Logout(ctx, session); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to logout")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Account logged out " + session.AccountID)

	response.WithMessage(w, http.StatusOK, msgLoggedOut)
}

// ResetPassword replaces the password of an existing account.
// @Summary Reset password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "New credentials"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reset-password [post]
func (handler *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetPassword")
	defer scope.End()

	req := dto.ResetPasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ResetPassword(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset password")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, msgPasswordReset)
}
