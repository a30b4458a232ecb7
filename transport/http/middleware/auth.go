package middleware

import (
	"context"
	"cyclebook/infras/jwt"
	"cyclebook/infras/otel"
	"cyclebook/internal/domains/auth/model/dto"
	authService "cyclebook/internal/domains/auth/service"
	"cyclebook/permissions"
	"cyclebook/shared/constant"
	"cyclebook/shared/failure"
	"cyclebook/transport/http/response"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth resolves the bearer token into a session.
type Auth interface {
	Auth(http.Handler) http.Handler
}

// Role rejects sessions whose role is not allowed on the route.
type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	auth       authService.Auth
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewAuthRoleMiddleware(auth authService.Auth, otel otel.Otel, permissions *permissions.PermissionData) AuthRole {
	return &authRoleImpl{
		auth:       auth,
		otel:       otel,
		permission: permissions,
	}
}

// Auth requires a valid session unless the route is marked public.
// A missing token is a 401; anything wrong with a presented token is a 403.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		permission := m.find(request)
		if permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       permission.Path,
			"http.method":     request.Method,
		})

		token, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			fail := failure.MissingTokenError
			if errors.Is(err, jwt.ErrInvalidToken) {
				fail = failure.InvalidTokenError
			}

			scope.TraceError(fail)
			response.WithError(writer, fail)

			return
		}

		session, err := m.auth.Authenticate(ctx, token)
		if err != nil {
			scope.TraceError(err)

			if !failure.IsFailure(err) {
				log.Error().Err(err).Msg("failed to authenticate request")
			}

			response.WithError(writer, err)

			return
		}

		next.ServeHTTP(writer, request.WithContext(WithSession(request.Context(), session)))
	})
}

// RBAC checks the session role against the route's allowed roles. It runs after Auth.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if m.permission == nil {
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		permission := m.find(request)
		if m.permission.Skip || permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := request.Context().Value(constant.ContextKeyUserRole).(string)

		if !permission.Allows(role) {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Roles,
				"reason":        "role_not_allowed",
			})
			response.WithError(writer, err)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

func (m *authRoleImpl) find(request *http.Request) permissions.Permission {
	if m.permission == nil {
		return permissions.Permission{}
	}

	rctx := chi.RouteContext(request.Context())
	if rctx == nil {
		return permissions.Permission{}
	}

	path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)

	return m.permission.FindPermissions(path, request.Method)
}

// WithSession stores the caller on ctx the way handlers read it back.
func WithSession(ctx context.Context, session dto.Session) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, session.AccountID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, session.Role)
	ctx = context.WithValue(ctx, constant.ContextKeyTokenID, session.TokenID)
	ctx = context.WithValue(ctx, constant.ContextKeyTokenExp, session.ExpiresAt)

	return ctx
}

// SessionFromContext is the inverse of WithSession. ok is false outside an authenticated route.
func SessionFromContext(ctx context.Context) (dto.Session, bool) {
	accountID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if accountID == "" {
		return dto.Session{}, false
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	tokenID, _ := ctx.Value(constant.ContextKeyTokenID).(string)
	expiresAt, _ := ctx.Value(constant.ContextKeyTokenExp).(time.Time)

	return dto.Session{
		AccountID: accountID,
		Role:      role,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, true
}
