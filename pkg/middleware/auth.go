package middleware

import (
	"net/http"
	"strings"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoginPath is where unauthenticated browsers are sent.
const LoginPath = "/login"

// AuthSession resolves the session token from the cookie, or from an
// "Authorization: Bearer <token>" header for API clients, and stores the
// principal in the request context.
func AuthSession(sessionRepo repository.SessionRepository, cookieName string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := SessionToken(r, cookieName)
			if raw == "" {
				unauthenticated(w, r, "Missing session token")
				return
			}

			token, err := utils.ParseSessionToken(raw)
			if err != nil {
				logger.Warn("Malformed session token", zap.String("path", r.URL.Path))
				unauthenticated(w, r, "Invalid session token")
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("token", maskToken(token)))
				unauthenticated(w, r, "Invalid or expired session")
				return
			}

			ctx := utils.SetPrincipal(r.Context(), utils.Principal{
				UserID: session.UserID,
				Role:   string(session.Role),
				Token:  token,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole must run after AuthSession. denied supplies the localized
// 403 message.
func RequireRole(role entity.UserRole, denied func(*http.Request) string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := utils.PrincipalFromContext(r.Context())
			if !ok {
				unauthenticated(w, r, "Authentication required")
				return
			}

			if principal.Role != string(role) {
				logger.Warn("Role check: access attempt with insufficient role",
					zap.Int64("user_id", principal.UserID),
					zap.String("role", principal.Role),
					zap.String("path", r.URL.Path))
				message := denied(r)
				if utils.WantsJSON(r) {
					utils.ResponseForbidden(w, message)
					return
				}
				http.Error(w, message, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SessionToken returns the raw token, preferring the cookie.
func SessionToken(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func unauthenticated(w http.ResponseWriter, r *http.Request, message string) {
	if utils.WantsJSON(r) {
		utils.ResponseUnauthorized(w, message)
		return
	}
	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}

func maskToken(token uuid.UUID) string {
	s := token.String()
	return s[:8] + "..."
}
