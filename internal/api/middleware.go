package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/adhyaya/internal/error_values"
	"github.com/limbo/adhyaya/pkg/httputil"
)

type ctxKey int

const (
	loggerCtxKey ctxKey = iota
	uidCtxKey
)

const userLookupTimeout = 5 * time.Second

// authError is a rejected authentication attempt with the status to answer.
type authError struct {
	status int
	reason string
	cause  error
}

func (e *authError) Error() string {
	return e.reason
}

func unauthorized(reason string) *authError {
	return &authError{status: http.StatusUnauthorized, reason: reason}
}

// WithUserID returns ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, uid uuid.UUID) context.Context {
	return context.WithValue(ctx, uidCtxKey, uid)
}

// WithLogger returns ctx carrying the request scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// RequestLoggerMiddleware must run after middleware.RequestID.
func (s *Server) RequestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default().With(
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("from", clientIP(r)),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		next.ServeHTTP(w, r.WithContext(WithLogger(r.Context(), logger)))
	})
}

// AuthMiddleware admits requests bearing a live token of an existing user.
// The user id lands in the context and in every later log line.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		uid, err := s.authenticate(r)
		if err != nil {
			var ae *authError
			if !errors.As(err, &ae) {
				ae = &authError{status: http.StatusInternalServerError, reason: "auth check failed", cause: err}
			}
			if ae.cause != nil {
				logger.Error("auth check failed", slog.String("reason", ae.reason), slog.String("error", ae.cause.Error()))
			} else {
				logger.Warn("auth rejected", slog.String("reason", ae.reason))
			}
			httputil.WriteErrorResponse(w, ae.status, "authorization failed: "+ae.reason, nil)
			return
		}
		ctx := WithUserID(r.Context(), uid)
		ctx = WithLogger(ctx, logger.With(slog.String("uid", uid.String())))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) authenticate(r *http.Request) (uuid.UUID, error) {
	raw, err := GetTokenFromHeader(r)
	if err != nil {
		return uuid.Nil, unauthorized("missing bearer token")
	}
	claims, err := s.jwtService.ParseToken(raw)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidToken) {
			return uuid.Nil, unauthorized("invalid token")
		}
		return uuid.Nil, &authError{status: http.StatusInternalServerError, reason: "token parsing failed", cause: err}
	}
	if !tokenAlive(claims, s.clock.Now()) {
		return uuid.Nil, unauthorized("token expired or not ready")
	}
	uid, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, unauthorized("invalid token payload")
	}
	ctx, cancel := context.WithTimeout(r.Context(), userLookupTimeout)
	defer cancel()
	if _, err = s.userService.GetByID(ctx, uid); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return uuid.Nil, unauthorized("user not found")
		}
		return uuid.Nil, &authError{status: http.StatusInternalServerError, reason: "user lookup failed", cause: err}
	}
	return uid, nil
}

// tokenAlive reports whether now lies inside [nbf, exp). A token without exp is never alive.
func tokenAlive(claims *JWTClaims, now time.Time) bool {
	if claims.ExpiresAt == nil || !now.Before(claims.ExpiresAt.Time) {
		return false
	}
	return claims.NotBefore == nil || !now.Before(claims.NotBefore.Time)
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" || strings.ContainsRune(token, ' ') {
		return "", errorvalues.ErrInvalidToken
	}
	return token, nil
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidCtxKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}
