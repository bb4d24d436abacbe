package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-FieldReservationService/internal/api/handlers"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "недействительный токен"
	msgForbidden    = "доступ только для персонала"
)

type contextKey string

const (
	staffIDKey   contextKey = "staff_id"
	requestIDKey contextKey = "request_id"
)

// Claims полезная нагрузка токена персонала; sub - ID сотрудника
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// StaffAuth проверяет Bearer токен (HS256) и роль сотрудника
type StaffAuth struct {
	secret []byte
	roles  map[string]struct{}
	logger Logger
}

// NewStaffAuth создает middleware авторизации персонала
func NewStaffAuth(secret string, roles []string, logger Logger) *StaffAuth {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}
	return &StaffAuth{
		secret: []byte(secret),
		roles:  allowed,
		logger: logger,
	}
}

// Middleware возвращает обертку для обработчиков, доступных только персоналу
func (a *StaffAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			a.logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		claims, err := a.parse(token)
		if err != nil {
			a.logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		if _, allowed := a.roles[strings.ToLower(claims.Role)]; !allowed {
			a.logger.Warn("%s %s - Role %q is not staff: sub=%s", r.Method, r.URL.Path, claims.Role, claims.Subject)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithStaffID(r.Context(), claims.Subject)))
	})
}

func (a *StaffAuth) parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// WithStaffID кладет ID сотрудника в контекст
func WithStaffID(ctx context.Context, staffID string) context.Context {
	return context.WithValue(ctx, staffIDKey, staffID)
}

// GetStaffID возвращает ID сотрудника, прошедшего StaffAuth
func GetStaffID(ctx context.Context) (string, bool) {
	staffID, ok := ctx.Value(staffIDKey).(string)
	return staffID, ok && staffID != ""
}
