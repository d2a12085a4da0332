package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fleet/internal/entities"
	"fleet/pkg/logger"
)

type ctxKey int

const actorKey ctxKey = iota

// Claims - полезная нагрузка токена. EmployeeID заполнен только у водителей.
type Claims struct {
	UserID     int64  `json:"user_id"`
	EmployeeID *int64 `json:"employee_id,omitempty"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken выписывает токен на 24 часа. Используется тестами и cli.
func GenerateToken(secret []byte, userID int64, employeeID *int64, role entities.RoleType) (string, error) {
	claims := Claims{
		UserID:     userID,
		EmployeeID: employeeID,
		Role:       role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Middleware проверяет Bearer-токен и кладет актора в контекст запроса.
func Middleware(log handlerLogger, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenStr == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				log.With(
					logger.NewField("remote_addr", r.RemoteAddr),
					logger.NewField("path", r.URL.Path),
				).Warn("invalid or expired token")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(*Claims)
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			actor := entities.Actor{
				UserID:     claims.UserID,
				EmployeeID: claims.EmployeeID,
				Role:       entities.RoleType(claims.Role),
			}

			ctx := context.WithValue(r.Context(), actorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext достает актора, положенного Middleware.
func FromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(entities.Actor)
	return actor, ok
}

// WithActor - хелпер для тестов хендлеров.
func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}
