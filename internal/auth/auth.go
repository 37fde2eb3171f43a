package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// Ошибки
var (
	ErrInvalidToken = errors.New("неверный или истекший токен")
	ErrEmptySecret  = errors.New("секретный ключ не задан")
)

// Claims структура для JWT-токена
type Claims struct {
	jwt.RegisteredClaims
}

// Authenticator выпускает и проверяет токены доступа к API калькулятора
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthenticator создает Authenticator с ключом подписи и временем жизни токена
func NewAuthenticator(secret string, ttl time.Duration) (*Authenticator, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Authenticator{secret: []byte(secret), ttl: ttl}, nil
}

// GenerateToken создает JWT токен для клиента subject
func (a *Authenticator) GenerateToken(subject string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ValidateToken проверяет подпись и срок действия токена
func (a *Authenticator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}

// ExtractTokenFromRequest извлекает токен из заголовка Authorization
func ExtractTokenFromRequest(r *http.Request) string {
	bearerToken := r.Header.Get("Authorization")
	if len(bearerToken) > 7 && strings.ToUpper(bearerToken[0:7]) == "BEARER " {
		return bearerToken[7:]
	}
	return ""
}

// Middleware пропускает запрос дальше только с действительным токеном.
// Если a == nil, проверка отключена.
func (a *Authenticator) Middleware(next httprouter.Handle) httprouter.Handle {
	if a == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := ExtractTokenFromRequest(r)
		if tokenString == "" {
			unauthorized(w, "Требуется авторизация")
			return
		}

		claims, err := a.ValidateToken(tokenString)
		if err != nil {
			log.Printf("Ошибка валидации JWT токена: %v", err)
			unauthorized(w, "Недействительный токен")
			return
		}

		next(w, r.WithContext(SetSubjectContext(r.Context(), claims.Subject)), ps)
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
