package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL время жизни сессионного токена.
// Сессия stateless: таблицы сессий на сервере нет, logout только
// очищает cookie у клиента, а сам токен остается валидным до
// естественного истечения.
const TokenTTL = 24 * time.Hour

// tokenIssuer значение claim iss в выпускаемых токенах
const tokenIssuer = "homelabster"

// Claims представляет payload сессионного токена
type Claims struct {
	Username string `json:"username"` // логин администратора
	jwt.RegisteredClaims
}

// Service проверяет учетные данные администратора и управляет
// подписанными сессионными токенами (HMAC-SHA256).
// Конфигурация передается явно, сервис не читает окружение.
type Service struct {
	secret        []byte
	adminUsername string
	adminPassword string
}

// NewService creates a new auth service.
// secret is the HMAC signing key, adminUsername/adminPassword are the
// configured credentials of the single admin principal.
func NewService(secret, adminUsername, adminPassword string) *Service {
	return &Service{
		secret:        []byte(secret),
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// ValidateCredentials сверяет логин и пароль с сконфигурированными.
// Сравнение побайтовое, без нормализации и trim. Оба сравнения
// выполняются всегда, чтобы по времени ответа нельзя было отличить
// неверный логин от неверного пароля.
func (s *Service) ValidateCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword))
	return userOK&passOK == 1
}

// SignToken выпускает подписанный токен для username со сроком
// действия TokenTTL от текущего момента
func (s *Service) SignToken(username string) (string, error) {
	now := time.Now()

	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifyToken проверяет подпись и срок действия токена.
// Возвращает payload только если подпись верна, в payload есть
// непустой username и числовые iat/exp, и токен еще не истек.
// Любая ошибка дает nil: функция тотальная, наружу ничего не бросает.
func (s *Service) VerifyToken(tokenString string) *Claims {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Принимаем только HMAC, чтобы нельзя было подменить алгоритм
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil
	}
	if claims.Username == "" || claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil
	}

	return claims
}
