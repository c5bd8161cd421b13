package config

import "os"

// DefaultJWTSecret небезопасный секрет по умолчанию.
// Используется только если JWT_SECRET не задан — поведение сохранено
// для совместимости, но в продакшене секрет обязательно надо задать.
const DefaultJWTSecret = "default-secret-change-in-production"

// Значения по умолчанию для остальных параметров
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin"
	DefaultAddr          = ":8080"
	DefaultDataDir       = "userdata/config"
	DefaultImagesDir     = "userdata/images"
)

// Config содержит всю конфигурацию сервера.
// Читается один раз при старте и явно передается в конструкторы,
// чтобы сервисы не зависели от глобального окружения.
type Config struct {
	Addr          string // адрес HTTP сервера
	JWTSecret     string // секрет для подписи JWT токенов
	AdminUsername string // логин администратора
	AdminPassword string // пароль администратора
	DataDir       string // каталог с settings.json
	ImagesDir     string // каталог с загруженными иконками
	Production    bool   // включает Secure флаг на cookie
}

// Load читает конфигурацию из переменных окружения.
// Для незаданных переменных используются значения по умолчанию.
func Load() *Config {
	return &Config{
		Addr:          envOrDefault("HOMELABSTER_ADDR", DefaultAddr),
		JWTSecret:     envOrDefault("JWT_SECRET", DefaultJWTSecret),
		AdminUsername: envOrDefault("ADMIN_USERNAME", DefaultAdminUsername),
		AdminPassword: envOrDefault("ADMIN_PASSWORD", DefaultAdminPassword),
		DataDir:       envOrDefault("HOMELABSTER_DATA_DIR", DefaultDataDir),
		ImagesDir:     envOrDefault("HOMELABSTER_IMAGES_DIR", DefaultImagesDir),
		Production:    os.Getenv("HOMELABSTER_ENV") == "production",
	}
}

// InsecureSecret сообщает, что сервер работает с дефолтным секретом
func (c *Config) InsecureSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
