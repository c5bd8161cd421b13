package models

import "time"

// Theme тема оформления дашборда
type Theme string

// Допустимые значения темы
const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Valid проверяет, что тема одна из допустимых
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Tile представляет плитку-ссылку на сервис в дашборде
type Tile struct {
	ID          string    `json:"id"`                    // ID уникальный идентификатор плитки (UUID), неизменяемый
	Name        string    `json:"name"`                  // Name название сервиса (например, "Grafana")
	URL         string    `json:"url"`                   // URL абсолютный адрес сервиса
	Description string    `json:"description,omitempty"` // Description опциональное описание
	Icon        string    `json:"icon,omitempty"`        // Icon опциональный путь к иконке (из image store)
	CreatedAt   time.Time `json:"createdAt"`             // CreatedAt время создания, ставится один раз
	UpdatedAt   time.Time `json:"updatedAt"`             // UpdatedAt время последнего изменения
	Order       int       `json:"order"`                 // Order ключ сортировки при отображении (>= 0)
}

// Settings представляет настройки дашборда.
// В документе всегда ровно одно значение Settings.
type Settings struct {
	Theme     Theme     `json:"theme"`     // Theme тема оформления: light, dark или system
	SiteName  string    `json:"siteName"`  // SiteName название дашборда
	CreatedAt time.Time `json:"createdAt"` // CreatedAt ставится при инициализации документа
	UpdatedAt time.Time `json:"updatedAt"` // UpdatedAt обновляется при каждом изменении настроек
}

// AppData единый персистентный документ приложения:
// все плитки плюс настройки. Хранится целиком в одном JSON файле.
type AppData struct {
	Version  string   `json:"version"`  // Version информационная версия схемы, не проверяется
	Tiles    []Tile   `json:"tiles"`    // Tiles плитки в порядке добавления (не в порядке отображения)
	Settings Settings `json:"settings"` // Settings настройки дашборда
}

// DefaultVersion версия схемы документа по умолчанию
const DefaultVersion = "1.0.0"

// DefaultSiteName название дашборда по умолчанию
const DefaultSiteName = "Homelabster"

// NewDefaultAppData создает документ по умолчанию для первого запуска:
// пустой список плиток, тема system, переданное название сайта.
func NewDefaultAppData(siteName string, now time.Time) *AppData {
	if siteName == "" {
		siteName = DefaultSiteName
	}
	return &AppData{
		Version: DefaultVersion,
		Tiles:   []Tile{},
		Settings: Settings{
			Theme:     ThemeSystem,
			SiteName:  siteName,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
