package api

// SettingsUpdateRequest представляет частичное обновление настроек.
// nil-поля остаются без изменений.
type SettingsUpdateRequest struct {
	Theme    *string `json:"theme,omitempty"`
	SiteName *string `json:"siteName,omitempty"`
}
