package api

// TileCreateRequest представляет запрос на создание плитки
type TileCreateRequest struct {
	Name        string `json:"name" validate:"required,max=100"`         // название сервиса
	URL         string `json:"url" validate:"required,url"`              // абсолютный URL сервиса
	Description string `json:"description" validate:"omitempty,max=500"` // опциональное описание
	Icon        string `json:"icon"`                                     // опциональный путь к иконке
	Order       int    `json:"order" validate:"min=0"`                   // ключ сортировки
}

// TileUpdateRequest представляет частичное обновление плитки.
// nil-поля остаются без изменений; id и createdAt через этот
// запрос поменять нельзя.
type TileUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	URL         *string `json:"url,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Order       *int    `json:"order,omitempty"`
}

// DeleteResponse представляет ответ на успешное удаление
type DeleteResponse struct {
	Success bool `json:"success"`
}
