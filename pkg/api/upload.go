package api

// UploadResponse представляет ответ на успешную загрузку иконки
type UploadResponse struct {
	URL string `json:"url"` // путь для обращения к файлу, например /api/images/169...-ab12cd34.png
}
