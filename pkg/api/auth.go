package api

// LoginRequest представляет запрос на вход администратора
type LoginRequest struct {
	Username string `json:"username" validate:"required"` // логин администратора
	Password string `json:"password" validate:"required"` // пароль администратора
}

// LoginResponse представляет ответ на успешный вход.
// Сам токен клиенту не возвращается, он ставится в HttpOnly cookie.
type LoginResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
