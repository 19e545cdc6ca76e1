package api

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	AccessToken string `json:"access_token"`       // JWT access token
	TokenID     string `json:"token_id,omitempty"` // jti для отзыва
	ExpiresIn   int64  `json:"expires_in"`         // время жизни access token в секундах
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
	Version int64  `json:"version,omitempty"` // текущая версия сущности при конфликте
}

// HealthResponse ответ /health
type HealthResponse struct {
	Status  string `json:"status"`            // ok или unavailable
	Version string `json:"version,omitempty"` // версия сервера
}
