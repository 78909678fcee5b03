package domain

import "fmt"

// ErrorResponse é o envelope de erro padrão da Graph API
type ErrorResponse struct {
	Error struct {
		Message      string `json:"message"`
		Type         string `json:"type"`
		Code         int    `json:"code"`
		ErrorSubcode int    `json:"error_subcode"`
	} `json:"error"`
}

// IsTokenExpired verifica se o erro indica token expirado ou invalidado
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == 190
}

// AuthExchangeError indica que a troca de código de autorização por token
// falhou. O código é de uso único e já foi consumido: não há retry possível,
// o chamador precisa reiniciar o fluxo de consentimento.
type AuthExchangeError struct {
	StatusCode int
	Body       string
}

func (e *AuthExchangeError) Error() string {
	return fmt.Sprintf("falha na troca do código de autorização. Status: %d, Resposta: %s", e.StatusCode, e.Body)
}

func NewAuthExchangeError(statusCode int, body string) *AuthExchangeError {
	return &AuthExchangeError{StatusCode: statusCode, Body: body}
}
