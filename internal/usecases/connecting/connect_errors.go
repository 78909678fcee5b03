package connecting

import (
	"errors"
	"fmt"
)

// Tipos de erros de conexão com a plataforma
var (
	ErrInvalidState        = errors.New("state de autorização desconhecido ou expirado")
	ErrTokenNotFound       = errors.New("nenhum token armazenado para o usuário")
	ErrTokenExpired        = errors.New("token da plataforma expirado, reconexão necessária")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
)

// ConnectError é um erro com contexto adicional do fluxo de conexão
type ConnectError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  string // Usuário envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ConnectError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ConnectError) Unwrap() error {
	return e.Err
}

// NewConnectError cria um novo erro de conexão
func NewConnectError(baseErr error, code string, userID string, details string) *ConnectError {
	return &ConnectError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
