package syncing

import (
	"errors"
	"fmt"
)

// Tipos de erros de sincronização
var (
	ErrAccountNotFound    = errors.New("conta de anúncios não encontrada")
	ErrCampaignListFailed = errors.New("falha ao listar campanhas da conta")
	ErrPersistence        = errors.New("falha ao persistir a hierarquia")
)

// AccountSyncError é a falha fatal da sincronização de uma conta. Falhas nos
// níveis inferiores (conjuntos, anúncios) não produzem este erro: são apenas
// registradas e a sincronização continua.
type AccountSyncError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	AccountID  string // ID local da conta
	ExternalID string // ID da conta na plataforma
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AccountSyncError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (conta %s): %s", e.Err.Error(), e.ExternalID, e.Details)
	}
	return fmt.Sprintf("%s (conta %s)", e.Err.Error(), e.ExternalID)
}

// Unwrap retorna o erro subjacente
func (e *AccountSyncError) Unwrap() error {
	return e.Err
}

// NewAccountSyncError cria um novo erro de sincronização de conta
func NewAccountSyncError(baseErr error, code, accountID, externalID, details string) *AccountSyncError {
	return &AccountSyncError{
		Err:        baseErr,
		Code:       code,
		AccountID:  accountID,
		ExternalID: externalID,
		Details:    details,
	}
}
