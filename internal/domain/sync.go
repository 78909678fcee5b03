package domain

import "time"

// AccountSyncResult é o resultado da sincronização hierárquica de uma conta.
// A contagem cobre apenas o nível de campanhas, como sinal de conclusão.
type AccountSyncResult struct {
	AccountID       string `json:"account_id"`
	ExternalID      string `json:"external_id"`
	CampaignsSynced int    `json:"campaigns_synced"`
}

// AccountSyncFailure registra a falha de uma conta em uma execução em lote.
// Uma conta com falha é apenas pulada: a próxima execução a recupera, já que
// os upserts são idempotentes.
type AccountSyncFailure struct {
	AccountID  string `json:"account_id"`
	ExternalID string `json:"external_id"`
	Reason     string `json:"reason"`
}

// SyncRunResult é o resultado de uma execução de sincronização em lote
// cobrindo todas as contas ativas.
type SyncRunResult struct {
	Accounts        int                  `json:"accounts"`
	CampaignsSynced int                  `json:"campaigns_synced"`
	Failures        []AccountSyncFailure `json:"failures"`
	StartedAt       time.Time            `json:"started_at"`
	CompletedAt     time.Time            `json:"completed_at"`
}
