package aggregating

import (
	"github.com/qixdigital/ad-intelligence-api/internal/domain"
)

// StatsProvider define a interface para obter as métricas diárias de entrega
// de uma campanha. Há uma implementação real (plataforma) e uma sintética
// para ambientes sem credenciais.
type StatsProvider interface {
	// FetchDailyStats devolve o snapshot do dia corrente da campanha, ou nil
	// quando a campanha não teve entrega no dia.
	FetchDailyStats(campaign *domain.Campaign) (*domain.SpendSnapshot, error)
}
