package synthetic

import (
	"math/rand"
	"time"

	"github.com/qixdigital/ad-intelligence-api/internal/domain"
)

// StatsProvider gera métricas sintéticas para ambientes sem credenciais da
// plataforma. Os intervalos imitam a ordem de grandeza de contas reais.
type StatsProvider struct {
	currency string
	rng      *rand.Rand
}

func New(currency string) *StatsProvider {
	return &StatsProvider{
		currency: currency,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (p *StatsProvider) FetchDailyStats(campaign *domain.Campaign) (*domain.SpendSnapshot, error) {
	spend := p.rng.Float64() * 5000
	revenue := spend * p.rng.Float64() * 3

	return &domain.SpendSnapshot{
		Date:          time.Now().UTC().Truncate(24 * time.Hour),
		CampaignID:    campaign.ID,
		AdAccountID:   campaign.AdAccountID,
		SpendMicros:   domain.MicrosFromUnits(spend),
		Impressions:   int64(p.rng.Intn(10000)),
		Clicks:        int64(p.rng.Intn(500)),
		Conversions:   int64(p.rng.Intn(20)),
		RevenueMicros: domain.MicrosFromUnits(revenue),
		Currency:      p.currency,
	}, nil
}
