package synthetic

import (
	"testing"
	"time"

	"github.com/qixdigital/ad-intelligence-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStatsProvider_FetchDailyStats(t *testing.T) {
	provider := New("BRL")

	campaign := &domain.Campaign{
		ID:          "camp-db-1",
		AdAccountID: "acc-local-1",
		Name:        "Summer",
	}

	snapshot, err := provider.FetchDailyStats(campaign)

	assert.NoError(t, err)
	assert.Equal(t, "camp-db-1", snapshot.CampaignID)
	assert.Equal(t, "acc-local-1", snapshot.AdAccountID)
	assert.Equal(t, "BRL", snapshot.Currency)

	// A data é sempre o dia corrente truncado, alinhada com a chave de upsert
	assert.Equal(t, snapshot.Date, snapshot.Date.Truncate(24*time.Hour))

	// Os valores são aleatórios mas dentro das faixas do gerador
	assert.GreaterOrEqual(t, snapshot.SpendMicros.ToUnits(), 0.0)
	assert.Less(t, snapshot.SpendMicros.ToUnits(), 5000.0)
	assert.Less(t, snapshot.Impressions, int64(10000))
	assert.Less(t, snapshot.Clicks, int64(500))
	assert.Less(t, snapshot.Conversions, int64(20))
}
