package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlowThresholdFor(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected time.Duration
	}{
		{
			name:     "rotas comuns usam o limite padrão",
			path:     "/v1/stats",
			expected: 500 * time.Millisecond,
		},
		{
			name:     "disparo síncrono de sincronização tem folga maior",
			path:     "/v1/accounts/acc-1/sync",
			expected: 5 * time.Second,
		},
		{
			name:     "disparo manual de cron tem folga maior",
			path:     "/v1/cron/spend-ingestion/run",
			expected: 5 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slowThresholdFor(tt.path))
		})
	}
}
