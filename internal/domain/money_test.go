package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCentsToDecimal(t *testing.T) {
	tests := []struct {
		name     string
		cents    *string
		expected string
		isNil    bool
	}{
		{
			name:     "valor em centavos vira unidades decimais",
			cents:    stringPtr("150000"),
			expected: "1500",
		},
		{
			name:     "centavos quebrados preservam casas decimais",
			cents:    stringPtr("12345"),
			expected: "123.45",
		},
		{
			name:  "valor ausente permanece ausente, nunca zero",
			cents: nil,
			isNil: true,
		},
		{
			name:  "string vazia tratada como ausente",
			cents: stringPtr(""),
			isNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CentsToDecimal(tt.cents)
			require.NoError(t, err)

			if tt.isNil {
				assert.Nil(t, result)
				return
			}

			require.NotNil(t, result)
			assert.Equal(t, tt.expected, result.String())
		})
	}
}

func TestCentsToDecimal_InvalidValue(t *testing.T) {
	result, err := CentsToDecimal(stringPtr("abc"))
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestMicroAmount(t *testing.T) {
	assert.Equal(t, 2.0, MicroAmount(2_000_000).ToUnits())
	assert.Equal(t, 0.5, MicroAmount(500_000).ToUnits())
	assert.Equal(t, MicroAmount(1_500_000), MicrosFromUnits(1.5))
}

func TestMicrosFromUnits_Arredondamento(t *testing.T) {
	// Valores cuja representação binária fica logo abaixo do inteiro exato
	// não podem perder micros na conversão.
	assert.Equal(t, MicroAmount(8_200_000), MicrosFromUnits(8.20))
	assert.Equal(t, MicroAmount(123_450_000), MicrosFromUnits(123.45))
	assert.Equal(t, MicroAmount(70_000), MicrosFromUnits(0.07))
	assert.Equal(t, MicroAmount(0), MicrosFromUnits(0))
}

func TestPlatformTokenState(t *testing.T) {
	now := mustParseTime(t, "2024-05-01T12:00:00Z")

	tests := []struct {
		name      string
		expiresAt *string
		expected  TokenState
	}{
		{
			name:      "sem expiração informada é sempre válido",
			expiresAt: nil,
			expected:  TokenStateValid,
		},
		{
			name:      "expiração distante é válido",
			expiresAt: stringPtr("2024-06-01T12:00:00Z"),
			expected:  TokenStateValid,
		},
		{
			name:      "dentro da janela de renovação",
			expiresAt: stringPtr("2024-05-02T06:00:00Z"),
			expected:  TokenStateExpiringSoon,
		},
		{
			name:      "já expirado",
			expiresAt: stringPtr("2024-05-01T11:59:59Z"),
			expected:  TokenStateExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := &PlatformToken{UserID: "u1", Platform: PlatformMeta}
			if tt.expiresAt != nil {
				expiry := mustParseTime(t, *tt.expiresAt)
				token.ExpiresAt = &expiry
			}

			assert.Equal(t, tt.expected, token.State(now))
		})
	}
}

func stringPtr(s string) *string {
	return &s
}

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}
