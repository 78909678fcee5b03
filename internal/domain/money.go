package domain

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// DecimalCurrency representa um valor monetário em unidades inteiras de moeda
// (reais, dólares), usado nos orçamentos de campanhas e conjuntos de anúncios.
// Não é intercambiável com MicroAmount.
type DecimalCurrency struct {
	decimal.Decimal
}

// MicroAmount representa um valor monetário em micros (1 unidade = 1.000.000
// micros), usado nos snapshots de gasto para evitar erro de arredondamento de
// ponto flutuante durante a agregação.
type MicroAmount int64

const microsPerUnit = 1_000_000

// CentsToDecimal converte o valor em centavos que a plataforma envia como
// string ("150000") para unidades decimais de moeda (1500.00).
// Um valor ausente (nil) permanece nil: orçamento não definido não é orçamento zero.
func CentsToDecimal(cents *string) (*DecimalCurrency, error) {
	if cents == nil || *cents == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(*cents)
	if err != nil {
		return nil, fmt.Errorf("valor monetário inválido %q: %w", *cents, err)
	}

	return &DecimalCurrency{value.Div(decimal.NewFromInt(100))}, nil
}

// NewDecimalCurrency cria um DecimalCurrency a partir de unidades de moeda.
func NewDecimalCurrency(units float64) DecimalCurrency {
	return DecimalCurrency{decimal.NewFromFloat(units)}
}

// ToUnits converte micros para unidades de moeda. Deve ser chamado apenas na
// fronteira de leitura/relatório, nunca em somas intermediárias.
func (m MicroAmount) ToUnits() float64 {
	return float64(m) / microsPerUnit
}

// MicrosFromUnits converte unidades de moeda para micros. O valor é
// arredondado: a conversão binária de valores como 8.20 fica abaixo do
// inteiro exato e truncar perderia um micro.
func MicrosFromUnits(units float64) MicroAmount {
	return MicroAmount(math.Round(units * microsPerUnit))
}
