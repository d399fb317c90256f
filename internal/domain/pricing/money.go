package pricing

import "errors"

var ErrNegativeMoney = errors.New("money cannot be negative")

// Money is an amount in integer centavos. All arithmetic stays in integers;
// peso rendering happens only at the API boundary.
type Money struct {
	centavos int64
}

func NewMoney(centavos int64) Money {
	return Money{centavos: centavos}
}

func NewMoneyChecked(centavos int64) (Money, error) {
	if centavos < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{centavos: centavos}, nil
}

func (m Money) Centavos() int64 {
	return m.centavos
}

func (m Money) Pesos() float64 {
	return float64(m.centavos) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{centavos: m.centavos + other.centavos}
}

func (m Money) MulCount(n int) Money {
	return Money{centavos: m.centavos * int64(n)}
}

// Half rounds down to the whole centavo. The deposit is half the
// accommodation price; a stray half-centavo goes in the guest's favor.
func (m Money) Half() Money {
	return Money{centavos: m.centavos / 2}
}

func (m Money) IsZero() bool {
	return m.centavos == 0
}
