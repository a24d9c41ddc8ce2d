package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount es un monto monetario tal como lo serializa el backend. Spring envía
// los precios a veces como número plano (12.5) y a veces como BigDecimal
// envuelto ({"doubleValue": 12.5}); Amount acepta ambas formas y las normaliza
// a un decimal antes de cualquier aritmética.
type Amount struct {
	decimal.Decimal
}

// AmountFromFloat construye un Amount desde un float (uso en tests y demo).
func AmountFromFloat(v float64) Amount {
	return Amount{decimal.NewFromFloat(v)}
}

type boxedDecimal struct {
	DoubleValue json.Number `json:"doubleValue"`
}

// UnmarshalJSON acepta número plano, número citado, null (cero) o la forma
// envuelta {"doubleValue": n}.
func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}

	if trimmed[0] == '{' {
		var boxed boxedDecimal
		if err := json.Unmarshal(trimmed, &boxed); err != nil {
			return fmt.Errorf("montant encapsulé invalide: %w", err)
		}
		d, err := decimal.NewFromString(boxed.DoubleValue.String())
		if err != nil {
			return fmt.Errorf("doubleValue invalide %q: %w", boxed.DoubleValue.String(), err)
		}
		a.Decimal = d
		return nil
	}

	return a.Decimal.UnmarshalJSON(trimmed)
}

// MarshalJSON serializa siempre la forma plana; el backend acepta números.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.Decimal.MarshalJSON()
}

// NormalizeAmount normaliza un valor de precio dinámico (float64, json.Number,
// string, map con doubleValue) al decimal subyacente. Es la versión para
// valores ya deserializados en interface{}; los campos tipados pasan por
// Amount.UnmarshalJSON.
func NormalizeAmount(v any) (decimal.Decimal, error) {
	switch val := v.(type) {
	case nil:
		return decimal.Zero, nil
	case float64:
		return decimal.NewFromFloat(val), nil
	case int:
		return decimal.NewFromInt(int64(val)), nil
	case int64:
		return decimal.NewFromInt(val), nil
	case json.Number:
		return decimal.NewFromString(val.String())
	case string:
		return decimal.NewFromString(val)
	case decimal.Decimal:
		return val, nil
	case Amount:
		return val.Decimal, nil
	case map[string]any:
		inner, ok := val["doubleValue"]
		if !ok {
			return decimal.Zero, fmt.Errorf("objet prix sans champ doubleValue")
		}
		return NormalizeAmount(inner)
	default:
		return decimal.Zero, fmt.Errorf("forme de prix non reconnue: %T", v)
	}
}
