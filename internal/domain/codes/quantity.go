package codes

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain"
)

// ParseQuantity normaliza una cantidad en texto libre a decimal.
// Reglas: se recorta espacio; la coma decimal se reemplaza por punto; si
// contiene exactamente un '/', se interpreta como fracción a/b; en otro caso
// se parsea como número. Función pura: sin estado oculto.
func ParseQuantity(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: cantidad vacía", domain.ErrInvalidInput)
	}
	s = strings.ReplaceAll(s, ",", ".")

	if strings.Count(s, "/") == 1 {
		parts := strings.SplitN(s, "/", 2)
		num, err := decimal.NewFromString(strings.TrimSpace(parts[0]))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: numerador %q", domain.ErrInvalidInput, parts[0])
		}
		den, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: denominador %q", domain.ErrInvalidInput, parts[1])
		}
		if den.IsZero() {
			return decimal.Zero, fmt.Errorf("%w: división por cero", domain.ErrInvalidInput)
		}
		return num.Div(den), nil
	}

	q, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: cantidad %q no es un número", domain.ErrInvalidInput, raw)
	}
	return q, nil
}

// ParseQuantityJSON normaliza el valor JSON de una cantidad: un número JSON
// pasa sin cambios; un string JSON se normaliza con ParseQuantity.
func ParseQuantityJSON(raw json.RawMessage) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return decimal.Zero, fmt.Errorf("%w: cantidad requerida", domain.ErrInvalidInput)
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, fmt.Errorf("%w: cantidad mal formada", domain.ErrInvalidInput)
		}
		return ParseQuantity(s)
	}
	q, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: cantidad %q no es un número", domain.ErrInvalidInput, trimmed)
	}
	return q, nil
}
