package sales

import (
	"fmt"
	"strconv"
)

// ValidationError reports the first required submission field that was
// absent, null, or empty.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("'%s' cannot be empty", e.Field)
}

// Validate checks a submitted sale for completeness. It walks RequiredFields
// in order and fails on the first field that is missing, nil, or the empty
// string. Side-effect-free; nothing is written when validation fails.
func Validate(fields map[string]any) error {
	for _, field := range RequiredFields {
		v, ok := fields[field]
		if !ok || v == nil || v == "" {
			return &ValidationError{Field: field}
		}
	}
	return nil
}

// RecordFromFields builds a SaleRecord from validated submission fields.
// Non-string JSON values (a numeric amount, say) are stringified here at the
// boundary, so the rest of the system only ever sees the fixed-shape record.
func RecordFromFields(fields map[string]any) SaleRecord {
	return SaleRecord{
		ProductName: stringify(fields[FieldProductName]),
		SalesAmount: stringify(fields[FieldSalesAmount]),
		SaleDate:    stringify(fields[FieldSaleDate]),
		Customer:    stringify(fields[FieldCustomer]),
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
