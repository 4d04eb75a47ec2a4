package importer

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses a European-formatted amount string. Format
// examples: "1.234,56" -> 1234.56, "400" -> 400, "10,00" -> 10.
func parseAmount(s string) (float64, error) {
	clean := strings.ReplaceAll(s, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.InexactFloat64(), nil
}
