package utils

import (
	"fmt"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ValidateDateString valida uma data no formato YYYY-MM-DD usado pelo dataset.
// String vazia é considerada válida (filtro ausente).
func ValidateDateString(dateStr string) error {
	if dateStr == "" {
		return nil
	}

	if _, err := ParseDate(dateStr); err != nil {
		return fmt.Errorf("data inválida %q: esperado formato YYYY-MM-DD", dateStr)
	}

	return nil
}
