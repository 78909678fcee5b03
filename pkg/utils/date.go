package utils

import "time"

// ParseDate interpreta datas no formato AAAA-MM-DD. String vazia
// resulta em data zero, indicando extremidade aberta do período.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return &time.Time{}, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
