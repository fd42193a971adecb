package repository

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// storeLayout is how timestamps are written: UTC, no zone suffix.
const storeLayout = "2006-01-02 15:04:05"

// readLayouts are accepted when the driver hands back text.
var readLayouts = []string{
	storeLayout,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05 UTC",
}

// formatTS renders t for storage.
func formatTS(t time.Time) string {
	return t.UTC().Format(storeLayout)
}

// storeTime implements sql.Scanner and is the one place where stored
// timestamps (time values, text, bytes, NULL) become UTC time.Time.
type storeTime struct {
	Time  time.Time
	Valid bool
}

func (s *storeTime) Scan(src any) error {
	t, ok, err := scanTime(src)
	if err != nil {
		return err
	}
	s.Time, s.Valid = t, ok
	return nil
}

func (s storeTime) ptr() *time.Time {
	if !s.Valid {
		return nil
	}
	t := s.Time
	return &t
}

// scanTime normalises a raw driver value to UTC. ok is false for NULL.
func scanTime(src any) (time.Time, bool, error) {
	switch v := src.(type) {
	case nil:
		return time.Time{}, false, nil
	case time.Time:
		return v.UTC(), true, nil
	case string:
		return parseStoreText(v)
	case []byte:
		return parseStoreText(string(v))
	case int64:
		return time.Unix(v, 0).UTC(), true, nil
	default:
		return time.Time{}, false, fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func parseStoreText(s string) (time.Time, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, nil
	}
	var lastErr error
	for _, layout := range readLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), true, nil
		}
		lastErr = err
	}
	return time.Time{}, false, fmt.Errorf("parse timestamp %q: %w", s, lastErr)
}

var _ driver.Valuer = storeTime{}

// Value lets storeTime be used as a query argument too.
func (s storeTime) Value() (driver.Value, error) {
	if !s.Valid {
		return nil, nil
	}
	return formatTS(s.Time), nil
}
