package services

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"

	"hoteldesk-backend/models"
)

func idStr(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// dateStr renders a DATE column the way the frontends expect it.
func dateStr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func dateStrPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// parseDate accepts "2006-01-02" or any longer timestamp whose first ten
// characters are the date. Blank input yields nil.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		s = s[:10]
	}
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

// parseDatetime accepts "2006-01-02 15:04:05" or an RFC3339 timestamp.
// Blank or unparseable input yields nil.
func parseDatetime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// decodeAmenities always yields a list. Legacy rows may hold the list
// doubly-encoded as a JSON string; both forms decode to the same result.
func decodeAmenities(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			return []string{}
		}
		return list
	}
	var nested string
	if err := json.Unmarshal(raw, &nested); err == nil {
		if err := json.Unmarshal([]byte(nested), &list); err == nil && list != nil {
			return list
		}
	}
	return []string{}
}

func encodeAmenities(list []string) datatypes.JSON {
	return models.EncodeAmenityList(list)
}

// toStringList coerces a decoded JSON value into a string list; anything
// that is not a list of strings becomes an empty list.
func toStringList(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// truthy mirrors the loose boolean coercion the admin UI relies on for
// flags sent as true/"true"/1.
func truthy(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return val == "true" || val == "1"
	case float64:
		return val != 0
	default:
		return false
	}
}

// blankToNil normalizes empty or blank strings to NULL for nullable
// columns in partial updates.
func blankToNil(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return nil
	}
	return v
}
