package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestDecodeAmenities(t *testing.T) {
	t.Run("plain list", func(t *testing.T) {
		got := decodeAmenities(datatypes.JSON(`["wifi","tv"]`))
		assert.Equal(t, []string{"wifi", "tv"}, got)
	})

	t.Run("doubly encoded legacy value", func(t *testing.T) {
		got := decodeAmenities(datatypes.JSON(`"[\"wifi\",\"minibar\"]"`))
		assert.Equal(t, []string{"wifi", "minibar"}, got)
	})

	t.Run("empty column", func(t *testing.T) {
		assert.Equal(t, []string{}, decodeAmenities(nil))
	})

	t.Run("json null", func(t *testing.T) {
		assert.Equal(t, []string{}, decodeAmenities(datatypes.JSON(`null`)))
	})

	t.Run("garbage", func(t *testing.T) {
		assert.Equal(t, []string{}, decodeAmenities(datatypes.JSON(`{"not":"a list"}`)))
	})
}

func TestAmenitiesRoundTrip(t *testing.T) {
	list := []string{"balcony", "minibar", "sea view"}
	assert.Equal(t, list, decodeAmenities(encodeAmenities(list)))

	// nil encodes to an empty array, never JSON null
	assert.Equal(t, []string{}, decodeAmenities(encodeAmenities(nil)))
}

func TestParseDate(t *testing.T) {
	got := parseDate("2025-02-15")
	if assert.NotNil(t, got) {
		assert.Equal(t, "2025-02-15", got.Format("2006-01-02"))
	}

	// timestamps are trimmed to their date part
	got = parseDate("2025-02-15T14:00:00.000Z")
	if assert.NotNil(t, got) {
		assert.Equal(t, "2025-02-15", got.Format("2006-01-02"))
	}

	assert.Nil(t, parseDate(""))
	assert.Nil(t, parseDate("not-a-date"))
}

func TestDateStr(t *testing.T) {
	assert.Equal(t, "", dateStr(nil))
	ts := time.Date(2025, 2, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-02-15", dateStr(&ts))
}

func TestTruthy(t *testing.T) {
	assert.True(t, truthy(true))
	assert.True(t, truthy("true"))
	assert.True(t, truthy("1"))
	assert.True(t, truthy(float64(1)))
	assert.False(t, truthy(false))
	assert.False(t, truthy("false"))
	assert.False(t, truthy(float64(0)))
	assert.False(t, truthy(nil))
}

func TestBlankToNil(t *testing.T) {
	assert.Nil(t, blankToNil(""))
	assert.Nil(t, blankToNil("   "))
	assert.Nil(t, blankToNil(nil))
	assert.Equal(t, "x", blankToNil("x"))
	assert.Equal(t, float64(3), blankToNil(float64(3)))
}

func TestResolveDatePair(t *testing.T) {
	assert.Equal(t, "2025-03-01", ResolveDatePair("2025-03-01", "2025-01-01"))
	assert.Equal(t, "2025-01-01", ResolveDatePair("", "2025-01-01"))
	assert.Equal(t, "2025-01-01", ResolveDatePair("   ", "2025-01-01"))
	assert.Equal(t, "", ResolveDatePair("", ""))
}
