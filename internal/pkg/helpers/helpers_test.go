package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(1, 10)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, 10, limit)

	offset, limit = CalculateOffsetLimit(3, 25)
	assert.Equal(t, uint64(50), offset)
	assert.Equal(t, 25, limit)

	// Out-of-range inputs fall back to defaults
	offset, limit = CalculateOffsetLimit(0, 0)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, DefaultPageSize, limit)

	_, limit = CalculateOffsetLimit(1, MaxPageSize+1)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(45, 2, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 5, info.TotalPages)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, int64(45), info.TotalItems)

	// Empty result set still reports one page
	info = NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, int64(0), info.TotalItems)

	// Page beyond the end clamps to the last page
	info = NewPaginationInfo(10, 9, 10)
	assert.Equal(t, 1, info.CurrentPage)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/03/2026")
	assert.Error(t, err)
}

func TestParseDatePtr(t *testing.T) {
	got, err := ParseDatePtr(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	empty := ""
	got, err = ParseDatePtr(&empty)
	require.NoError(t, err)
	assert.Nil(t, got)

	s := "2026-03-01"
	got, err = ParseDatePtr(&s)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), *got)

	bad := "not-a-date"
	_, err = ParseDatePtr(&bad)
	assert.Error(t, err)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2000.0, Round2(10000.0/5))
	assert.Equal(t, 333.33, Round2(1000.0/3))
	assert.Equal(t, 66.67, Round2(66.666))
	assert.Equal(t, 0.0, Round2(0))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("garbage", time.Minute))
}
