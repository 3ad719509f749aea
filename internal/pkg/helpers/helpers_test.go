package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 15*time.Minute, ParseDuration("15m", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("not-a-duration", time.Hour))
}

func TestCoalesce(t *testing.T) {
	override := "new"
	assert.Equal(t, "new", CoalesceString(&override, "old"))
	assert.Equal(t, "old", CoalesceString(nil, "old"))

	n := 5
	assert.Equal(t, 5, CoalesceInt(&n, 1))
	assert.Equal(t, 1, CoalesceInt(nil, 1))

	b := false
	assert.False(t, CoalesceBool(&b, true))
	assert.True(t, CoalesceBool(nil, true))
}

func TestCalculateOffsetLimit(t *testing.T) {
	offset, limit := CalculateOffsetLimit(3, 20)
	assert.Equal(t, uint64(40), offset)
	assert.Equal(t, 20, limit)

	offset, limit = CalculateOffsetLimit(0, 0)
	assert.Equal(t, uint64(0), offset)
	assert.Equal(t, DefaultPageSize, limit)

	_, limit = CalculateOffsetLimit(1, MaxPageSize+1)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 2, 10)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, int64(25), info.TotalItems)

	// Page past the end clamps to the last page
	info = NewPaginationInfo(25, 9, 10)
	assert.Equal(t, 3, info.CurrentPage)

	// Empty result still reports one page
	info = NewPaginationInfo(0, 1, 10)
	assert.Equal(t, 1, info.TotalPages)
}
