package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve_ClampsBoundedInterval(t *testing.T) {
	r := NewResolver()

	// 31-day span exceeds the 7-day lookback of 1m data.
	got, err := r.Resolve("1m", date(2024, time.January, 1), date(2024, time.February, 1))
	require.NoError(t, err)

	assert.True(t, got.Clamped)
	assert.Equal(t, date(2024, time.January, 25), got.Start)
	assert.Equal(t, date(2024, time.February, 1), got.End)
}

func TestResolve_UnboundedPassThrough(t *testing.T) {
	r := NewResolver()

	got, err := r.Resolve("1d", date(2024, time.January, 1), date(2024, time.June, 1))
	require.NoError(t, err)

	assert.False(t, got.Clamped)
	assert.Equal(t, date(2024, time.January, 1), got.Start)
	assert.Equal(t, date(2024, time.June, 1), got.End)
}

func TestResolve_WithinLookbackUnchanged(t *testing.T) {
	r := NewResolver()

	got, err := r.Resolve("5m", date(2024, time.March, 1), date(2024, time.March, 20))
	require.NoError(t, err)

	assert.False(t, got.Clamped)
	assert.Equal(t, date(2024, time.March, 1), got.Start)
}

func TestResolve_NoDatesMeansProviderDefault(t *testing.T) {
	r := NewResolver()

	for _, code := range Codes() {
		got, err := r.Resolve(code, time.Time{}, time.Time{})
		require.NoError(t, err, code)
		assert.False(t, got.Explicit(), code)
		assert.False(t, got.Clamped, code)
	}
}

func TestResolve_EndDefaultsToNow(t *testing.T) {
	now := date(2024, time.February, 1)
	r := &Resolver{Now: func() time.Time { return now }}

	got, err := r.Resolve("1m", date(2024, time.January, 1), time.Time{})
	require.NoError(t, err)

	assert.Equal(t, now, got.End)
	assert.True(t, got.Clamped)
	assert.Equal(t, now.AddDate(0, 0, -7), got.Start)
}

func TestResolve_EndBeforeStart(t *testing.T) {
	r := NewResolver()

	_, err := r.Resolve("1d", date(2024, time.February, 1), date(2024, time.January, 1))
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestResolve_UnsupportedInterval(t *testing.T) {
	r := NewResolver()

	_, err := r.Resolve("17m", date(2024, time.January, 1), date(2024, time.February, 1))
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestResolve_SpanEqualToLookbackNotClamped(t *testing.T) {
	r := NewResolver()

	got, err := r.Resolve("1m", date(2024, time.January, 25), date(2024, time.February, 1))
	require.NoError(t, err)
	assert.False(t, got.Clamped)
}
