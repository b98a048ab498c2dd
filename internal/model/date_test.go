package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateBothLayouts(t *testing.T) {
	want := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	d, err := ParseDate("10-06-2025")
	require.NoError(t, err)
	assert.True(t, d.Equal(want))

	d, err = ParseDate("10/06/2025")
	require.NoError(t, err)
	assert.True(t, d.Equal(want))

	_, err = ParseDate("2025-06-10")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.June, 10, 15, 42, 0, 0, time.UTC)
	assert.Equal(t, "10-06-2025", FormatDate(d))
	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestDateOnly(t *testing.T) {
	d := time.Date(2025, time.June, 10, 23, 59, 59, 0, time.UTC)
	assert.True(t, DateOnly(d).Equal(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)))
}
