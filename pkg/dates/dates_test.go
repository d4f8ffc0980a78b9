package dates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsISO(t *testing.T) {
	assert.True(t, IsISO("2025-05-23"))
	assert.False(t, IsISO("2025-13-01"))
	assert.False(t, IsISO("23/05/2025"))
	assert.False(t, IsISO(""))
	assert.False(t, IsISO("2025-05-23T00:00:00Z"))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "23/05/2025", Display("2025-05-23"))
	assert.Equal(t, "01/12/2024", Display("2024-12-01T00:00:00.000Z"))
	assert.Equal(t, "N/A", Display(""))
	assert.Equal(t, "N/A", Display("not a date"))
	assert.Equal(t, "N/A", Display("2025-02-30"))
}
