package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:42", shared.BuildCacheKey("booking:get", "42"))
	assert.Equal(t, "booking:gets", shared.BuildCacheKey("booking:gets", ""))
}

func TestBuildCacheKeyWithParts(t *testing.T) {
	assert.Equal(t, "calendar:month:2024:6", shared.BuildCacheKeyWithParts("calendar:month", "2024", "6"))
	assert.Equal(t, "calendar:month", shared.BuildCacheKeyWithParts("calendar:month"))
	assert.Equal(t, "rooms:AVAILABLE", shared.BuildCacheKeyWithParts("rooms", "", "AVAILABLE", ""))
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "exact division", total: 20, limit: 10, want: 2},
		{name: "with remainder", total: 21, limit: 10, want: 3},
		{name: "zero total", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 10, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}
