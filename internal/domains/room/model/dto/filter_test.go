package dto_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/internal/domains/room/model/dto"
	"frontdesk/shared/failure"
)

func TestNewFilter(t *testing.T) {
	t.Run("accepts recognized keys and drops empty values", func(t *testing.T) {
		filter, err := dto.NewFilter(map[string]string{
			"type":     "DELUXE",
			"status":   "",
			"minPrice": "100",
		})

		require.NoError(t, err)
		assert.Equal(t, "DELUXE", filter.Values().Get("type"))
		assert.Equal(t, "100", filter.Values().Get("minPrice"))
		assert.False(t, filter.Values().Has("status"))
	})

	t.Run("rejects unknown keys with a bad request", func(t *testing.T) {
		_, err := dto.NewFilter(map[string]string{
			"type":    "DELUXE",
			"colour":  "blue",
			"balcony": "yes",
		})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		// Unknown keys are reported sorted so the message is stable.
		assert.Contains(t, err.Error(), "balcony, colour")
	})

	t.Run("empty input yields a zero filter", func(t *testing.T) {
		filter, err := dto.NewFilter(nil)

		require.NoError(t, err)
		assert.True(t, filter.IsZero())
		assert.Empty(t, filter.CacheKey())
	})
}

func TestFilterFromQuery(t *testing.T) {
	query := url.Values{}
	query.Set("status", "AVAILABLE")
	query.Set("page", "2")

	filter := dto.FilterFromQuery(query)

	// Pagination params are not filter criteria.
	assert.Equal(t, "AVAILABLE", filter.Values().Get("status"))
	assert.False(t, filter.Values().Has("page"))
}

func TestFilterCacheKey(t *testing.T) {
	a, err := dto.NewFilter(map[string]string{"type": "SUITE", "bedCount": "2"})
	require.NoError(t, err)

	b, err := dto.NewFilter(map[string]string{"bedCount": "2", "type": "SUITE"})
	require.NoError(t, err)

	assert.Equal(t, a.CacheKey(), b.CacheKey())
}
