package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/shared/timezone"
)

func TestNowAndLocationAgree(t *testing.T) {
	loc := timezone.GetLocation()

	require.NotNil(t, loc)
	assert.Equal(t, loc, timezone.Now().Location())
}

func TestToAppTime(t *testing.T) {
	utc := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)
	local := timezone.ToAppTime(utc)

	assert.Equal(t, timezone.GetLocation(), local.Location())
	assert.True(t, utc.Equal(local))
}

func TestParseAndFormatRoundTrip(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-06-10")

	require.NoError(t, err)
	assert.Equal(t, timezone.GetLocation(), parsed.Location())
	assert.Equal(t, "2024-06-10", timezone.Format(parsed, "2006-01-02"))

	_, err = timezone.Parse("2006-01-02", "June 10th")
	assert.Error(t, err)
}
