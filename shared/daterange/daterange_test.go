package daterange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/daterange"
	"frontdesk/shared/timezone"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, timezone.GetLocation())
}

func TestNormalize(t *testing.T) {
	noon := time.Date(2024, time.June, 1, 12, 30, 45, 0, timezone.GetLocation())
	normalized := daterange.Normalize(noon)

	assert.Equal(t, 0, normalized.Hour())
	assert.Equal(t, 0, normalized.Minute())
	assert.Equal(t, 0, normalized.Second())
	assert.True(t, daterange.SameDay(noon, normalized))
}

func TestDaysInRange(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		wantLen  int
		wantErr  error
		wantLast time.Time
	}{
		{
			name:     "three day range excludes end",
			start:    date(2024, time.June, 1),
			end:      date(2024, time.June, 4),
			wantLen:  3,
			wantLast: date(2024, time.June, 3),
		},
		{
			name:     "single day range",
			start:    date(2024, time.June, 1),
			end:      date(2024, time.June, 2),
			wantLen:  1,
			wantLast: date(2024, time.June, 1),
		},
		{
			name:     "range across month boundary",
			start:    date(2024, time.January, 31),
			end:      date(2024, time.February, 2),
			wantLen:  2,
			wantLast: date(2024, time.February, 1),
		},
		{
			name:    "start equals end",
			start:   date(2024, time.June, 1),
			end:     date(2024, time.June, 1),
			wantErr: daterange.ErrInvalidRange,
		},
		{
			name:    "start after end",
			start:   date(2024, time.June, 4),
			end:     date(2024, time.June, 1),
			wantErr: daterange.ErrInvalidRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := daterange.DaysInRange(tt.start, tt.end)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, days)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, days, tt.wantLen)
			assert.True(t, days[0].Equal(daterange.Normalize(tt.start)))
			assert.True(t, days[len(days)-1].Equal(tt.wantLast))
		})
	}
}

func TestOverlaps_InclusiveEdges(t *testing.T) {
	monthStart, monthEnd := daterange.MonthBounds(2024, time.February)

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{
			name:     "entirely inside month",
			checkIn:  date(2024, time.February, 10),
			checkOut: date(2024, time.February, 14),
			want:     true,
		},
		{
			name:     "spans into month from january",
			checkIn:  date(2024, time.January, 31),
			checkOut: date(2024, time.February, 2),
			want:     true,
		},
		{
			name:     "checkout lands exactly on month start",
			checkIn:  date(2024, time.January, 28),
			checkOut: date(2024, time.February, 1),
			want:     true,
		},
		{
			name:     "checkin lands exactly on month end",
			checkIn:  date(2024, time.February, 29),
			checkOut: date(2024, time.March, 3),
			want:     true,
		},
		{
			name:     "entirely before month",
			checkIn:  date(2024, time.January, 10),
			checkOut: date(2024, time.January, 20),
			want:     false,
		},
		{
			name:     "entirely after month",
			checkIn:  date(2024, time.March, 2),
			checkOut: date(2024, time.March, 5),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := daterange.Overlaps(tt.checkIn, tt.checkOut, monthStart, monthEnd)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCovers_HalfOpen(t *testing.T) {
	checkIn := date(2024, time.June, 1)
	checkOut := date(2024, time.June, 4)

	assert.False(t, daterange.Covers(date(2024, time.May, 31), checkIn, checkOut))
	assert.True(t, daterange.Covers(date(2024, time.June, 1), checkIn, checkOut))
	assert.True(t, daterange.Covers(date(2024, time.June, 2), checkIn, checkOut))
	assert.True(t, daterange.Covers(date(2024, time.June, 3), checkIn, checkOut))
	// The checkout day itself is free.
	assert.False(t, daterange.Covers(date(2024, time.June, 4), checkIn, checkOut))
	assert.False(t, daterange.Covers(date(2024, time.June, 5), checkIn, checkOut))
}

func TestCovers_IgnoresTimeOfDay(t *testing.T) {
	checkIn := time.Date(2024, time.June, 1, 14, 0, 0, 0, timezone.GetLocation())
	checkOut := time.Date(2024, time.June, 4, 11, 0, 0, 0, timezone.GetLocation())
	lateEvening := time.Date(2024, time.June, 3, 23, 59, 0, 0, timezone.GetLocation())

	assert.True(t, daterange.Covers(lateEvening, checkIn, checkOut))
}

func TestDurationDays(t *testing.T) {
	assert.Equal(t, 1, daterange.DurationDays(date(2024, time.June, 1), date(2024, time.June, 2)))
	assert.Equal(t, 3, daterange.DurationDays(date(2024, time.June, 1), date(2024, time.June, 4)))
	assert.Equal(t, 31, daterange.DurationDays(date(2024, time.January, 1), date(2024, time.February, 1)))
}

func TestDurationDays_RoundTripsWithAddDays(t *testing.T) {
	checkIn := date(2024, time.June, 1)
	checkOut := date(2024, time.June, 4)

	duration := daterange.DurationDays(checkIn, checkOut)
	rebuilt := daterange.AddDays(checkIn, duration)

	assert.True(t, rebuilt.Equal(daterange.Normalize(checkOut)))
}

func TestMonthBounds(t *testing.T) {
	first, last := daterange.MonthBounds(2024, time.February)

	assert.True(t, first.Equal(date(2024, time.February, 1)))
	assert.True(t, last.Equal(date(2024, time.February, 29)))

	first, last = daterange.MonthBounds(2023, time.February)
	assert.True(t, first.Equal(date(2023, time.February, 1)))
	assert.True(t, last.Equal(date(2023, time.February, 28)))
}

func TestStartOfWeek(t *testing.T) {
	// 2024-06-05 is a Wednesday; the week starts on Sunday 2024-06-02.
	assert.True(t, daterange.StartOfWeek(date(2024, time.June, 5)).Equal(date(2024, time.June, 2)))
	// A Sunday is its own week start.
	assert.True(t, daterange.StartOfWeek(date(2024, time.June, 2)).Equal(date(2024, time.June, 2)))
}
