package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	bookingModel "frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/dashboard/service"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	guestModel "frontdesk/internal/domains/guest/model"
	roomMocks "frontdesk/internal/domains/room/mocks"
	roomModel "frontdesk/internal/domains/room/model"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/daterange"
	"frontdesk/shared/timezone"
)

var errCacheMiss = errors.New("cache miss")

func newService(t *testing.T) (service.Dashboard, *bookingMocks.MockBooking, *roomMocks.MockRoom, *guestMocks.MockGuest, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockGuests := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockBookings, mockRooms, mockGuests, cfg, mockCache, mockOtel)

	return svc, mockBookings, mockRooms, mockGuests, mockCache
}

func TestDashboardService_Summary(t *testing.T) {
	today := daterange.Normalize(timezone.Now())

	booking := func(id, roomID int64, guestID, status string, checkInOffset, nights int) bookingModel.Booking {
		checkIn := daterange.AddDays(today, checkInOffset)

		return bookingModel.Booking{
			ID:           id,
			RoomID:       roomID,
			GuestID:      guestID,
			CheckInDate:  checkIn,
			CheckOutDate: daterange.AddDays(checkIn, nights),
			Status:       status,
			CreatedAt:    timezone.Now(),
		}
	}

	t.Run("aggregates counters, arrivals and forecast", func(t *testing.T) {
		svc, mockBookings, mockRooms, mockGuests, mockCache := newService(t)

		bookings := []bookingModel.Booking{
			// Arrives today, stays two nights.
			booking(1, 1, "g-1", constant.BookingStatusConfirmed, 0, 2),
			// Finished last week.
			booking(2, 2, "g-2", constant.BookingStatusCheckedOut, -9, 2),
			// Cancelled stay, ignored everywhere except the raw total.
			booking(3, 2, "g-3", constant.BookingStatusCancelled, 0, 2),
			// Arrives in three days.
			booking(4, 3, "g-2", constant.BookingStatusPending, 3, 1),
		}

		rooms := []roomModel.Room{
			{ID: 1, RoomNumber: "101"},
			{ID: 2, RoomNumber: "102"},
			{ID: 3, RoomNumber: "103"},
		}

		guests := []guestModel.Guest{
			{ID: "g-1", Name: "Alice"},
			{ID: "g-2", Name: "Bob"},
			{ID: "g-3", Name: "Carol"},
		}

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockBookings.EXPECT().List(gomock.Any(), gomock.Any()).Return(bookings, nil)
		mockRooms.EXPECT().List(gomock.Any(), gomock.Any()).Return(rooms, nil)
		mockGuests.EXPECT().List(gomock.Any()).Return(guests, nil)

		res, err := svc.Summary(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalGuests)
		assert.Equal(t, 4, res.TotalReservations)
		assert.Equal(t, 1, res.CompletedReservations)
		// g-1 staying now, g-2 arriving in three days.
		assert.Equal(t, 2, res.ReservedGuests)

		require.Len(t, res.TodaysArrivals, 1)
		assert.Equal(t, int64(1), res.TodaysArrivals[0].BookingID)
		assert.Equal(t, "Alice", res.TodaysArrivals[0].GuestName)
		assert.Equal(t, "101", res.TodaysArrivals[0].RoomNumber)

		assert.Len(t, res.RecentActivity, 4)

		require.Len(t, res.Forecast, 7)
		// Today: booking 1 holds room 1.
		assert.Equal(t, 1, res.Forecast[0].OccupiedRooms)
		assert.InDelta(t, 1.0/3.0, res.Forecast[0].OccupancyRate, 1e-9)
		// Day 3: booking 4 holds room 3; booking 1 checked out day 2.
		assert.Equal(t, 1, res.Forecast[3].OccupiedRooms)
		// Day 5: nothing left.
		assert.Equal(t, 0, res.Forecast[5].OccupiedRooms)
	})

	t.Run("recent activity keeps the five newest bookings", func(t *testing.T) {
		svc, mockBookings, mockRooms, mockGuests, mockCache := newService(t)

		bookings := make([]bookingModel.Booking, 0, 8)
		for i := int64(1); i <= 8; i++ {
			b := booking(i, i, "g-1", constant.BookingStatusConfirmed, int(i), 1)
			b.CreatedAt = daterange.AddDays(today, -int(i))
			bookings = append(bookings, b)
		}

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockBookings.EXPECT().List(gomock.Any(), gomock.Any()).Return(bookings, nil)
		mockRooms.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)
		mockGuests.EXPECT().List(gomock.Any()).Return(nil, nil)

		res, err := svc.Summary(context.Background())

		require.NoError(t, err)
		require.Len(t, res.RecentActivity, 5)
		// Newest first.
		assert.Equal(t, int64(1), res.RecentActivity[0].BookingID)
		assert.Equal(t, int64(5), res.RecentActivity[4].BookingID)
	})

	t.Run("fails when any upstream read fails", func(t *testing.T) {
		svc, mockBookings, mockRooms, mockGuests, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockBookings.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).MaxTimes(1)
		mockRooms.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil).MaxTimes(1)
		mockGuests.EXPECT().List(gomock.Any()).Return(nil, errors.New("user service unreachable")).MaxTimes(1)

		_, err := svc.Summary(context.Background())

		assert.Error(t, err)
	})
}
