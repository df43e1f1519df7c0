package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	kafkaMocks "frontdesk/infras/kafka/mocks"
	"frontdesk/infras/otel/mocks"
	bookingMocks "frontdesk/internal/domains/booking/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/booking/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	"frontdesk/shared/constant"
	"frontdesk/shared/daterange"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

var errCacheMiss = errors.New("cache miss")

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache, *kafkaMocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockEvents := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.BookingActivity = "frontdesk.booking.activity"

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockEvents.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockEvents, mockOtel)

	return svc, mockRepo, mockCache, mockEvents
}

func TestBookingService_GetAll(t *testing.T) {
	today := daterange.Normalize(timezone.Now())

	t.Run("returns bookings from the repository on cache miss", func(t *testing.T) {
		svc, mockRepo, mockCache, _ := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockRepo.EXPECT().
			List(gomock.Any(), repository.ListFilter{GuestID: "g-1"}).
			Return([]model.Booking{
				{
					ID:           1,
					RoomID:       101,
					GuestID:      "g-1",
					CheckInDate:  today,
					CheckOutDate: daterange.AddDays(today, 2),
					Status:       constant.BookingStatusConfirmed,
				},
			}, nil)

		res, err := svc.GetAll(context.Background(), repository.ListFilter{GuestID: "g-1"})

		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		require.Len(t, res.Bookings, 1)
		assert.Equal(t, 2, res.Bookings[0].Nights)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		svc, mockRepo, mockCache, _ := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockRepo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("booking service unreachable"))

		_, err := svc.GetAll(context.Background(), repository.ListFilter{})

		assert.Error(t, err)
	})
}

func TestBookingService_Update(t *testing.T) {
	t.Run("empty update is rejected before reaching upstream", func(t *testing.T) {
		svc, _, _, _ := newService(t)

		err := svc.Update(context.Background(), 1, dto.UpdateBookingRequest{})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("patch is forwarded to the repository", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		status := constant.BookingStatusCheckedIn

		mockRepo.EXPECT().
			Update(gomock.Any(), int64(1), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, patch model.Patch) error {
				require.NotNil(t, patch.Status)
				assert.Equal(t, constant.BookingStatusCheckedIn, *patch.Status)

				return nil
			})

		err := svc.Update(context.Background(), 1, dto.UpdateBookingRequest{Status: &status})

		assert.NoError(t, err)
	})

	t.Run("upstream rejection keeps the status code", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		status := constant.BookingStatusCancelled

		mockRepo.EXPECT().
			Update(gomock.Any(), int64(1), gomock.Any()).
			Return(failure.Upstream(http.StatusConflict, "booking already checked in"))

		err := svc.Update(context.Background(), 1, dto.UpdateBookingRequest{Status: &status})

		require.Error(t, err)
		assert.True(t, failure.IsConflict(err))
	})
}

func TestBookingService_Create(t *testing.T) {
	req := dto.CreateBookingRequest{
		GuestID:      "g-1",
		RoomID:       101,
		CheckInDate:  "2024-06-10",
		CheckOutDate: "2024-06-13",
	}

	t.Run("returns the new booking id", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().Create(gomock.Any(), req).Return(int64(42), nil)

		id, err := svc.Create(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("propagates creation failures", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().Create(gomock.Any(), req).Return(int64(0), errors.New("room not available"))

		_, err := svc.Create(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestBookingService_Delete(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	mockRepo.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)

	err := svc.Delete(context.Background(), 7)

	assert.NoError(t, err)
}
