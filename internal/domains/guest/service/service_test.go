package service_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	guestMocks "frontdesk/internal/domains/guest/mocks"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/internal/domains/guest/service"
	cacheMocks "frontdesk/shared/cache/mocks"
	gDto "frontdesk/shared/dto"
)

var errCacheMiss = errors.New("cache miss")

func newService(t *testing.T) (service.Guest, *guestMocks.MockGuest, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func directory(n int) []model.Guest {
	guests := make([]model.Guest, n)
	for i := range guests {
		guests[i] = model.Guest{
			ID:   strconv.Itoa(i + 1),
			Name: "Guest " + strconv.Itoa(i+1),
		}
	}

	return guests
}

func TestGuestService_GetAll(t *testing.T) {
	t.Run("pages the directory locally", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockRepo.EXPECT().List(gomock.Any()).Return(directory(25), nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 2, Limit: 10})

		require.NoError(t, err)
		assert.Equal(t, 25, res.TotalData)
		assert.Equal(t, 3, res.TotalPage)
		assert.Equal(t, 2, res.Page)
		require.Len(t, res.Guests, 10)
		assert.Equal(t, "11", res.Guests[0].ID)
	})

	t.Run("last page may be short", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockRepo.EXPECT().List(gomock.Any()).Return(directory(25), nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 3, Limit: 10})

		require.NoError(t, err)
		require.Len(t, res.Guests, 5)
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockRepo.EXPECT().List(gomock.Any()).Return(directory(5), nil)

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 4, Limit: 10})

		require.NoError(t, err)
		assert.Empty(t, res.Guests)
		assert.Equal(t, 5, res.TotalData)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("user service unreachable"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})

		assert.Error(t, err)
	})
}

func TestGuestService_Get(t *testing.T) {
	svc, mockRepo, _ := newService(t)

	mockRepo.EXPECT().
		Get(gomock.Any(), "g-1").
		Return(model.Guest{ID: "g-1", Name: "Alice", Email: "alice@example.com"}, nil)

	res, err := svc.Get(context.Background(), "g-1")

	require.NoError(t, err)
	assert.Equal(t, "Alice", res.Name)
}
