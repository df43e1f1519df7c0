package repository_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"frontdesk/infras/upstream"
	"frontdesk/infras/upstream/mocks"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	"frontdesk/shared/failure"
)

func newRepository(t *testing.T) (repository.Booking, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := mocks.NewMockClient(ctrl)

	return repository.New(client), client
}

func TestList(t *testing.T) {
	t.Run("decodes payloads and applies the guest filter", func(t *testing.T) {
		repo, client := newRepository(t)

		wantQuery := url.Values{}
		wantQuery.Set("guestId", "g-7")

		client.EXPECT().
			Get(gomock.Any(), upstream.ServiceBooking, "/bookings", wantQuery, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ upstream.Service, _ string, _ url.Values, out any) error {
				payloads := out.(*[]dto.Payload)
				*payloads = []dto.Payload{
					{
						ID:           3,
						RoomID:       101,
						GuestID:      "g-7",
						CheckInDate:  "2024-06-10",
						CheckOutDate: "2024-06-13",
						Status:       "CONFIRMED",
					},
				}

				return nil
			})

		bookings, err := repo.List(context.Background(), repository.ListFilter{GuestID: "g-7"})

		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, int64(3), bookings[0].ID)
		assert.Equal(t, 3, bookings[0].Nights())
	})

	t.Run("rejects a payload with an unparseable date", func(t *testing.T) {
		repo, client := newRepository(t)

		client.EXPECT().
			Get(gomock.Any(), upstream.ServiceBooking, "/bookings", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ upstream.Service, _ string, _ url.Values, out any) error {
				payloads := out.(*[]dto.Payload)
				*payloads = []dto.Payload{{ID: 9, CheckInDate: "not-a-date", CheckOutDate: "2024-06-13"}}

				return nil
			})

		_, err := repo.List(context.Background(), repository.ListFilter{})

		assert.Error(t, err)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("sends the patch to the booking path", func(t *testing.T) {
		repo, client := newRepository(t)

		status := "CHECKED_IN"
		patch := model.Patch{Status: &status}

		client.EXPECT().
			Put(gomock.Any(), upstream.ServiceBooking, "/bookings/12", patch).
			Return(nil)

		err := repo.Update(context.Background(), 12, patch)

		assert.NoError(t, err)
	})

	t.Run("keeps the upstream status code on failure", func(t *testing.T) {
		repo, client := newRepository(t)

		client.EXPECT().
			Put(gomock.Any(), upstream.ServiceBooking, "/bookings/12", gomock.Any()).
			Return(failure.Upstream(409, "booking already checked in"))

		err := repo.Update(context.Background(), 12, model.Patch{})

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestCreateInvoice(t *testing.T) {
	repo, client := newRepository(t)

	client.EXPECT().
		Post(gomock.Any(), upstream.ServiceBooking, "/invoices", dto.CreateInvoiceRequest{BookingID: 12}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ upstream.Service, _ string, _ any, out any) error {
			*out.(*int64) = 55

			return nil
		})

	id, err := repo.CreateInvoice(context.Background(), 12)

	require.NoError(t, err)
	assert.Equal(t, int64(55), id)
}
