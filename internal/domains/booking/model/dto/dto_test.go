package dto_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/shared/failure"
)

func TestPayloadToModel(t *testing.T) {
	t.Run("plain calendar dates", func(t *testing.T) {
		payload := dto.Payload{
			ID:           1,
			RoomID:       101,
			GuestID:      "g-1",
			CheckInDate:  "2024-06-10",
			CheckOutDate: "2024-06-13",
			Status:       "CONFIRMED",
		}

		booking, err := payload.ToModel()

		require.NoError(t, err)
		assert.Equal(t, 3, booking.Nights())
		assert.Equal(t, 10, booking.CheckInDate.Day())
	})

	t.Run("full timestamps are normalized to midnight", func(t *testing.T) {
		payload := dto.Payload{
			ID:           1,
			RoomID:       101,
			CheckInDate:  "2024-06-10T15:04:05Z",
			CheckOutDate: "2024-06-13T09:30:00Z",
		}

		booking, err := payload.ToModel()

		require.NoError(t, err)
		assert.Equal(t, 0, booking.CheckInDate.Hour())
		assert.Equal(t, 3, booking.Nights())
	})

	t.Run("check-in on or after check-out is rejected", func(t *testing.T) {
		payload := dto.Payload{
			ID:           1,
			CheckInDate:  "2024-06-13",
			CheckOutDate: "2024-06-13",
		}

		_, err := payload.ToModel()

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("garbage dates are rejected", func(t *testing.T) {
		payload := dto.Payload{
			ID:           1,
			CheckInDate:  "June 10th",
			CheckOutDate: "2024-06-13",
		}

		_, err := payload.ToModel()

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
