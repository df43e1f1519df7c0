package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/url"

	"frontdesk/infras/upstream"
	"frontdesk/internal/domains/booking/model"
	"frontdesk/internal/domains/booking/model/dto"
)

// ListFilter scopes a booking list read. Zero value means unfiltered.
type ListFilter struct {
	GuestID string
}

// Booking is the read (source) and write (mutator) adapter over the
// upstream booking-service. Update failures come back as distinguishable
// errors carrying the upstream status code, never as silent faults.
type Booking interface {
	List(ctx context.Context, filter ListFilter) ([]model.Booking, error)
	Get(ctx context.Context, id int64) (model.Booking, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (int64, error)
	Update(ctx context.Context, id int64, patch model.Patch) error
	Delete(ctx context.Context, id int64) error
	ListInvoices(ctx context.Context) ([]dto.InvoiceResponse, error)
	CreateInvoice(ctx context.Context, bookingID int64) (int64, error)
}

type repositoryImpl struct {
	client upstream.Client
}

func New(client upstream.Client) Booking {
	return &repositoryImpl{
		client: client,
	}
}

func (repo *repositoryImpl) List(ctx context.Context, filter ListFilter) ([]model.Booking, error) {
	query := url.Values{}
	if filter.GuestID != "" {
		query.Set("guestId", filter.GuestID)
	}

	var payloads []dto.Payload

	if err := repo.client.Get(ctx, upstream.ServiceBooking, "/bookings", query, &payloads); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings := make([]model.Booking, 0, len(payloads))

	for i := range payloads {
		booking, err := payloads[i].ToModel()
		if err != nil {
			return nil, fmt.Errorf("failed to parse booking %d: %w", payloads[i].ID, err)
		}

		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id int64) (model.Booking, error) {
	var payload dto.Payload

	if err := repo.client.Get(ctx, upstream.ServiceBooking, fmt.Sprintf("/bookings/%d", id), nil, &payload); err != nil {
		return model.Booking{}, fmt.Errorf("failed to get booking %d: %w", id, err)
	}

	booking, err := payload.ToModel()
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to parse booking %d: %w", id, err)
	}

	return booking, nil
}

func (repo *repositoryImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (int64, error) {
	var id int64

	if err := repo.client.Post(ctx, upstream.ServiceBooking, "/bookings", req, &id); err != nil {
		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	return id, nil
}

func (repo *repositoryImpl) Update(ctx context.Context, id int64, patch model.Patch) error {
	if err := repo.client.Put(ctx, upstream.ServiceBooking, fmt.Sprintf("/bookings/%d", id), patch); err != nil {
		return fmt.Errorf("failed to update booking %d: %w", id, err)
	}

	return nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, id int64) error {
	if err := repo.client.Delete(ctx, upstream.ServiceBooking, fmt.Sprintf("/bookings/%d", id)); err != nil {
		return fmt.Errorf("failed to delete booking %d: %w", id, err)
	}

	return nil
}

func (repo *repositoryImpl) ListInvoices(ctx context.Context) ([]dto.InvoiceResponse, error) {
	var invoices []dto.InvoiceResponse

	if err := repo.client.Get(ctx, upstream.ServiceBooking, "/invoices", nil, &invoices); err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return invoices, nil
}

func (repo *repositoryImpl) CreateInvoice(ctx context.Context, bookingID int64) (int64, error) {
	var id int64

	req := dto.CreateInvoiceRequest{BookingID: bookingID}

	if err := repo.client.Post(ctx, upstream.ServiceBooking, "/invoices", req, &id); err != nil {
		return 0, fmt.Errorf("failed to create invoice: %w", err)
	}

	return id, nil
}
