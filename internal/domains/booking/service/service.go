package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/booking/model/dto"
	"frontdesk/internal/domains/booking/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
)

const (
	cacheGetBooking  = "booking:get"
	cacheGetBookings = "booking:gets"
)

type activityEvent struct {
	Event     string `json:"event"`
	BookingID int64  `json:"booking_id"`
	Actor     string `json:"actor,omitempty"`
}

type Booking interface {
	GetAll(ctx context.Context, filter repository.ListFilter) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (int64, error)
	Update(ctx context.Context, id int64, req dto.UpdateBookingRequest) error
	Delete(ctx context.Context, id int64) error
	ListInvoices(ctx context.Context) ([]dto.InvoiceResponse, error)
	CreateInvoice(ctx context.Context, bookingID int64) (int64, error)
}

type serviceImpl struct {
	repo   repository.Booking
	cfg    *config.Config
	cache  cache.RedisCache
	events kafka.Client
	otel   otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, events kafka.Client, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		events: events,
		otel:   otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, filter repository.ListFilter) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithParts(cacheGetBookings, filter.GuestID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	bookings, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, strconv.FormatInt(id, 10))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, err = s.repo.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	s.afterMutation(ctx, constant.EventBookingCreated, id)

	return id, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, id, req.ToPatch()); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	event := constant.EventBookingMoved
	if req.Status != nil && *req.Status == constant.BookingStatusCancelled {
		event = constant.EventBookingCancelled
	}

	s.afterMutation(ctx, event, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.afterMutation(ctx, constant.EventBookingCancelled, id)

	return nil
}

func (s *serviceImpl) ListInvoices(ctx context.Context) (res []dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListInvoices")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.ListInvoices(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list invoices")

		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) CreateInvoice(ctx context.Context, bookingID int64) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateInvoice")
	defer scope.End()
	defer scope.TraceIfError(err)

	id, err = s.repo.CreateInvoice(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Int64("bookingId", bookingID).Msg("failed to create invoice")

		return 0, fmt.Errorf("failed to create invoice: %w", err)
	}

	return id, nil
}

// afterMutation drops every booking-derived cache entry and publishes the
// activity event. Both run off the request context so a disconnecting
// caller cannot leave stale caches behind.
func (s *serviceImpl) afterMutation(ctx context.Context, event string, id int64) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBookings)
		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
		shared.InvalidateCaches(c, s.cache, constant.CachePrefixCalendar)

		message := kafka.Message{
			Key: uuid.NewString(),
			Value: activityEvent{
				Event:     event,
				BookingID: id,
				Actor:     user,
			},
		}

		if err := s.events.SendMessages(c, s.cfg.Kafka.Topics.BookingActivity, message); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish booking activity event")
		}
	}()
}
