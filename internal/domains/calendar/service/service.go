package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/calendar/engine"
	"frontdesk/internal/domains/calendar/model/dto"
	roomModel "frontdesk/internal/domains/room/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/daterange"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"
)

const (
	cacheMonthView    = constant.CachePrefixCalendar + ":month"
	cacheScheduleView = constant.CachePrefixCalendar + ":schedule"
)

type moveEvent struct {
	Event     string `json:"event"`
	BookingID int64  `json:"booking_id"`
	RoomID    int64  `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Actor     string `json:"actor,omitempty"`
}

// Calendar serves the two board views and executes drag reschedules.
// Every view is recomputed from fresh upstream reads (behind a short
// cache), and every reschedule is replanned against a fresh booking list
// before the mutation is sent.
type Calendar interface {
	MonthView(ctx context.Context, year int, month time.Month) (dto.MonthViewResponse, error)
	ScheduleView(ctx context.Context, anchor time.Time) (dto.ScheduleViewResponse, error)
	MoveBooking(ctx context.Context, bookingID int64, req dto.MoveBookingRequest) (dto.MoveBookingResponse, error)
}

type serviceImpl struct {
	bookings bookingRepo.Booking
	rooms    roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	events   kafka.Client
	otel     otel.Otel
}

func New(bookings bookingRepo.Booking, rooms roomRepo.Room, cfg *config.Config, cache cache.RedisCache, events kafka.Client, otel otel.Otel) Calendar {
	return &serviceImpl{
		bookings: bookings,
		rooms:    rooms,
		cfg:      cfg,
		cache:    cache,
		events:   events,
		otel:     otel,
	}
}

func (s *serviceImpl) MonthView(ctx context.Context, year int, month time.Month) (res dto.MonthViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MonthView")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithParts(cacheMonthView, strconv.Itoa(year), strconv.Itoa(int(month)))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for month view")

		return res, nil
	}

	bookings, err := s.bookings.List(ctx, bookingRepo.ListFilter{})
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch bookings for month view")

		return res, fmt.Errorf("failed to fetch bookings for month view: %w", err)
	}

	grid, err := engine.BuildMonthGrid(bookings, year, month, bookingModel.Booking.Active)
	if err != nil {
		log.Error().Err(err).Int("year", year).Int("month", int(month)).Msg("failed to build month grid")

		return res, fmt.Errorf("failed to build month grid: %w", err)
	}

	res.FromGrid(grid)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save month view to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ScheduleView(ctx context.Context, anchor time.Time) (res dto.ScheduleViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ScheduleView")
	defer scope.End()
	defer scope.TraceIfError(err)

	anchor = daterange.Normalize(anchor)
	cacheKey := shared.BuildCacheKeyWithParts(cacheScheduleView, timezone.Format(anchor, constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for schedule view")

		return res, nil
	}

	bookings, rooms, err := s.fetchBoard(ctx)
	if err != nil {
		return res, err
	}

	window, err := engine.RollingWindow(anchor, constant.ScheduleViewDays)
	if err != nil {
		return res, fmt.Errorf("failed to build schedule window: %w", err)
	}

	res.FromGrid(engine.BuildRoomGrid(rooms, bookings, window, bookingModel.Booking.Active))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedule view to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) MoveBooking(ctx context.Context, bookingID int64, req dto.MoveBookingRequest) (res dto.MoveBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MoveBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	destDate, err := timezone.Parse(constant.DateOnlyFormat, req.CheckInDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid check-in date: " + req.CheckInDate) //nolint:wrapcheck
	}

	// Plan against a fresh snapshot, never a cached view. The board the
	// operator dragged on may be stale.
	var (
		target   bookingModel.Booking
		bookings []bookingModel.Booking
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		target, err = s.bookings.Get(groupCtx, bookingID)

		return err
	})
	group.Go(func() error {
		var err error
		bookings, err = s.bookings.List(groupCtx, bookingRepo.ListFilter{})

		return err
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Int64("bookingId", bookingID).Msg("failed to fetch bookings for move")

		return res, fmt.Errorf("failed to fetch bookings for move: %w", err)
	}

	plan, err := engine.PlanMove(bookings, target, req.RoomID, destDate, bookingModel.Booking.Active)
	if err != nil {
		var conflict *engine.ConflictError
		if errors.As(err, &conflict) {
			log.Warn().
				Int64("bookingId", bookingID).
				Int64("roomId", conflict.RoomID).
				Ints64("blocking", conflict.BlockingIDs).
				Msg("reschedule rejected: destination occupied")

			return res, failure.Conflict(conflict.Error()) //nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to plan move for booking %d: %w", bookingID, err)
	}

	res.FromPlan(plan)

	if plan.NoChange {
		log.Info().Int64("bookingId", bookingID).Msg("move is a no-op, skipping mutation")

		return res, nil
	}

	checkIn := timezone.Format(plan.CheckInDate, constant.DateOnlyFormat)
	checkOut := timezone.Format(plan.CheckOutDate, constant.DateOnlyFormat)

	patch := bookingModel.Patch{
		RoomID:       &plan.RoomID,
		CheckInDate:  &checkIn,
		CheckOutDate: &checkOut,
	}

	if err = s.bookings.Update(ctx, bookingID, patch); err != nil {
		log.Error().Err(err).Int64("bookingId", bookingID).Msg("upstream rejected booking move")

		// Derived views may already disagree with upstream. Drop them so
		// the next read refetches the authoritative state.
		s.invalidateViews(ctx)

		return res, fmt.Errorf("failed to move booking %d: %w", bookingID, err)
	}

	s.afterMove(ctx, plan)

	return res, nil
}

// fetchBoard loads the bookings and rooms that make up the scheduling
// board, with rooms in numeric room-number order.
func (s *serviceImpl) fetchBoard(ctx context.Context) ([]bookingModel.Booking, []roomModel.Room, error) {
	var (
		bookings []bookingModel.Booking
		rooms    []roomModel.Room
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		bookings, err = s.bookings.List(groupCtx, bookingRepo.ListFilter{})

		return err
	})
	group.Go(func() error {
		var err error
		rooms, err = s.rooms.List(groupCtx, roomDto.Filter{})

		return err
	})

	if err := group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to fetch schedule board")

		return nil, nil, fmt.Errorf("failed to fetch schedule board: %w", err)
	}

	sort.SliceStable(rooms, func(i, j int) bool {
		return lessRoomNumber(rooms[i].RoomNumber, rooms[j].RoomNumber)
	})

	return bookings, rooms, nil
}

// lessRoomNumber orders numerically when both numbers parse, so room 9
// sorts before room 104. Non-numeric labels fall back to string order.
func lessRoomNumber(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)

	if errA == nil && errB == nil {
		return na < nb
	}

	return a < b
}

func (s *serviceImpl) afterMove(ctx context.Context, plan engine.MovePlan) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateViews(c)

		message := kafka.Message{
			Key: uuid.NewString(),
			Value: moveEvent{
				Event:     constant.EventBookingMoved,
				BookingID: plan.BookingID,
				RoomID:    plan.RoomID,
				CheckIn:   timezone.Format(plan.CheckInDate, constant.DateOnlyFormat),
				CheckOut:  timezone.Format(plan.CheckOutDate, constant.DateOnlyFormat),
				Actor:     user,
			},
		}

		if err := s.events.SendMessages(c, s.cfg.Kafka.Topics.BookingActivity, message); err != nil {
			log.Error().Err(err).Int64("bookingId", plan.BookingID).Msg("failed to publish booking moved event")
		}
	}()
}

func (s *serviceImpl) invalidateViews(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixCalendar)
	shared.InvalidateCaches(ctx, s.cache, "booking")
}
