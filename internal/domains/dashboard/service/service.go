package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"frontdesk/config"
	"frontdesk/infras/otel"
	bookingModel "frontdesk/internal/domains/booking/model"
	bookingRepo "frontdesk/internal/domains/booking/repository"
	"frontdesk/internal/domains/dashboard/model/dto"
	guestModel "frontdesk/internal/domains/guest/model"
	guestRepo "frontdesk/internal/domains/guest/repository"
	roomModel "frontdesk/internal/domains/room/model"
	roomDto "frontdesk/internal/domains/room/model/dto"
	roomRepo "frontdesk/internal/domains/room/repository"
	"frontdesk/shared"
	"frontdesk/shared/cache"
	"frontdesk/shared/constant"
	"frontdesk/shared/daterange"
	"frontdesk/shared/timezone"
)

const (
	cacheSummary = "dashboard:summary"

	recentActivityLimit = 5
	forecastDays        = 7
)

// Dashboard aggregates the day's operational picture from the three
// upstream services.
type Dashboard interface {
	Summary(ctx context.Context) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	bookings bookingRepo.Booking
	rooms    roomRepo.Room
	guests   guestRepo.Guest
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(bookings bookingRepo.Booking, rooms roomRepo.Room, guests guestRepo.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		bookings: bookings,
		rooms:    rooms,
		guests:   guests,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DashboardSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheSummary, timezone.Format(timezone.Now(), constant.DateOnlyFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard summary")

		return res, nil
	}

	var (
		bookings []bookingModel.Booking
		rooms    []roomModel.Room
		guests   []guestModel.Guest
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
	group.Go(func() error {
		var err error
		guests, err = s.guests.List(groupCtx)

		return err
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to fetch dashboard inputs")

		return res, fmt.Errorf("failed to fetch dashboard inputs: %w", err)
	}

	res = summarize(bookings, rooms, guests, daterange.Normalize(timezone.Now()))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard summary to cache")
		}
	}()

	return res, nil
}

// summarize folds the three upstream datasets into the dashboard
// counters. Pure so the aggregation is testable without mocks.
func summarize(bookings []bookingModel.Booking, rooms []roomModel.Room, guests []guestModel.Guest, today time.Time) dto.SummaryResponse {
	res := dto.SummaryResponse{
		TotalGuests:       len(guests),
		TotalReservations: len(bookings),
	}

	guestNames := make(map[string]string, len(guests))
	for _, guest := range guests {
		guestNames[guest.ID] = guest.Name
	}

	roomNumbers := make(map[int64]string, len(rooms))
	for _, room := range rooms {
		roomNumbers[room.ID] = room.RoomNumber
	}

	reserved := map[string]struct{}{}

	for _, booking := range bookings {
		switch booking.Status {
		case constant.BookingStatusCompleted, constant.BookingStatusCheckedOut:
			res.CompletedReservations++
		}

		// A guest counts as reserved while any active stay has not ended.
		if booking.Active() && booking.CheckOutDate.After(today) {
			reserved[booking.GuestID] = struct{}{}
		}

		if booking.Active() && daterange.SameDay(booking.CheckInDate, today) {
			res.TodaysArrivals = append(res.TodaysArrivals, dto.ArrivalResponse{
				BookingID:  booking.ID,
				GuestID:    booking.GuestID,
				GuestName:  guestNames[booking.GuestID],
				RoomID:     booking.RoomID,
				RoomNumber: roomNumbers[booking.RoomID],
				Nights:     booking.Nights(),
				Status:     booking.Status,
			})
		}
	}

	res.ReservedGuests = len(reserved)
	res.RecentActivity = recentActivity(bookings)
	res.Forecast = forecast(bookings, len(rooms), today)

	return res
}

func recentActivity(bookings []bookingModel.Booking) []dto.ActivityResponse {
	recent := make([]bookingModel.Booking, len(bookings))
	copy(recent, bookings)

	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})

	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}

	activity := make([]dto.ActivityResponse, len(recent))
	for i, booking := range recent {
		activity[i] = dto.ActivityResponse{
			BookingID:    booking.ID,
			GuestID:      booking.GuestID,
			CheckInDate:  timezone.Format(booking.CheckInDate, constant.DateOnlyFormat),
			CheckOutDate: timezone.Format(booking.CheckOutDate, constant.DateOnlyFormat),
			Status:       booking.Status,
			CreatedAt:    timezone.Format(booking.CreatedAt, constant.DateFormat),
		}
	}

	return activity
}

func forecast(bookings []bookingModel.Booking, totalRooms int, today time.Time) []dto.ForecastDayResponse {
	days := make([]dto.ForecastDayResponse, forecastDays)

	for i := range days {
		day := daterange.AddDays(today, i)

		occupied := map[int64]struct{}{}
		for _, booking := range bookings {
			if booking.Active() && daterange.Covers(day, booking.CheckInDate, booking.CheckOutDate) {
				occupied[booking.RoomID] = struct{}{}
			}
		}

		rate := 0.0
		if totalRooms > 0 {
			rate = float64(len(occupied)) / float64(totalRooms)
		}

		days[i] = dto.ForecastDayResponse{
			Date:          timezone.Format(day, constant.DateOnlyFormat),
			OccupiedRooms: len(occupied),
			TotalRooms:    totalRooms,
			OccupancyRate: rate,
		}
	}

	return days
}
