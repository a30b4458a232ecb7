package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"cyclebook/config"
	"cyclebook/infras/otel"
	"cyclebook/infras/s3"
	"cyclebook/internal/domains/booking/model"
	"cyclebook/internal/domains/booking/model/dto"
	"cyclebook/internal/domains/booking/repository"
	historyModel "cyclebook/internal/domains/history/model"
	historyRepo "cyclebook/internal/domains/history/repository"
	historyService "cyclebook/internal/domains/history/service"
	notificationModel "cyclebook/internal/domains/notification/model"
	notificationService "cyclebook/internal/domains/notification/service"
	"cyclebook/shared"
	"cyclebook/shared/cache"
	"cyclebook/shared/constant"
	gDto "cyclebook/shared/dto"
	"cyclebook/shared/failure"
	"cyclebook/shared/lock"
	gRepo "cyclebook/shared/repository"
	"cyclebook/shared/timezone"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheAvailability = "availability"
	receiptDirectory  = "receipts"
	defaultLockTTL    = 5 * time.Second

	msgPlaceRequired    = "Place is required"
	msgUnknownCycle     = "Unknown cycle %s"
	msgCycleInUse       = "Cycle %s at %s is currently in use"
	msgCycleBeingBooked = "Cycle %s at %s is being booked by someone else, please retry"
	msgBooked           = "Cycle booked successfully"
	msgBookingNotFound  = "Booking not found"
	msgInvalidCode      = "Invalid booking or code"
	msgAlreadyStarted   = "Ride already started"
	msgNotStarted       = "Invalid or not started booking"
	msgAlreadyStopped   = "Ride already stopped"
	msgRideStopped      = "Ride stopped"
)

var errLostRace = errors.New("booking changed concurrently")

// CodeGenerator produces verification codes for new bookings.
type CodeGenerator interface {
	Generate() (string, error)
}

type Booking interface {
	Availability(ctx context.Context, place string) ([]dto.CycleAvailability, error)
	Create(ctx context.Context, accountID string, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	ListActive(ctx context.Context) ([]dto.ActiveBookingResponse, error)
	StartRide(ctx context.Context, req dto.StartRideRequest) error
	StopRide(ctx context.Context, req dto.StopRideRequest) (dto.StopRideResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	historyRepo historyRepo.RideHistory
	cfg         *config.Config
	cache       cache.RedisCache
	locker      lock.Locker
	notifier    notificationService.Notifier
	storage     s3.S3
	codes       CodeGenerator
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	historyRepo historyRepo.RideHistory,
	cfg *config.Config,
	cache cache.RedisCache,
	locker lock.Locker,
	notifier notificationService.Notifier,
	storage s3.S3,
	codes CodeGenerator,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		historyRepo: historyRepo,
		cfg:         cfg,
		cache:       cache,
		locker:      locker,
		notifier:    notifier,
		storage:     storage,
		codes:       codes,
		otel:        otel,
	}
}

// Availability lists every configured cycle at place. A cycle is unavailable while a ride on it is in progress.
func (s *serviceImpl) Availability(ctx context.Context, place string) (res []dto.CycleAvailability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	place = strings.TrimSpace(place)
	if place == "" {
		return nil, failure.BadRequestFromString(msgPlaceRequired)
	}

	cacheKey, keyErr := shared.VersionedKey(ctx, s.cache, availabilityNamespace(place))
	if keyErr != nil {
		log.Warn().Err(keyErr).Str("place", place).Msg("availability cache unavailable")
	} else if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	active, err := s.repo.GetAll(ctx, gDto.QueryParams{}, repository.ActiveAt(place), model.FieldCycle)
	if err != nil {
		log.Error().Err(err).Str("place", place).Msg("failed to get active bookings")

		return nil, fmt.Errorf("failed to get active bookings: %w", err)
	}

	inUse := make(map[string]struct{}, len(active))
	for _, b := range active {
		inUse[b.Cycle] = struct{}{}
	}

	res = make([]dto.CycleAvailability, 0, len(s.cfg.Booking.Cycles))
	for _, cycle := range s.cfg.Booking.Cycles {
		_, busy := inUse[cycle]
		res = append(res, dto.CycleAvailability{Cycle: cycle, Available: !busy})
	}

	if keyErr != nil {
		return res, nil
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Warn().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

// Create books a cycle for a rider. The check for an active ride and the insert run under a per-cycle lock.
func (s *serviceImpl) Create(ctx context.Context, accountID string, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if !slices.Contains(s.cfg.Booking.Cycles, req.Cycle) {
		return res, failure.BadRequestFromString(fmt.Sprintf(msgUnknownCycle, req.Cycle))
	}

	token, err := s.locker.Acquire(ctx, req.Place, req.Cycle, s.lockTTL())
	if err != nil {
		if errors.Is(err, lock.ErrNotAcquired) {
			return res, failure.Conflict(fmt.Sprintf(msgCycleBeingBooked, req.Cycle, req.Place))
		}

		log.Error().Err(err).Msg("failed to acquire cycle lock")

		return res, fmt.Errorf("failed to acquire cycle lock: %w", err)
	}

	defer func() {
		if err := s.locker.Release(context.WithoutCancel(ctx), req.Place, req.Cycle, token); err != nil {
			log.Warn().Err(err).Str("place", req.Place).Str("cycle", req.Cycle).Msg("failed to release cycle lock")
		}
	}()

	inUse, err := s.repo.Exist(ctx, repository.ActiveOn(req.Place, req.Cycle))
	if err != nil {
		log.Error().Err(err).Msg("failed to check active booking")

		return res, fmt.Errorf("failed to check active booking: %w", err)
	}

	if inUse {
		return res, failure.Conflict(fmt.Sprintf(msgCycleInUse, req.Cycle, req.Place))
	}

	code, err := s.codes.Generate()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate verification code")

		return res, fmt.Errorf("failed to generate verification code: %w", err)
	}

	booking := req.ToModel(accountID, code)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.Booking.FromModel(booking)
	res.VerificationCode = code
	res.Message = msgBooked

	s.notifier.Publish(ctx, notificationModel.TopicNewBooking, booking.ID, res.Booking)

	log.Info().Str("booking_id", booking.ID).Str("place", booking.Place).Str("cycle", booking.Cycle).Msg("cycle booked")

	return res, nil
}

// ListActive returns every booking not yet stopped with its rider's email, oldest first.
func (s *serviceImpl) ListActive(ctx context.Context) (res []dto.ActiveBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListActive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{}.OrderBy(model.TableName+"."+model.FieldCreatedAt, gDto.SortDirAsc)

	models, err := s.repo.GetWithOwner(ctx, params, repository.NotStopped())
	if err != nil {
		log.Error().Err(err).Msg("failed to get active bookings")

		return nil, fmt.Errorf("failed to get active bookings: %w", err)
	}

	return dto.FromActiveModels(models), nil
}

func (s *serviceImpl) StartRide(ctx context.Context, req dto.StartRideRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StartRide")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.find(ctx, req.BookingID)
	if err != nil {
		return err
	}

	if booking.VerificationCode != strings.ToUpper(strings.TrimSpace(req.Code)) {
		return failure.BadRequestFromString(msgInvalidCode)
	}

	if booking.Started {
		return failure.Conflict(msgAlreadyStarted)
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldStarted:    true,
		model.FieldStartTime:  now,
		model.FieldModifiedAt: now,
	}

	affected, err := s.repo.Update(ctx, fields, repository.Pending(booking.ID))
	if err != nil {
		if gRepo.IsUniqueViolation(err) {
			return failure.Conflict(fmt.Sprintf(msgCycleInUse, booking.Cycle, booking.Place))
		}

		log.Error().Err(err).Msg("failed to start ride")

		return fmt.Errorf("failed to start ride: %w", err)
	}

	if affected == 0 {
		return failure.Conflict(msgAlreadyStarted)
	}

	shared.BumpVersion(ctx, s.cache, availabilityNamespace(booking.Place))

	s.notifier.Publish(ctx, notificationModel.TopicRideStarted, booking.ID, dto.RideStartedEvent{
		BookingID: booking.ID,
		StartTime: now,
	})
	s.notifier.Publish(ctx, notificationModel.TopicCycleStatusUpdate, booking.ID, dto.CycleStatusEvent{
		Place:     booking.Place,
		Cycle:     booking.Cycle,
		Available: false,
	})

	log.Info().Str("booking_id", booking.ID).Msg("ride started")

	return nil
}

// StopRide ends a ride. Marking the booking stopped and archiving the ride commit together.
func (s *serviceImpl) StopRide(ctx context.Context, req dto.StopRideRequest) (res dto.StopRideResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".StopRide")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.find(ctx, req.BookingID)
	if err != nil {
		return res, err
	}

	if !booking.Started {
		return res, failure.BadRequestFromString(msgNotStarted)
	}

	if booking.Stopped {
		return res, failure.Conflict(msgAlreadyStopped)
	}

	stopped := booking.Stop(timezone.Now(), strings.TrimSpace(req.DropLocation))

	fields := map[string]any{
		model.FieldStopped:         true,
		model.FieldEndTime:         *stopped.EndTime,
		model.FieldDurationMinutes: *stopped.DurationMinutes,
		model.FieldCost:            *stopped.Cost,
		model.FieldDropLocation:    *stopped.DropLocation,
		model.FieldModifiedAt:      stopped.ModifiedAt,
	}

	entry := historyModel.RideHistory{
		ID:              uuid.NewString(),
		AccountID:       stopped.AccountID,
		BookingID:       stopped.ID,
		DurationMinutes: *stopped.DurationMinutes,
		Cost:            *stopped.Cost,
		DropLocation:    *stopped.DropLocation,
		RecordedAt:      *stopped.EndTime,
	}

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		affected, err := s.repo.UpdateTx(ctx, tx, fields, repository.Riding(stopped.ID))
		if err != nil {
			return err
		}

		if affected == 0 {
			return errLostRace
		}

		return s.historyRepo.InsertTx(ctx, tx, entry)
	})
	if err != nil {
		if errors.Is(err, errLostRace) || gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict(msgAlreadyStopped)
		}

		log.Error().Err(err).Msg("failed to stop ride")

		return res, fmt.Errorf("failed to stop ride: %w", err)
	}

	shared.BumpVersion(ctx, s.cache, availabilityNamespace(stopped.Place), historyService.CacheNamespace(stopped.AccountID))

	s.notifier.Publish(ctx, notificationModel.TopicRideStopped, stopped.ID, dto.RideStoppedEvent{
		BookingID:    stopped.ID,
		Duration:     entry.DurationMinutes,
		Cost:         entry.Cost,
		DropLocation: entry.DropLocation,
	})
	s.notifier.Publish(ctx, notificationModel.TopicCycleStatusUpdate, stopped.ID, dto.CycleStatusEvent{
		Place:     stopped.Place,
		Cycle:     stopped.Cycle,
		Available: true,
	})

	s.archiveReceipt(ctx, stopped)

	log.Info().Str("booking_id", stopped.ID).Int("duration", entry.DurationMinutes).Int("cost", entry.Cost).Msg("ride stopped")

	return dto.StopRideResponse{
		Message:  msgRideStopped,
		Duration: entry.DurationMinutes,
		Cost:     entry.Cost,
	}, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, repository.ByID(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if !booking.Exists() {
		return booking, failure.NotFound(msgBookingNotFound)
	}

	return booking, nil
}

func (s *serviceImpl) lockTTL() time.Duration {
	if s.cfg.Booking.LockTTLSeconds <= 0 {
		return defaultLockTTL
	}

	return time.Duration(s.cfg.Booking.LockTTLSeconds) * time.Second
}

func availabilityNamespace(place string) string {
	return shared.BuildCacheKey(cacheAvailability, place)
}

// archiveReceipt uploads the finished ride to object storage in the background.
func (s *serviceImpl) archiveReceipt(ctx context.Context, booking model.Booking) {
	if !s.storage.Enabled() {
		return
	}

	c := context.WithoutCancel(ctx)

	go func() {
		url, err := s.storage.UploadJSON(c, receiptDirectory+"/"+booking.AccountID, booking.ID+".json", dto.NewReceipt(booking))
		if err != nil {
			log.Warn().Err(err).Str("booking_id", booking.ID).Msg("failed to archive ride receipt")

			return
		}

		log.Debug().Str("booking_id", booking.ID).Str("url", url).Msg("ride receipt archived")
	}()
}
