package booking

import (
	"cyclebook/infras/otel"
	"cyclebook/internal/domains/booking/model/dto"
	"cyclebook/internal/domains/booking/service"
	"cyclebook/shared/constant"
	"cyclebook/shared/failure"
	"cyclebook/shared/validator"
	"cyclebook/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const msgRideStarted = "Ride started"

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/cycle-availability", handler.CycleAvailability)
	router.Post("/book", handler.Book)
	router.Get("/bookings", handler.ActiveBookings)
	router.Post("/start-ride", handler.StartRide)
	router.Post("/stop-ride", handler.StopRide)
}

// CycleAvailability lists the configured cycles at a place.
// @Summary Cycle availability
// @Description A cycle is unavailable while a ride on it is in progress.
// @Tags Booking
// @Produce json
// @Param place query string true "Place name"
// @Success 200 {object} response.Data[[]dto.CycleAvailability]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/cycle-availability [get]
func (handler *Handler) CycleAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CycleAvailability")
	defer scope.End()

	res, err := handler.service.Availability(ctx, r.URL.Query().Get(constant.RequestParamPlace))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cycle availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Book reserves a cycle for the calling rider.
// @Summary Book a cycle
// @Description Returns the verification code the rider hands to the host to start the ride.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Place and cycle"
// @Success 200 {object} response.Data[dto.CreateBookingResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/book [post]
// @Security BearerAuth
func (handler *Handler) Book(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Book")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.MissingTokenError)

		return
	}

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book cycle")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Cycle booked by user " + userID)

	response.WithJSON(w, http.StatusOK, res)
}

// ActiveBookings lists every booking that has not been stopped.
// @Summary Active bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[[]dto.ActiveBookingResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [get]
// @Security BearerAuth
func (handler *Handler) ActiveBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ActiveBookings")
	defer scope.End()

	res, err := handler.service.ListActive(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// StartRide starts a pending booking once the rider's code checks out.
// @Summary Start ride
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.StartRideRequest true "Booking and code"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/start-ride [post]
// @Security BearerAuth
func (handler *Handler) StartRide(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartRide")
	defer scope.End()

	req := dto.StartRideRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.StartRide(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start ride")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, msgRideStarted)
}

// StopRide ends a ride and reports its duration and cost.
// @Summary Stop ride
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.StopRideRequest true "Booking and drop location"
// @Success 200 {object} response.Data[dto.StopRideResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/stop-ride [post]
// @Security BearerAuth
func (handler *Handler) StopRide(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StopRide")
	defer scope.End()

	req := dto.StopRideRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.StopRide(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to stop ride")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
