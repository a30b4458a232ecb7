package history

import (
	"cyclebook/infras/otel"
	"cyclebook/internal/domains/history/service"
	"cyclebook/shared/constant"
	gDto "cyclebook/shared/dto"
	"cyclebook/shared/failure"
	"cyclebook/shared/validator"
	"cyclebook/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RideHistory
	otel    otel.Otel
}

func New(service service.RideHistory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/ride-history", handler.RideHistory)
}

// RideHistory lists the calling rider's finished rides, newest first.
// @Summary Ride history
// @Tags History
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[[]dto.RideHistoryResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/ride-history [get]
// @Security BearerAuth
func (handler *Handler) RideHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RideHistory")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.MissingTokenError)

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r)

	if err := validator.ValidateStruct(&params); err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.List(ctx, userID, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get ride history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
