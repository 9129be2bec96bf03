package availability

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"roombook/infras/otel"
	"roombook/internal/domains/availability/model/dto"
	"roombook/internal/domains/availability/service"
	"roombook/internal/domains/room/model"
	"roombook/shared"
	"roombook/shared/constant"
	"roombook/shared/failure"
	"roombook/transport/http/response"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/availability", handler.FindAvailable)
}

// FindAvailable searches for free rooms of a category over a time window.
// @Summary Find available rooms
// @Tags Availability
// @Produce json
// @Param category query string true "Meeting, Conference or Auditorium"
// @Param min_capacity query int false "Minimum capacity"
// @Param start query string true "Window start (RFC 3339)"
// @Param end query string true "Window end (RFC 3339)"
// @Success 200 {object} response.Data[dto.AvailableRoomsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/availability [get]
func (handler *Handler) FindAvailable(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FindAvailable")
	defer scope.End()

	req, err := parseRequest(request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse availability query")

		response.WithError(writer, err)

		return
	}

	rooms, err := handler.service.FindAvailable(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find available rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, rooms)
}

// parseRequest reads the query string. An unrecognised category is left as
// the zero value so the service reports it after checking the window.
func parseRequest(request *http.Request) (dto.FindAvailableRequest, error) {
	query := request.URL.Query()

	req := dto.FindAvailableRequest{
		Start: query.Get(constant.RequestParamStart),
		End:   query.Get(constant.RequestParamEnd),
	}

	if category, err := model.ParseCategory(query.Get(constant.RequestParamCategory)); err == nil {
		req.Category = category
	}

	if minCapacity := query.Get(constant.RequestParamMinCapacity); minCapacity != constant.Empty {
		value, err := shared.ConvertStringToInt(minCapacity)
		if err != nil {
			return req, failure.BadRequest(fmt.Errorf("%s: %w", constant.RequestParamMinCapacity, err)) // nolint:wrapcheck
		}

		req.MinCapacity = value
	}

	return req, nil
}
