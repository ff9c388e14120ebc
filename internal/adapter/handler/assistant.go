package handler

import (
	"encoding/json"
	stdErrors "errors"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/smart-voice-assistant/errors"
	"github.com/johnquangdev/smart-voice-assistant/internal/adapter/dto/assistant"
	"github.com/johnquangdev/smart-voice-assistant/internal/adapter/presenter"
	"github.com/johnquangdev/smart-voice-assistant/internal/domain/repositories"
	assistantUsecase "github.com/johnquangdev/smart-voice-assistant/internal/usecase/assistant"
)

const (
	defaultPageSize = 20
	maxBodyBytes    = 1 << 20
)

// Assistant handles the extraction endpoints
type Assistant struct {
	service  assistantUsecase.Service
	analyzer string
	logger   *zap.Logger
}

// NewAssistant creates the assistant handler. analyzer names the active
// analysis backend in health reports.
func NewAssistant(service assistantUsecase.Service, analyzer string, logger *zap.Logger) *Assistant {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assistant{
		service:  service,
		analyzer: analyzer,
		logger:   logger,
	}
}

// Home handles GET /
// @Summary      Welcome banner
// @Tags         Assistant
// @Produce      plain
// @Success      200  {string}  string  "Welcome to the Smart Voice Assistant API."
// @Router       / [get]
func (h *Assistant) Home(c echo.Context) error {
	return c.String(http.StatusOK, assistant.WelcomeBanner)
}

// ProcessText handles GET /process/
// @Summary      Extract from text
// @Description  Extracts action items, meeting dates and key points from the text query parameter. Nothing is stored.
// @Tags         Assistant
// @Produce      json
// @Param        text  query     string  true  "Text to analyze"
// @Success      200   {object}  assistant.ProcessResponse
// @Failure      400   {object}  assistant.ErrorResponse  "No text provided"
// @Failure      500   {object}  assistant.ErrorResponse  "Text analysis failed"
// @Router       /process/ [get]
func (h *Assistant) ProcessText(c echo.Context) error {
	req := assistant.ProcessTextRequest{Text: c.QueryParam("text")}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrNoTextProvided())
	}
	text := strings.TrimSpace(req.Text)

	result, err := h.service.ProcessText(c.Request().Context(), text)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToProcessResponse(text, result))
}

// ProcessVoice handles POST /voice-process/
// @Summary      Extract from a transcription and store the results
// @Description  Stores one calendar event per date, one task per action item and one meeting summary. An empty text is valid.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        request  body      assistant.VoiceProcessRequest  true  "Transcribed text"
// @Success      200      {object}  assistant.VoiceProcessResponse
// @Failure      400      {object}  assistant.ErrorResponse  "Invalid JSON format or Invalid request method"
// @Failure      413      {object}  assistant.ErrorResponse  "Request body too large"
// @Failure      500      {object}  assistant.ErrorResponse  "Analysis or persistence failure"
// @Router       /voice-process/ [post]
func (h *Assistant) ProcessVoice(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return HandleError(h.logger, c, errors.ErrInvalidRequestMethod(c.Request().Method))
	}

	req, err := decodeVoiceRequest(http.MaxBytesReader(c.Response(), c.Request().Body, maxBodyBytes))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	h.logger.Info("voice request received",
		zap.String("request_id", getRequestID(c)),
		zap.Int("text_length", len(req.Text)),
	)

	out, err := h.service.ProcessVoice(c.Request().Context(), req.Text)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToVoiceProcessResponse(req.Text, out))
}

// ListCalendarEvents handles GET /calendar-events/
// @Summary      List stored calendar events
// @Tags         Records
// @Produce      json
// @Param        page       query     int  false  "Page number"  default(1)  maximum(1000000)
// @Param        page_size  query     int  false  "Page size"    default(20)  maximum(100)
// @Success      200        {object}  assistant.CalendarEventListResponse
// @Failure      400        {object}  assistant.ErrorResponse
// @Router       /calendar-events/ [get]
func (h *Assistant) ListCalendarEvents(c echo.Context) error {
	req, filter, err := h.bindList(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	events, total, err := h.service.ListCalendarEvents(c.Request().Context(), filter)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToCalendarEventListResponse(events, total, req.Page, req.PageSize))
}

// ListTasks handles GET /tasks/
// @Summary      List stored tasks
// @Tags         Records
// @Produce      json
// @Param        page       query     int  false  "Page number"  default(1)  maximum(1000000)
// @Param        page_size  query     int  false  "Page size"    default(20)  maximum(100)
// @Success      200        {object}  assistant.TaskListResponse
// @Failure      400        {object}  assistant.ErrorResponse
// @Router       /tasks/ [get]
func (h *Assistant) ListTasks(c echo.Context) error {
	req, filter, err := h.bindList(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	tasks, total, err := h.service.ListTasks(c.Request().Context(), filter)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToTaskListResponse(tasks, total, req.Page, req.PageSize))
}

// ListSummaries handles GET /summaries/
// @Summary      List stored meeting summaries
// @Tags         Records
// @Produce      json
// @Param        page       query     int  false  "Page number"  default(1)  maximum(1000000)
// @Param        page_size  query     int  false  "Page size"    default(20)  maximum(100)
// @Success      200        {object}  assistant.MeetingSummaryListResponse
// @Failure      400        {object}  assistant.ErrorResponse
// @Router       /summaries/ [get]
func (h *Assistant) ListSummaries(c echo.Context) error {
	req, filter, err := h.bindList(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	summaries, total, err := h.service.ListSummaries(c.Request().Context(), filter)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingSummaryListResponse(summaries, total, req.Page, req.PageSize))
}

// Health handles GET /health
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  assistant.HealthResponse
// @Failure      503  {object}  assistant.HealthResponse
// @Router       /health [get]
func (h *Assistant) Health(c echo.Context) error {
	resp := assistant.HealthResponse{
		Status:   "ok",
		Database: "ok",
		Analyzer: h.analyzer,
	}

	if err := h.service.Ping(c.Request().Context()); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		resp.Status = "degraded"
		resp.Database = "unreachable"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}

	return c.JSON(http.StatusOK, resp)
}

// bindList reads and validates the pagination query parameters
func (h *Assistant) bindList(c echo.Context) (*assistant.ListRequest, repositories.ListFilter, error) {
	var req assistant.ListRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return nil, repositories.ListFilter{}, errors.ErrInvalidArgument("page and page_size must be integers")
	}

	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = defaultPageSize
	}

	if err := c.Validate(&req); err != nil {
		return nil, repositories.ListFilter{}, errors.ErrInvalidArgument(err.Error())
	}

	return &req, repositories.ListFilter{
		Limit:  req.PageSize,
		Offset: (req.Page - 1) * req.PageSize,
	}, nil
}

// decodeVoiceRequest accepts a JSON object whose optional text field is a
// string. Bodies over maxBodyBytes are reported as errors.ErrPayloadTooLarge,
// anything else as errors.ErrInvalidJSONFormat.
func decodeVoiceRequest(body io.Reader) (*assistant.VoiceProcessRequest, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stdErrors.As(err, &tooLarge) {
			return nil, errors.ErrPayloadTooLarge(tooLarge.Limit)
		}
		return nil, errors.ErrInvalidJSONFormat(err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.ErrInvalidJSONFormat(err)
	}
	if fields == nil {
		return nil, errors.ErrInvalidJSONFormat(stdErrors.New("body must be a JSON object"))
	}

	var req assistant.VoiceProcessRequest
	if text, ok := fields["text"]; ok {
		if err := json.Unmarshal(text, &req.Text); err != nil {
			return nil, errors.ErrInvalidJSONFormat(err)
		}
	}
	return &req, nil
}
