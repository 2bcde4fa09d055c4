package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"vetpost/backend/internal/metrics"
	"vetpost/backend/internal/service"
)

const (
	ActionGenerateContent = "generateContent"
	ActionSearchImages    = "searchImages"
)

type GenerateHandler struct {
	posts    service.PostService
	images   service.ImageService
	location *time.Location
	metrics  *metrics.Collector
}

type generateRequest struct {
	Action     string `json:"action"`
	Date       string `json:"date,omitempty"`
	Tone       string `json:"tone,omitempty"`
	SearchTerm string `json:"searchTerm,omitempty"`
}

// NewGenerateHandler creates the relay handler. Dates are interpreted in loc.
func NewGenerateHandler(posts service.PostService, images service.ImageService, loc *time.Location, collector *metrics.Collector) *GenerateHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &GenerateHandler{
		posts:    posts,
		images:   images,
		location: loc,
		metrics:  collector,
	}
}

// RegisterRoutes mounts the relay for every method so non-POST requests get
// a JSON 405 instead of echo's default.
func (h *GenerateHandler) RegisterRoutes(g *echo.Group) {
	g.Any("/generate", h.Handle)
}

// Handle dispatches a relay action.
// @Summary Run a relay action
// @Description generateContent returns a post idea for the given date and tone. searchImages returns pet photos for a term.
// @Tags generate
// @Accept json
// @Produce json
// @Param request body generateRequest true "Action and its fields"
// @Success 200 {object} model.GeneratedPost "generateContent result"
// @Success 200 {object} model.ImageSearchResult "searchImages result"
// @Failure 400 {object} errorResponse
// @Failure 405 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /generate [post]
func (h *GenerateHandler) Handle(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		c.Response().Header().Set(echo.HeaderAllow, http.MethodPost)
		return h.reply(c, "", http.StatusMethodNotAllowed, errorResponse{Error: msgMethodNotAllowed})
	}

	// Decoded regardless of Content-Type. An empty body falls through to
	// the unknown action case.
	var req generateRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return h.reply(c, "", http.StatusBadRequest, errorResponse{Error: msgInvalidBody})
	}

	switch req.Action {
	case ActionGenerateContent:
		return h.generateContent(c, req)
	case ActionSearchImages:
		return h.searchImages(c, req)
	default:
		return h.reply(c, "", http.StatusBadRequest, errorResponse{Error: msgInvalidAction})
	}
}

func (h *GenerateHandler) generateContent(c echo.Context, req generateRequest) error {
	if err := h.posts.Ready(); err != nil {
		return h.fail(c, req.Action, err)
	}
	if req.Date == "" {
		return h.reply(c, req.Action, http.StatusBadRequest, errorResponse{Error: "O campo 'date' é obrigatório."})
	}
	date, ok := parseDate(req.Date, h.location)
	if !ok {
		return h.reply(c, req.Action, http.StatusBadRequest, errorResponse{Error: "O campo 'date' deve estar no formato AAAA-MM-DD ou ISO 8601."})
	}

	post, err := h.posts.Generate(c.Request().Context(), service.GenerateParams{Date: date, Tone: req.Tone})
	if err != nil {
		return h.fail(c, req.Action, err)
	}
	return h.reply(c, req.Action, http.StatusOK, post)
}

func (h *GenerateHandler) searchImages(c echo.Context, req generateRequest) error {
	if err := h.images.Ready(); err != nil {
		return h.fail(c, req.Action, err)
	}

	result, err := h.images.Search(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return h.fail(c, req.Action, err)
	}
	return h.reply(c, req.Action, http.StatusOK, result)
}

func (h *GenerateHandler) fail(c echo.Context, action string, err error) error {
	status, writeErr := writeServiceError(c, err)
	h.metrics.IncRequest(actionLabel(action), strconv.Itoa(status))
	return writeErr
}

func (h *GenerateHandler) reply(c echo.Context, action string, status int, body any) error {
	h.metrics.IncRequest(actionLabel(action), strconv.Itoa(status))
	return c.JSON(status, body)
}

func actionLabel(action string) string {
	if action == "" {
		return "none"
	}
	return action
}
