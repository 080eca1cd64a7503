package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventregistration/internal/delivery/http/helpers"
	"eventregistration/internal/delivery/http/middleware"
	"eventregistration/internal/domain"
)

// ListEventTypesResponse is the data payload for GET /event-types (200).
type ListEventTypesResponse struct {
	Items      []*domain.EventTypeConfig `json:"items"`
	Pagination helpers.PaginationMeta    `json:"pagination"`
}

// ListEventTypesSuccessResponse is the success response envelope for GET /event-types (200).
type ListEventTypesSuccessResponse struct {
	Data  ListEventTypesResponse `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// DeletionPromptSuccessResponse is the success response envelope for GET /event-types/{configID}/delete (200).
type DeletionPromptSuccessResponse struct {
	Data  *domain.DeletionPrompt `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// DeletionResultSuccessResponse is the success response envelope for POST /event-types/{configID}/delete (200).
type DeletionResultSuccessResponse struct {
	Data  *domain.DeletionResult `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// ConfirmDeletionRequest is the request body for POST /event-types/{configID}/delete.
// Confirm false cancels the workflow without side effects.
type ConfirmDeletionRequest struct {
	Confirm *bool `json:"confirm"`
}

// Validate implements Validator.
func (c ConfirmDeletionRequest) Validate() []string {
	if c.Confirm == nil {
		return []string{"confirm is required"}
	}
	return nil
}

type EventTypeConfigController struct {
	Logger  *slog.Logger
	Service domain.EventTypeConfigService
}

func NewEventTypeConfigController(logger *slog.Logger, svc domain.EventTypeConfigService) *EventTypeConfigController {
	return &EventTypeConfigController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEventTypes godoc
// @Summary List event type configurations
// @Description Overview of registration configurations per event type, ordered by label. Use page and page_size query params.
// @Tags event-types
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListEventTypesSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /event-types [get]
func (c *EventTypeConfigController) ListEventTypes(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	params := helpers.ParsePagination(r)
	list, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if list == nil {
		list = []*domain.EventTypeConfig{}
	}
	meta := helpers.NewPaginationMeta(params, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventTypesResponse{Items: list, Pagination: meta})
}

// GetDeletionPrompt godoc
// @Summary Ask for confirmation before deleting an event type configuration
// @Description Returns the confirmation question, the confirm button text and the cancel route. Nothing is deleted.
// @Tags event-types
// @Produce json
// @Security BearerAuth
// @Param configID path string true "Event type configuration ID"
// @Success 200 {object} controllers.DeletionPromptSuccessResponse "data contains the prompt"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /event-types/{configID}/delete [get]
func (c *EventTypeConfigController) GetDeletionPrompt(w http.ResponseWriter, r *http.Request) {
	configID := r.PathValue("configID")
	if configID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing configID")
		return
	}
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	prompt, err := c.Service.Prompt(r.Context(), configID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, prompt)
}

// SubmitDeletion godoc
// @Summary Confirm or cancel deletion of an event type configuration
// @Description With confirm=true the configuration and all registrations of its events are deleted and a notice is returned. With confirm=false nothing changes. Both redirect to the overview.
// @Tags event-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param configID path string true "Event type configuration ID"
// @Param body body ConfirmDeletionRequest true "Confirmation"
// @Success 200 {object} controllers.DeletionResultSuccessResponse "data contains state, notice and redirect"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /event-types/{configID}/delete [post]
func (c *EventTypeConfigController) SubmitDeletion(w http.ResponseWriter, r *http.Request) {
	configID := r.PathValue("configID")
	if configID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing configID")
		return
	}
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req ConfirmDeletionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	var (
		res *domain.DeletionResult
		err error
	)
	if *req.Confirm {
		res, err = c.Service.Confirm(r.Context(), configID)
	} else {
		res, err = c.Service.Cancel(r.Context(), configID)
	}
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, res)
}

func (c *EventTypeConfigController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event type configuration not found")
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}
