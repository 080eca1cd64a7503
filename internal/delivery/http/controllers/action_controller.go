package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventregistration/internal/delivery/http/helpers"
	"eventregistration/internal/delivery/http/middleware"
	"eventregistration/internal/domain"
)

// maxRegistrationsPerExecution bounds a single execute request.
const maxRegistrationsPerExecution = 1000

// CreateActionRequest is the request body for POST /actions. Label defaults to "Send message".
type CreateActionRequest struct {
	Label string `json:"label"`
}

// ActionSuccessResponse is the success response envelope for endpoints returning an action configuration.
type ActionSuccessResponse struct {
	Data  *domain.ActionConfiguration `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// ConfigurationFormSuccessResponse is the success response envelope for GET /actions/{actionID}/form (200).
type ConfigurationFormSuccessResponse struct {
	Data  *domain.ConfigurationForm `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

// UpdateTemplateRequest is the request body for PUT /actions/{actionID}/templates/{channel}.
type UpdateTemplateRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Validate implements Validator.
func (u UpdateTemplateRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(u.Body) == "" {
		errs = append(errs, "body is required")
	}
	return errs
}

// TemplateSuccessResponse is the success response envelope for PUT /actions/{actionID}/templates/{channel} (200).
type TemplateSuccessResponse struct {
	Data  *domain.MessageTemplate `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

// ExecuteActionRequest is the request body for POST /actions/{actionID}/execute.
type ExecuteActionRequest struct {
	RegistrationIDs []string `json:"registration_ids"`
}

// Validate implements Validator.
func (e ExecuteActionRequest) Validate() []string {
	var errs []string
	if len(e.RegistrationIDs) == 0 {
		errs = append(errs, "registration_ids is required")
	}
	if len(e.RegistrationIDs) > maxRegistrationsPerExecution {
		errs = append(errs, "registration_ids must not exceed 1000 entries")
	}
	for _, id := range e.RegistrationIDs {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, "registration_ids must not contain empty values")
			break
		}
	}
	return errs
}

// DispatchSuccessResponse is the success response envelope for POST /actions/{actionID}/execute (202).
type DispatchSuccessResponse struct {
	Data  *domain.DispatchSummary `json:"data"`
	Error *helpers.APIError       `json:"error"`
}

type ActionController struct {
	Logger  *slog.Logger
	Service domain.MessageActionService
}

func NewActionController(logger *slog.Logger, svc domain.MessageActionService) *ActionController {
	return &ActionController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateAction godoc
// @Summary Create a "Send message" action
// @Description Creates a registration action with the default configuration (no template collection yet).
// @Tags actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param action body CreateActionRequest true "Action label"
// @Success 201 {object} controllers.ActionSuccessResponse "data contains the created action"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /actions [post]
func (c *ActionController) CreateAction(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req CreateActionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	action, err := c.Service.CreateAction(r.Context(), req.Label)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, action)
}

// GetConfigurationForm godoc
// @Summary Get the action configuration form
// @Description Lists the channels of the action's template collection. edit_url is omitted for channels without an editor. Channels is empty until the form has been submitted once.
// @Tags actions
// @Produce json
// @Security BearerAuth
// @Param actionID path string true "Action ID"
// @Success 200 {object} controllers.ConfigurationFormSuccessResponse "data contains the form"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /actions/{actionID}/form [get]
func (c *ActionController) GetConfigurationForm(w http.ResponseWriter, r *http.Request) {
	actionID, ok := c.actionID(w, r)
	if !ok {
		return
	}
	form, err := c.Service.BuildConfigurationForm(r.Context(), actionID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, form)
}

// SubmitConfigurationForm godoc
// @Summary Submit the action configuration form
// @Description Creates the action's template collection with default templates on first submission. Later submissions leave the collection unchanged.
// @Tags actions
// @Produce json
// @Security BearerAuth
// @Param actionID path string true "Action ID"
// @Success 200 {object} controllers.ActionSuccessResponse "data contains the action with its template collection"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /actions/{actionID}/form [post]
func (c *ActionController) SubmitConfigurationForm(w http.ResponseWriter, r *http.Request) {
	actionID, ok := c.actionID(w, r)
	if !ok {
		return
	}
	action, err := c.Service.SubmitConfigurationForm(r.Context(), actionID)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, action)
}

// UpdateTemplate godoc
// @Summary Edit a channel template
// @Description Replaces subject and body of the template for an editable channel.
// @Tags actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param actionID path string true "Action ID"
// @Param channel path string true "Channel ID, e.g. courier_email"
// @Param template body UpdateTemplateRequest true "Template content"
// @Success 200 {object} controllers.TemplateSuccessResponse "data contains the updated template"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (also for channels without an editor)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /actions/{actionID}/templates/{channel} [put]
func (c *ActionController) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	actionID, ok := c.actionID(w, r)
	if !ok {
		return
	}
	channel := r.PathValue("channel")
	if channel == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing channel")
		return
	}
	var req UpdateTemplateRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	tmpl, err := c.Service.UpdateTemplate(r.Context(), actionID, channel, req.Subject, req.Body)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tmpl)
}

// ExecuteAction godoc
// @Summary Send the action's message to registrations
// @Description Sends one message per registrant of each registration, in the given order. Unknown registration IDs are skipped. Individual delivery failures are not reported; attempted counts send attempts.
// @Tags actions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param actionID path string true "Action ID"
// @Param body body ExecuteActionRequest true "Registrations to message"
// @Success 202 {object} controllers.DispatchSuccessResponse "data contains the dispatch summary"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /actions/{actionID}/execute [post]
func (c *ActionController) ExecuteAction(w http.ResponseWriter, r *http.Request) {
	actionID, ok := c.actionID(w, r)
	if !ok {
		return
	}
	var req ExecuteActionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	summary, err := c.Service.ExecuteForRegistrations(r.Context(), actionID, req.RegistrationIDs)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusAccepted, summary)
}

// actionID reads the path parameter and checks authentication. It writes the
// error response and returns false when the request cannot proceed.
func (c *ActionController) actionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	actionID := r.PathValue("actionID")
	if actionID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing actionID")
		return "", false
	}
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return "", false
	}
	return actionID, true
}

func (c *ActionController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
	case errors.Is(err, domain.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
	}
}
