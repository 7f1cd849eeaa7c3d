package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yalcin/gatherly/internal/app/models/dto"
	"github.com/yalcin/gatherly/internal/app/services"
	"github.com/yalcin/gatherly/internal/middleware"
	"github.com/yalcin/gatherly/internal/pkg/helpers"
)

// EventController handles event related operations
type EventController struct {
	eventService services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// GetEvents lists all public events
// @Summary List public events
// @Description Returns all public events ordered by event date
// @Tags events
// @Produce json
// @Success 200 {array} dto.EventListResponse "Public events"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /events [get]
func (c *EventController) GetEvents(ctx *gin.Context) {
	events, err := c.eventService.GetPublicEvents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// GetEventByID returns a single event with its participants
// @Summary Get event details
// @Description Returns a single event with organizer and participant information
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} dto.EventDetailResponse "Event details"
// @Failure 400 {object} dto.ErrorResponse "Invalid event ID"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (c *EventController) GetEventByID(ctx *gin.Context) {
	eventID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	event, err := c.eventService.GetEventByID(ctx.Request.Context(), eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// CreateEvent creates a new event
// @Summary Create an event
// @Description Creates an event organized by the authenticated user, who is enrolled as its first participant
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event information"
// @Success 200 {object} dto.CreatedResponse "Event created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "Organizer not found"
// @Router /events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create event payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "Invalid request payload", dto.ValidationErrorDetails(err)))
		return
	}

	eventID, err := c.eventService.CreateEvent(ctx.Request.Context(), &req, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// The organizer always attends their own event.
	if err := c.eventService.JoinEvent(ctx.Request.Context(), eventID, userID); err != nil {
		c.logger.Error().Err(err).Int64("eventId", eventID).Int64("userId", userID).
			Msg("Failed to enroll organizer in new event")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreatedResponse{
		ID:      eventID,
		Message: "Event created successfully",
	})
}

// UpdateEvent applies a partial update to an event
// @Summary Update an event
// @Description Updates the provided fields of an event. Only the organizer may update.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.MessageResponse "Event updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or capacity"
// @Failure 403 {object} dto.ErrorResponse "Requester is not the organizer"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [patch]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	eventID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid update event payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "Invalid request payload", dto.ValidationErrorDetails(err)))
		return
	}

	if err := c.eventService.UpdateEvent(ctx.Request.Context(), eventID, &req, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Event updated successfully"})
}

// DeleteEvent removes an event
// @Summary Delete an event
// @Description Deletes an event and its participant records. Only the organizer may delete.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.MessageResponse "Event deleted successfully"
// @Failure 403 {object} dto.ErrorResponse "Requester is not the organizer"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Router /events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	eventID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.eventService.DeleteEvent(ctx.Request.Context(), eventID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Event deleted successfully"})
}

// JoinEvent enrolls the authenticated user in an event
// @Summary Join an event
// @Description Adds the authenticated user to the event's participant list
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.MessageResponse "Joined the event"
// @Failure 400 {object} dto.ErrorResponse "Event is full"
// @Failure 404 {object} dto.ErrorResponse "Event not found"
// @Failure 409 {object} dto.ErrorResponse "Already a participant"
// @Router /events/{id}/join [post]
func (c *EventController) JoinEvent(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	eventID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.eventService.JoinEvent(ctx.Request.Context(), eventID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully joined the event"})
}

// LeaveEvent removes the authenticated user from an event
// @Summary Leave an event
// @Description Removes the authenticated user from the event's participant list
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} dto.MessageResponse "Left the event"
// @Failure 404 {object} dto.ErrorResponse "Event not found or user not a participant"
// @Router /events/{id}/leave [post]
func (c *EventController) LeaveEvent(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	eventID, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.eventService.LeaveEvent(ctx.Request.Context(), eventID, userID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully left the event"})
}

// GetMyEvents lists the authenticated user's events
// @Summary List my events
// @Description Returns events the authenticated user organizes or participates in
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.EventListResponse "User's events"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /events/user/me [get]
func (c *EventController) GetMyEvents(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	events, err := c.eventService.GetUserEvents(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// GetMyCalendar returns the authenticated user's calendar view
// @Summary Get my calendar
// @Description Returns the user's organized and joined events within a date range, projected onto two-hour display windows
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Range start (RFC3339 or YYYY-MM-DD), defaults to today"
// @Param endDate query string false "Range end (RFC3339 or YYYY-MM-DD), defaults to one month after start"
// @Param viewType query string false "View type label echoed back" default(month)
// @Success 200 {object} dto.CalendarViewResponse "Calendar view"
// @Failure 400 {object} dto.ErrorResponse "End date not after start date"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /events/user/me/calendar [get]
func (c *EventController) GetMyCalendar(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}

	now := time.Now().UTC()
	defaultStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	start := helpers.ParseDate(ctx.Query("startDate"), defaultStart)
	end := helpers.ParseDate(ctx.Query("endDate"), start.AddDate(0, 1, 0))
	viewType := ctx.DefaultQuery("viewType", "month")

	if !end.After(start) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "End date must be after start date", ""))
		return
	}

	calendar, err := c.eventService.GetUserCalendar(ctx.Request.Context(), userID, start, end, viewType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, calendar)
}

// parseIDParam parses the :id path parameter, responding 400 when invalid
func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest, "Invalid event ID", ""))
		return 0, false
	}
	return id, true
}

// requireUserID fetches the authenticated user's ID, responding 401 when absent
func requireUserID(ctx *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			http.StatusUnauthorized, "Authentication required", ""))
		return 0, false
	}
	return userID, true
}
