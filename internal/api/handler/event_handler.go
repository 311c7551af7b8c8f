package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PrandiF/gevp-back/internal/core/ports"
)

// EventHandler handles HTTP requests for one-off facility reservations.
type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// Create handles POST /api/evento.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      eventRequest  true  "Event details"
// @Success      201   {object}  domain.Event
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/evento [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.service.Create(c.Request().Context(), toCreateEventInput(req, actor(c)))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// List handles GET /api/evento with page/pageSize query parameters.
//
// @Summary      List events (paginated)
// @Tags         events
// @Produce      json
// @Param        page      query     int  false  "Page (1-based)"
// @Param        pageSize  query     int  false  "Items per page"
// @Success      200       {object}  eventListResponse
// @Router       /api/evento [get]
func (h *EventHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), pageParams(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEventListResponse(page))
}

// Filter handles GET /api/evento/filter. All criteria are optional query
// parameters; text fields match case-insensitive substrings.
//
// @Summary      Filtered event listing
// @Tags         events
// @Produce      json
// @Param        facility   query     string  false  "Facility substring"
// @Param        sport      query     string  false  "Sport substring"
// @Param        date       query     string  false  "Exact day (YYYY-MM-DD)"
// @Param        startTime  query     string  false  "Range start (HH:MM)"
// @Param        endTime    query     string  false  "Range end (HH:MM)"
// @Success      200        {object}  eventListResponse
// @Router       /api/evento/filter [get]
func (h *EventHandler) Filter(c echo.Context) error {
	criteria := ports.EventCriteria{
		Facility:  c.QueryParam("facility"),
		Sport:     c.QueryParam("sport"),
		Date:      c.QueryParam("date"),
		StartTime: c.QueryParam("startTime"),
		EndTime:   c.QueryParam("endTime"),
	}

	page, err := h.service.Filter(c.Request().Context(), criteria, pageParams(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEventListResponse(page))
}

// Get handles GET /api/evento/:id.
//
// @Summary      Get an event by id
// @Tags         events
// @Produce      json
// @Param        id  path      string  true  "Event id"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  errorResponse
// @Router       /api/evento/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	event, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Update handles PUT /api/evento/:id as a full replace of mutable fields. The
// new time range is re-validated against the partition.
//
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        id    path      string        true  "Event id"
// @Param        body  body      eventRequest  true  "Replacement fields"
// @Success      200   {object}  domain.Event
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/evento/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := toUpdateEventInput(req, c.Param("id"), actor(c))
	event, err := h.service.Update(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /api/evento/:id and returns the removed record.
//
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Param        id  path      string  true  "Event id"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  errorResponse
// @Router       /api/evento/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	event, err := h.service.Delete(c.Request().Context(), c.Param("id"), actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// CheckAvailability handles POST /api/evento/disponibilidad.
//
// @Summary      Check slot availability for a facility and date
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      eventAvailabilityRequest  true  "Proposed slot"
// @Success      200   {object}  availabilityResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/evento/disponibilidad [post]
func (h *EventHandler) CheckAvailability(c echo.Context) error {
	var req eventAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	free, err := h.service.CheckAvailability(c.Request().Context(), ports.AvailabilityInput{
		Facility:  req.Facility,
		Day:       req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return err
	}

	resp := availabilityResponse{Available: free}
	if !free {
		resp.Message = "time slot already taken"
	}
	return c.JSON(http.StatusOK, resp)
}

// --- Request → Service input ---

func toCreateEventInput(req eventRequest, actor string) ports.CreateEventInput {
	return ports.CreateEventInput{
		Facility:   req.Facility,
		Sport:      req.Sport,
		Date:       req.Date,
		MemberName: req.MemberName,
		Title:      req.Title,
		LoadedBy:   req.LoadedBy,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Actor:      actor,
	}
}

func toUpdateEventInput(req eventRequest, id, actor string) ports.UpdateEventInput {
	return ports.UpdateEventInput{
		ID:         id,
		Facility:   req.Facility,
		Sport:      req.Sport,
		Date:       req.Date,
		MemberName: req.MemberName,
		Title:      req.Title,
		LoadedBy:   req.LoadedBy,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Actor:      actor,
	}
}

func toEventListResponse(p *ports.EventPage) eventListResponse {
	return eventListResponse{
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages,
		CurrentPage: p.Page,
		PageSize:    p.PageSize,
		Data:        p.Items,
	}
}
