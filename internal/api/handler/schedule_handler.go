package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PrandiF/gevp-back/internal/core/ports"
)

// ScheduleHandler handles HTTP requests for recurring weekly slots. The
// surface mirrors EventHandler under /api/horario.
type ScheduleHandler struct {
	service ports.ScheduleService
}

func NewScheduleHandler(service ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Create handles POST /api/horario.
func (h *ScheduleHandler) Create(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	schedule, err := h.service.Create(c.Request().Context(), toCreateScheduleInput(req, actor(c)))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, schedule)
}

// List handles GET /api/horario.
func (h *ScheduleHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), pageParams(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toScheduleListResponse(page))
}

// Filter handles GET /api/horario/filter.
func (h *ScheduleHandler) Filter(c echo.Context) error {
	criteria := ports.ScheduleCriteria{
		Weekday:   c.QueryParam("weekday"),
		Facility:  c.QueryParam("facility"),
		Sport:     c.QueryParam("sport"),
		Category:  c.QueryParam("category"),
		StartTime: c.QueryParam("startTime"),
		EndTime:   c.QueryParam("endTime"),
	}

	page, err := h.service.Filter(c.Request().Context(), criteria, pageParams(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toScheduleListResponse(page))
}

// Get handles GET /api/horario/:id.
func (h *ScheduleHandler) Get(c echo.Context) error {
	schedule, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, schedule)
}

// Update handles PUT /api/horario/:id, a full replace with the overlap check re-run.
func (h *ScheduleHandler) Update(c echo.Context) error {
	var req scheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := toUpdateScheduleInput(req, c.Param("id"), actor(c))
	schedule, err := h.service.Update(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, schedule)
}

// Delete handles DELETE /api/horario/:id and returns the removed record.
func (h *ScheduleHandler) Delete(c echo.Context) error {
	schedule, err := h.service.Delete(c.Request().Context(), c.Param("id"), actor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, schedule)
}

// CheckAvailability handles POST /api/horario/disponibilidad.
func (h *ScheduleHandler) CheckAvailability(c echo.Context) error {
	var req scheduleAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	free, err := h.service.CheckAvailability(c.Request().Context(), ports.AvailabilityInput{
		Facility:  req.Facility,
		Day:       req.Weekday,
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

func toCreateScheduleInput(req scheduleRequest, actor string) ports.CreateScheduleInput {
	return ports.CreateScheduleInput{
		Weekday:   req.Weekday,
		Facility:  req.Facility,
		Sport:     req.Sport,
		Category:  req.Category,
		LoadedBy:  req.LoadedBy,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Actor:     actor,
	}
}

func toUpdateScheduleInput(req scheduleRequest, id, actor string) ports.UpdateScheduleInput {
	return ports.UpdateScheduleInput{
		ID:        id,
		Weekday:   req.Weekday,
		Facility:  req.Facility,
		Sport:     req.Sport,
		Category:  req.Category,
		LoadedBy:  req.LoadedBy,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Actor:     actor,
	}
}

func toScheduleListResponse(p *ports.SchedulePage) scheduleListResponse {
	return scheduleListResponse{
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages,
		CurrentPage: p.Page,
		PageSize:    p.PageSize,
		Data:        p.Items,
	}
}
