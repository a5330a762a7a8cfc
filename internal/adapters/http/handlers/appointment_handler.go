package handlers

import (
	"errors"

	"nobateasy/internal/core/domain"
	"nobateasy/internal/core/services"
	"nobateasy/internal/pkg/listview"
	"nobateasy/internal/pkg/pagination"
	"nobateasy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AppointmentHandler handles citizen-facing appointment endpoints
type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

// ============================================================
// GET /api/v1/appointments
// ============================================================

// List returns all appointment records, newest first, with optional
// client-side view parameters (filter, sort, paging).
// @Summary List appointments
// @Description Lists appointment records newest-first with optional filtering, sorting and paging
// @Tags Appointments
// @Accept json
// @Produce json
// @Param code query string false "Tracking-code substring filter"
// @Param appointment_date query string false "Exact appointment-date filter"
// @Param sort query string false "Sort field"
// @Param dir query string false "Sort direction (ascending|descending)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	records, err := h.appointmentService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Error fetching appointments")
	}

	records = listview.Filter(records, c.Query("code"), c.Query("appointment_date"))

	if key := c.Query("sort"); key != "" {
		state := listview.SortState{Key: key, Direction: listview.Ascending}
		if c.Query("dir") == string(listview.Descending) {
			state.Direction = listview.Descending
		}
		records = listview.Sort(records, state)
	}

	params := pagination.GetParams(c)
	page := pagination.Slice(records, params)

	return response.Success(c, "Appointments retrieved",
		pagination.NewResponse(page, params, int64(len(records))))
}

// ============================================================
// GET /api/v1/appointments/:code
// ============================================================

// GetByCode returns a single record by its tracking code
// @Summary Get appointment by tracking code
// @Description Returns the record whose tracking code exactly equals the path parameter
// @Tags Appointments
// @Accept json
// @Produce json
// @Param code path string true "Tracking code"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{code} [get]
func (h *AppointmentHandler) GetByCode(c *fiber.Ctx) error {
	appointment, err := h.appointmentService.GetByTrackingCode(c.Context(), c.Params("code"))
	if err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			return response.NotFound(c, "Appointment not found")
		}
		return response.InternalServerError(c, "Error fetching appointment")
	}
	return response.Success(c, "Appointment retrieved", appointment)
}

// ============================================================
// POST /api/v1/appointments
// ============================================================

// Create books a new appointment and issues its tracking code
// @Summary Create appointment
// @Description Validates the submission, generates a tracking code and persists the record
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body services.CreateAppointmentInput true "Booking submission"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var input services.CreateAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	appointment, err := h.appointmentService.Create(c.Context(), &input)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return response.ValidationFailed(c, "Invalid appointment data", ve.Fields)
		}
		return response.InternalServerError(c, "Error creating appointment")
	}
	return response.Created(c, "Appointment created", appointment)
}

// ============================================================
// PUT /api/v1/appointments/:code
// ============================================================

// Update applies a partial change set to the record behind a tracking code
// @Summary Update appointment
// @Description Applies a partial field set; the tracking code itself is immutable
// @Tags Appointments
// @Accept json
// @Produce json
// @Param code path string true "Tracking code"
// @Param request body services.UpdateAppointmentInput true "Partial changes"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{code} [put]
func (h *AppointmentHandler) Update(c *fiber.Ctx) error {
	var input services.UpdateAppointmentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	appointment, err := h.appointmentService.Update(c.Context(), c.Params("code"), &input)
	if err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			return response.NotFound(c, "Appointment not found")
		}
		if ve, ok := domain.AsValidationError(err); ok {
			return response.ValidationFailed(c, "Invalid appointment data", ve.Fields)
		}
		return response.InternalServerError(c, "Error updating appointment")
	}
	return response.Success(c, "Appointment updated", appointment)
}

// ============================================================
// GET /api/v1/appointments/search/:field/:query
// ============================================================

// Search returns records matching a query on an allow-listed field
// @Summary Search appointments
// @Description Substring search on trackingCode; other allow-listed fields return the full listing
// @Tags Appointments
// @Accept json
// @Produce json
// @Param field path string true "Search field (trackingCode|applicationDate|paymentDate|appointmentDate)"
// @Param query path string true "Search term"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /appointments/search/{field}/{query} [get]
func (h *AppointmentHandler) Search(c *fiber.Ctx) error {
	results, err := h.appointmentService.Search(c.Context(), c.Params("field"), c.Params("query"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSearchField) {
			return response.BadRequest(c, "Invalid search parameter")
		}
		return response.InternalServerError(c, "Error searching appointments")
	}
	return response.Success(c, "Search results retrieved", results)
}
