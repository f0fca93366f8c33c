package handler

import (
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/k2arthik/clinic-intake/internal/model"
    "github.com/k2arthik/clinic-intake/internal/repository"
    "github.com/k2arthik/clinic-intake/internal/service"
)

// AdminHandler groups the protected management endpoints: the dashboard,
// appointment status transitions and inquiry resolution.  All routes are
// wrapped by JWTAuth plus RequireRole("admin") in the router.
type AdminHandler struct {
    Booking   *service.BookingService
    Inquiries *repository.InquiryRepo
    Counters  *repository.DailyCounterRepo
}

// NewAdminHandler constructs an AdminHandler.  All dependencies must be
// non-nil.
func NewAdminHandler(booking *service.BookingService, inquiries *repository.InquiryRepo, counters *repository.DailyCounterRepo) *AdminHandler {
    if booking == nil || inquiries == nil || counters == nil {
        panic("nil dependency passed to NewAdminHandler")
    }
    return &AdminHandler{Booking: booking, Inquiries: inquiries, Counters: counters}
}

// Dashboard handles GET /v1/admin/dashboard with today's atomic counters
// and overall totals.
func (h *AdminHandler) Dashboard(c echo.Context) error {
    ctx := c.Request().Context()
    now := time.Now().UTC()

    apptsToday, err := h.Counters.Get(ctx, "appointments", now)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    inqsToday, err := h.Counters.Get(ctx, "inquiries", now)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    appts, err := h.Booking.List(ctx, "", "")
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    inqs, err := h.Inquiries.All(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "today_appointments_count": apptsToday,
        "today_inquiries_count":    inqsToday,
        "total_appointments":       len(appts),
        "total_inquiries":          len(inqs),
        "total_items":              len(appts) + len(inqs),
    })
}

// ListAppointments handles GET /v1/admin/appointments.  Query params:
// date=today|YYYY-MM-DD and status filter both listings the way the admin
// screens expect.
func (h *AdminHandler) ListAppointments(c echo.Context) error {
    date := c.QueryParam("date")
    if date == "today" {
        date = time.Now().Format("2006-01-02")
    }
    appts, err := h.Booking.List(c.Request().Context(), date, c.QueryParam("status"))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"appointments": appts})
}

// UpdateAppointment handles PATCH /v1/admin/appointments/:id with a body of
// {"status": "confirmed"|"cancelled", "notes": "..."}.  Cancelling releases
// the slot lock so the slot becomes bookable again.
func (h *AdminHandler) UpdateAppointment(c echo.Context) error {
    id := c.Param("id")
    var body struct {
        Status string `json:"status"`
        Notes  string `json:"notes"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    appt, err := h.Booking.UpdateStatus(c.Request().Context(), id, body.Status, body.Notes)
    if err != nil {
        switch {
        case errors.Is(err, repository.ErrNotFound):
            return c.JSON(http.StatusNotFound, echo.Map{"error": "appointment not found"})
        case errors.Is(err, service.ErrInvalidTransition):
            return c.JSON(http.StatusConflict, echo.Map{"error": "invalid status transition"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "appointment": appt})
}

// DeleteAppointment handles DELETE /v1/admin/appointments/:id.  The slot
// lock is released first when the appointment is not already cancelled, so
// a scan afterwards finds neither the record nor its lock.
func (h *AdminHandler) DeleteAppointment(c echo.Context) error {
    if err := h.Booking.Delete(c.Request().Context(), c.Param("id")); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "appointment not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// ListInquiries handles GET /v1/admin/inquiries with an optional status
// filter.
func (h *AdminHandler) ListInquiries(c echo.Context) error {
    inqs, err := h.Inquiries.All(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    if status := c.QueryParam("status"); status != "" {
        filtered := inqs[:0]
        for _, inq := range inqs {
            if inq.Status == status {
                filtered = append(filtered, inq)
            }
        }
        inqs = filtered
    }
    return c.JSON(http.StatusOK, echo.Map{"inquiries": inqs})
}

// ResolveInquiry handles PATCH /v1/admin/inquiries/:id, flipping the status
// between resolved and unresolved.
func (h *AdminHandler) ResolveInquiry(c echo.Context) error {
    var body struct {
        Status string `json:"status"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.Status != model.InquiryResolved && body.Status != model.InquiryUnresolved {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be resolved or unresolved"})
    }
    if err := h.Inquiries.UpdateStatus(c.Request().Context(), c.Param("id"), body.Status); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "inquiry not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DeleteInquiry handles DELETE /v1/admin/inquiries/:id.
func (h *AdminHandler) DeleteInquiry(c echo.Context) error {
    if err := h.Inquiries.Delete(c.Request().Context(), c.Param("id")); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true})
}
