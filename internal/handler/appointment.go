package handler

import (
    "errors"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/k2arthik/clinic-intake/internal/repository"
    "github.com/k2arthik/clinic-intake/internal/service"
)

// AppointmentHandler exposes the public booking surface: the slot picker
// data and the booking submission itself.
type AppointmentHandler struct {
    Booking *service.BookingService
}

// NewAppointmentHandler constructs an AppointmentHandler.  The booking
// service must be non-nil.
func NewAppointmentHandler(booking *service.BookingService) *AppointmentHandler {
    if booking == nil {
        panic("nil booking service passed to NewAppointmentHandler")
    }
    return &AppointmentHandler{Booking: booking}
}

// Slots handles GET /v1/appointments/slots?date=YYYY-MM-DD.  It returns the
// offered services, the slot labels still open on the requested date
// (defaulting to today, with today's past slots filtered out) and the slots
// already taken.  The taken list comes from an eventually consistent scan;
// it paints the picker, while the conditional write still decides the race.
func (h *AppointmentHandler) Slots(c echo.Context) error {
    now := time.Now()
    dateStr := c.QueryParam("date")
    if dateStr == "" {
        dateStr = now.Format("2006-01-02")
    }
    date, err := time.ParseInLocation("2006-01-02", dateStr, now.Location())
    if err != nil {
        date = now
        dateStr = now.Format("2006-01-02")
    }

    taken, err := h.Booking.TakenSlots(c.Request().Context(), dateStr)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "services":    service.Services,
        "date":        dateStr,
        "time_slots":  service.SlotLabels(date, now),
        "taken_slots": taken,
    })
}

// Book handles POST /v1/appointments.  Status codes follow the error
// taxonomy: 400 for validation failures (naming the field), 409 when the
// slot is already booked, 503 when the id probe bound is exhausted.
func (h *AppointmentHandler) Book(c echo.Context) error {
    var req service.BookingRequest
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    appt, err := h.Booking.Book(c.Request().Context(), req)
    if err != nil {
        var ve *service.ValidationError
        switch {
        case errors.As(err, &ve):
            return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error(), "field": ve.Field})
        case errors.Is(err, repository.ErrSlotTaken):
            return c.JSON(http.StatusConflict, echo.Map{"error": "slot is already booked for this date"})
        case errors.Is(err, repository.ErrAllocationExhausted):
            return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "no appointment ids left for this date"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"success": true, "id": appt.ID, "appointment": appt})
}
