package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/k2arthik/clinic-intake/internal/service"
)

// InquiryHandler exposes the public contact-form endpoint.
type InquiryHandler struct {
    Intake *service.InquiryIntake
}

// NewInquiryHandler constructs an InquiryHandler.  The intake service must
// be non-nil.
func NewInquiryHandler(intake *service.InquiryIntake) *InquiryHandler {
    if intake == nil {
        panic("nil inquiry intake passed to NewInquiryHandler")
    }
    return &InquiryHandler{Intake: intake}
}

// Submit handles POST /v1/inquiries.  A fresh submission answers 201 with
// the stored inquiry; a duplicate inside the dedup window answers 202 with
// suppressed=true and causes no write and no notification, so double-clicks
// and client retries are harmless.
func (h *InquiryHandler) Submit(c echo.Context) error {
    var req service.InquiryRequest
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    inq, suppressed, err := h.Intake.Submit(c.Request().Context(), req)
    if err != nil {
        var ve *service.ValidationError
        if errors.As(err, &ve) {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Error(), "field": ve.Field})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    if suppressed {
        return c.JSON(http.StatusAccepted, echo.Map{"success": true, "suppressed": true})
    }
    return c.JSON(http.StatusCreated, echo.Map{"success": true, "id": inq.ID})
}
