package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/k2arthik/clinic-intake/internal/handler"    // import the handlers that implement business logic
    "github.com/k2arthik/clinic-intake/internal/middleware" // import middleware for JWT authentication and role enforcement
)

// Handlers bundles every handler the router needs.  All fields must be
// non-nil; cmd/server wires them from the loaded config and store.
type Handlers struct {
    Auth        *handler.AuthHandler
    Appointment *handler.AppointmentHandler
    Inquiry     *handler.InquiryHandler
    Admin       *handler.AdminHandler
    Blog        *handler.BlogHandler
    Gallery     *handler.GalleryHandler
}

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    // The health endpoint is used by load balancers and monitoring systems
    // to verify that the service is up and running.
    e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the public intake and content endpoints.  rate
// is the token-bucket limiter guarding the two write endpoints (booking and
// inquiry submission); it may be a pass-through when Redis is unavailable.
func RegisterPublic(e *echo.Echo, h Handlers, rate echo.MiddlewareFunc) {
    g := e.Group("/v1")

    // Booking page data and submissions.
    g.GET("/appointments/slots", h.Appointment.Slots)
    g.POST("/appointments", h.Appointment.Book, rate)

    // Contact form.
    g.POST("/inquiries", h.Inquiry.Submit, rate)

    // Published site content.
    g.GET("/blogs", h.Blog.List)
    g.GET("/blogs/:slug", h.Blog.Get)
    g.GET("/gallery/photos", h.Gallery.Photos)
    g.GET("/gallery/videos", h.Gallery.Videos)
}

// RegisterAdmin registers the login endpoint and the protected management
// surface.  Every /v1/admin route requires a valid bearer token carrying
// the admin role.
func RegisterAdmin(e *echo.Echo, h Handlers, jwtSecret string) {
    e.POST("/v1/auth/login", h.Auth.Login)

    g := e.Group("/v1/admin", middleware.JWTAuth(jwtSecret), middleware.RequireRole("admin"))

    g.GET("/dashboard", h.Admin.Dashboard)

    g.GET("/appointments", h.Admin.ListAppointments)
    g.PATCH("/appointments/:id", h.Admin.UpdateAppointment)
    g.DELETE("/appointments/:id", h.Admin.DeleteAppointment)

    g.GET("/inquiries", h.Admin.ListInquiries)
    g.PATCH("/inquiries/:id", h.Admin.ResolveInquiry)
    g.DELETE("/inquiries/:id", h.Admin.DeleteInquiry)

    g.GET("/blogs", h.Blog.AdminList)
    g.POST("/blogs", h.Blog.Save)
    g.PUT("/blogs/:id", h.Blog.Save)
    g.DELETE("/blogs/:id", h.Blog.Delete)

    g.POST("/gallery/photos", h.Gallery.AddPhoto)
    g.DELETE("/gallery/photos/:id", h.Gallery.DeletePhoto)
    g.POST("/gallery/videos", h.Gallery.AddVideo)
    g.DELETE("/gallery/videos/:id", h.Gallery.DeleteVideo)
}
