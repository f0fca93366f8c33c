package handler

import (
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/k2arthik/clinic-intake/internal/model"
    "github.com/k2arthik/clinic-intake/internal/repository"
    "github.com/k2arthik/clinic-intake/internal/utils"
)

// GalleryHandler serves the public gallery plus the admin management
// endpoints.  Image upload/processing happens outside this service; photo
// records only carry the resulting URL.
type GalleryHandler struct {
    Gallery *repository.GalleryRepo
}

// NewGalleryHandler constructs a GalleryHandler.
func NewGalleryHandler(gallery *repository.GalleryRepo) *GalleryHandler {
    if gallery == nil {
        panic("nil gallery repo passed to NewGalleryHandler")
    }
    return &GalleryHandler{Gallery: gallery}
}

// Photos handles GET /v1/gallery/photos.
func (h *GalleryHandler) Photos(c echo.Context) error {
    photos, err := h.Gallery.Photos(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"photos": photos})
}

// Videos handles GET /v1/gallery/videos.
func (h *GalleryHandler) Videos(c echo.Context) error {
    videos, err := h.Gallery.Videos(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"videos": videos})
}

// AddPhoto handles POST /v1/admin/gallery/photos.
func (h *GalleryHandler) AddPhoto(c echo.Context) error {
    var body struct {
        ImageURL    string `json:"image_url"`
        Title       string `json:"title"`
        Description string `json:"description"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.ImageURL == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "image_url is required"})
    }
    p := model.GalleryPhoto{
        ID:          uuid.NewString(),
        ImageURL:    body.ImageURL,
        Title:       body.Title,
        Description: body.Description,
        CreatedAt:   time.Now().UTC(),
    }
    if err := h.Gallery.SavePhoto(c.Request().Context(), p); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"success": true, "photo": p})
}

// DeletePhoto handles DELETE /v1/admin/gallery/photos/:id.
func (h *GalleryHandler) DeletePhoto(c echo.Context) error {
    if err := h.Gallery.DeletePhoto(c.Request().Context(), c.Param("id")); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// AddVideo handles POST /v1/admin/gallery/videos.  The video is referenced
// by its 11-character YouTube id; a thumbnail URL is derived when none is
// supplied.
func (h *GalleryHandler) AddVideo(c echo.Context) error {
    var body struct {
        VideoID      string `json:"video_id"`
        Title        string `json:"title"`
        Description  string `json:"description"`
        ThumbnailURL string `json:"thumbnail_url"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if !utils.ValidYouTubeID(body.VideoID) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid youtube video id"})
    }
    if body.ThumbnailURL == "" {
        body.ThumbnailURL = utils.YouTubeThumbnailURL(body.VideoID)
    }
    v := model.GalleryVideo{
        ID:           uuid.NewString(),
        VideoID:      body.VideoID,
        Title:        body.Title,
        Description:  body.Description,
        ThumbnailURL: body.ThumbnailURL,
        CreatedAt:    time.Now().UTC(),
    }
    if err := h.Gallery.SaveVideo(c.Request().Context(), v); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusCreated, echo.Map{"success": true, "video": v})
}

// DeleteVideo handles DELETE /v1/admin/gallery/videos/:id.
func (h *GalleryHandler) DeleteVideo(c echo.Context) error {
    if err := h.Gallery.DeleteVideo(c.Request().Context(), c.Param("id")); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true})
}
