package handler

import (
    "errors"
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/k2arthik/clinic-intake/internal/model"
    "github.com/k2arthik/clinic-intake/internal/repository"
    "github.com/k2arthik/clinic-intake/internal/utils"
)

// BlogHandler serves the public article endpoints and the admin CRUD.
type BlogHandler struct {
    Blogs *repository.BlogRepo
}

// NewBlogHandler constructs a BlogHandler.
func NewBlogHandler(blogs *repository.BlogRepo) *BlogHandler {
    if blogs == nil {
        panic("nil blog repo passed to NewBlogHandler")
    }
    return &BlogHandler{Blogs: blogs}
}

// List handles GET /v1/blogs, returning published posts newest first.
func (h *BlogHandler) List(c echo.Context) error {
    blogs, err := h.Blogs.All(c.Request().Context(), false)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"blogs": blogs})
}

// Get handles GET /v1/blogs/:slug.
func (h *BlogHandler) Get(c echo.Context) error {
    bl, err := h.Blogs.BySlug(c.Request().Context(), c.Param("slug"))
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "blog not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"blog": bl})
}

// AdminList handles GET /v1/admin/blogs, including drafts.
func (h *BlogHandler) AdminList(c echo.Context) error {
    blogs, err := h.Blogs.All(c.Request().Context(), true)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"blogs": blogs})
}

type blogBody struct {
    Title           string `json:"title"`
    Slug            string `json:"slug"`
    Body            string `json:"body"`
    Thumbnail       string `json:"thumbnail"`
    Draft           *bool  `json:"draft"`
    Category        string `json:"category"`
    MetaDescription string `json:"meta_description"`
}

// Save handles POST /v1/admin/blogs (create) and PUT /v1/admin/blogs/:id
// (update).  An explicit slug wins; otherwise one is derived from the
// title.  New posts default to draft.
func (h *BlogHandler) Save(c echo.Context) error {
    var body blogBody
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.Title == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
    }

    ctx := c.Request().Context()
    now := time.Now().UTC()
    bl := model.Blog{
        ID:       c.Param("id"),
        Draft:    true,
        Category: "General",
        Datetime: now,
    }
    if bl.ID == "" {
        bl.ID = uuid.NewString()
    } else {
        existing, err := h.Blogs.ByID(ctx, bl.ID)
        if err != nil {
            if errors.Is(err, repository.ErrNotFound) {
                return c.JSON(http.StatusNotFound, echo.Map{"error": "blog not found"})
            }
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
        }
        bl = existing
    }

    bl.Title = body.Title
    bl.Body = body.Body
    bl.Thumbnail = body.Thumbnail
    bl.MetaDescription = body.MetaDescription
    if body.Category != "" {
        bl.Category = body.Category
    }
    if body.Draft != nil {
        bl.Draft = *body.Draft
    }
    if body.Slug != "" {
        bl.Slug = body.Slug
    } else if bl.Slug == "" {
        bl.Slug = utils.Slugify(body.Title)
    }
    bl.UpdatedAt = now

    if err := h.Blogs.Save(ctx, bl); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true, "blog": bl})
}

// Delete handles DELETE /v1/admin/blogs/:id.
func (h *BlogHandler) Delete(c echo.Context) error {
    if err := h.Blogs.Delete(c.Request().Context(), c.Param("id")); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"success": true})
}
