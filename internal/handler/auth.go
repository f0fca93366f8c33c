package handler

import (
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/k2arthik/clinic-intake/internal/config"
    "github.com/k2arthik/clinic-intake/internal/utils"
)

// AuthHandler implements login for the single administrative account.  The
// account is configured through the environment (ADMIN_EMAIL plus a bcrypt
// ADMIN_PASSWORD_HASH); there is no user table — the store holds patient
// data, not staff identities.
type AuthHandler struct {
    cfg config.Config
}

// NewAuthHandler constructs an AuthHandler from the loaded config.
func NewAuthHandler(cfg config.Config) *AuthHandler {
    return &AuthHandler{cfg: cfg}
}

// Login handles POST /v1/auth/login.  On matching credentials it returns an
// HS256 access token with the admin role.  Both failure modes (unknown
// e-mail, wrong password) answer the same 401 so the endpoint does not leak
// which part was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
    var body struct {
        Email    string `json:"email"`
        Password string `json:"password"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if body.Email == "" || body.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
    }
    if !strings.EqualFold(body.Email, h.cfg.AdminEmail) || !utils.VerifyPassword(h.cfg.AdminPassHash, body.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }
    tok, err := utils.NewAccessToken(h.cfg.JWTSecret, h.cfg.AdminEmail, "admin", h.cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
    }
    return c.JSON(http.StatusOK, echo.Map{
        "access_token": tok.Token,
        "expires_at":   tok.Exp.Format(time.RFC3339),
    })
}
