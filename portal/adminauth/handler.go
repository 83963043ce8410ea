package adminauth

import (
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for admin authentication
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new admin auth handlers instance
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{
		service: service,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates the admin and returns a session token
// POST /admin/login
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrMissingCredentials().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// RegisterRoutes registers the admin auth routes
func RegisterRoutes(app *fiber.App, handlers *Handlers) {
	app.Post("/admin/login", handlers.Login)
}
