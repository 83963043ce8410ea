package jobapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talentgate/jobportal/pkg/kernel"
	"github.com/talentgate/jobportal/portal/job"
	"github.com/talentgate/jobportal/portal/job/jobsrv"
)

type Handlers struct {
	service *jobsrv.JobService
}

func NewHandlers(service *jobsrv.JobService) *Handlers {
	return &Handlers{service: service}
}

// ListPublic returns active postings for the public board, filtered by the
// optional type and experience query parameters.
func (h *Handlers) ListPublic(c *fiber.Ctx) error {
	postings, err := h.service.ListPublic(c.Context(), job.PublicFilter{
		Type:       c.Query("type"),
		Experience: c.Query("experience"),
	})
	if err != nil {
		return err
	}
	return c.JSON(postings)
}

// GetPublic returns one active posting for the public detail page
func (h *Handlers) GetPublic(c *fiber.Ctx) error {
	id, err := kernel.ParseJobID(c.Params("id"))
	if err != nil {
		return job.ErrInvalidRequest().WithDetail("id", c.Params("id"))
	}

	posting, err := h.service.GetPublic(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(posting)
}

// ListAdmin returns every posting, including inactive ones
func (h *Handlers) ListAdmin(c *fiber.Ctx) error {
	postings, err := h.service.ListAdmin(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(postings)
}

// Create stores a new posting
func (h *Handlers) Create(c *fiber.Ctx) error {
	var req job.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	posting, err := h.service.Create(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(job.CreateJobResponse{
		Message: "Job created successfully",
		JobID:   posting.ID.Int64(),
		Job:     posting,
	})
}

// Update replaces a posting's descriptive fields
func (h *Handlers) Update(c *fiber.Ctx) error {
	id, err := kernel.ParseJobID(c.Params("id"))
	if err != nil {
		return job.ErrInvalidRequest().WithDetail("id", c.Params("id"))
	}

	var req job.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return job.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	posting, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Job updated successfully",
		"job":     posting,
	})
}

// Delete removes a posting
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := kernel.ParseJobID(c.Params("id"))
	if err != nil {
		return job.ErrInvalidRequest().WithDetail("id", c.Params("id"))
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Job deleted successfully"})
}

// ToggleStatus flips a posting between Active and Inactive
func (h *Handlers) ToggleStatus(c *fiber.Ctx) error {
	id, err := kernel.ParseJobID(c.Params("id"))
	if err != nil {
		return job.ErrInvalidRequest().WithDetail("id", c.Params("id"))
	}

	status, err := h.service.ToggleStatus(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(job.ToggleStatusResponse{
		Message: "Job status updated successfully",
		Status:  status,
	})
}

// RegisterRoutes wires the public board and the token-guarded admin
// curation routes.
func RegisterRoutes(app *fiber.App, handlers *Handlers, requireAuth fiber.Handler) {
	app.Get("/jobs", handlers.ListPublic)
	app.Get("/jobs/:id", handlers.GetPublic)

	admin := app.Group("/admin", requireAuth)
	admin.Get("/jobs", handlers.ListAdmin)
	admin.Post("/jobs", handlers.Create)
	admin.Put("/jobs/:id", handlers.Update)
	admin.Delete("/jobs/:id", handlers.Delete)
	admin.Put("/jobs/:id/toggle-status", handlers.ToggleStatus)
}
