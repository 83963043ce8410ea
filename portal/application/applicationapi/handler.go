package applicationapi

import (
	"fmt"
	"io"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/talentgate/jobportal/pkg/kernel"
	"github.com/talentgate/jobportal/portal/application"
	"github.com/talentgate/jobportal/portal/application/applicationsrv"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handlers struct {
	service *applicationsrv.ApplicationService
}

func NewHandlers(service *applicationsrv.ApplicationService) *Handlers {
	return &Handlers{service: service}
}

// Apply handles a public application submission. The resume arrives as a
// multipart file; all other fields are plain form values.
func (h *Handlers) Apply(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return application.ErrResumeRequired()
	}

	file, err := fileHeader.Open()
	if err != nil {
		return application.ErrInvalidRequest().WithDetail("resume", "could not open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return application.ErrInvalidRequest().WithDetail("resume", "could not read uploaded file")
	}

	req := application.SubmitApplicationRequest{
		Position:       c.FormValue("position"),
		Name:           c.FormValue("name"),
		Email:          c.FormValue("email"),
		Phone:          c.FormValue("phone"),
		College:        c.FormValue("college"),
		Degree:         c.FormValue("degree"),
		Year:           c.FormValue("year"),
		Skills:         c.FormValue("skills"),
		ResumeFileName: fileHeader.Filename,
		ResumeData:     data,
	}

	resp, err := h.service.Submit(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List returns applications for the admin dashboard, filtered by the
// optional position and status query parameters.
func (h *Handlers) List(c *fiber.Ctx) error {
	apps, err := h.service.List(c.Context(), application.ListFilter{
		Position: c.Query("position"),
		Status:   c.Query("status"),
	})
	if err != nil {
		return err
	}
	return c.JSON(apps)
}

// Statistics returns the dashboard aggregates
func (h *Handlers) Statistics(c *fiber.Ctx) error {
	stats, err := h.service.Statistics(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// UpdateStatus transitions one application to a new lifecycle status
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	id, err := kernel.ParseApplicationID(c.Params("id"))
	if err != nil {
		return application.ErrInvalidRequest().WithDetail("id", c.Params("id"))
	}

	var req application.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return application.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	if err := h.service.UpdateStatus(c.Context(), id, req.Status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Status updated successfully"})
}

// Delete removes an application and its resume
func (h *Handlers) Delete(c *fiber.Ctx) error {
	id, err := kernel.ParseApplicationID(c.Params("id"))
	if err != nil {
		return application.ErrInvalidRequest().WithDetail("id", c.Params("id"))
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Application deleted successfully"})
}

// DownloadExcel streams the filtered application list as a spreadsheet
func (h *Handlers) DownloadExcel(c *fiber.Ctx) error {
	buf, filename, err := h.service.ExportExcel(c.Context(), c.Query("position"))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, excelContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

// ServeResume streams a stored resume for inline viewing. The filename
// arrives percent-encoded in the path.
func (h *Handlers) ServeResume(c *fiber.Ctx) error {
	return h.sendResume(c, "inline")
}

// DownloadResume streams a stored resume as an attachment
func (h *Handlers) DownloadResume(c *fiber.Ctx) error {
	return h.sendResume(c, "attachment")
}

func (h *Handlers) sendResume(c *fiber.Ctx, disposition string) error {
	raw := c.Params("filename")
	filename, err := url.PathUnescape(raw)
	if err != nil {
		filename = raw
	}

	reader, err := h.service.OpenResume(c.Context(), filename)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`%s; filename=%q`, disposition, filename))
	return c.SendStream(reader)
}

// RegisterRoutes wires the public intake route and the token-guarded admin
// routes. The legacy resume route additionally accepts a query token so
// stored links keep working.
func RegisterRoutes(app *fiber.App, handlers *Handlers, requireAuth fiber.Handler, requireAuthOrQueryToken fiber.Handler) {
	app.Post("/apply", handlers.Apply)

	app.Get("/uploads/resumes/:filename", requireAuthOrQueryToken, handlers.ServeResume)

	admin := app.Group("/admin", requireAuth)
	admin.Get("/applications", handlers.List)
	admin.Get("/statistics", handlers.Statistics)
	admin.Put("/application/:id/status", handlers.UpdateStatus)
	admin.Delete("/application/:id", handlers.Delete)
	admin.Get("/download-excel", handlers.DownloadExcel)
	admin.Get("/download-resume/:filename", handlers.DownloadResume)
}
