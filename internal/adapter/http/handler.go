package http

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"portfolio-cms/internal/auth"
	"portfolio-cms/internal/model"
	"portfolio-cms/internal/usecase"
)

// Handler exposes the content and auth API. The admin route group and the
// content write endpoint independently re-verify the session cookie on every
// request.
type Handler struct {
	store  usecase.ContentStore
	auth   *auth.Service
	resume *usecase.ResumeBuilder

	// secureCookies marks the session cookie Secure in production.
	secureCookies bool
}

func NewHandler(store usecase.ContentStore, authSvc *auth.Service, resume *usecase.ResumeBuilder, secureCookies bool) *Handler {
	return &Handler{store: store, auth: authSvc, resume: resume, secureCookies: secureCookies}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/content", h.GetContent)
	app.Post("/api/content", h.requireAuth, h.SaveContent)
	app.Get("/api/content/projects/:id", h.GetProject)
	app.Get("/api/resume/pdf", h.ResumePDF)

	app.Post("/api/auth/login", h.Login)
	app.Get("/api/auth/check", h.Check)
	app.Post("/api/auth/logout", h.Logout)

	admin := app.Group("/api/admin", h.requireAuth)
	admin.Put("/sections", h.PutSections)
	admin.Put("/sections/:id/items", h.PutSectionItems)
	admin.Put("/profile", h.PutProfile)
}

func (h *Handler) requireAuth(c *fiber.Ctx) error {
	if err := h.auth.Verify(c.Cookies(auth.CookieName)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}
	return c.Next()
}

// GetContent serves the latest document, seeding defaults when the store is
// empty. System fields ride along; editors strip them before saving.
func (h *Handler) GetContent(c *fiber.Ctx) error {
	rec, err := h.store.Get(c.UserContext())
	if err != nil {
		log.Printf("content fetch failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch content"})
	}
	raw, err := rec.WireJSON()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch content"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(raw)
}

// SaveContent upserts the full document. The body is expected to be already
// stripped of system fields by the caller, but stray ones are stripped again
// here before validation.
func (h *Handler) SaveContent(c *fiber.Ctx) error {
	var tree any
	if err := json.Unmarshal(c.Body(), &tree); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	cleaned, err := json.Marshal(usecase.StripSystemFields(tree))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := model.ValidateJSON(cleaned); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	doc, err := model.DecodeDocument(cleaned)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	rec, err := h.store.Upsert(c.UserContext(), doc)
	if err != nil {
		log.Printf("content save failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save content"})
	}
	raw, err := rec.WireJSON()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save content"})
	}
	return c.JSON(fiber.Map{"success": true, "data": json.RawMessage(raw)})
}

// GetProject looks up one project by id within the projects section, the
// contract behind the project detail page.
func (h *Handler) GetProject(c *fiber.Ctx) error {
	rec, err := h.store.Get(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch content"})
	}
	if s := rec.Document.FindSection(model.SectionProjects); s != nil {
		if data, ok := s.Data.(model.ProjectsData); ok {
			for _, p := range data.Items {
				if p.ID == c.Params("id") {
					return c.JSON(p)
				}
			}
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
}

// ResumePDF prints the document's resume projection to PDF.
func (h *Handler) ResumePDF(c *fiber.Ctx) error {
	if h.resume == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": "PDF rendering not configured"})
	}
	rec, err := h.store.Get(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch content"})
	}
	pdf, err := h.resume.BuildPDF(c.UserContext(), rec.Document)
	if err != nil {
		log.Printf("resume render failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render resume"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=resume.pdf`)
	return c.Send(pdf)
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Missing credentials"})
	}
	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Missing credentials"})
	}

	token, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			log.Printf("login error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
		}
		log.Printf("failed admin login attempt for %q", req.Email)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"success": false, "message": "Invalid credentials"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		MaxAge:   int(auth.TokenTTL / time.Second),
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"success": true})
}

func (h *Handler) Check(c *fiber.Ctx) error {
	if err := h.auth.Verify(c.Cookies(auth.CookieName)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"authenticated": false})
	}
	return c.JSON(fiber.Map{"authenticated": true})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.secureCookies,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	})
	return c.JSON(fiber.Map{"success": true})
}
