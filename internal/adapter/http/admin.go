package http

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"

	"portfolio-cms/internal/model"
	"portfolio-cms/internal/usecase"
)

// Admin mutation endpoints. Each request runs a full shell cycle in-process:
// load the document, apply one reducer action, save. That keeps the server
// surface and the editor library on the exact same semantics.

func (h *Handler) runShell(c *fiber.Ctx, act usecase.Action) error {
	shell := usecase.NewShell(h.store, nil)
	if err := shell.Load(c.UserContext()); err != nil {
		log.Printf("admin load failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch content"})
	}
	shell.Apply(act)
	if err := shell.Save(c.UserContext(), false); err != nil {
		log.Printf("admin save failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save content"})
	}
	doc := shell.Document()
	return c.JSON(fiber.Map{"success": true, "data": doc})
}

// PutSections replaces the sections slice: order, visibility and titles, the
// section-order editor's output.
func (h *Handler) PutSections(c *fiber.Ctx) error {
	var req struct {
		Sections []model.Section `json:"sections"`
	}
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return h.runShell(c, usecase.ReplaceSections(req.Sections))
}

// PutSectionItems replaces one section's item list. The body is the section's
// data payload; only its items are taken.
func (h *Handler) PutSectionItems(c *fiber.Ctx) error {
	id := c.Params("id")
	data, err := model.DecodeData(id, c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	var act usecase.Action
	switch d := data.(type) {
	case model.ProjectsData:
		act = usecase.ReplaceProjectItems(d.Items)
	case model.ExperienceData:
		act = usecase.ReplaceExperienceItems(d.Items)
	case model.EducationData:
		act = usecase.ReplaceEducationItems(d.Items)
	case model.SkillsData:
		act = usecase.ReplaceSkillGroups(d.Items)
	case model.LearningData:
		act = usecase.ReplaceLearningItems(d.Items)
	case model.CertificationsData:
		act = usecase.ReplaceCertificationItems(d.Items)
	case model.RecommendationsData:
		act = usecase.ReplaceRecommendationItems(d.Items)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "section has no item list"})
	}
	return h.runShell(c, act)
}

// PutProfile patches the profile record and, optionally, the about content.
func (h *Handler) PutProfile(c *fiber.Ctx) error {
	var req struct {
		Profile model.Profile `json:"profile"`
		About   *string       `json:"about,omitempty"`
	}
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	act := usecase.ReplaceProfile(req.Profile)
	if req.About != nil {
		about := usecase.ReplaceSectionField(model.SectionAbout, "content", *req.About)
		inner := act
		act = func(d model.Document) model.Document { return about(inner(d)) }
	}
	return h.runShell(c, act)
}
