package http

import (
	"errors"
	"log/slog"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Previewer serves the preview page for the latest snapshot.
type Previewer interface {
	HTML() string
}

type Handler struct {
	editor   *usecase.Editor
	preview  Previewer
	validate *validator.Validate
	log      *slog.Logger
}

func NewHandler(e *usecase.Editor, p Previewer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{editor: e, preview: p, validate: validator.New(), log: logger}
}

// NewApp builds a fiber app with the JSON error handler and h's routes.
// Immutable is required: route params end up in intents that subscribers
// keep after the request buffer is reused.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler, Immutable: true})
	h.Register(app)
	return app
}

// ErrorHandler renders errors returned from handlers as {"error": "..."}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal error"
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		code = ferr.Code
		msg = ferr.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}

// Register mounts every route on r.
func (h *Handler) Register(r fiber.Router) {
	r.Get("/resume", h.GetResume)
	r.Put("/resume", h.ReplaceResume)
	r.Get("/preview", h.Preview)
	r.Post("/resume/intents", h.ApplyIntent)

	r.Put("/resume/personal/:field", h.SetPersonalField)
	r.Put("/resume/summary", h.SetSummary)

	r.Post("/resume/experience", h.AddExperience)
	r.Patch("/resume/experience/:id", h.SetExperienceField)
	r.Delete("/resume/experience/:id", h.RemoveExperience)

	r.Post("/resume/education", h.AddEducation)
	r.Patch("/resume/education/:id", h.SetEducationField)
	r.Delete("/resume/education/:id", h.RemoveEducation)

	r.Post("/resume/skills", h.AddSkill)
	r.Delete("/resume/skills", h.RemoveSkill)
}

type intentReq struct {
	Op    string `json:"op" validate:"required,oneof=setPersonalField setSummary addExperience setExperienceField removeExperience addEducation setEducationField removeEducation addSkill removeSkill"`
	Field string `json:"field"`
	ID    string `json:"id"`
	Value string `json:"value"`
}

// valueReq uses a pointer so that an explicit "" is accepted while a
// missing value is rejected.
type valueReq struct {
	Value *string `json:"value" validate:"required"`
}

type experienceFieldReq struct {
	Field string  `json:"field" validate:"required,oneof=company position duration description"`
	Value *string `json:"value" validate:"required"`
}

type educationFieldReq struct {
	Field string  `json:"field" validate:"required,oneof=institution degree year"`
	Value *string `json:"value" validate:"required"`
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	return c.JSON(h.editor.Snapshot())
}

func (h *Handler) ReplaceResume(c *fiber.Ctx) error {
	doc, err := model.ParseJSON(c.Body())
	if err != nil {
		return h.fail(c, err)
	}
	out, err := h.editor.Replace(c.UserContext(), doc)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	c.Type("html", "utf-8")
	return c.SendString(h.preview.HTML())
}

func (h *Handler) ApplyIntent(c *fiber.Ctx) error {
	var req intentReq
	if err := h.bind(c, &req); err != nil {
		return err
	}
	return h.dispatch(c, domain.NewIntent(domain.Op(req.Op), req.Field, req.ID, req.Value))
}

func (h *Handler) SetPersonalField(c *fiber.Ctx) error {
	field := c.Params("field")
	if _, err := model.ParsePersonalField(field); err != nil {
		return h.fail(c, err)
	}
	var req valueReq
	if err := h.bind(c, &req); err != nil {
		return err
	}
	return h.dispatch(c, domain.SetPersonalField(field, *req.Value))
}

func (h *Handler) SetSummary(c *fiber.Ctx) error {
	var req valueReq
	if err := h.bind(c, &req); err != nil {
		return err
	}
	return h.dispatch(c, domain.SetSummary(*req.Value))
}

func (h *Handler) AddExperience(c *fiber.Ctx) error {
	return h.dispatch(c, domain.AddExperience())
}

func (h *Handler) SetExperienceField(c *fiber.Ctx) error {
	var req experienceFieldReq
	if err := h.bind(c, &req); err != nil {
		return err
	}
	return h.dispatch(c, domain.SetExperienceField(c.Params("id"), req.Field, *req.Value))
}

func (h *Handler) RemoveExperience(c *fiber.Ctx) error {
	return h.dispatch(c, domain.RemoveExperience(c.Params("id")))
}

func (h *Handler) AddEducation(c *fiber.Ctx) error {
	return h.dispatch(c, domain.AddEducation())
}

func (h *Handler) SetEducationField(c *fiber.Ctx) error {
	var req educationFieldReq
	if err := h.bind(c, &req); err != nil {
		return err
	}
	return h.dispatch(c, domain.SetEducationField(c.Params("id"), req.Field, *req.Value))
}

func (h *Handler) RemoveEducation(c *fiber.Ctx) error {
	return h.dispatch(c, domain.RemoveEducation(c.Params("id")))
}

func (h *Handler) AddSkill(c *fiber.Ctx) error {
	var req valueReq
	if err := h.bind(c, &req); err != nil {
		return err
	}
	return h.dispatch(c, domain.AddSkill(*req.Value))
}

// RemoveSkill takes the skill in the body because skills may contain "/".
func (h *Handler) RemoveSkill(c *fiber.Ctx) error {
	var req valueReq
	if err := h.bind(c, &req); err != nil {
		return err
	}
	return h.dispatch(c, domain.RemoveSkill(*req.Value))
}

// bind parses and validates the body into req.
func (h *Handler) bind(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if err := h.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

func (h *Handler) dispatch(c *fiber.Ctx, in domain.EditIntent) error {
	res, err := h.editor.Dispatch(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	if res.EntryID != "" {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": res.EntryID, "resume": res.Document})
	}
	return c.JSON(res.Document)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid resume document", "problems": verr.Problems})
	case errors.Is(err, model.ErrUnknownField), errors.Is(err, usecase.ErrUnknownOp), errors.Is(err, model.ErrInvalidDocument):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	h.log.Error("edit failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}
