package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"xintern-backend/internal/domain"
	"xintern-backend/internal/middleware"
	"xintern-backend/internal/service"
)

type CompanyHandler struct {
	companyService service.CompanyService
}

func NewCompanyHandler(companyService service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateCompanyInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	companyID, err := h.companyService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"company_id": companyID,
		"message":    "Company successfully CREATED.",
	})
}

func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("companyId"))
	if err != nil {
		return middleware.BadRequest("Invalid company ID")
	}

	payload, err := parsePayload(c)
	if err != nil {
		return err
	}

	if err := h.companyService.Update(c.Context(), companyID, payload); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("companyId"))
	if err != nil {
		return middleware.BadRequest("Invalid company ID")
	}

	if err := h.companyService.Delete(c.Context(), companyID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"company_id": companyID,
		"message":    "Company successfully DELETED.",
	})
}

func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("companyId"))
	if err != nil {
		return middleware.BadRequest("Invalid company ID")
	}

	company, err := h.companyService.GetByID(c.Context(), companyID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(company)
}

// List is the grouped aggregation over the whole table.
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	groups, err := h.companyService.AllGroups(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(groups)
}

func (h *CompanyHandler) Search(c *fiber.Ctx) error {
	name := strings.ReplaceAll(c.Params("companyName"), "%20", " ")

	groups, err := h.companyService.GroupsByName(c.Context(), name)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(groups)
}

func (h *CompanyHandler) Top(c *fiber.Ctx) error {
	top, err := h.companyService.Top(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(top)
}

func (h *CompanyHandler) Locations(c *fiber.Ctx) error {
	name := c.Query("company_name")
	if name == "" {
		return middleware.BadRequest("Company name not supplied")
	}

	locations, err := h.companyService.Locations(c.Context(), name)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(locations)
}

func (h *CompanyHandler) ByLocation(c *fiber.Ctx) error {
	location := c.Params("location")
	if location == "" {
		return middleware.BadRequest("Location not supplied")
	}

	companies, err := h.companyService.Find(c.Context(), domain.CompanyFilter{Location: location})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(companies)
}

// Find filters by name and/or location substrings from the query
// string.
func (h *CompanyHandler) Find(c *fiber.Ctx) error {
	filter := domain.CompanyFilter{
		Name:     c.Query("name"),
		Location: c.Query("location"),
	}

	companies, err := h.companyService.Find(c.Context(), filter)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(companies)
}

type uploadLogoInput struct {
	Image string `json:"image"`
}

func (h *CompanyHandler) UploadLogo(c *fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("companyId"))
	if err != nil {
		return middleware.BadRequest("Invalid company ID")
	}

	var input uploadLogoInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	logoURL, err := h.companyService.UploadLogo(c.Context(), companyID, input.Image)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"company_id": companyID,
		"logo":       logoURL,
	})
}
