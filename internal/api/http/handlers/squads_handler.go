package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/squad-service/internal/api/dto"
	"github.com/spec-kit/squad-service/internal/service"
	apperrors "github.com/spec-kit/squad-service/pkg/util"
)

// SquadsHandler exposes squad CRUD endpoints.
type SquadsHandler struct {
	squads  *service.SquadService
	members *service.MemberService
}

// NewSquadsHandler constructs handler.
func NewSquadsHandler(squadService *service.SquadService, memberService *service.MemberService) *SquadsHandler {
	return &SquadsHandler{squads: squadService, members: memberService}
}

// List handles GET /squads.
func (h *SquadsHandler) List(c *fiber.Ctx) error {
	squads, err := h.squads.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSquadResponses(squads)})
}

// Get handles GET /squads/:id.
func (h *SquadsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	squad, err := h.squads.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSquadResponse(squad)})
}

// Roster handles GET /squads/:id/members.
func (h *SquadsHandler) Roster(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	squad, members, err := h.members.SquadRoster(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.SquadRosterResponse{
		Squad:   dto.NewSquadResponse(squad),
		Members: dto.NewMemberResponses(members),
	}})
}

// Create handles POST /squads.
func (h *SquadsHandler) Create(c *fiber.Ctx) error {
	var req dto.SquadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	squad, err := h.squads.Create(c.Context(), req.Country, actorID(c))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewSquadResponse(squad)})
}

// Update handles PUT /squads/:id.
func (h *SquadsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.SquadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	squad, err := h.squads.Update(c.Context(), id, req.Country, actorID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSquadResponse(squad)})
}

// Delete handles DELETE /squads/:id.
func (h *SquadsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	squad, err := h.squads.Delete(c.Context(), id, actorID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewSquadResponse(squad)})
}
