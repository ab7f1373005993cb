package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/squad-service/internal/api/dto"
	"github.com/spec-kit/squad-service/internal/service"
	apperrors "github.com/spec-kit/squad-service/pkg/util"
)

// ClubsHandler exposes club CRUD endpoints.
type ClubsHandler struct {
	clubs   *service.ClubService
	members *service.MemberService
}

// NewClubsHandler constructs handler.
func NewClubsHandler(clubService *service.ClubService, memberService *service.MemberService) *ClubsHandler {
	return &ClubsHandler{clubs: clubService, members: memberService}
}

// List handles GET /clubs.
func (h *ClubsHandler) List(c *fiber.Ctx) error {
	clubs, err := h.clubs.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClubResponses(clubs)})
}

// Get handles GET /clubs/:id.
func (h *ClubsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	club, err := h.clubs.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClubResponse(club)})
}

// Roster handles GET /clubs/:id/members.
func (h *ClubsHandler) Roster(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	club, members, err := h.members.ClubRoster(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ClubRosterResponse{
		Club:    dto.NewClubResponse(club),
		Members: dto.NewMemberResponses(members),
	}})
}

// Create handles POST /clubs.
func (h *ClubsHandler) Create(c *fiber.Ctx) error {
	var req dto.ClubRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	club, err := h.clubs.Create(c.Context(), req.Name, actorID(c))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewClubResponse(club)})
}

// Update handles PUT /clubs/:id.
func (h *ClubsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.ClubRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	club, err := h.clubs.Update(c.Context(), id, req.Name, actorID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClubResponse(club)})
}

// Delete handles DELETE /clubs/:id.
func (h *ClubsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	club, err := h.clubs.Delete(c.Context(), id, actorID(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewClubResponse(club)})
}
