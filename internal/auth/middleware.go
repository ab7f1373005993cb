package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/squad-service/internal/domain"
	"github.com/spec-kit/squad-service/internal/repository"
	apperrors "github.com/spec-kit/squad-service/pkg/util"
)

const currentUserKey = "auth_current_user"

// genericUnauthorizedMsg is the single message for every token failure:
// missing header, bad scheme, bad signature, expiry, malformed payload, or a
// user deleted after issuance. Callers must not learn which check failed.
const genericUnauthorizedMsg = "could not validate credentials"

// AuthMiddleware validates bearer tokens and resolves the calling user.
type AuthMiddleware struct {
	tokens *TokenManager
	users  repository.UserRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Handle enforces authentication for protected routes. On success the
// resolved user is stored in request locals for the remaining handlers.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized(genericUnauthorizedMsg)
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], TokenType) {
		return apperrors.NewUnauthorized(genericUnauthorizedMsg)
	}

	userID, err := m.tokens.Verify(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized(genericUnauthorizedMsg)
	}

	// A still-valid token whose user has been deleted must be rejected,
	// and a store failure is a rejection, never a silent pass.
	user, err := m.users.GetByID(c.Context(), userID)
	if err != nil {
		return apperrors.NewUnauthorized(genericUnauthorizedMsg)
	}

	c.Locals(currentUserKey, user)
	return c.Next()
}

// CurrentUser retrieves the authenticated user for this request.
func CurrentUser(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(currentUserKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
