package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/squad-service/pkg/util"
)

// RequireAdmin guards a mutating route so that only admin users pass. The
// resource name appears in the denial message.
func RequireAdmin(resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return apperrors.NewUnauthorized(genericUnauthorizedMsg)
		}
		if !user.IsAdmin {
			return apperrors.NewForbidden(fmt.Sprintf("not authorized to modify %s", resource))
		}
		return c.Next()
	}
}
