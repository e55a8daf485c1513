package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-reportes/internal/application/dto"
)

// RequireRole devuelve un middleware Fiber que exige que el rol del token JWT
// esté entre los permitidos. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - sin roles configurados: no restringe;
//   - token sin claim de rol: 401;
//   - rol fuera de la lista: 403.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		if r = strings.ToLower(strings.TrimSpace(r)); r != "" {
			allowed[r] = struct{}{}
		}
	}
	return func(c *fiber.Ctx) error {
		if len(allowed) == 0 {
			return c.Next()
		}
		role := strings.ToLower(strings.TrimSpace(GetRole(c)))
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el token no incluye rol",
			})
		}
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + role + "' no tiene acceso a los reportes",
			})
		}
		return c.Next()
	}
}
