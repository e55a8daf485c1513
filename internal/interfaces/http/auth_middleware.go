package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-reportes/internal/application/dto"
	"github.com/jhoicas/Inventario-reportes/internal/domain/report"
	"github.com/jhoicas/Inventario-reportes/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalTenant = "tenant"
	LocalRole   = "role"
)

// AuthMiddleware valida el Bearer Token JWT y deja la identidad del tenant en
// c.Locals. Un token sin ningún identificador de tenant se rechaza: sin
// candidatos el filtro de alcance dejaría ver todos los registros.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		tenant := TenantFromClaims(claims)
		if tenant.Candidates().Len() == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TENANT", Message: "el token no identifica a ningún tenant"})
		}
		c.Locals(LocalTenant, tenant)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// TenantFromClaims copia los identificadores de tenant del token.
func TenantFromClaims(claims *jwt.Claims) report.TenantIdentity {
	return report.TenantIdentity{
		UserID:     claims.UserID,
		UID:        claims.UID,
		SellerID:   claims.SellerID,
		ShopID:     claims.ShopID,
		StoreID:    claims.StoreID,
		TenantID:   claims.TenantID,
		BusinessID: claims.BusinessID,
		OwnerID:    claims.OwnerID,
		CompanyID:  claims.CompanyID,
	}
}

// GetTenant devuelve la identidad del contexto (después del middleware de auth).
func GetTenant(c *fiber.Ctx) (report.TenantIdentity, bool) {
	t, ok := c.Locals(LocalTenant).(report.TenantIdentity)
	return t, ok
}

// GetRole devuelve el rol del contexto (puede ser vacío).
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
