package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/pkg/jwt"
)

// Clés Locals posées par le middleware d'authentification.
const (
	LocalUtilisateurID = "utilisateur_id"
	LocalEntrepriseID  = "entreprise_id"
	LocalRoles         = "roles"
)

// AuthMiddleware valide le Bearer Token JWT et pose l'utilisateur,
// l'entreprise et les rôles dans c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "En-tête Authorization requis"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		// fasthttp retire l'espace final : "Bearer " arrive comme "Bearer",
		// en une seule partie. Dans les deux cas le jeton est absent.
		if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "jeton vide"})
		}
		tokenString := strings.TrimSpace(parts[1])
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "jeton invalide ou expiré"})
		}
		c.Locals(LocalUtilisateurID, claims.UserID)
		c.Locals(LocalEntrepriseID, claims.EntrepriseID)
		c.Locals(LocalRoles, claims.Roles)
		return c.Next()
	}
}

// GetUtilisateurID retourne l'ID de l'utilisateur du contexte (après le
// middleware d'auth), 0 sinon.
func GetUtilisateurID(c *fiber.Ctx) int {
	v := c.Locals(LocalUtilisateurID)
	if v == nil {
		return 0
	}
	id, _ := v.(int)
	return id
}

// GetEntrepriseID retourne l'ID de l'entreprise du contexte, 0 sinon.
func GetEntrepriseID(c *fiber.Ctx) int {
	v := c.Locals(LocalEntrepriseID)
	if v == nil {
		return 0
	}
	id, _ := v.(int)
	return id
}

// GetRoles retourne les rôles du contexte, nil sinon.
func GetRoles(c *fiber.Ctx) []string {
	v := c.Locals(LocalRoles)
	if v == nil {
		return nil
	}
	roles, _ := v.([]string)
	return roles
}
