package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
)

// RolesHandler gère les requêtes HTTP des rôles (protégé).
type RolesHandler struct {
	uc *usecase.RolesUseCase
}

// NewRolesHandler construit le handler.
func NewRolesHandler(uc *usecase.RolesUseCase) *RolesHandler {
	return &RolesHandler{uc: uc}
}

// Create godoc
// @Summary      Attribuer un rôle
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RolesRequest  true  "Données du rôle"
// @Success      201   {object}  dto.RolesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /roles/create [post]
func (h *RolesHandler) Create(c *fiber.Ctx) error {
	var in dto.RolesRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corps de requête illisible")
	}
	out, err := h.uc.Save(&in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// FindByID godoc
// @Summary      Rechercher un rôle par ID
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID du rôle"
// @Success      200  {object}  dto.RolesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /roles/id/{id} [get]
func (h *RolesHandler) FindByID(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	out, err := h.uc.FindByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindByRoleName godoc
// @Summary      Rechercher un rôle par nom
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Param        roleName  path  string  true  "Nom du rôle (ADMIN, MANAGER, EMPLOYEE)"
// @Success      200  {object}  dto.RolesResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /roles/nom/{roleName} [get]
func (h *RolesHandler) FindByRoleName(c *fiber.Ctx) error {
	out, err := h.uc.FindByRoleName(c.Params("roleName"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindAll godoc
// @Summary      Lister les rôles
// @Tags         roles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RolesResponse
// @Router       /roles/showAll [get]
func (h *RolesHandler) FindAll(c *fiber.Ctx) error {
	out, err := h.uc.FindAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un rôle
// @Tags         roles
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "ID du rôle"
// @Param        body  body  dto.RolesRequest  true  "Données du rôle"
// @Success      200   {object}  dto.RolesResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /roles/update/{id} [put]
func (h *RolesHandler) Update(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	var in dto.RolesRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corps de requête illisible")
	}
	out, err := h.uc.Update(id, &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un rôle
// @Tags         roles
// @Security     Bearer
// @Param        id  path  int  true  "ID du rôle"
// @Success      200
// @Router       /roles/delete/{id} [delete]
func (h *RolesHandler) Delete(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
