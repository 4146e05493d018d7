package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
)

// FournisseurHandler gère les requêtes HTTP des fournisseurs (protégé).
type FournisseurHandler struct {
	uc *usecase.FournisseurUseCase
}

// NewFournisseurHandler construit le handler.
func NewFournisseurHandler(uc *usecase.FournisseurUseCase) *FournisseurHandler {
	return &FournisseurHandler{uc: uc}
}

// Create godoc
// @Summary      Enregistrer un fournisseur
// @Tags         fournisseurs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FournisseurRequest  true  "Données du fournisseur"
// @Success      201   {object}  dto.FournisseurResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /fournisseurs/create [post]
func (h *FournisseurHandler) Create(c *fiber.Ctx) error {
	var in dto.FournisseurRequest
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
// @Summary      Rechercher un fournisseur par ID
// @Tags         fournisseurs
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID du fournisseur"
// @Success      200  {object}  dto.FournisseurResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /fournisseurs/id/{id} [get]
func (h *FournisseurHandler) FindByID(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	out, err := h.uc.FindByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindByNom godoc
// @Summary      Rechercher un fournisseur par nom
// @Tags         fournisseurs
// @Security     Bearer
// @Produce      json
// @Param        nom  path  string  true  "Nom du fournisseur"
// @Success      200  {object}  dto.FournisseurResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /fournisseurs/nom/{nom} [get]
func (h *FournisseurHandler) FindByNom(c *fiber.Ctx) error {
	out, err := h.uc.FindByNom(c.Params("nom"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindAll godoc
// @Summary      Lister les fournisseurs
// @Tags         fournisseurs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FournisseurResponse
// @Router       /fournisseurs/showAll [get]
func (h *FournisseurHandler) FindAll(c *fiber.Ctx) error {
	out, err := h.uc.FindAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un fournisseur
// @Tags         fournisseurs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID du fournisseur"
// @Param        body  body  dto.FournisseurRequest  true  "Données du fournisseur"
// @Success      200   {object}  dto.FournisseurResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /fournisseurs/update/{id} [put]
func (h *FournisseurHandler) Update(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	var in dto.FournisseurRequest
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
// @Summary      Supprimer un fournisseur
// @Tags         fournisseurs
// @Security     Bearer
// @Param        id  path  int  true  "ID du fournisseur"
// @Success      200
// @Router       /fournisseurs/delete/{id} [delete]
func (h *FournisseurHandler) Delete(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
