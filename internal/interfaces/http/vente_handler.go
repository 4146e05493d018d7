package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
)

// VenteHandler gère les requêtes HTTP des ventes (protégé).
type VenteHandler struct {
	uc *usecase.VenteUseCase
}

// NewVenteHandler construit le handler.
func NewVenteHandler(uc *usecase.VenteUseCase) *VenteHandler {
	return &VenteHandler{uc: uc}
}

// Create godoc
// @Summary      Enregistrer une vente avec ses lignes
// @Tags         ventes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VenteRequest  true  "Données de la vente"
// @Success      201   {object}  dto.VenteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /ventes/create [post]
func (h *VenteHandler) Create(c *fiber.Ctx) error {
	var in dto.VenteRequest
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
// @Summary      Rechercher une vente par ID
// @Tags         ventes
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la vente"
// @Success      200  {object}  dto.VenteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ventes/id/{id} [get]
func (h *VenteHandler) FindByID(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	out, err := h.uc.FindByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindByCode godoc
// @Summary      Rechercher une vente par code
// @Tags         ventes
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Code de la vente"
// @Success      200   {object}  dto.VenteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /ventes/code/{code} [get]
func (h *VenteHandler) FindByCode(c *fiber.Ctx) error {
	out, err := h.uc.FindByCode(c.Params("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindAll godoc
// @Summary      Lister les ventes
// @Tags         ventes
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.VenteResponse
// @Router       /ventes/showAll [get]
func (h *VenteHandler) FindAll(c *fiber.Ctx) error {
	out, err := h.uc.FindAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier une vente (lignes remplacées)
// @Tags         ventes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int               true  "ID de la vente"
// @Param        body  body  dto.VenteRequest  true  "Données de la vente"
// @Success      200   {object}  dto.VenteResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /ventes/update/{id} [put]
func (h *VenteHandler) Update(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	var in dto.VenteRequest
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
// @Summary      Supprimer une vente et ses lignes
// @Tags         ventes
// @Security     Bearer
// @Param        id  path  int  true  "ID de la vente"
// @Success      200
// @Router       /ventes/delete/{id} [delete]
func (h *VenteHandler) Delete(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
