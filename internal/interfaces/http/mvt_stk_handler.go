package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
)

// MvtStkHandler gère les requêtes HTTP des mouvements de stock (protégé).
type MvtStkHandler struct {
	uc *usecase.MvtStkUseCase
}

// NewMvtStkHandler construit le handler.
func NewMvtStkHandler(uc *usecase.MvtStkUseCase) *MvtStkHandler {
	return &MvtStkHandler{uc: uc}
}

// Create godoc
// @Summary      Enregistrer un mouvement de stock
// @Tags         mvtstk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MvtStkRequest  true  "Données du mouvement"
// @Success      201   {object}  dto.MvtStkResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /mvtstk/create [post]
func (h *MvtStkHandler) Create(c *fiber.Ctx) error {
	var in dto.MvtStkRequest
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
// @Summary      Rechercher un mouvement par ID
// @Tags         mvtstk
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID du mouvement"
// @Success      200  {object}  dto.MvtStkResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /mvtstk/{id} [get]
func (h *MvtStkHandler) FindByID(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	out, err := h.uc.FindByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindAll godoc
// @Summary      Lister les mouvements de stock
// @Tags         mvtstk
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MvtStkResponse
// @Router       /mvtstk/showAll [get]
func (h *MvtStkHandler) FindAll(c *fiber.Ctx) error {
	out, err := h.uc.FindAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un mouvement de stock
// @Tags         mvtstk
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "ID du mouvement"
// @Param        body  body  dto.MvtStkRequest  true  "Données du mouvement"
// @Success      200   {object}  dto.MvtStkResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /mvtstk/update/{id} [put]
func (h *MvtStkHandler) Update(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	var in dto.MvtStkRequest
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
// @Summary      Supprimer un mouvement de stock
// @Tags         mvtstk
// @Security     Bearer
// @Param        id  path  int  true  "ID du mouvement"
// @Success      200
// @Router       /mvtstk/delete/{id} [delete]
func (h *MvtStkHandler) Delete(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
