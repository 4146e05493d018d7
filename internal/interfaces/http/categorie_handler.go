package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
)

// CategorieHandler gère les requêtes HTTP des catégories (protégé).
type CategorieHandler struct {
	uc *usecase.CategorieUseCase
}

// NewCategorieHandler construit le handler.
func NewCategorieHandler(uc *usecase.CategorieUseCase) *CategorieHandler {
	return &CategorieHandler{uc: uc}
}

// Create godoc
// @Summary      Enregistrer une catégorie
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategorieRequest  true  "Données de la catégorie"
// @Success      201   {object}  dto.CategorieResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /categories/create [post]
func (h *CategorieHandler) Create(c *fiber.Ctx) error {
	var in dto.CategorieRequest
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
// @Summary      Rechercher une catégorie par ID
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la catégorie"
// @Success      200  {object}  dto.CategorieResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /categories/id/{id} [get]
func (h *CategorieHandler) FindByID(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	out, err := h.uc.FindByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindByCode godoc
// @Summary      Rechercher une catégorie par code
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Code de la catégorie"
// @Success      200   {object}  dto.CategorieResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /categories/code/{code} [get]
func (h *CategorieHandler) FindByCode(c *fiber.Ctx) error {
	out, err := h.uc.FindByCode(c.Params("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindAll godoc
// @Summary      Lister les catégories
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategorieResponse
// @Router       /categories/showAll [get]
func (h *CategorieHandler) FindAll(c *fiber.Ctx) error {
	out, err := h.uc.FindAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier une catégorie
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                   true  "ID de la catégorie"
// @Param        body  body  dto.CategorieRequest  true  "Données de la catégorie"
// @Success      200   {object}  dto.CategorieResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /categories/update/{id} [put]
func (h *CategorieHandler) Update(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	var in dto.CategorieRequest
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
// @Summary      Supprimer une catégorie
// @Tags         categories
// @Security     Bearer
// @Param        id  path  int  true  "ID de la catégorie"
// @Success      200
// @Router       /categories/delete/{id} [delete]
func (h *CategorieHandler) Delete(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
