package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
)

// EntrepriseHandler gère les requêtes HTTP des entreprises (protégé).
type EntrepriseHandler struct {
	uc *usecase.EntrepriseUseCase
}

// NewEntrepriseHandler construit le handler.
func NewEntrepriseHandler(uc *usecase.EntrepriseUseCase) *EntrepriseHandler {
	return &EntrepriseHandler{uc: uc}
}

// Create godoc
// @Summary      Enregistrer une entreprise
// @Tags         entreprises
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntrepriseRequest  true  "Données de l'entreprise"
// @Success      201   {object}  dto.EntrepriseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /entreprises/create [post]
func (h *EntrepriseHandler) Create(c *fiber.Ctx) error {
	var in dto.EntrepriseRequest
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
// @Summary      Rechercher une entreprise par ID
// @Tags         entreprises
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de l'entreprise"
// @Success      200  {object}  dto.EntrepriseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /entreprises/id/{id} [get]
func (h *EntrepriseHandler) FindByID(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	out, err := h.uc.FindByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindByNom godoc
// @Summary      Rechercher une entreprise par nom
// @Tags         entreprises
// @Security     Bearer
// @Produce      json
// @Param        nom  path  string  true  "Nom de l'entreprise"
// @Success      200  {object}  dto.EntrepriseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /entreprises/nom/{nom} [get]
func (h *EntrepriseHandler) FindByNom(c *fiber.Ctx) error {
	out, err := h.uc.FindByNom(c.Params("nom"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindAll godoc
// @Summary      Lister les entreprises
// @Tags         entreprises
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EntrepriseResponse
// @Router       /entreprises/showAll [get]
func (h *EntrepriseHandler) FindAll(c *fiber.Ctx) error {
	out, err := h.uc.FindAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier une entreprise
// @Tags         entreprises
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID de l'entreprise"
// @Param        body  body  dto.EntrepriseRequest  true  "Données de l'entreprise"
// @Success      200   {object}  dto.EntrepriseResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /entreprises/update/{id} [put]
func (h *EntrepriseHandler) Update(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	var in dto.EntrepriseRequest
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
// @Summary      Supprimer une entreprise
// @Tags         entreprises
// @Security     Bearer
// @Param        id  path  int  true  "ID de l'entreprise"
// @Success      200
// @Router       /entreprises/delete/{id} [delete]
func (h *EntrepriseHandler) Delete(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
