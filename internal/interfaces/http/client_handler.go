package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
)

// ClientHandler gère les requêtes HTTP des clients (protégé).
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construit le handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// Create godoc
// @Summary      Enregistrer un client
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ClientRequest  true  "Données du client"
// @Success      201   {object}  dto.ClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /clients/create [post]
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.ClientRequest
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
// @Summary      Rechercher un client par ID
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID du client"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clients/id/{id} [get]
func (h *ClientHandler) FindByID(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	out, err := h.uc.FindByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindByNom godoc
// @Summary      Rechercher un client par nom
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Param        nom  path  string  true  "Nom du client"
// @Success      200  {object}  dto.ClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /clients/nom/{nom} [get]
func (h *ClientHandler) FindByNom(c *fiber.Ctx) error {
	out, err := h.uc.FindByNom(c.Params("nom"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindAll godoc
// @Summary      Lister les clients
// @Tags         clients
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ClientResponse
// @Router       /clients/showAll [get]
func (h *ClientHandler) FindAll(c *fiber.Ctx) error {
	out, err := h.uc.FindAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un client
// @Tags         clients
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "ID du client"
// @Param        body  body  dto.ClientRequest  true  "Données du client"
// @Success      200   {object}  dto.ClientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /clients/update/{id} [put]
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	var in dto.ClientRequest
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
// @Summary      Supprimer un client
// @Tags         clients
// @Security     Bearer
// @Param        id  path  int  true  "ID du client"
// @Success      200
// @Router       /clients/delete/{id} [delete]
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
