package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
)

// CommandeClientHandler gère les requêtes HTTP des commandes client et de
// leurs lignes (protégé).
type CommandeClientHandler struct {
	uc *usecase.CommandeClientUseCase
}

// NewCommandeClientHandler construit le handler.
func NewCommandeClientHandler(uc *usecase.CommandeClientUseCase) *CommandeClientHandler {
	return &CommandeClientHandler{uc: uc}
}

// Create godoc
// @Summary      Enregistrer une commande client
// @Tags         commandesclient
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommandeClientRequest  true  "Données de la commande"
// @Success      201   {object}  dto.CommandeClientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /commandesclient/create [post]
func (h *CommandeClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CommandeClientRequest
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
// @Summary      Rechercher une commande client par ID
// @Tags         commandesclient
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la commande"
// @Success      200  {object}  dto.CommandeClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /commandesclient/id/{id} [get]
func (h *CommandeClientHandler) FindByID(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	out, err := h.uc.FindByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindByCode godoc
// @Summary      Rechercher une commande client par code
// @Tags         commandesclient
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Code de la commande"
// @Success      200   {object}  dto.CommandeClientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /commandesclient/code/{code} [get]
func (h *CommandeClientHandler) FindByCode(c *fiber.Ctx) error {
	out, err := h.uc.FindByCode(c.Params("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindAll godoc
// @Summary      Lister les commandes client
// @Tags         commandesclient
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CommandeClientResponse
// @Router       /commandesclient/showAll [get]
func (h *CommandeClientHandler) FindAll(c *fiber.Ctx) error {
	out, err := h.uc.FindAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier l'entête d'une commande client
// @Tags         commandesclient
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID de la commande"
// @Param        body  body  dto.CommandeClientRequest  true  "Données de la commande"
// @Success      200   {object}  dto.CommandeClientResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /commandesclient/update/{id} [put]
func (h *CommandeClientHandler) Update(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	var in dto.CommandeClientRequest
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
// @Summary      Supprimer une commande client et ses lignes
// @Tags         commandesclient
// @Security     Bearer
// @Param        id  path  int  true  "ID de la commande"
// @Success      200
// @Router       /commandesclient/delete/{id} [delete]
func (h *CommandeClientHandler) Delete(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// AddLigne godoc
// @Summary      Ajouter une ligne à une commande client
// @Tags         commandesclient
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        commandeId  path  int                             true  "ID de la commande"
// @Param        body        body  dto.LigneCommandeClientRequest  true  "Données de la ligne"
// @Success      201  {object}  dto.CommandeClientResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /commandesclient/lignes/create/{commandeId} [post]
func (h *CommandeClientHandler) AddLigne(c *fiber.Ctx) error {
	commandeID, _ := c.ParamsInt("commandeId")
	var in dto.LigneCommandeClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corps de requête illisible")
	}
	out, err := h.uc.AddLigne(commandeID, &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateLigne godoc
// @Summary      Modifier une ligne d'une commande client
// @Tags         commandesclient
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        commandeId  path  int                             true  "ID de la commande"
// @Param        body        body  dto.LigneCommandeClientRequest  true  "Données de la ligne (ID requis)"
// @Success      200  {object}  dto.CommandeClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /commandesclient/lignes/update/{commandeId} [put]
func (h *CommandeClientHandler) UpdateLigne(c *fiber.Ctx) error {
	commandeID, _ := c.ParamsInt("commandeId")
	var in dto.LigneCommandeClientRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corps de requête illisible")
	}
	out, err := h.uc.UpdateLigne(commandeID, &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveLigne godoc
// @Summary      Retirer une ligne d'une commande client
// @Tags         commandesclient
// @Security     Bearer
// @Produce      json
// @Param        commandeId  path  int  true  "ID de la commande"
// @Param        ligneId     path  int  true  "ID de la ligne"
// @Success      200  {object}  dto.CommandeClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /commandesclient/lignes/delete/{commandeId}/{ligneId} [delete]
func (h *CommandeClientHandler) RemoveLigne(c *fiber.Ctx) error {
	commandeID, _ := c.ParamsInt("commandeId")
	ligneID, _ := c.ParamsInt("ligneId")
	out, err := h.uc.RemoveLigne(commandeID, ligneID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveAllLignes godoc
// @Summary      Vider les lignes d'une commande client
// @Tags         commandesclient
// @Security     Bearer
// @Produce      json
// @Param        commandeId  path  int  true  "ID de la commande"
// @Success      200  {object}  dto.CommandeClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /commandesclient/lignes/deleteAll/{commandeId} [delete]
func (h *CommandeClientHandler) RemoveAllLignes(c *fiber.Ctx) error {
	commandeID, _ := c.ParamsInt("commandeId")
	out, err := h.uc.RemoveAllLignes(commandeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindLignes godoc
// @Summary      Lister les lignes d'une commande client
// @Tags         commandesclient
// @Security     Bearer
// @Produce      json
// @Param        commandeId  path  int  true  "ID de la commande"
// @Success      200  {array}  dto.LigneCommandeClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /commandesclient/lignes/{commandeId} [get]
func (h *CommandeClientHandler) FindLignes(c *fiber.Ctx) error {
	commandeID, _ := c.ParamsInt("commandeId")
	out, err := h.uc.FindAllLignesByCommandeID(commandeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
