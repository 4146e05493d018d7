package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
)

// CommandeFournisseurHandler gère les requêtes HTTP des commandes fournisseur et de
// leurs lignes (protégé).
type CommandeFournisseurHandler struct {
	uc *usecase.CommandeFournisseurUseCase
}

// NewCommandeFournisseurHandler construit le handler.
func NewCommandeFournisseurHandler(uc *usecase.CommandeFournisseurUseCase) *CommandeFournisseurHandler {
	return &CommandeFournisseurHandler{uc: uc}
}

// Create godoc
// @Summary      Enregistrer une commande fournisseur
// @Tags         commandesfournisseur
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommandeFournisseurRequest  true  "Données de la commande"
// @Success      201   {object}  dto.CommandeFournisseurResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /commandesfournisseur/create [post]
func (h *CommandeFournisseurHandler) Create(c *fiber.Ctx) error {
	var in dto.CommandeFournisseurRequest
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
// @Summary      Rechercher une commande fournisseur par ID
// @Tags         commandesfournisseur
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la commande"
// @Success      200  {object}  dto.CommandeFournisseurResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /commandesfournisseur/id/{id} [get]
func (h *CommandeFournisseurHandler) FindByID(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	out, err := h.uc.FindByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindByCode godoc
// @Summary      Rechercher une commande fournisseur par code
// @Tags         commandesfournisseur
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Code de la commande"
// @Success      200   {object}  dto.CommandeFournisseurResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /commandesfournisseur/code/{code} [get]
func (h *CommandeFournisseurHandler) FindByCode(c *fiber.Ctx) error {
	out, err := h.uc.FindByCode(c.Params("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindAll godoc
// @Summary      Lister les commandes fournisseur
// @Tags         commandesfournisseur
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CommandeFournisseurResponse
// @Router       /commandesfournisseur/showAll [get]
func (h *CommandeFournisseurHandler) FindAll(c *fiber.Ctx) error {
	out, err := h.uc.FindAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier l'entête d'une commande fournisseur
// @Tags         commandesfournisseur
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "ID de la commande"
// @Param        body  body  dto.CommandeFournisseurRequest  true  "Données de la commande"
// @Success      200   {object}  dto.CommandeFournisseurResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /commandesfournisseur/update/{id} [put]
func (h *CommandeFournisseurHandler) Update(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	var in dto.CommandeFournisseurRequest
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
// @Summary      Supprimer une commande fournisseur et ses lignes
// @Tags         commandesfournisseur
// @Security     Bearer
// @Param        id  path  int  true  "ID de la commande"
// @Success      200
// @Router       /commandesfournisseur/delete/{id} [delete]
func (h *CommandeFournisseurHandler) Delete(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

// AddLigne godoc
// @Summary      Ajouter une ligne à une commande fournisseur
// @Tags         commandesfournisseur
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        commandeId  path  int                             true  "ID de la commande"
// @Param        body        body  dto.LigneCommandeFournisseurRequest  true  "Données de la ligne"
// @Success      201  {object}  dto.CommandeFournisseurResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /commandesfournisseur/lignes/create/{commandeId} [post]
func (h *CommandeFournisseurHandler) AddLigne(c *fiber.Ctx) error {
	commandeID, _ := c.ParamsInt("commandeId")
	var in dto.LigneCommandeFournisseurRequest
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
// @Summary      Modifier une ligne d'une commande fournisseur
// @Tags         commandesfournisseur
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        commandeId  path  int                             true  "ID de la commande"
// @Param        body        body  dto.LigneCommandeFournisseurRequest  true  "Données de la ligne (ID requis)"
// @Success      200  {object}  dto.CommandeFournisseurResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /commandesfournisseur/lignes/update/{commandeId} [put]
func (h *CommandeFournisseurHandler) UpdateLigne(c *fiber.Ctx) error {
	commandeID, _ := c.ParamsInt("commandeId")
	var in dto.LigneCommandeFournisseurRequest
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
// @Summary      Retirer une ligne d'une commande fournisseur
// @Tags         commandesfournisseur
// @Security     Bearer
// @Produce      json
// @Param        commandeId  path  int  true  "ID de la commande"
// @Param        ligneId     path  int  true  "ID de la ligne"
// @Success      200  {object}  dto.CommandeFournisseurResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /commandesfournisseur/lignes/delete/{commandeId}/{ligneId} [delete]
func (h *CommandeFournisseurHandler) RemoveLigne(c *fiber.Ctx) error {
	commandeID, _ := c.ParamsInt("commandeId")
	ligneID, _ := c.ParamsInt("ligneId")
	out, err := h.uc.RemoveLigne(commandeID, ligneID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveAllLignes godoc
// @Summary      Vider les lignes d'une commande fournisseur
// @Tags         commandesfournisseur
// @Security     Bearer
// @Produce      json
// @Param        commandeId  path  int  true  "ID de la commande"
// @Success      200  {object}  dto.CommandeFournisseurResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /commandesfournisseur/lignes/deleteAll/{commandeId} [delete]
func (h *CommandeFournisseurHandler) RemoveAllLignes(c *fiber.Ctx) error {
	commandeID, _ := c.ParamsInt("commandeId")
	out, err := h.uc.RemoveAllLignes(commandeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindLignes godoc
// @Summary      Lister les lignes d'une commande fournisseur
// @Tags         commandesfournisseur
// @Security     Bearer
// @Produce      json
// @Param        commandeId  path  int  true  "ID de la commande"
// @Success      200  {array}  dto.LigneCommandeFournisseurResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /commandesfournisseur/lignes/{commandeId} [get]
func (h *CommandeFournisseurHandler) FindLignes(c *fiber.Ctx) error {
	commandeID, _ := c.ParamsInt("commandeId")
	out, err := h.uc.FindAllLignesByCommandeID(commandeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
