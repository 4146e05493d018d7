package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
)

// UtilisateurHandler gère les requêtes HTTP des utilisateurs (protégé). Les
// routes d'écriture acceptent du JSON ou du multipart avec une partie "image".
type UtilisateurHandler struct {
	uc         *usecase.UtilisateurUseCase
	uploadsDir string
}

// NewUtilisateurHandler construit le handler.
func NewUtilisateurHandler(uc *usecase.UtilisateurUseCase, uploadsDir string) *UtilisateurHandler {
	return &UtilisateurHandler{uc: uc, uploadsDir: uploadsDir}
}

// Create godoc
// @Summary      Enregistrer un utilisateur
// @Tags         utilisateurs
// @Security     Bearer
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        body  body  dto.UtilisateurRequest  true  "Données de l'utilisateur"
// @Success      201   {object}  dto.UtilisateurResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /utilisateurs/create [post]
func (h *UtilisateurHandler) Create(c *fiber.Ctx) error {
	var in dto.UtilisateurRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corps de requête illisible")
	}
	photo, err := saveImage(c, h.uploadsDir)
	if err != nil {
		return writeError(c, err)
	}
	if photo != "" {
		in.Photo = photo
	}
	out, err := h.uc.Save(&in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// FindByID godoc
// @Summary      Rechercher un utilisateur par ID
// @Tags         utilisateurs
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de l'utilisateur"
// @Success      200  {object}  dto.UtilisateurResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /utilisateurs/{id} [get]
func (h *UtilisateurHandler) FindByID(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	out, err := h.uc.FindByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindByEmail godoc
// @Summary      Rechercher un utilisateur par email
// @Tags         utilisateurs
// @Security     Bearer
// @Produce      json
// @Param        email  path  string  true  "Email de l'utilisateur"
// @Success      200    {object}  dto.UtilisateurResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /utilisateurs/email/{email} [get]
func (h *UtilisateurHandler) FindByEmail(c *fiber.Ctx) error {
	out, err := h.uc.FindByEmail(c.Params("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindAll godoc
// @Summary      Lister les utilisateurs
// @Tags         utilisateurs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UtilisateurResponse
// @Router       /utilisateurs/showAll [get]
func (h *UtilisateurHandler) FindAll(c *fiber.Ctx) error {
	out, err := h.uc.FindAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un utilisateur
// @Tags         utilisateurs
// @Security     Bearer
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path  int                     true  "ID de l'utilisateur"
// @Param        body  body  dto.UtilisateurRequest  true  "Données de l'utilisateur"
// @Success      200   {object}  dto.UtilisateurResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /utilisateurs/update/{id} [put]
func (h *UtilisateurHandler) Update(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	var in dto.UtilisateurRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "corps de requête illisible")
	}
	photo, err := saveImage(c, h.uploadsDir)
	if err != nil {
		return writeError(c, err)
	}
	if photo != "" {
		in.Photo = photo
	}
	out, err := h.uc.Update(id, &in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Supprimer un utilisateur
// @Tags         utilisateurs
// @Security     Bearer
// @Param        id  path  int  true  "ID de l'utilisateur"
// @Success      200
// @Router       /utilisateurs/delete/{id} [delete]
func (h *UtilisateurHandler) Delete(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
