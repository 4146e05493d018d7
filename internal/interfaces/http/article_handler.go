package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
)

// ArticleHandler gère les requêtes HTTP des articles (protégé). Les routes
// d'écriture acceptent du JSON ou du multipart avec une partie "image".
type ArticleHandler struct {
	uc         *usecase.ArticleUseCase
	uploadsDir string
}

// NewArticleHandler construit le handler.
func NewArticleHandler(uc *usecase.ArticleUseCase, uploadsDir string) *ArticleHandler {
	return &ArticleHandler{uc: uc, uploadsDir: uploadsDir}
}

// Create godoc
// @Summary      Enregistrer un article
// @Tags         articles
// @Security     Bearer
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        body  body  dto.ArticleRequest  true  "Données de l'article"
// @Success      201   {object}  dto.ArticleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /articles/create [post]
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var in dto.ArticleRequest
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
// @Summary      Rechercher un article par ID
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de l'article"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /articles/id/{id} [get]
func (h *ArticleHandler) FindByID(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	out, err := h.uc.FindByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindByCodeArticle godoc
// @Summary      Rechercher un article par code
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Param        codeArticle  path  string  true  "Code de l'article"
// @Success      200  {object}  dto.ArticleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /articles/code/{codeArticle} [get]
func (h *ArticleHandler) FindByCodeArticle(c *fiber.Ctx) error {
	out, err := h.uc.FindByCodeArticle(c.Params("codeArticle"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// FindAll godoc
// @Summary      Lister les articles
// @Tags         articles
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ArticleResponse
// @Router       /articles/showAll [get]
func (h *ArticleHandler) FindAll(c *fiber.Ctx) error {
	out, err := h.uc.FindAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Modifier un article
// @Tags         articles
// @Security     Bearer
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path  int                 true  "ID de l'article"
// @Param        body  body  dto.ArticleRequest  true  "Données de l'article"
// @Success      200   {object}  dto.ArticleResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /articles/update/{id} [put]
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	var in dto.ArticleRequest
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
// @Summary      Supprimer un article
// @Tags         articles
// @Security     Bearer
// @Param        id  path  int  true  "ID de l'article"
// @Success      200
// @Router       /articles/delete/{id} [delete]
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("id")
	if err := h.uc.Delete(id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
