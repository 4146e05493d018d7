package dto

import (
	"github.com/shopspring/decimal"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
)

// ArticleRequest entrée pour créer ou remplacer un article. Les champs
// arrivent en multipart form data ; l'image éventuelle est traitée par le
// handler et aboutit dans Photo.
type ArticleRequest struct {
	CodeArticle     string          `json:"codeArticle" form:"codeArticle" validate:"required"`
	Designation     string          `json:"designation" form:"designation" validate:"required"`
	PrixUnitaire    decimal.Decimal `json:"prixUnitaire" form:"prixUnitaire" validate:"required"`
	TauxTva         decimal.Decimal `json:"tauxTva" form:"tauxTva"`
	PrixUnitaireTtc decimal.Decimal `json:"prixUnitaireTtc" form:"prixUnitaireTtc" validate:"required"`
	CategorieID     int             `json:"categorieId" form:"categorieId" validate:"required"`
	EntrepriseID    int             `json:"entrepriseId" form:"entrepriseId" validate:"required"`
	Photo           string          `json:"photo" form:"-"`
}

// ToEntity convertit la requête en entité (ID non posé, relations résolues
// par le cas d'usage).
func (r ArticleRequest) ToEntity() *entity.Article {
	return &entity.Article{
		CodeArticle:     r.CodeArticle,
		Designation:     r.Designation,
		PrixUnitaire:    r.PrixUnitaire,
		TauxTva:         r.TauxTva,
		PrixUnitaireTtc: r.PrixUnitaireTtc,
		Photo:           r.Photo,
		CategorieID:     r.CategorieID,
		EntrepriseID:    r.EntrepriseID,
	}
}

// ArticleResponse projection d'un article avec sa catégorie et son entreprise.
type ArticleResponse struct {
	ID              int                 `json:"id"`
	CodeArticle     string              `json:"codeArticle"`
	Designation     string              `json:"designation"`
	PrixUnitaire    decimal.Decimal     `json:"prixUnitaire"`
	TauxTva         decimal.Decimal     `json:"tauxTva"`
	PrixUnitaireTtc decimal.Decimal     `json:"prixUnitaireTtc"`
	Photo           string              `json:"photo,omitempty"`
	Categorie       *CategorieResponse  `json:"categorie,omitempty"`
	Entreprise      *EntrepriseResponse `json:"entreprise,omitempty"`
}

// ArticleFromEntity convertit l'entité vers sa projection.
func ArticleFromEntity(a *entity.Article) *ArticleResponse {
	if a == nil {
		return nil
	}
	return &ArticleResponse{
		ID:              a.ID,
		CodeArticle:     a.CodeArticle,
		Designation:     a.Designation,
		PrixUnitaire:    a.PrixUnitaire,
		TauxTva:         a.TauxTva,
		PrixUnitaireTtc: a.PrixUnitaireTtc,
		Photo:           a.Photo,
		Categorie:       CategorieFromEntity(a.Categorie),
		Entreprise:      EntrepriseFromEntity(a.Entreprise),
	}
}
