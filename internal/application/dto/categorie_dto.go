package dto

import "github.com/team48/gestion-stock-api/internal/domain/entity"

// CategorieRequest entrée pour créer ou remplacer une catégorie.
type CategorieRequest struct {
	Code         string `json:"code" validate:"required"`
	Designation  string `json:"designation" validate:"required"`
	EntrepriseID int    `json:"entrepriseId" validate:"required"`
}

// ToEntity convertit la requête en entité (ID non posé).
func (r CategorieRequest) ToEntity() *entity.Categorie {
	return &entity.Categorie{
		Code:         r.Code,
		Designation:  r.Designation,
		EntrepriseID: r.EntrepriseID,
	}
}

// CategorieResponse projection d'une catégorie.
type CategorieResponse struct {
	ID           int    `json:"id"`
	Code         string `json:"code"`
	Designation  string `json:"designation"`
	EntrepriseID int    `json:"entrepriseId"`
}

// CategorieFromEntity convertit l'entité vers sa projection.
func CategorieFromEntity(c *entity.Categorie) *CategorieResponse {
	if c == nil {
		return nil
	}
	return &CategorieResponse{
		ID:           c.ID,
		Code:         c.Code,
		Designation:  c.Designation,
		EntrepriseID: c.EntrepriseID,
	}
}
