package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
)

// LigneVenteRequest entrée pour une ligne de vente, portée par la requête de
// vente (les lignes ne se créent pas isolément).
type LigneVenteRequest struct {
	ArticleID    int             `json:"articleId" validate:"required"`
	Quantite     decimal.Decimal `json:"quantite" validate:"required"`
	PrixUnitaire decimal.Decimal `json:"prixUnitaire" validate:"required"`
	EntrepriseID int             `json:"entrepriseId"`
}

// VenteRequest entrée pour créer ou remplacer une vente avec ses lignes.
// DateVente est un horodatage RFC 3339 ; CommandeID est optionnel.
type VenteRequest struct {
	Code         string              `json:"code" validate:"required"`
	DateVente    string              `json:"dateVente" validate:"required"`
	Commentaire  string              `json:"commentaire"`
	EntrepriseID int                 `json:"entrepriseId" validate:"required"`
	CommandeID   int                 `json:"commandeId"`
	LigneVentes  []LigneVenteRequest `json:"ligneVentes" validate:"required,min=1"`
}

// ToEntity convertit la requête en entité, lignes comprises.
func (r VenteRequest) ToEntity() *entity.Vente {
	date, _ := time.Parse(time.RFC3339, r.DateVente)
	lignes := make([]entity.LigneVente, 0, len(r.LigneVentes))
	for _, l := range r.LigneVentes {
		lignes = append(lignes, entity.LigneVente{
			ArticleID:    l.ArticleID,
			Quantite:     l.Quantite,
			PrixUnitaire: l.PrixUnitaire,
			EntrepriseID: l.EntrepriseID,
		})
	}
	return &entity.Vente{
		Code:         r.Code,
		DateVente:    date,
		Commentaire:  r.Commentaire,
		EntrepriseID: r.EntrepriseID,
		CommandeID:   r.CommandeID,
		Lignes:       lignes,
	}
}

// LigneVenteResponse projection d'une ligne de vente avec son article.
type LigneVenteResponse struct {
	ID           int              `json:"id"`
	VenteID      int              `json:"venteId"`
	Article      *ArticleResponse `json:"article,omitempty"`
	Quantite     decimal.Decimal  `json:"quantite"`
	PrixUnitaire decimal.Decimal  `json:"prixUnitaire"`
	EntrepriseID int              `json:"entrepriseId"`
}

// LigneVenteFromEntity convertit la ligne vers sa projection.
func LigneVenteFromEntity(l *entity.LigneVente) *LigneVenteResponse {
	if l == nil {
		return nil
	}
	return &LigneVenteResponse{
		ID:           l.ID,
		VenteID:      l.VenteID,
		Article:      ArticleFromEntity(l.Article),
		Quantite:     l.Quantite,
		PrixUnitaire: l.PrixUnitaire,
		EntrepriseID: l.EntrepriseID,
	}
}

// VenteResponse projection d'une vente avec ses lignes.
type VenteResponse struct {
	ID           int                  `json:"id"`
	Code         string               `json:"code"`
	DateVente    time.Time            `json:"dateVente"`
	Commentaire  string               `json:"commentaire,omitempty"`
	EntrepriseID int                  `json:"entrepriseId"`
	CommandeID   int                  `json:"commandeId,omitempty"`
	LigneVentes  []LigneVenteResponse `json:"ligneVentes"`
}

// VenteFromEntity convertit l'entité vers sa projection.
func VenteFromEntity(v *entity.Vente) *VenteResponse {
	if v == nil {
		return nil
	}
	lignes := make([]LigneVenteResponse, 0, len(v.Lignes))
	for i := range v.Lignes {
		lignes = append(lignes, *LigneVenteFromEntity(&v.Lignes[i]))
	}
	return &VenteResponse{
		ID:           v.ID,
		Code:         v.Code,
		DateVente:    v.DateVente,
		Commentaire:  v.Commentaire,
		EntrepriseID: v.EntrepriseID,
		CommandeID:   v.CommandeID,
		LigneVentes:  lignes,
	}
}
