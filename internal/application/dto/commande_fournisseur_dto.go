package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
)

// CommandeFournisseurRequest entrée pour créer ou remplacer un en-tête de
// commande fournisseur. DateCommande est un horodatage RFC 3339.
type CommandeFournisseurRequest struct {
	Code          string `json:"code" validate:"required"`
	DateCommande  string `json:"dateCommande" validate:"required"`
	FournisseurID int    `json:"fournisseurId" validate:"required"`
	EntrepriseID  int    `json:"entrepriseId" validate:"required"`
}

// ToEntity convertit la requête en entité. La date invalide est rejetée par
// le validateur en amont.
func (r CommandeFournisseurRequest) ToEntity() *entity.CommandeFournisseur {
	date, _ := time.Parse(time.RFC3339, r.DateCommande)
	return &entity.CommandeFournisseur{
		Code:          r.Code,
		DateCommande:  date,
		FournisseurID: r.FournisseurID,
		EntrepriseID:  r.EntrepriseID,
	}
}

// LigneCommandeFournisseurRequest entrée pour ajouter ou remplacer une ligne
// de commande fournisseur.
type LigneCommandeFournisseurRequest struct {
	ID           int             `json:"id"`
	ArticleID    int             `json:"articleId" validate:"required"`
	Quantite     decimal.Decimal `json:"quantite" validate:"required"`
	PrixUnitaire decimal.Decimal `json:"prixUnitaire" validate:"required"`
	EntrepriseID int             `json:"entrepriseId"`
}

// ToEntity convertit la ligne en entité, rattachée à sa commande.
func (r LigneCommandeFournisseurRequest) ToEntity(commandeID int) *entity.LigneCommandeFournisseur {
	return &entity.LigneCommandeFournisseur{
		ID:                    r.ID,
		CommandeFournisseurID: commandeID,
		ArticleID:             r.ArticleID,
		Quantite:              r.Quantite,
		PrixUnitaire:          r.PrixUnitaire,
		EntrepriseID:          r.EntrepriseID,
	}
}

// LigneCommandeFournisseurResponse projection d'une ligne avec son article.
type LigneCommandeFournisseurResponse struct {
	ID                    int              `json:"id"`
	CommandeFournisseurID int              `json:"commandeFournisseurId"`
	Article               *ArticleResponse `json:"article,omitempty"`
	Quantite              decimal.Decimal  `json:"quantite"`
	PrixUnitaire          decimal.Decimal  `json:"prixUnitaire"`
	EntrepriseID          int              `json:"entrepriseId"`
}

// LigneCommandeFournisseurFromEntity convertit la ligne vers sa projection.
func LigneCommandeFournisseurFromEntity(l *entity.LigneCommandeFournisseur) *LigneCommandeFournisseurResponse {
	if l == nil {
		return nil
	}
	return &LigneCommandeFournisseurResponse{
		ID:                    l.ID,
		CommandeFournisseurID: l.CommandeFournisseurID,
		Article:               ArticleFromEntity(l.Article),
		Quantite:              l.Quantite,
		PrixUnitaire:          l.PrixUnitaire,
		EntrepriseID:          l.EntrepriseID,
	}
}

// CommandeFournisseurResponse projection d'une commande avec ses lignes.
type CommandeFournisseurResponse struct {
	ID           int                                `json:"id"`
	Code         string                             `json:"code"`
	DateCommande time.Time                          `json:"dateCommande"`
	Fournisseur  *FournisseurResponse               `json:"fournisseur,omitempty"`
	EntrepriseID int                                `json:"entrepriseId"`
	Lignes       []LigneCommandeFournisseurResponse `json:"ligneCommandeFournisseurs"`
}

// CommandeFournisseurFromEntity convertit l'entité vers sa projection.
func CommandeFournisseurFromEntity(c *entity.CommandeFournisseur) *CommandeFournisseurResponse {
	if c == nil {
		return nil
	}
	lignes := make([]LigneCommandeFournisseurResponse, 0, len(c.Lignes))
	for i := range c.Lignes {
		lignes = append(lignes, *LigneCommandeFournisseurFromEntity(&c.Lignes[i]))
	}
	return &CommandeFournisseurResponse{
		ID:           c.ID,
		Code:         c.Code,
		DateCommande: c.DateCommande,
		Fournisseur:  FournisseurFromEntity(c.Fournisseur),
		EntrepriseID: c.EntrepriseID,
		Lignes:       lignes,
	}
}
