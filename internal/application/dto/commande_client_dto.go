package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
)

// CommandeClientRequest entrée pour créer ou remplacer un en-tête de commande
// client. DateCommande est un horodatage RFC 3339.
type CommandeClientRequest struct {
	Code         string `json:"code" validate:"required"`
	DateCommande string `json:"dateCommande" validate:"required"`
	ClientID     int    `json:"clientId" validate:"required"`
	EntrepriseID int    `json:"entrepriseId" validate:"required"`
}

// ToEntity convertit la requête en entité. La date invalide est rejetée par
// le validateur en amont.
func (r CommandeClientRequest) ToEntity() *entity.CommandeClient {
	date, _ := time.Parse(time.RFC3339, r.DateCommande)
	return &entity.CommandeClient{
		Code:         r.Code,
		DateCommande: date,
		ClientID:     r.ClientID,
		EntrepriseID: r.EntrepriseID,
	}
}

// LigneCommandeClientRequest entrée pour ajouter ou remplacer une ligne de
// commande client. ID n'est renseigné que pour le remplacement.
type LigneCommandeClientRequest struct {
	ID           int             `json:"id"`
	ArticleID    int             `json:"articleId" validate:"required"`
	Quantite     decimal.Decimal `json:"quantite" validate:"required"`
	PrixUnitaire decimal.Decimal `json:"prixUnitaire" validate:"required"`
	EntrepriseID int             `json:"entrepriseId"`
}

// ToEntity convertit la ligne en entité, rattachée à sa commande.
func (r LigneCommandeClientRequest) ToEntity(commandeID int) *entity.LigneCommandeClient {
	return &entity.LigneCommandeClient{
		ID:               r.ID,
		CommandeClientID: commandeID,
		ArticleID:        r.ArticleID,
		Quantite:         r.Quantite,
		PrixUnitaire:     r.PrixUnitaire,
		EntrepriseID:     r.EntrepriseID,
	}
}

// LigneCommandeClientResponse projection d'une ligne avec son article.
type LigneCommandeClientResponse struct {
	ID               int              `json:"id"`
	CommandeClientID int              `json:"commandeClientId"`
	Article          *ArticleResponse `json:"article,omitempty"`
	Quantite         decimal.Decimal  `json:"quantite"`
	PrixUnitaire     decimal.Decimal  `json:"prixUnitaire"`
	EntrepriseID     int              `json:"entrepriseId"`
}

// LigneCommandeClientFromEntity convertit la ligne vers sa projection.
func LigneCommandeClientFromEntity(l *entity.LigneCommandeClient) *LigneCommandeClientResponse {
	if l == nil {
		return nil
	}
	return &LigneCommandeClientResponse{
		ID:               l.ID,
		CommandeClientID: l.CommandeClientID,
		Article:          ArticleFromEntity(l.Article),
		Quantite:         l.Quantite,
		PrixUnitaire:     l.PrixUnitaire,
		EntrepriseID:     l.EntrepriseID,
	}
}

// CommandeClientResponse projection d'une commande avec ses lignes.
type CommandeClientResponse struct {
	ID           int                           `json:"id"`
	Code         string                        `json:"code"`
	DateCommande time.Time                     `json:"dateCommande"`
	Client       *ClientResponse               `json:"client,omitempty"`
	EntrepriseID int                           `json:"entrepriseId"`
	Lignes       []LigneCommandeClientResponse `json:"ligneCommandeClients"`
}

// CommandeClientFromEntity convertit l'entité vers sa projection.
func CommandeClientFromEntity(c *entity.CommandeClient) *CommandeClientResponse {
	if c == nil {
		return nil
	}
	lignes := make([]LigneCommandeClientResponse, 0, len(c.Lignes))
	for i := range c.Lignes {
		lignes = append(lignes, *LigneCommandeClientFromEntity(&c.Lignes[i]))
	}
	return &CommandeClientResponse{
		ID:           c.ID,
		Code:         c.Code,
		DateCommande: c.DateCommande,
		Client:       ClientFromEntity(c.Client),
		EntrepriseID: c.EntrepriseID,
		Lignes:       lignes,
	}
}
