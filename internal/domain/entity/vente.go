package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Vente est un en-tête de vente, éventuellement issu d'une commande client.
// Les lignes appartiennent à la vente et sont persistées avec elle.
type Vente struct {
	ID           int
	Code         string
	DateVente    time.Time
	Commentaire  string
	EntrepriseID int
	CommandeID   int
	Lignes       []LigneVente
}

// LigneVente référence un article vendu avec sa quantité et son prix.
type LigneVente struct {
	ID           int
	VenteID      int
	ArticleID    int
	Quantite     decimal.Decimal
	PrixUnitaire decimal.Decimal
	EntrepriseID int

	Article *Article
}
