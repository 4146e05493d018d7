package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommandeClient est un en-tête de commande de vente. Les lignes lui
// appartiennent : elles sont créées, remplacées et supprimées via la commande.
type CommandeClient struct {
	ID           int
	Code         string
	DateCommande time.Time
	ClientID     int
	EntrepriseID int

	Client *Client
	Lignes []LigneCommandeClient
}

// LigneCommandeClient référence un article commandé avec sa quantité et le
// prix unitaire figé au moment de la commande.
type LigneCommandeClient struct {
	ID               int
	CommandeClientID int
	ArticleID        int
	Quantite         decimal.Decimal
	PrixUnitaire     decimal.Decimal
	EntrepriseID     int

	Article *Article
}
