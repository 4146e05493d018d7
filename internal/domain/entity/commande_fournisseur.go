package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommandeFournisseur est un en-tête de commande d'achat, symétrique de
// CommandeClient côté fournisseur.
type CommandeFournisseur struct {
	ID            int
	Code          string
	DateCommande  time.Time
	FournisseurID int
	EntrepriseID  int

	Fournisseur *Fournisseur
	Lignes      []LigneCommandeFournisseur
}

// LigneCommandeFournisseur référence un article acheté avec sa quantité et
// son prix unitaire.
type LigneCommandeFournisseur struct {
	ID                    int
	CommandeFournisseurID int
	ArticleID             int
	Quantite              decimal.Decimal
	PrixUnitaire          decimal.Decimal
	EntrepriseID          int

	Article *Article
}
