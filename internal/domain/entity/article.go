package entity

import "github.com/shopspring/decimal"

// Article représente un produit vendable / stockable. CodeArticle est unique.
// Les prix sont en decimal : PrixUnitaireTtc = PrixUnitaire majoré de TauxTva,
// fourni par l'appelant et persisté tel quel (aucun recalcul côté serveur).
// Categorie et Entreprise sont chargées pour la projection de réponse.
type Article struct {
	ID              int
	CodeArticle     string
	Designation     string
	PrixUnitaire    decimal.Decimal
	TauxTva         decimal.Decimal
	PrixUnitaireTtc decimal.Decimal
	Photo           string
	CategorieID     int
	EntrepriseID    int

	Categorie  *Categorie
	Entreprise *Entreprise
}
