package entity

// Categorie classe les articles au sein d'une entreprise.
type Categorie struct {
	ID           int
	Code         string
	Designation  string
	EntrepriseID int
}
