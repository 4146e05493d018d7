package entity

// Fournisseur représente un fournisseur rattaché à une entreprise.
type Fournisseur struct {
	ID           int
	Nom          string
	Prenom       string
	Adresse      Adresse
	Photo        string
	Email        string
	NumTel       string
	EntrepriseID int
}
