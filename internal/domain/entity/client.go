package entity

// Client représente un client rattaché à une entreprise.
type Client struct {
	ID           int
	Nom          string
	Prenom       string
	Adresse      Adresse
	Photo        string
	Email        string
	NumTel       string
	EntrepriseID int
}
