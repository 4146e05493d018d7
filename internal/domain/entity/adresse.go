package entity

// Adresse est un bloc embarqué dans les entités qui portent une adresse
// postale (Entreprise, Utilisateur, Client, Fournisseur). Persisté à plat
// dans les colonnes de la table porteuse.
type Adresse struct {
	Adresse1   string
	Adresse2   string
	Ville      string
	CodePostal string
	Pays       string
}
