package entity

import "time"

// Entreprise représente le tenant racine du système. La plupart des autres
// entités lui sont rattachées par EntrepriseID.
type Entreprise struct {
	ID            int
	NomEntreprise string
	Description   string
	Photo         string
	Email         string
	Adresse       Adresse
	CodeFiscal    string
	NumTel        string
	SteWeb        string
	CreationDate  time.Time
}
