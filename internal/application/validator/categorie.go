package validator

import "github.com/team48/gestion-stock-api/internal/application/dto"

var categorieFields = []fieldMessage{
	{"Code", "Veillez renseigner le code de la catégorie"},
	{"Designation", "Veillez renseigner la désignation de la catégorie"},
	{"EntrepriseID", "Veillez renseigner l'entreprise de la catégorie"},
}

// Categorie valide une requête de catégorie.
func Categorie(in dto.CategorieRequest) []string {
	return collect(in, categorieFields)
}
