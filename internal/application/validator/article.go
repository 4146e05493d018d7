package validator

import "github.com/team48/gestion-stock-api/internal/application/dto"

var articleFields = []fieldMessage{
	{"CodeArticle", "Veillez renseigner le code de l'article"},
	{"Designation", "Veillez renseigner la désignation de l'article"},
	{"PrixUnitaire", "Veillez renseigner le prix unitaire de l'article"},
	{"PrixUnitaireTtc", "Veillez renseigner le prix unitaire TTC de l'article"},
	{"CategorieID", "Veillez sélectionner une catégorie"},
	{"EntrepriseID", "Veillez renseigner l'entreprise de l'article"},
}

// Article valide une requête d'article.
func Article(in dto.ArticleRequest) []string {
	return collect(in, articleFields)
}
