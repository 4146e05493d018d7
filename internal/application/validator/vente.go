package validator

import (
	"fmt"
	"time"

	"github.com/team48/gestion-stock-api/internal/application/dto"
)

var venteFields = []fieldMessage{
	{"Code", "Veillez renseigner le code de la vente"},
	{"DateVente", "Veillez renseigner la date de la vente"},
	{"EntrepriseID", "Veillez renseigner l'entreprise de la vente"},
}

var ligneVenteFields = []fieldMessage{
	{"ArticleID", "Veillez renseigner l'identifiant de l'article de la ligne de vente"},
	{"Quantite", "Veillez renseigner la quantité de la ligne de vente"},
	{"PrixUnitaire", "Veillez renseigner le prix unitaire de la ligne de vente"},
}

// Vente valide un en-tête de vente et chacune de ses lignes. Les messages de
// ligne sont préfixés par leur position (1-based) pour rester exploitables.
func Vente(in dto.VenteRequest) []string {
	errs := collect(in, venteFields)
	if in.DateVente != "" {
		if _, err := time.Parse(time.RFC3339, in.DateVente); err != nil {
			errs = append(errs, "La date de la vente doit être un horodatage RFC 3339")
		}
	}
	if len(in.LigneVentes) == 0 {
		errs = append(errs, "Veillez renseigner au moins une ligne de vente")
		return errs
	}
	for i, ligne := range in.LigneVentes {
		for _, msg := range collect(ligne, ligneVenteFields) {
			errs = append(errs, fmt.Sprintf("Ligne %d : %s", i+1, msg))
		}
	}
	return errs
}
