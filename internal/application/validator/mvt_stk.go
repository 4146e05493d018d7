package validator

import (
	"time"

	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
)

var mvtStkFields = []fieldMessage{
	{"DateMvt", "Veillez renseigner la date du mouvement"},
	{"Quantite", "Veillez renseigner la quantité du mouvement"},
	{"TypeMvt", "Veillez renseigner le type du mouvement"},
	{"ArticleID", "Veillez renseigner l'article du mouvement"},
}

// MvtStk valide une requête de mouvement de stock : présence des champs,
// format de date et appartenance du type à l'énumération.
func MvtStk(in dto.MvtStkRequest) []string {
	errs := collect(in, mvtStkFields)
	if in.DateMvt != "" {
		if _, err := time.Parse(time.RFC3339, in.DateMvt); err != nil {
			errs = append(errs, "La date du mouvement doit être un horodatage RFC 3339")
		}
	}
	if in.TypeMvt != "" {
		if _, err := entity.ParseTypeMvtStk(in.TypeMvt); err != nil {
			errs = append(errs, "Le type du mouvement doit être ENTREE, SORTIE ou CORRECTION")
		}
	}
	return errs
}
