// Package validator porte la validation métier des DTO d'entrée : chaque
// fonction retourne la liste ordonnée des violations sous forme de messages
// lisibles (liste vide = requête valide). Aucune fonction n'a d'effet de bord.
//
// Les contraintes de présence sont déclarées par tags `validate` sur les DTO
// et évaluées par go-playground/validator ; les messages restent définis ici,
// champ par champ, pour garder un ordre et une formulation stables.
package validator

import (
	"reflect"

	playground "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidate()

// newValidate construit l'instance partagée. decimal.Decimal est exposé au
// moteur comme sa valeur numérique : sans cela `required` traverserait la
// struct au lieu de tester le zéro, et un montant absent passerait.
func newValidate() *playground.Validate {
	v := playground.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// fieldMessage associe un champ de struct au message émis quand il est en
// violation. L'ordre de déclaration est l'ordre d'émission.
type fieldMessage struct {
	field   string
	message string
}

// failedFields évalue les tags du DTO et retourne l'ensemble des champs en
// violation, identifiés par leur nom de struct.
func failedFields(v any) map[string]bool {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(playground.ValidationErrors)
	if !ok {
		// InvalidValidationError : valeur non structurée, rien à détailler.
		return nil
	}
	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fe.StructField()] = true
	}
	return failed
}

// collect projette les champs en violation sur leur message, dans l'ordre de
// la table.
func collect(v any, order []fieldMessage) []string {
	failed := failedFields(v)
	if len(failed) == 0 {
		return nil
	}
	var errs []string
	for _, fm := range order {
		if failed[fm.field] {
			errs = append(errs, fm.message)
		}
	}
	return errs
}
