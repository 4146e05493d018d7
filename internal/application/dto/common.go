package dto

import "github.com/team48/gestion-stock-api/internal/domain/entity"

// ErrorResponse corps d'erreur HTTP. Errors porte la liste ordonnée des
// violations du validateur quand il y en a.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// AdresseDto projection transport d'une adresse embarquée.
type AdresseDto struct {
	Adresse1   string `json:"adresse1"`
	Adresse2   string `json:"adresse2,omitempty"`
	Ville      string `json:"ville"`
	CodePostal string `json:"codePostal"`
	Pays       string `json:"pays"`
}

// ToEntity convertit la projection vers le bloc embarqué.
func (a AdresseDto) ToEntity() entity.Adresse {
	return entity.Adresse{
		Adresse1:   a.Adresse1,
		Adresse2:   a.Adresse2,
		Ville:      a.Ville,
		CodePostal: a.CodePostal,
		Pays:       a.Pays,
	}
}

// AdresseFromEntity convertit le bloc embarqué vers sa projection.
func AdresseFromEntity(a entity.Adresse) AdresseDto {
	return AdresseDto{
		Adresse1:   a.Adresse1,
		Adresse2:   a.Adresse2,
		Ville:      a.Ville,
		CodePostal: a.CodePostal,
		Pays:       a.Pays,
	}
}
