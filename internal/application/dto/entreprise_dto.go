package dto

import (
	"time"

	"github.com/team48/gestion-stock-api/internal/domain/entity"
)

// EntrepriseRequest entrée pour créer ou remplacer une entreprise.
// L'adresse arrive à plat, comme dans le formulaire d'origine.
type EntrepriseRequest struct {
	NomEntreprise string `json:"nomEntreprise" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Adresse1      string `json:"adresse1" validate:"required"`
	Adresse2      string `json:"adresse2"`
	Ville         string `json:"ville" validate:"required"`
	CodePostal    string `json:"codePostal" validate:"required"`
	Pays          string `json:"pays" validate:"required"`
	CodeFiscal    string `json:"codeFiscal" validate:"required"`
	NumTel        string `json:"numTel" validate:"required"`
	SteWeb        string `json:"steWeb"`
	Photo         string `json:"photo"`
}

// ToEntity convertit la requête en entité (ID et date de création non posés).
func (r EntrepriseRequest) ToEntity() *entity.Entreprise {
	return &entity.Entreprise{
		NomEntreprise: r.NomEntreprise,
		Description:   r.Description,
		Photo:         r.Photo,
		Email:         r.Email,
		Adresse: entity.Adresse{
			Adresse1:   r.Adresse1,
			Adresse2:   r.Adresse2,
			Ville:      r.Ville,
			CodePostal: r.CodePostal,
			Pays:       r.Pays,
		},
		CodeFiscal: r.CodeFiscal,
		NumTel:     r.NumTel,
		SteWeb:     r.SteWeb,
	}
}

// EntrepriseResponse projection d'une entreprise.
type EntrepriseResponse struct {
	ID            int        `json:"id"`
	NomEntreprise string     `json:"nomEntreprise"`
	Description   string     `json:"description"`
	Photo         string     `json:"photo,omitempty"`
	Email         string     `json:"email"`
	Adresse       AdresseDto `json:"adresse"`
	CodeFiscal    string     `json:"codeFiscal"`
	NumTel        string     `json:"numTel"`
	SteWeb        string     `json:"steWeb"`
	CreationDate  time.Time  `json:"creationDate"`
}

// EntrepriseFromEntity convertit l'entité vers sa projection.
func EntrepriseFromEntity(e *entity.Entreprise) *EntrepriseResponse {
	if e == nil {
		return nil
	}
	return &EntrepriseResponse{
		ID:            e.ID,
		NomEntreprise: e.NomEntreprise,
		Description:   e.Description,
		Photo:         e.Photo,
		Email:         e.Email,
		Adresse:       AdresseFromEntity(e.Adresse),
		CodeFiscal:    e.CodeFiscal,
		NumTel:        e.NumTel,
		SteWeb:        e.SteWeb,
		CreationDate:  e.CreationDate,
	}
}
