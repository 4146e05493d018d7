package dto

import "github.com/team48/gestion-stock-api/internal/domain/entity"

// ClientRequest entrée pour créer ou remplacer un client.
type ClientRequest struct {
	Nom          string `json:"nom" validate:"required"`
	Prenom       string `json:"prenom" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Adresse1     string `json:"adresse1" validate:"required"`
	Adresse2     string `json:"adresse2"`
	Ville        string `json:"ville" validate:"required"`
	CodePostal   string `json:"codePostal" validate:"required"`
	Pays         string `json:"pays" validate:"required"`
	NumTel       string `json:"numTel" validate:"required"`
	EntrepriseID int    `json:"entrepriseId" validate:"required"`
	Photo        string `json:"photo"`
}

// ToEntity convertit la requête en entité (ID non posé).
func (r ClientRequest) ToEntity() *entity.Client {
	return &entity.Client{
		Nom:    r.Nom,
		Prenom: r.Prenom,
		Adresse: entity.Adresse{
			Adresse1:   r.Adresse1,
			Adresse2:   r.Adresse2,
			Ville:      r.Ville,
			CodePostal: r.CodePostal,
			Pays:       r.Pays,
		},
		Photo:        r.Photo,
		Email:        r.Email,
		NumTel:       r.NumTel,
		EntrepriseID: r.EntrepriseID,
	}
}

// ClientResponse projection d'un client.
type ClientResponse struct {
	ID           int        `json:"id"`
	Nom          string     `json:"nom"`
	Prenom       string     `json:"prenom"`
	Adresse      AdresseDto `json:"adresse"`
	Photo        string     `json:"photo,omitempty"`
	Email        string     `json:"email"`
	NumTel       string     `json:"numTel"`
	EntrepriseID int        `json:"entrepriseId"`
}

// ClientFromEntity convertit l'entité vers sa projection.
func ClientFromEntity(c *entity.Client) *ClientResponse {
	if c == nil {
		return nil
	}
	return &ClientResponse{
		ID:           c.ID,
		Nom:          c.Nom,
		Prenom:       c.Prenom,
		Adresse:      AdresseFromEntity(c.Adresse),
		Photo:        c.Photo,
		Email:        c.Email,
		NumTel:       c.NumTel,
		EntrepriseID: c.EntrepriseID,
	}
}
