package dto

import (
	"time"

	"github.com/team48/gestion-stock-api/internal/domain/entity"
)

// UtilisateurRequest entrée pour créer ou remplacer un utilisateur. Arrive en
// multipart form data ; DateDeNaissance est une date ISO (2006-01-02), l'image
// éventuelle est traitée par le handler et aboutit dans Photo.
type UtilisateurRequest struct {
	Nom             string `json:"nom" form:"nom" validate:"required"`
	Prenom          string `json:"prenom" form:"prenom" validate:"required"`
	Username        string `json:"username" form:"username" validate:"required"`
	Email           string `json:"email" form:"email" validate:"required,email"`
	MotDePasse      string `json:"motDePasse" form:"motDePasse" validate:"required"`
	DateDeNaissance string `json:"dateDeNaissance" form:"dateDeNaissance" validate:"required"`
	Adresse1        string `json:"adresse1" form:"adresse1" validate:"required"`
	Adresse2        string `json:"adresse2" form:"adresse2"`
	Ville           string `json:"ville" form:"ville" validate:"required"`
	CodePostal      string `json:"codePostal" form:"codePostal" validate:"required"`
	Pays            string `json:"pays" form:"pays" validate:"required"`
	EntrepriseID    int    `json:"entrepriseId" form:"entrepriseId" validate:"required"`
	Photo           string `json:"photo" form:"-"`
}

// ToEntity convertit la requête en entité. Le mot de passe est repris tel
// quel : le hachage relève du cas d'usage. La date de naissance invalide est
// rejetée par le validateur en amont.
func (r UtilisateurRequest) ToEntity() *entity.Utilisateur {
	naissance, _ := time.Parse("2006-01-02", r.DateDeNaissance)
	return &entity.Utilisateur{
		Nom:             r.Nom,
		Prenom:          r.Prenom,
		Username:        r.Username,
		Email:           r.Email,
		MotDePasse:      r.MotDePasse,
		DateDeNaissance: naissance,
		Adresse: entity.Adresse{
			Adresse1:   r.Adresse1,
			Adresse2:   r.Adresse2,
			Ville:      r.Ville,
			CodePostal: r.CodePostal,
			Pays:       r.Pays,
		},
		Photo:        r.Photo,
		EntrepriseID: r.EntrepriseID,
	}
}

// UtilisateurResponse projection d'un utilisateur, sans le mot de passe.
type UtilisateurResponse struct {
	ID              int             `json:"id"`
	Nom             string          `json:"nom"`
	Prenom          string          `json:"prenom"`
	Username        string          `json:"username"`
	Email           string          `json:"email"`
	DateDeNaissance time.Time       `json:"dateDeNaissance"`
	Photo           string          `json:"photo,omitempty"`
	Adresse         AdresseDto      `json:"adresse"`
	EntrepriseID    int             `json:"entrepriseId,omitempty"`
	Roles           []RolesResponse `json:"roles"`
}

// UtilisateurFromEntity convertit l'entité vers sa projection.
func UtilisateurFromEntity(u *entity.Utilisateur) *UtilisateurResponse {
	if u == nil {
		return nil
	}
	roles := make([]RolesResponse, 0, len(u.Roles))
	for i := range u.Roles {
		roles = append(roles, *RolesFromEntity(&u.Roles[i]))
	}
	return &UtilisateurResponse{
		ID:              u.ID,
		Nom:             u.Nom,
		Prenom:          u.Prenom,
		Username:        u.Username,
		Email:           u.Email,
		DateDeNaissance: u.DateDeNaissance,
		Photo:           u.Photo,
		Adresse:         AdresseFromEntity(u.Adresse),
		EntrepriseID:    u.EntrepriseID,
		Roles:           roles,
	}
}
