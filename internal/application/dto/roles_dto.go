package dto

import "github.com/team48/gestion-stock-api/internal/domain/entity"

// RolesRequest entrée pour créer ou remplacer une attribution de rôle.
type RolesRequest struct {
	RoleName      string `json:"roleName" validate:"required"`
	UtilisateurID int    `json:"utilisateurId" validate:"required"`
	EntrepriseID  int    `json:"entrepriseId" validate:"required"`
}

// ToEntity convertit la requête en entité. Le nom de rôle est validé contre
// l'énumération par le validateur en amont.
func (r RolesRequest) ToEntity() *entity.Roles {
	return &entity.Roles{
		RoleName:      entity.RoleName(r.RoleName),
		UtilisateurID: r.UtilisateurID,
		EntrepriseID:  r.EntrepriseID,
	}
}

// RolesResponse projection d'une attribution de rôle.
type RolesResponse struct {
	ID            int    `json:"id"`
	RoleName      string `json:"roleName"`
	UtilisateurID int    `json:"utilisateurId"`
	EntrepriseID  int    `json:"entrepriseId"`
}

// RolesFromEntity convertit l'entité vers sa projection.
func RolesFromEntity(r *entity.Roles) *RolesResponse {
	if r == nil {
		return nil
	}
	return &RolesResponse{
		ID:            r.ID,
		RoleName:      string(r.RoleName),
		UtilisateurID: r.UtilisateurID,
		EntrepriseID:  r.EntrepriseID,
	}
}
