package entity

import "fmt"

// RoleName énumère les rôles applicatifs reconnus par le contrôle d'accès.
type RoleName string

const (
	RoleAdmin    RoleName = "ADMIN"
	RoleManager  RoleName = "MANAGER"
	RoleEmployee RoleName = "EMPLOYEE"
)

// ParseRoleName valide un nom de rôle fourni en entrée. Retourne une erreur
// sur toute valeur hors énumération.
func ParseRoleName(s string) (RoleName, error) {
	switch RoleName(s) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return RoleName(s), nil
	}
	return "", fmt.Errorf("rôle inconnu: %q", s)
}

// Roles associe un rôle à un utilisateur dans le périmètre d'une entreprise.
// Aucune unicité composite n'est imposée : un utilisateur peut cumuler
// plusieurs lignes.
type Roles struct {
	ID            int
	RoleName      RoleName
	UtilisateurID int
	EntrepriseID  int
}
