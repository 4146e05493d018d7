package repository

import "github.com/team48/gestion-stock-api/internal/domain/entity"

// RolesRepository définit le port de persistance pour Roles.
type RolesRepository interface {
	Create(role *entity.Roles) error
	GetByID(id int) (*entity.Roles, error)
	GetByRoleName(roleName entity.RoleName) (*entity.Roles, error)
	ListByUtilisateur(utilisateurID int) ([]entity.Roles, error)
	List() ([]*entity.Roles, error)
	Update(role *entity.Roles) error
	Delete(id int) error
}
