package repository

import "github.com/team48/gestion-stock-api/internal/domain/entity"

// UtilisateurRepository définit le port de persistance pour Utilisateur.
// GetByID et GetByEmail chargent les rôles avec l'utilisateur.
type UtilisateurRepository interface {
	Create(utilisateur *entity.Utilisateur) error
	GetByID(id int) (*entity.Utilisateur, error)
	GetByEmail(email string) (*entity.Utilisateur, error)
	GetByUsername(username string) (*entity.Utilisateur, error)
	List() ([]*entity.Utilisateur, error)
	Update(utilisateur *entity.Utilisateur) error
	Delete(id int) error
}
