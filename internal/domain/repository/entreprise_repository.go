package repository

import "github.com/team48/gestion-stock-api/internal/domain/entity"

// EntrepriseRepository définit le port de persistance pour Entreprise.
// Les lectures retournent (nil, nil) quand aucune ligne ne correspond.
type EntrepriseRepository interface {
	Create(entreprise *entity.Entreprise) error
	GetByID(id int) (*entity.Entreprise, error)
	GetByNomEntreprise(nom string) (*entity.Entreprise, error)
	List() ([]*entity.Entreprise, error)
	Update(entreprise *entity.Entreprise) error
	Delete(id int) error
}
