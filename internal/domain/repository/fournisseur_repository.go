package repository

import "github.com/team48/gestion-stock-api/internal/domain/entity"

// FournisseurRepository définit le port de persistance pour Fournisseur.
type FournisseurRepository interface {
	Create(fournisseur *entity.Fournisseur) error
	GetByID(id int) (*entity.Fournisseur, error)
	GetByNom(nom string) (*entity.Fournisseur, error)
	List() ([]*entity.Fournisseur, error)
	Update(fournisseur *entity.Fournisseur) error
	Delete(id int) error
}
