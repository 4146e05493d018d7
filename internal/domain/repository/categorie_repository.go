package repository

import "github.com/team48/gestion-stock-api/internal/domain/entity"

// CategorieRepository définit le port de persistance pour Categorie.
type CategorieRepository interface {
	Create(categorie *entity.Categorie) error
	GetByID(id int) (*entity.Categorie, error)
	GetByCode(code string) (*entity.Categorie, error)
	List() ([]*entity.Categorie, error)
	Update(categorie *entity.Categorie) error
	Delete(id int) error
}
