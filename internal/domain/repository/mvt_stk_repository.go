package repository

import "github.com/team48/gestion-stock-api/internal/domain/entity"

// MvtStkRepository définit le port de persistance du journal de stock.
// Les lectures joignent l'article référencé.
type MvtStkRepository interface {
	Create(mvt *entity.MvtStk) error
	GetByID(id int) (*entity.MvtStk, error)
	List() ([]*entity.MvtStk, error)
	Update(mvt *entity.MvtStk) error
	Delete(id int) error
}
