package repository

import "github.com/team48/gestion-stock-api/internal/domain/entity"

// VenteRepository définit le port de persistance pour l'en-tête de vente.
// GetByID et GetByCode chargent les lignes de vente.
type VenteRepository interface {
	Create(vente *entity.Vente) error
	GetByID(id int) (*entity.Vente, error)
	GetByCode(code string) (*entity.Vente, error)
	List() ([]*entity.Vente, error)
	Update(vente *entity.Vente) error
	Delete(id int) error
}

// LigneVenteRepository gère la collection de lignes possédée par une vente.
type LigneVenteRepository interface {
	Create(ligne *entity.LigneVente) error
	ListByVente(venteID int) ([]entity.LigneVente, error)
	DeleteByVente(venteID int) error
}
