package repository

import "github.com/team48/gestion-stock-api/internal/domain/entity"

// CommandeFournisseurRepository définit le port de persistance pour l'en-tête
// de commande fournisseur.
type CommandeFournisseurRepository interface {
	Create(commande *entity.CommandeFournisseur) error
	GetByID(id int) (*entity.CommandeFournisseur, error)
	GetByCode(code string) (*entity.CommandeFournisseur, error)
	List() ([]*entity.CommandeFournisseur, error)
	Update(commande *entity.CommandeFournisseur) error
	Delete(id int) error
}

// LigneCommandeFournisseurRepository gère la collection de lignes possédée
// par une commande fournisseur.
type LigneCommandeFournisseurRepository interface {
	Create(ligne *entity.LigneCommandeFournisseur) error
	GetByID(id int) (*entity.LigneCommandeFournisseur, error)
	ListByCommande(commandeID int) ([]entity.LigneCommandeFournisseur, error)
	Update(ligne *entity.LigneCommandeFournisseur) error
	Delete(id int) error
	DeleteByCommande(commandeID int) error
}
