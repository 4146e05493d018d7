package repository

import "github.com/team48/gestion-stock-api/internal/domain/entity"

// CommandeClientRepository définit le port de persistance pour l'en-tête de
// commande client. GetByID et GetByCode chargent les lignes avec leurs articles.
type CommandeClientRepository interface {
	Create(commande *entity.CommandeClient) error
	GetByID(id int) (*entity.CommandeClient, error)
	GetByCode(code string) (*entity.CommandeClient, error)
	List() ([]*entity.CommandeClient, error)
	Update(commande *entity.CommandeClient) error
	Delete(id int) error
}

// LigneCommandeClientRepository gère la collection de lignes possédée par une
// commande client.
type LigneCommandeClientRepository interface {
	Create(ligne *entity.LigneCommandeClient) error
	GetByID(id int) (*entity.LigneCommandeClient, error)
	ListByCommande(commandeID int) ([]entity.LigneCommandeClient, error)
	Update(ligne *entity.LigneCommandeClient) error
	Delete(id int) error
	DeleteByCommande(commandeID int) error
}
