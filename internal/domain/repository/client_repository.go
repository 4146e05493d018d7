package repository

import "github.com/team48/gestion-stock-api/internal/domain/entity"

// ClientRepository définit le port de persistance pour Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id int) (*entity.Client, error)
	GetByNom(nom string) (*entity.Client, error)
	List() ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id int) error
}
