package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

const clientColumns = `id, nom, prenom, adresse1, adresse2, ville, code_postal, pays,
	photo, email, num_tel, entreprise_id`

// ClientRepo implémentation du port ClientRepository sur PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construit l'adaptateur de persistance des clients.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

// Create persiste un nouveau client et pose l'ID généré.
func (r *ClientRepo) Create(c *entity.Client) error {
	query := `
		INSERT INTO clients (nom, prenom, adresse1, adresse2, ville, code_postal, pays,
			photo, email, num_tel, entreprise_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.Nom, c.Prenom, c.Adresse.Adresse1, c.Adresse.Adresse2, c.Adresse.Ville,
		c.Adresse.CodePostal, c.Adresse.Pays, c.Photo, c.Email, c.NumTel, c.EntrepriseID,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID retourne le client ou (nil, nil) si absent.
func (r *ClientRepo) GetByID(id int) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByNom retourne le client portant ce nom ou (nil, nil).
func (r *ClientRepo) GetByNom(nom string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE nom = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, nom))
}

// List retourne tous les clients par ID croissant.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := scanClient(rows, &c); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update remplace les champs mutables du client.
func (r *ClientRepo) Update(c *entity.Client) error {
	query := `
		UPDATE clients SET nom = $2, prenom = $3, adresse1 = $4, adresse2 = $5, ville = $6,
			code_postal = $7, pays = $8, photo = $9, email = $10, num_tel = $11, entreprise_id = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Nom, c.Prenom, c.Adresse.Adresse1, c.Adresse.Adresse2, c.Adresse.Ville,
		c.Adresse.CodePostal, c.Adresse.Pays, c.Photo, c.Email, c.NumTel, c.EntrepriseID,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

// Delete supprime le client par ID.
func (r *ClientRepo) Delete(id int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

func (r *ClientRepo) scanOne(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	if err := scanClient(row, &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

func scanClient(row pgx.Row, c *entity.Client) error {
	return row.Scan(
		&c.ID, &c.Nom, &c.Prenom,
		&c.Adresse.Adresse1, &c.Adresse.Adresse2, &c.Adresse.Ville, &c.Adresse.CodePostal, &c.Adresse.Pays,
		&c.Photo, &c.Email, &c.NumTel, &c.EntrepriseID,
	)
}
