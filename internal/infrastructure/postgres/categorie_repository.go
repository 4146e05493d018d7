package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
)

var _ repository.CategorieRepository = (*CategorieRepo)(nil)

// CategorieRepo implémentation du port CategorieRepository sur PostgreSQL.
type CategorieRepo struct {
	q Querier
}

// NewCategorieRepository construit l'adaptateur de persistance des catégories.
func NewCategorieRepository(q Querier) *CategorieRepo {
	return &CategorieRepo{q: q}
}

// Create persiste une nouvelle catégorie et pose l'ID généré.
func (r *CategorieRepo) Create(c *entity.Categorie) error {
	query := `
		INSERT INTO categories (code, designation, entreprise_id)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, c.Code, c.Designation, c.EntrepriseID).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert categorie: %w", err)
	}
	return nil
}

// GetByID retourne la catégorie ou (nil, nil) si absente.
func (r *CategorieRepo) GetByID(id int) (*entity.Categorie, error) {
	query := `SELECT id, code, designation, entreprise_id FROM categories WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCode retourne la catégorie portant ce code ou (nil, nil).
func (r *CategorieRepo) GetByCode(code string) (*entity.Categorie, error) {
	query := `SELECT id, code, designation, entreprise_id FROM categories WHERE code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code))
}

// List retourne toutes les catégories par ID croissant.
func (r *CategorieRepo) List() ([]*entity.Categorie, error) {
	query := `SELECT id, code, designation, entreprise_id FROM categories ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categorie
	for rows.Next() {
		var c entity.Categorie
		if err := rows.Scan(&c.ID, &c.Code, &c.Designation, &c.EntrepriseID); err != nil {
			return nil, fmt.Errorf("scan categorie: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update remplace les champs mutables de la catégorie.
func (r *CategorieRepo) Update(c *entity.Categorie) error {
	query := `UPDATE categories SET code = $2, designation = $3, entreprise_id = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Code, c.Designation, c.EntrepriseID)
	if err != nil {
		return fmt.Errorf("update categorie: %w", err)
	}
	return nil
}

// Delete supprime la catégorie par ID.
func (r *CategorieRepo) Delete(id int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete categorie: %w", err)
	}
	return nil
}

func (r *CategorieRepo) scanOne(row pgx.Row) (*entity.Categorie, error) {
	var c entity.Categorie
	if err := row.Scan(&c.ID, &c.Code, &c.Designation, &c.EntrepriseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categorie: %w", err)
	}
	return &c, nil
}
