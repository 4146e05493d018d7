package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
)

var _ repository.EntrepriseRepository = (*EntrepriseRepo)(nil)

const entrepriseColumns = `id, nom_entreprise, description, photo, email,
	adresse1, adresse2, ville, code_postal, pays, code_fiscal, num_tel, ste_web, creation_date`

// EntrepriseRepo implémentation du port EntrepriseRepository sur PostgreSQL
// (utilisable avec pool ou tx).
type EntrepriseRepo struct {
	q Querier
}

// NewEntrepriseRepository construit l'adaptateur de persistance des entreprises.
func NewEntrepriseRepository(q Querier) *EntrepriseRepo {
	return &EntrepriseRepo{q: q}
}

// Create persiste une nouvelle entreprise et pose l'ID généré.
func (r *EntrepriseRepo) Create(e *entity.Entreprise) error {
	query := `
		INSERT INTO entreprises (nom_entreprise, description, photo, email,
			adresse1, adresse2, ville, code_postal, pays, code_fiscal, num_tel, ste_web, creation_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		e.NomEntreprise, e.Description, e.Photo, e.Email,
		e.Adresse.Adresse1, e.Adresse.Adresse2, e.Adresse.Ville, e.Adresse.CodePostal, e.Adresse.Pays,
		e.CodeFiscal, e.NumTel, e.SteWeb, e.CreationDate,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("insert entreprise: %w", err)
	}
	return nil
}

// GetByID retourne l'entreprise ou (nil, nil) si absente.
func (r *EntrepriseRepo) GetByID(id int) (*entity.Entreprise, error) {
	query := `SELECT ` + entrepriseColumns + ` FROM entreprises WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByNomEntreprise retourne l'entreprise portant ce nom ou (nil, nil).
func (r *EntrepriseRepo) GetByNomEntreprise(nom string) (*entity.Entreprise, error) {
	query := `SELECT ` + entrepriseColumns + ` FROM entreprises WHERE nom_entreprise = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, nom))
}

// List retourne toutes les entreprises par ID croissant.
func (r *EntrepriseRepo) List() ([]*entity.Entreprise, error) {
	query := `SELECT ` + entrepriseColumns + ` FROM entreprises ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list entreprises: %w", err)
	}
	defer rows.Close()
	var list []*entity.Entreprise
	for rows.Next() {
		var e entity.Entreprise
		if err := scanEntreprise(rows, &e); err != nil {
			return nil, fmt.Errorf("scan entreprise: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update remplace tous les champs mutables de l'entreprise.
func (r *EntrepriseRepo) Update(e *entity.Entreprise) error {
	query := `
		UPDATE entreprises SET nom_entreprise = $2, description = $3, photo = $4, email = $5,
			adresse1 = $6, adresse2 = $7, ville = $8, code_postal = $9, pays = $10,
			code_fiscal = $11, num_tel = $12, ste_web = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.NomEntreprise, e.Description, e.Photo, e.Email,
		e.Adresse.Adresse1, e.Adresse.Adresse2, e.Adresse.Ville, e.Adresse.CodePostal, e.Adresse.Pays,
		e.CodeFiscal, e.NumTel, e.SteWeb,
	)
	if err != nil {
		return fmt.Errorf("update entreprise: %w", err)
	}
	return nil
}

// Delete supprime l'entreprise par ID.
func (r *EntrepriseRepo) Delete(id int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM entreprises WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete entreprise: %w", err)
	}
	return nil
}

func (r *EntrepriseRepo) scanOne(row pgx.Row) (*entity.Entreprise, error) {
	var e entity.Entreprise
	if err := scanEntreprise(row, &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get entreprise: %w", err)
	}
	return &e, nil
}

func scanEntreprise(row pgx.Row, e *entity.Entreprise) error {
	return row.Scan(
		&e.ID, &e.NomEntreprise, &e.Description, &e.Photo, &e.Email,
		&e.Adresse.Adresse1, &e.Adresse.Adresse2, &e.Adresse.Ville, &e.Adresse.CodePostal, &e.Adresse.Pays,
		&e.CodeFiscal, &e.NumTel, &e.SteWeb, &e.CreationDate,
	)
}
