package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
)

var _ repository.FournisseurRepository = (*FournisseurRepo)(nil)

const fournisseurColumns = `id, nom, prenom, adresse1, adresse2, ville, code_postal, pays,
	photo, email, num_tel, entreprise_id`

// FournisseurRepo implémentation du port FournisseurRepository sur PostgreSQL.
type FournisseurRepo struct {
	q Querier
}

// NewFournisseurRepository construit l'adaptateur de persistance des fournisseurs.
func NewFournisseurRepository(q Querier) *FournisseurRepo {
	return &FournisseurRepo{q: q}
}

// Create persiste un nouveau fournisseur et pose l'ID généré.
func (r *FournisseurRepo) Create(f *entity.Fournisseur) error {
	query := `
		INSERT INTO fournisseurs (nom, prenom, adresse1, adresse2, ville, code_postal, pays,
			photo, email, num_tel, entreprise_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		f.Nom, f.Prenom, f.Adresse.Adresse1, f.Adresse.Adresse2, f.Adresse.Ville,
		f.Adresse.CodePostal, f.Adresse.Pays, f.Photo, f.Email, f.NumTel, f.EntrepriseID,
	).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("insert fournisseur: %w", err)
	}
	return nil
}

// GetByID retourne le fournisseur ou (nil, nil) si absent.
func (r *FournisseurRepo) GetByID(id int) (*entity.Fournisseur, error) {
	query := `SELECT ` + fournisseurColumns + ` FROM fournisseurs WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByNom retourne le fournisseur portant ce nom ou (nil, nil).
func (r *FournisseurRepo) GetByNom(nom string) (*entity.Fournisseur, error) {
	query := `SELECT ` + fournisseurColumns + ` FROM fournisseurs WHERE nom = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, nom))
}

// List retourne tous les fournisseurs par ID croissant.
func (r *FournisseurRepo) List() ([]*entity.Fournisseur, error) {
	query := `SELECT ` + fournisseurColumns + ` FROM fournisseurs ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list fournisseurs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fournisseur
	for rows.Next() {
		var f entity.Fournisseur
		if err := scanFournisseur(rows, &f); err != nil {
			return nil, fmt.Errorf("scan fournisseur: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update remplace les champs mutables du fournisseur.
func (r *FournisseurRepo) Update(f *entity.Fournisseur) error {
	query := `
		UPDATE fournisseurs SET nom = $2, prenom = $3, adresse1 = $4, adresse2 = $5, ville = $6,
			code_postal = $7, pays = $8, photo = $9, email = $10, num_tel = $11, entreprise_id = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Nom, f.Prenom, f.Adresse.Adresse1, f.Adresse.Adresse2, f.Adresse.Ville,
		f.Adresse.CodePostal, f.Adresse.Pays, f.Photo, f.Email, f.NumTel, f.EntrepriseID,
	)
	if err != nil {
		return fmt.Errorf("update fournisseur: %w", err)
	}
	return nil
}

// Delete supprime le fournisseur par ID.
func (r *FournisseurRepo) Delete(id int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM fournisseurs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fournisseur: %w", err)
	}
	return nil
}

func (r *FournisseurRepo) scanOne(row pgx.Row) (*entity.Fournisseur, error) {
	var f entity.Fournisseur
	if err := scanFournisseur(row, &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fournisseur: %w", err)
	}
	return &f, nil
}

func scanFournisseur(row pgx.Row, f *entity.Fournisseur) error {
	return row.Scan(
		&f.ID, &f.Nom, &f.Prenom,
		&f.Adresse.Adresse1, &f.Adresse.Adresse2, &f.Adresse.Ville, &f.Adresse.CodePostal, &f.Adresse.Pays,
		&f.Photo, &f.Email, &f.NumTel, &f.EntrepriseID,
	)
}
