package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/team48/gestion-stock-api/internal/domain"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
)

var _ repository.UtilisateurRepository = (*UtilisateurRepo)(nil)

const utilisateurColumns = `id, nom, prenom, username, email, mot_de_passe, date_de_naissance,
	photo, adresse1, adresse2, ville, code_postal, pays, entreprise_id, enabled, account_non_locked`

// UtilisateurRepo implémentation du port UtilisateurRepository sur
// PostgreSQL. Les lectures unitaires chargent les rôles avec l'utilisateur.
type UtilisateurRepo struct {
	q Querier
}

// NewUtilisateurRepository construit l'adaptateur de persistance des utilisateurs.
func NewUtilisateurRepository(q Querier) *UtilisateurRepo {
	return &UtilisateurRepo{q: q}
}

// Create persiste un nouvel utilisateur et pose l'ID généré. Email ou
// username déjà pris -> DuplicateError.
func (r *UtilisateurRepo) Create(u *entity.Utilisateur) error {
	query := `
		INSERT INTO utilisateurs (nom, prenom, username, email, mot_de_passe, date_de_naissance,
			photo, adresse1, adresse2, ville, code_postal, pays, entreprise_id, enabled, account_non_locked)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		u.Nom, u.Prenom, u.Username, u.Email, u.MotDePasse, u.DateDeNaissance,
		u.Photo, u.Adresse.Adresse1, u.Adresse.Adresse2, u.Adresse.Ville, u.Adresse.CodePostal,
		u.Adresse.Pays, u.EntrepriseID, u.Enabled, u.AccountNonLocked,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Message: "Email ou nom d'utilisateur déjà utilisé"}
		}
		return fmt.Errorf("insert utilisateur: %w", err)
	}
	return nil
}

// GetByID retourne l'utilisateur avec ses rôles ou (nil, nil) si absent.
func (r *UtilisateurRepo) GetByID(id int) (*entity.Utilisateur, error) {
	query := `SELECT ` + utilisateurColumns + ` FROM utilisateurs WHERE id = $1`
	return r.scanOneWithRoles(r.q.QueryRow(context.Background(), query, id))
}

// GetByEmail retourne l'utilisateur portant cet email ou (nil, nil).
func (r *UtilisateurRepo) GetByEmail(email string) (*entity.Utilisateur, error) {
	query := `SELECT ` + utilisateurColumns + ` FROM utilisateurs WHERE email = $1`
	return r.scanOneWithRoles(r.q.QueryRow(context.Background(), query, email))
}

// GetByUsername retourne l'utilisateur portant ce username ou (nil, nil).
func (r *UtilisateurRepo) GetByUsername(username string) (*entity.Utilisateur, error) {
	query := `SELECT ` + utilisateurColumns + ` FROM utilisateurs WHERE username = $1`
	return r.scanOneWithRoles(r.q.QueryRow(context.Background(), query, username))
}

// List retourne tous les utilisateurs par ID croissant, rôles compris.
func (r *UtilisateurRepo) List() ([]*entity.Utilisateur, error) {
	query := `SELECT ` + utilisateurColumns + ` FROM utilisateurs ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list utilisateurs: %w", err)
	}
	defer rows.Close()
	var list []*entity.Utilisateur
	for rows.Next() {
		var u entity.Utilisateur
		if err := scanUtilisateur(rows, &u); err != nil {
			return nil, fmt.Errorf("scan utilisateur: %w", err)
		}
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, u := range list {
		if err := r.loadRoles(u); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update remplace les champs mutables de l'utilisateur.
func (r *UtilisateurRepo) Update(u *entity.Utilisateur) error {
	query := `
		UPDATE utilisateurs SET nom = $2, prenom = $3, username = $4, email = $5, mot_de_passe = $6,
			date_de_naissance = $7, photo = $8, adresse1 = $9, adresse2 = $10, ville = $11,
			code_postal = $12, pays = $13, entreprise_id = $14, enabled = $15, account_non_locked = $16
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Nom, u.Prenom, u.Username, u.Email, u.MotDePasse,
		u.DateDeNaissance, u.Photo, u.Adresse.Adresse1, u.Adresse.Adresse2, u.Adresse.Ville,
		u.Adresse.CodePostal, u.Adresse.Pays, u.EntrepriseID, u.Enabled, u.AccountNonLocked,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Message: "Email ou nom d'utilisateur déjà utilisé"}
		}
		return fmt.Errorf("update utilisateur: %w", err)
	}
	return nil
}

// Delete supprime l'utilisateur par ID ; ses rôles suivent en cascade.
func (r *UtilisateurRepo) Delete(id int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM utilisateurs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete utilisateur: %w", err)
	}
	return nil
}

func (r *UtilisateurRepo) scanOneWithRoles(row pgx.Row) (*entity.Utilisateur, error) {
	var u entity.Utilisateur
	if err := scanUtilisateur(row, &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get utilisateur: %w", err)
	}
	if err := r.loadRoles(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UtilisateurRepo) loadRoles(u *entity.Utilisateur) error {
	query := `SELECT id, role_name, utilisateur_id, entreprise_id FROM roles WHERE utilisateur_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, u.ID)
	if err != nil {
		return fmt.Errorf("list roles utilisateur: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var role entity.Roles
		if err := rows.Scan(&role.ID, &role.RoleName, &role.UtilisateurID, &role.EntrepriseID); err != nil {
			return fmt.Errorf("scan role: %w", err)
		}
		u.Roles = append(u.Roles, role)
	}
	return rows.Err()
}

func scanUtilisateur(row pgx.Row, u *entity.Utilisateur) error {
	return row.Scan(
		&u.ID, &u.Nom, &u.Prenom, &u.Username, &u.Email, &u.MotDePasse, &u.DateDeNaissance,
		&u.Photo, &u.Adresse.Adresse1, &u.Adresse.Adresse2, &u.Adresse.Ville, &u.Adresse.CodePostal,
		&u.Adresse.Pays, &u.EntrepriseID, &u.Enabled, &u.AccountNonLocked,
	)
}
