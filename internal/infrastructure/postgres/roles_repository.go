package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
)

var _ repository.RolesRepository = (*RolesRepo)(nil)

// RolesRepo implémentation du port RolesRepository sur PostgreSQL.
type RolesRepo struct {
	q Querier
}

// NewRolesRepository construit l'adaptateur de persistance des rôles.
func NewRolesRepository(q Querier) *RolesRepo {
	return &RolesRepo{q: q}
}

// Create persiste une nouvelle attribution et pose l'ID généré.
func (r *RolesRepo) Create(role *entity.Roles) error {
	query := `
		INSERT INTO roles (role_name, utilisateur_id, entreprise_id)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, role.RoleName, role.UtilisateurID, role.EntrepriseID).Scan(&role.ID)
	if err != nil {
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID retourne l'attribution ou (nil, nil) si absente.
func (r *RolesRepo) GetByID(id int) (*entity.Roles, error) {
	query := `SELECT id, role_name, utilisateur_id, entreprise_id FROM roles WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByRoleName retourne la première attribution portant ce nom de rôle ou
// (nil, nil).
func (r *RolesRepo) GetByRoleName(roleName entity.RoleName) (*entity.Roles, error) {
	query := `SELECT id, role_name, utilisateur_id, entreprise_id FROM roles WHERE role_name = $1 ORDER BY id LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, roleName))
}

// ListByUtilisateur retourne les attributions d'un utilisateur.
func (r *RolesRepo) ListByUtilisateur(utilisateurID int) ([]entity.Roles, error) {
	query := `SELECT id, role_name, utilisateur_id, entreprise_id FROM roles WHERE utilisateur_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, utilisateurID)
	if err != nil {
		return nil, fmt.Errorf("list roles par utilisateur: %w", err)
	}
	defer rows.Close()
	var list []entity.Roles
	for rows.Next() {
		var role entity.Roles
		if err := rows.Scan(&role.ID, &role.RoleName, &role.UtilisateurID, &role.EntrepriseID); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, role)
	}
	return list, rows.Err()
}

// List retourne toutes les attributions par ID croissant.
func (r *RolesRepo) List() ([]*entity.Roles, error) {
	query := `SELECT id, role_name, utilisateur_id, entreprise_id FROM roles ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Roles
	for rows.Next() {
		var role entity.Roles
		if err := rows.Scan(&role.ID, &role.RoleName, &role.UtilisateurID, &role.EntrepriseID); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Update remplace les champs mutables de l'attribution.
func (r *RolesRepo) Update(role *entity.Roles) error {
	query := `UPDATE roles SET role_name = $2, utilisateur_id = $3, entreprise_id = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, role.ID, role.RoleName, role.UtilisateurID, role.EntrepriseID)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// Delete supprime l'attribution par ID.
func (r *RolesRepo) Delete(id int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

func (r *RolesRepo) scanOne(row pgx.Row) (*entity.Roles, error) {
	var role entity.Roles
	if err := row.Scan(&role.ID, &role.RoleName, &role.UtilisateurID, &role.EntrepriseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return &role, nil
}
