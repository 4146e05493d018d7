package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
)

var _ repository.CommandeFournisseurRepository = (*CommandeFournisseurRepo)(nil)
var _ repository.LigneCommandeFournisseurRepository = (*LigneCommandeFournisseurRepo)(nil)

// CommandeFournisseurRepo implémentation du port
// CommandeFournisseurRepository sur PostgreSQL. Les lectures unitaires
// chargent le fournisseur et les lignes.
type CommandeFournisseurRepo struct {
	q Querier
}

// NewCommandeFournisseurRepository construit l'adaptateur de persistance des
// commandes fournisseur.
func NewCommandeFournisseurRepository(q Querier) *CommandeFournisseurRepo {
	return &CommandeFournisseurRepo{q: q}
}

// Create persiste un nouvel en-tête et pose l'ID généré.
func (r *CommandeFournisseurRepo) Create(c *entity.CommandeFournisseur) error {
	query := `
		INSERT INTO commandes_fournisseur (code, date_commande, fournisseur_id, entreprise_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, c.Code, c.DateCommande, c.FournisseurID, c.EntrepriseID).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert commande fournisseur: %w", err)
	}
	return nil
}

// GetByID retourne la commande avec son fournisseur et ses lignes, ou (nil, nil).
func (r *CommandeFournisseurRepo) GetByID(id int) (*entity.CommandeFournisseur, error) {
	query := `SELECT id, code, date_commande, fournisseur_id, entreprise_id FROM commandes_fournisseur WHERE id = $1`
	return r.scanOneLoaded(r.q.QueryRow(context.Background(), query, id))
}

// GetByCode retourne la commande portant ce code ou (nil, nil).
func (r *CommandeFournisseurRepo) GetByCode(code string) (*entity.CommandeFournisseur, error) {
	query := `SELECT id, code, date_commande, fournisseur_id, entreprise_id FROM commandes_fournisseur WHERE code = $1`
	return r.scanOneLoaded(r.q.QueryRow(context.Background(), query, code))
}

// List retourne toutes les commandes par ID croissant, lignes comprises.
func (r *CommandeFournisseurRepo) List() ([]*entity.CommandeFournisseur, error) {
	query := `SELECT id, code, date_commande, fournisseur_id, entreprise_id FROM commandes_fournisseur ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list commandes fournisseur: %w", err)
	}
	defer rows.Close()
	var list []*entity.CommandeFournisseur
	for rows.Next() {
		var c entity.CommandeFournisseur
		if err := rows.Scan(&c.ID, &c.Code, &c.DateCommande, &c.FournisseurID, &c.EntrepriseID); err != nil {
			return nil, fmt.Errorf("scan commande fournisseur: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, c := range list {
		if err := r.loadRelations(c); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Update remplace les champs de l'en-tête.
func (r *CommandeFournisseurRepo) Update(c *entity.CommandeFournisseur) error {
	query := `UPDATE commandes_fournisseur SET code = $2, date_commande = $3, fournisseur_id = $4, entreprise_id = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Code, c.DateCommande, c.FournisseurID, c.EntrepriseID)
	if err != nil {
		return fmt.Errorf("update commande fournisseur: %w", err)
	}
	return nil
}

// Delete supprime l'en-tête par ID.
func (r *CommandeFournisseurRepo) Delete(id int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM commandes_fournisseur WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete commande fournisseur: %w", err)
	}
	return nil
}

func (r *CommandeFournisseurRepo) scanOneLoaded(row pgx.Row) (*entity.CommandeFournisseur, error) {
	var c entity.CommandeFournisseur
	if err := row.Scan(&c.ID, &c.Code, &c.DateCommande, &c.FournisseurID, &c.EntrepriseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commande fournisseur: %w", err)
	}
	if err := r.loadRelations(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommandeFournisseurRepo) loadRelations(c *entity.CommandeFournisseur) error {
	fournisseur, err := NewFournisseurRepository(r.q).GetByID(c.FournisseurID)
	if err != nil {
		return err
	}
	c.Fournisseur = fournisseur
	lignes, err := NewLigneCommandeFournisseurRepository(r.q).ListByCommande(c.ID)
	if err != nil {
		return err
	}
	c.Lignes = lignes
	return nil
}

const ligneCommandeFournisseurSelect = `
	SELECT l.id, l.commande_fournisseur_id, l.article_id, l.quantite, l.prix_unitaire, l.entreprise_id,
		a.id, a.code_article, a.designation, a.prix_unitaire, a.taux_tva, a.prix_unitaire_ttc,
		a.photo, a.categorie_id, a.entreprise_id
	FROM lignes_commande_fournisseur l
	JOIN articles a ON a.id = l.article_id`

// LigneCommandeFournisseurRepo gère les lignes possédées par une commande
// fournisseur. Les lectures joignent l'article référencé.
type LigneCommandeFournisseurRepo struct {
	q Querier
}

// NewLigneCommandeFournisseurRepository construit l'adaptateur de persistance
// des lignes de commande fournisseur.
func NewLigneCommandeFournisseurRepository(q Querier) *LigneCommandeFournisseurRepo {
	return &LigneCommandeFournisseurRepo{q: q}
}

// Create persiste une nouvelle ligne et pose l'ID généré.
func (r *LigneCommandeFournisseurRepo) Create(l *entity.LigneCommandeFournisseur) error {
	query := `
		INSERT INTO lignes_commande_fournisseur (commande_fournisseur_id, article_id, quantite, prix_unitaire, entreprise_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		l.CommandeFournisseurID, l.ArticleID, l.Quantite, l.PrixUnitaire, l.EntrepriseID,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert ligne commande fournisseur: %w", err)
	}
	return nil
}

// GetByID retourne la ligne avec son article ou (nil, nil).
func (r *LigneCommandeFournisseurRepo) GetByID(id int) (*entity.LigneCommandeFournisseur, error) {
	row := r.q.QueryRow(context.Background(), ligneCommandeFournisseurSelect+` WHERE l.id = $1`, id)
	var l entity.LigneCommandeFournisseur
	if err := scanLigneCommandeFournisseur(row, &l); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ligne commande fournisseur: %w", err)
	}
	return &l, nil
}

// ListByCommande retourne les lignes de la commande par ID croissant.
func (r *LigneCommandeFournisseurRepo) ListByCommande(commandeID int) ([]entity.LigneCommandeFournisseur, error) {
	rows, err := r.q.Query(context.Background(), ligneCommandeFournisseurSelect+` WHERE l.commande_fournisseur_id = $1 ORDER BY l.id`, commandeID)
	if err != nil {
		return nil, fmt.Errorf("list lignes commande fournisseur: %w", err)
	}
	defer rows.Close()
	var list []entity.LigneCommandeFournisseur
	for rows.Next() {
		var l entity.LigneCommandeFournisseur
		if err := scanLigneCommandeFournisseur(rows, &l); err != nil {
			return nil, fmt.Errorf("scan ligne commande fournisseur: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Update remplace les champs de la ligne.
func (r *LigneCommandeFournisseurRepo) Update(l *entity.LigneCommandeFournisseur) error {
	query := `
		UPDATE lignes_commande_fournisseur
		SET commande_fournisseur_id = $2, article_id = $3, quantite = $4, prix_unitaire = $5, entreprise_id = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.CommandeFournisseurID, l.ArticleID, l.Quantite, l.PrixUnitaire, l.EntrepriseID,
	)
	if err != nil {
		return fmt.Errorf("update ligne commande fournisseur: %w", err)
	}
	return nil
}

// Delete supprime la ligne par ID.
func (r *LigneCommandeFournisseurRepo) Delete(id int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM lignes_commande_fournisseur WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ligne commande fournisseur: %w", err)
	}
	return nil
}

// DeleteByCommande supprime toutes les lignes de la commande.
func (r *LigneCommandeFournisseurRepo) DeleteByCommande(commandeID int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM lignes_commande_fournisseur WHERE commande_fournisseur_id = $1`, commandeID)
	if err != nil {
		return fmt.Errorf("delete lignes commande fournisseur: %w", err)
	}
	return nil
}

func scanLigneCommandeFournisseur(row pgx.Row, l *entity.LigneCommandeFournisseur) error {
	var a entity.Article
	err := row.Scan(
		&l.ID, &l.CommandeFournisseurID, &l.ArticleID, &l.Quantite, &l.PrixUnitaire, &l.EntrepriseID,
		&a.ID, &a.CodeArticle, &a.Designation, &a.PrixUnitaire, &a.TauxTva, &a.PrixUnitaireTtc,
		&a.Photo, &a.CategorieID, &a.EntrepriseID,
	)
	if err != nil {
		return err
	}
	l.Article = &a
	return nil
}
