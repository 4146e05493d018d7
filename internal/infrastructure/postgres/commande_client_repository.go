package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
)

var _ repository.CommandeClientRepository = (*CommandeClientRepo)(nil)
var _ repository.LigneCommandeClientRepository = (*LigneCommandeClientRepo)(nil)

// CommandeClientRepo implémentation du port CommandeClientRepository sur
// PostgreSQL. Les lectures unitaires chargent le client et les lignes.
type CommandeClientRepo struct {
	q Querier
}

// NewCommandeClientRepository construit l'adaptateur de persistance des
// commandes client.
func NewCommandeClientRepository(q Querier) *CommandeClientRepo {
	return &CommandeClientRepo{q: q}
}

// Create persiste un nouvel en-tête et pose l'ID généré.
func (r *CommandeClientRepo) Create(c *entity.CommandeClient) error {
	query := `
		INSERT INTO commandes_client (code, date_commande, client_id, entreprise_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, c.Code, c.DateCommande, c.ClientID, c.EntrepriseID).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert commande client: %w", err)
	}
	return nil
}

// GetByID retourne la commande avec son client et ses lignes, ou (nil, nil).
func (r *CommandeClientRepo) GetByID(id int) (*entity.CommandeClient, error) {
	query := `SELECT id, code, date_commande, client_id, entreprise_id FROM commandes_client WHERE id = $1`
	return r.scanOneLoaded(r.q.QueryRow(context.Background(), query, id))
}

// GetByCode retourne la commande portant ce code ou (nil, nil).
func (r *CommandeClientRepo) GetByCode(code string) (*entity.CommandeClient, error) {
	query := `SELECT id, code, date_commande, client_id, entreprise_id FROM commandes_client WHERE code = $1`
	return r.scanOneLoaded(r.q.QueryRow(context.Background(), query, code))
}

// List retourne toutes les commandes par ID croissant, lignes comprises.
func (r *CommandeClientRepo) List() ([]*entity.CommandeClient, error) {
	query := `SELECT id, code, date_commande, client_id, entreprise_id FROM commandes_client ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list commandes client: %w", err)
	}
	defer rows.Close()
	var list []*entity.CommandeClient
	for rows.Next() {
		var c entity.CommandeClient
		if err := rows.Scan(&c.ID, &c.Code, &c.DateCommande, &c.ClientID, &c.EntrepriseID); err != nil {
			return nil, fmt.Errorf("scan commande client: %w", err)
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
func (r *CommandeClientRepo) Update(c *entity.CommandeClient) error {
	query := `UPDATE commandes_client SET code = $2, date_commande = $3, client_id = $4, entreprise_id = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Code, c.DateCommande, c.ClientID, c.EntrepriseID)
	if err != nil {
		return fmt.Errorf("update commande client: %w", err)
	}
	return nil
}

// Delete supprime l'en-tête par ID.
func (r *CommandeClientRepo) Delete(id int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM commandes_client WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete commande client: %w", err)
	}
	return nil
}

func (r *CommandeClientRepo) scanOneLoaded(row pgx.Row) (*entity.CommandeClient, error) {
	var c entity.CommandeClient
	if err := row.Scan(&c.ID, &c.Code, &c.DateCommande, &c.ClientID, &c.EntrepriseID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commande client: %w", err)
	}
	if err := r.loadRelations(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommandeClientRepo) loadRelations(c *entity.CommandeClient) error {
	client, err := NewClientRepository(r.q).GetByID(c.ClientID)
	if err != nil {
		return err
	}
	c.Client = client
	lignes, err := NewLigneCommandeClientRepository(r.q).ListByCommande(c.ID)
	if err != nil {
		return err
	}
	c.Lignes = lignes
	return nil
}

const ligneCommandeClientSelect = `
	SELECT l.id, l.commande_client_id, l.article_id, l.quantite, l.prix_unitaire, l.entreprise_id,
		a.id, a.code_article, a.designation, a.prix_unitaire, a.taux_tva, a.prix_unitaire_ttc,
		a.photo, a.categorie_id, a.entreprise_id
	FROM lignes_commande_client l
	JOIN articles a ON a.id = l.article_id`

// LigneCommandeClientRepo gère les lignes possédées par une commande client.
// Les lectures joignent l'article référencé.
type LigneCommandeClientRepo struct {
	q Querier
}

// NewLigneCommandeClientRepository construit l'adaptateur de persistance des
// lignes de commande client.
func NewLigneCommandeClientRepository(q Querier) *LigneCommandeClientRepo {
	return &LigneCommandeClientRepo{q: q}
}

// Create persiste une nouvelle ligne et pose l'ID généré.
func (r *LigneCommandeClientRepo) Create(l *entity.LigneCommandeClient) error {
	query := `
		INSERT INTO lignes_commande_client (commande_client_id, article_id, quantite, prix_unitaire, entreprise_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		l.CommandeClientID, l.ArticleID, l.Quantite, l.PrixUnitaire, l.EntrepriseID,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert ligne commande client: %w", err)
	}
	return nil
}

// GetByID retourne la ligne avec son article ou (nil, nil).
func (r *LigneCommandeClientRepo) GetByID(id int) (*entity.LigneCommandeClient, error) {
	row := r.q.QueryRow(context.Background(), ligneCommandeClientSelect+` WHERE l.id = $1`, id)
	var l entity.LigneCommandeClient
	if err := scanLigneCommandeClient(row, &l); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ligne commande client: %w", err)
	}
	return &l, nil
}

// ListByCommande retourne les lignes de la commande par ID croissant.
func (r *LigneCommandeClientRepo) ListByCommande(commandeID int) ([]entity.LigneCommandeClient, error) {
	rows, err := r.q.Query(context.Background(), ligneCommandeClientSelect+` WHERE l.commande_client_id = $1 ORDER BY l.id`, commandeID)
	if err != nil {
		return nil, fmt.Errorf("list lignes commande client: %w", err)
	}
	defer rows.Close()
	var list []entity.LigneCommandeClient
	for rows.Next() {
		var l entity.LigneCommandeClient
		if err := scanLigneCommandeClient(rows, &l); err != nil {
			return nil, fmt.Errorf("scan ligne commande client: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Update remplace les champs de la ligne.
func (r *LigneCommandeClientRepo) Update(l *entity.LigneCommandeClient) error {
	query := `
		UPDATE lignes_commande_client
		SET commande_client_id = $2, article_id = $3, quantite = $4, prix_unitaire = $5, entreprise_id = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.CommandeClientID, l.ArticleID, l.Quantite, l.PrixUnitaire, l.EntrepriseID,
	)
	if err != nil {
		return fmt.Errorf("update ligne commande client: %w", err)
	}
	return nil
}

// Delete supprime la ligne par ID.
func (r *LigneCommandeClientRepo) Delete(id int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM lignes_commande_client WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ligne commande client: %w", err)
	}
	return nil
}

// DeleteByCommande supprime toutes les lignes de la commande.
func (r *LigneCommandeClientRepo) DeleteByCommande(commandeID int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM lignes_commande_client WHERE commande_client_id = $1`, commandeID)
	if err != nil {
		return fmt.Errorf("delete lignes commande client: %w", err)
	}
	return nil
}

func scanLigneCommandeClient(row pgx.Row, l *entity.LigneCommandeClient) error {
	var a entity.Article
	err := row.Scan(
		&l.ID, &l.CommandeClientID, &l.ArticleID, &l.Quantite, &l.PrixUnitaire, &l.EntrepriseID,
		&a.ID, &a.CodeArticle, &a.Designation, &a.PrixUnitaire, &a.TauxTva, &a.PrixUnitaireTtc,
		&a.Photo, &a.CategorieID, &a.EntrepriseID,
	)
	if err != nil {
		return err
	}
	l.Article = &a
	return nil
}
