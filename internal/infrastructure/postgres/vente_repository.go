package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
)

var _ repository.VenteRepository = (*VenteRepo)(nil)
var _ repository.LigneVenteRepository = (*LigneVenteRepo)(nil)

// VenteRepo implémentation du port VenteRepository sur PostgreSQL. Les
// lectures unitaires chargent les lignes de vente.
type VenteRepo struct {
	q Querier
}

// NewVenteRepository construit l'adaptateur de persistance des ventes.
func NewVenteRepository(q Querier) *VenteRepo {
	return &VenteRepo{q: q}
}

// Create persiste un nouvel en-tête et pose l'ID généré.
func (r *VenteRepo) Create(v *entity.Vente) error {
	query := `
		INSERT INTO ventes (code, date_vente, commentaire, entreprise_id, commande_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		v.Code, v.DateVente, v.Commentaire, v.EntrepriseID, v.CommandeID,
	).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("insert vente: %w", err)
	}
	return nil
}

// GetByID retourne la vente avec ses lignes ou (nil, nil).
func (r *VenteRepo) GetByID(id int) (*entity.Vente, error) {
	query := `SELECT id, code, date_vente, commentaire, entreprise_id, commande_id FROM ventes WHERE id = $1`
	return r.scanOneLoaded(r.q.QueryRow(context.Background(), query, id))
}

// GetByCode retourne la vente portant ce code ou (nil, nil).
func (r *VenteRepo) GetByCode(code string) (*entity.Vente, error) {
	query := `SELECT id, code, date_vente, commentaire, entreprise_id, commande_id FROM ventes WHERE code = $1`
	return r.scanOneLoaded(r.q.QueryRow(context.Background(), query, code))
}

// List retourne toutes les ventes par ID croissant, lignes comprises.
func (r *VenteRepo) List() ([]*entity.Vente, error) {
	query := `SELECT id, code, date_vente, commentaire, entreprise_id, commande_id FROM ventes ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list ventes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vente
	for rows.Next() {
		var v entity.Vente
		if err := rows.Scan(&v.ID, &v.Code, &v.DateVente, &v.Commentaire, &v.EntrepriseID, &v.CommandeID); err != nil {
			return nil, fmt.Errorf("scan vente: %w", err)
		}
		list = append(list, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	lignesRepo := NewLigneVenteRepository(r.q)
	for _, v := range list {
		lignes, err := lignesRepo.ListByVente(v.ID)
		if err != nil {
			return nil, err
		}
		v.Lignes = lignes
	}
	return list, nil
}

// Update remplace les champs de l'en-tête.
func (r *VenteRepo) Update(v *entity.Vente) error {
	query := `UPDATE ventes SET code = $2, date_vente = $3, commentaire = $4, entreprise_id = $5, commande_id = $6 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, v.ID, v.Code, v.DateVente, v.Commentaire, v.EntrepriseID, v.CommandeID)
	if err != nil {
		return fmt.Errorf("update vente: %w", err)
	}
	return nil
}

// Delete supprime l'en-tête par ID.
func (r *VenteRepo) Delete(id int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ventes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vente: %w", err)
	}
	return nil
}

func (r *VenteRepo) scanOneLoaded(row pgx.Row) (*entity.Vente, error) {
	var v entity.Vente
	if err := row.Scan(&v.ID, &v.Code, &v.DateVente, &v.Commentaire, &v.EntrepriseID, &v.CommandeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vente: %w", err)
	}
	lignes, err := NewLigneVenteRepository(r.q).ListByVente(v.ID)
	if err != nil {
		return nil, err
	}
	v.Lignes = lignes
	return &v, nil
}

// LigneVenteRepo gère les lignes possédées par une vente. Les lectures
// joignent l'article référencé.
type LigneVenteRepo struct {
	q Querier
}

// NewLigneVenteRepository construit l'adaptateur de persistance des lignes de
// vente.
func NewLigneVenteRepository(q Querier) *LigneVenteRepo {
	return &LigneVenteRepo{q: q}
}

// Create persiste une nouvelle ligne et pose l'ID généré.
func (r *LigneVenteRepo) Create(l *entity.LigneVente) error {
	query := `
		INSERT INTO lignes_vente (vente_id, article_id, quantite, prix_unitaire, entreprise_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		l.VenteID, l.ArticleID, l.Quantite, l.PrixUnitaire, l.EntrepriseID,
	).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert ligne vente: %w", err)
	}
	return nil
}

// ListByVente retourne les lignes de la vente par ID croissant.
func (r *LigneVenteRepo) ListByVente(venteID int) ([]entity.LigneVente, error) {
	query := `
		SELECT l.id, l.vente_id, l.article_id, l.quantite, l.prix_unitaire, l.entreprise_id,
			a.id, a.code_article, a.designation, a.prix_unitaire, a.taux_tva, a.prix_unitaire_ttc,
			a.photo, a.categorie_id, a.entreprise_id
		FROM lignes_vente l
		JOIN articles a ON a.id = l.article_id
		WHERE l.vente_id = $1 ORDER BY l.id`
	rows, err := r.q.Query(context.Background(), query, venteID)
	if err != nil {
		return nil, fmt.Errorf("list lignes vente: %w", err)
	}
	defer rows.Close()
	var list []entity.LigneVente
	for rows.Next() {
		var l entity.LigneVente
		var a entity.Article
		err := rows.Scan(
			&l.ID, &l.VenteID, &l.ArticleID, &l.Quantite, &l.PrixUnitaire, &l.EntrepriseID,
			&a.ID, &a.CodeArticle, &a.Designation, &a.PrixUnitaire, &a.TauxTva, &a.PrixUnitaireTtc,
			&a.Photo, &a.CategorieID, &a.EntrepriseID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ligne vente: %w", err)
		}
		l.Article = &a
		list = append(list, l)
	}
	return list, rows.Err()
}

// DeleteByVente supprime toutes les lignes de la vente.
func (r *LigneVenteRepo) DeleteByVente(venteID int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM lignes_vente WHERE vente_id = $1`, venteID)
	if err != nil {
		return fmt.Errorf("delete lignes vente: %w", err)
	}
	return nil
}
