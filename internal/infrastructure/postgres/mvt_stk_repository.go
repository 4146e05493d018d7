package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
)

var _ repository.MvtStkRepository = (*MvtStkRepo)(nil)

const mvtStkSelect = `
	SELECT m.id, m.date_mvt, m.quantite, m.type_mvt, m.article_id,
		a.id, a.code_article, a.designation, a.prix_unitaire, a.taux_tva, a.prix_unitaire_ttc,
		a.photo, a.categorie_id, a.entreprise_id
	FROM mvts_stk m
	JOIN articles a ON a.id = m.article_id`

// MvtStkRepo implémentation du port MvtStkRepository sur PostgreSQL. Les
// lectures joignent l'article référencé.
type MvtStkRepo struct {
	q Querier
}

// NewMvtStkRepository construit l'adaptateur de persistance du journal de stock.
func NewMvtStkRepository(q Querier) *MvtStkRepo {
	return &MvtStkRepo{q: q}
}

// Create persiste une nouvelle écriture et pose l'ID généré.
func (r *MvtStkRepo) Create(m *entity.MvtStk) error {
	query := `
		INSERT INTO mvts_stk (date_mvt, quantite, type_mvt, article_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, m.DateMvt, m.Quantite, m.TypeMvt, m.ArticleID).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert mvt stk: %w", err)
	}
	return nil
}

// GetByID retourne l'écriture avec son article ou (nil, nil).
func (r *MvtStkRepo) GetByID(id int) (*entity.MvtStk, error) {
	row := r.q.QueryRow(context.Background(), mvtStkSelect+` WHERE m.id = $1`, id)
	var m entity.MvtStk
	if err := scanMvtStk(row, &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get mvt stk: %w", err)
	}
	return &m, nil
}

// List retourne tout le journal par ID croissant.
func (r *MvtStkRepo) List() ([]*entity.MvtStk, error) {
	rows, err := r.q.Query(context.Background(), mvtStkSelect+` ORDER BY m.id`)
	if err != nil {
		return nil, fmt.Errorf("list mvts stk: %w", err)
	}
	defer rows.Close()
	var list []*entity.MvtStk
	for rows.Next() {
		var m entity.MvtStk
		if err := scanMvtStk(rows, &m); err != nil {
			return nil, fmt.Errorf("scan mvt stk: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update remplace les champs de l'écriture.
func (r *MvtStkRepo) Update(m *entity.MvtStk) error {
	query := `UPDATE mvts_stk SET date_mvt = $2, quantite = $3, type_mvt = $4, article_id = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, m.ID, m.DateMvt, m.Quantite, m.TypeMvt, m.ArticleID)
	if err != nil {
		return fmt.Errorf("update mvt stk: %w", err)
	}
	return nil
}

// Delete supprime l'écriture par ID.
func (r *MvtStkRepo) Delete(id int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM mvts_stk WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete mvt stk: %w", err)
	}
	return nil
}

func scanMvtStk(row pgx.Row, m *entity.MvtStk) error {
	var a entity.Article
	err := row.Scan(
		&m.ID, &m.DateMvt, &m.Quantite, &m.TypeMvt, &m.ArticleID,
		&a.ID, &a.CodeArticle, &a.Designation, &a.PrixUnitaire, &a.TauxTva, &a.PrixUnitaireTtc,
		&a.Photo, &a.CategorieID, &a.EntrepriseID,
	)
	if err != nil {
		return err
	}
	m.Article = &a
	return nil
}
