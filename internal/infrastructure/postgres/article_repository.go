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

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

const articleSelect = `
	SELECT a.id, a.code_article, a.designation, a.prix_unitaire, a.taux_tva, a.prix_unitaire_ttc,
		a.photo, a.categorie_id, a.entreprise_id,
		c.id, c.code, c.designation, c.entreprise_id,
		e.id, e.nom_entreprise, e.description, e.photo, e.email,
		e.adresse1, e.adresse2, e.ville, e.code_postal, e.pays,
		e.code_fiscal, e.num_tel, e.ste_web, e.creation_date
	FROM articles a
	JOIN categories c ON c.id = a.categorie_id
	JOIN entreprises e ON e.id = a.entreprise_id`

// ArticleRepo implémentation du port ArticleRepository sur PostgreSQL. Les
// lectures joignent la catégorie et l'entreprise pour la projection.
type ArticleRepo struct {
	q Querier
}

// NewArticleRepository construit l'adaptateur de persistance des articles.
func NewArticleRepository(q Querier) *ArticleRepo {
	return &ArticleRepo{q: q}
}

// Create persiste un nouvel article et pose l'ID généré. Code article déjà
// pris -> DuplicateError.
func (r *ArticleRepo) Create(a *entity.Article) error {
	query := `
		INSERT INTO articles (code_article, designation, prix_unitaire, taux_tva, prix_unitaire_ttc,
			photo, categorie_id, entreprise_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		a.CodeArticle, a.Designation, a.PrixUnitaire, a.TauxTva, a.PrixUnitaireTtc,
		a.Photo, a.CategorieID, a.EntrepriseID,
	).Scan(&a.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Message: "Code article déjà utilisé"}
		}
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// GetByID retourne l'article avec sa catégorie et son entreprise, ou (nil, nil).
func (r *ArticleRepo) GetByID(id int) (*entity.Article, error) {
	return r.scanOne(r.q.QueryRow(context.Background(), articleSelect+` WHERE a.id = $1`, id))
}

// GetByCodeArticle retourne l'article portant ce code ou (nil, nil).
func (r *ArticleRepo) GetByCodeArticle(codeArticle string) (*entity.Article, error) {
	return r.scanOne(r.q.QueryRow(context.Background(), articleSelect+` WHERE a.code_article = $1`, codeArticle))
}

// List retourne tous les articles par ID croissant, relations chargées.
func (r *ArticleRepo) List() ([]*entity.Article, error) {
	rows, err := r.q.Query(context.Background(), articleSelect+` ORDER BY a.id`)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// Update remplace les champs mutables de l'article.
func (r *ArticleRepo) Update(a *entity.Article) error {
	query := `
		UPDATE articles SET code_article = $2, designation = $3, prix_unitaire = $4, taux_tva = $5,
			prix_unitaire_ttc = $6, photo = $7, categorie_id = $8, entreprise_id = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.CodeArticle, a.Designation, a.PrixUnitaire, a.TauxTva,
		a.PrixUnitaireTtc, a.Photo, a.CategorieID, a.EntrepriseID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Message: "Code article déjà utilisé"}
		}
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete supprime l'article par ID.
func (r *ArticleRepo) Delete(id int) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

func (r *ArticleRepo) scanOne(row pgx.Row) (*entity.Article, error) {
	a, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get article: %w", err)
	}
	return a, nil
}

func scanArticle(row pgx.Row) (*entity.Article, error) {
	var a entity.Article
	var c entity.Categorie
	var e entity.Entreprise
	err := row.Scan(
		&a.ID, &a.CodeArticle, &a.Designation, &a.PrixUnitaire, &a.TauxTva, &a.PrixUnitaireTtc,
		&a.Photo, &a.CategorieID, &a.EntrepriseID,
		&c.ID, &c.Code, &c.Designation, &c.EntrepriseID,
		&e.ID, &e.NomEntreprise, &e.Description, &e.Photo, &e.Email,
		&e.Adresse.Adresse1, &e.Adresse.Adresse2, &e.Adresse.Ville, &e.Adresse.CodePostal, &e.Adresse.Pays,
		&e.CodeFiscal, &e.NumTel, &e.SteWeb, &e.CreationDate,
	)
	if err != nil {
		return nil, err
	}
	a.Categorie = &c
	a.Entreprise = &e
	return &a, nil
}
