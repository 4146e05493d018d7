package repository

import "github.com/team48/gestion-stock-api/internal/domain/entity"

// ArticleRepository définit le port de persistance pour Article.
// Les lectures joignent la catégorie et l'entreprise pour la projection.
type ArticleRepository interface {
	Create(article *entity.Article) error
	GetByID(id int) (*entity.Article, error)
	GetByCodeArticle(codeArticle string) (*entity.Article, error)
	List() ([]*entity.Article, error)
	Update(article *entity.Article) error
	Delete(id int) error
}
