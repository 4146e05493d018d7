package usecase

import (
	"strings"

	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/validator"
	"github.com/team48/gestion-stock-api/internal/domain"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
	"github.com/team48/gestion-stock-api/pkg/logger"
)

// ArticleUseCase pipeline CRUD pour les articles : validation, résolution de
// la catégorie et de l'entreprise, persistance, projection.
type ArticleUseCase struct {
	articles    repository.ArticleRepository
	categories  repository.CategorieRepository
	entreprises repository.EntrepriseRepository
	log         *logger.Logger
}

// NewArticleUseCase construit le cas d'usage.
func NewArticleUseCase(
	articles repository.ArticleRepository,
	categories repository.CategorieRepository,
	entreprises repository.EntrepriseRepository,
	log *logger.Logger,
) *ArticleUseCase {
	return &ArticleUseCase{articles: articles, categories: categories, entreprises: entreprises, log: log}
}

// Save valide la requête, vérifie la catégorie et l'entreprise référencées
// puis persiste. Le code article est unique par entreprise.
func (uc *ArticleUseCase) Save(in *dto.ArticleRequest) (*dto.ArticleResponse, error) {
	if in == nil {
		uc.log.Error().Msg("article nul")
		return nil, domain.NewInvalidEntity(domain.ArticleNotValid, "L'article ne peut pas être null", nil)
	}
	if errs := validator.Article(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("article invalide")
		return nil, domain.NewInvalidEntity(domain.ArticleNotValid, "L'article n'est pas valide", errs)
	}
	article := in.ToEntity()
	if err := uc.resolveRelations(article); err != nil {
		return nil, err
	}
	if err := uc.articles.Create(article); err != nil {
		return nil, err
	}
	return dto.ArticleFromEntity(article), nil
}

// FindByID retourne l'article ou EntityNotFound.
func (uc *ArticleUseCase) FindByID(id int) (*dto.ArticleResponse, error) {
	if id <= 0 {
		uc.log.Error().Msg("ID d'article nul")
		return nil, domain.NewInvalidEntity(domain.ArticleNotValid, "L'ID de l'article ne peut pas être null", nil)
	}
	article, err := uc.articles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.NewEntityNotFound(domain.ArticleNotFound, "Aucun article avec l'ID %d n'a été trouvé dans la BDD", id)
	}
	return dto.ArticleFromEntity(article), nil
}

// FindByCodeArticle retourne l'article portant ce code ou EntityNotFound.
func (uc *ArticleUseCase) FindByCodeArticle(code string) (*dto.ArticleResponse, error) {
	if strings.TrimSpace(code) == "" {
		uc.log.Error().Msg("code d'article vide")
		return nil, domain.NewInvalidEntity(domain.ArticleNotValid, "Le code de l'article ne peut pas être vide", nil)
	}
	article, err := uc.articles.GetByCodeArticle(code)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.NewEntityNotFound(domain.ArticleNotFound, "Aucun article avec le CODE %s n'a été trouvé dans la BDD", code)
	}
	return dto.ArticleFromEntity(article), nil
}

// FindAll projette tous les articles, sans pagination.
func (uc *ArticleUseCase) FindAll() ([]dto.ArticleResponse, error) {
	list, err := uc.articles.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArticleResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *dto.ArticleFromEntity(a))
	}
	return out, nil
}

// Delete supprime par ID sans vérifier l'existence ; ID nul = non-opération.
func (uc *ArticleUseCase) Delete(id int) error {
	if id <= 0 {
		uc.log.Error().Msg("ID d'article nul")
		return nil
	}
	return uc.articles.Delete(id)
}

// Update remplace les champs mutables en conservant l'ID d'origine. La photo
// existante est conservée si la requête n'en apporte pas.
func (uc *ArticleUseCase) Update(id int, in *dto.ArticleRequest) (*dto.ArticleResponse, error) {
	if in == nil || id <= 0 {
		uc.log.Error().Msg("article ou ID nul")
		return nil, domain.NewInvalidEntity(domain.ArticleNotValid, "L'article ou son ID ne peut pas être null", nil)
	}
	if errs := validator.Article(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("article invalide")
		return nil, domain.NewInvalidEntity(domain.ArticleNotValid, "L'article n'est pas valide", errs)
	}
	existing, err := uc.articles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewEntityNotFound(domain.ArticleNotFound, "Aucun article avec l'ID %d n'a été trouvé dans la BDD", id)
	}
	article := in.ToEntity()
	article.ID = existing.ID
	if article.Photo == "" {
		article.Photo = existing.Photo
	}
	if err := uc.resolveRelations(article); err != nil {
		return nil, err
	}
	if err := uc.articles.Update(article); err != nil {
		return nil, err
	}
	return dto.ArticleFromEntity(article), nil
}

// resolveRelations charge la catégorie et l'entreprise référencées et les
// attache à l'article pour la projection de retour.
func (uc *ArticleUseCase) resolveRelations(article *entity.Article) error {
	categorie, err := uc.categories.GetByID(article.CategorieID)
	if err != nil {
		return err
	}
	if categorie == nil {
		return domain.NewEntityNotFound(domain.CategorieNotFound, "Aucune catégorie avec l'ID %d n'a été trouvée dans la BDD", article.CategorieID)
	}
	entreprise, err := uc.entreprises.GetByID(article.EntrepriseID)
	if err != nil {
		return err
	}
	if entreprise == nil {
		return domain.NewEntityNotFound(domain.EntrepriseNotFound, "Aucune entreprise avec l'ID %d n'a été trouvée dans la BDD", article.EntrepriseID)
	}
	article.Categorie = categorie
	article.Entreprise = entreprise
	return nil
}
