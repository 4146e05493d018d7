package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
	"github.com/team48/gestion-stock-api/internal/domain"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
)

type articleFixture struct {
	uc           *usecase.ArticleUseCase
	articles     *fakeArticleRepo
	entrepriseID int
	categorieID  int
}

func buildArticleUC(t *testing.T) *articleFixture {
	t.Helper()
	articles := newFakeArticleRepo()
	categories := newFakeCategorieRepo()
	entreprises := newFakeEntrepriseRepo()
	uc := usecase.NewArticleUseCase(articles, categories, entreprises, testLogger())

	entrepriseID := seedEntreprise(t, entreprises)
	categorie := &entity.Categorie{Code: "CAT-01", Designation: "Informatique", EntrepriseID: entrepriseID}
	require.NoError(t, categories.Create(categorie))

	return &articleFixture{
		uc:           uc,
		articles:     articles,
		entrepriseID: entrepriseID,
		categorieID:  categorie.ID,
	}
}

func articleRequest(f *articleFixture) *dto.ArticleRequest {
	return &dto.ArticleRequest{
		CodeArticle:     "ART-01",
		Designation:     "Clavier",
		PrixUnitaire:    decimal.NewFromInt(100),
		PrixUnitaireTtc: decimal.NewFromInt(119),
		CategorieID:     f.categorieID,
		EntrepriseID:    f.entrepriseID,
	}
}

func TestArticleSave_AttacheLaCategorie(t *testing.T) {
	f := buildArticleUC(t)

	out, err := f.uc.Save(articleRequest(f))
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	require.NotNil(t, out.Categorie)
	assert.Equal(t, "CAT-01", out.Categorie.Code)
}

func TestArticleSave_PrixManquants_NeTouchePasLaBase(t *testing.T) {
	f := buildArticleUC(t)

	in := articleRequest(f)
	in.PrixUnitaire = decimal.Decimal{}
	in.PrixUnitaireTtc = decimal.Decimal{}
	_, err := f.uc.Save(in)
	var invalid *domain.InvalidEntityError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []string{
		"Veillez renseigner le prix unitaire de l'article",
		"Veillez renseigner le prix unitaire TTC de l'article",
	}, invalid.Errors)
	assert.Empty(t, f.articles.byID)
}

func TestArticleFindByCodeArticle(t *testing.T) {
	f := buildArticleUC(t)

	_, err := f.uc.Save(articleRequest(f))
	require.NoError(t, err)

	out, err := f.uc.FindByCodeArticle("ART-01")
	require.NoError(t, err)
	assert.Equal(t, "Clavier", out.Designation)
}

func TestArticleFindByCodeArticle_Inconnu(t *testing.T) {
	f := buildArticleUC(t)

	_, err := f.uc.FindByCodeArticle("ART-99")
	var notFound *domain.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.ArticleNotFound, notFound.Code)
	assert.Equal(t, "Aucun article avec le CODE ART-99 n'a été trouvé dans la BDD", notFound.Message)
}

func TestArticleFindByCodeArticle_CodeVide(t *testing.T) {
	f := buildArticleUC(t)

	_, err := f.uc.FindByCodeArticle("   ")
	assert.True(t, domain.IsInvalidEntity(err))
}

func TestArticleUpdate_ConserveLaPhoto(t *testing.T) {
	f := buildArticleUC(t)

	created, err := f.uc.Save(articleRequest(f))
	require.NoError(t, err)

	stored, err := f.articles.GetByID(created.ID)
	require.NoError(t, err)
	stored.Photo = "uploads/clavier.png"
	require.NoError(t, f.articles.Update(stored))

	in := articleRequest(f)
	in.Designation = "Clavier mécanique"
	updated, err := f.uc.Update(created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Clavier mécanique", updated.Designation)
	assert.Equal(t, "uploads/clavier.png", updated.Photo)
}
