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

func buildMvtStkUC(t *testing.T) (*usecase.MvtStkUseCase, *fakeMvtStkRepo, *fakeArticleRepo) {
	t.Helper()
	mvts := newFakeMvtStkRepo()
	articles := newFakeArticleRepo()
	return usecase.NewMvtStkUseCase(mvts, articles, testLogger()), mvts, articles
}

func seedArticle(t *testing.T, articles *fakeArticleRepo) int {
	t.Helper()
	a := &entity.Article{
		CodeArticle:     "ART-01",
		Designation:     "Clavier",
		PrixUnitaire:    decimal.NewFromInt(100),
		PrixUnitaireTtc: decimal.NewFromInt(119),
		CategorieID:     1,
		EntrepriseID:    1,
	}
	require.NoError(t, articles.Create(a))
	return a.ID
}

func TestMvtStkSave_Valide(t *testing.T) {
	uc, _, articles := buildMvtStkUC(t)
	articleID := seedArticle(t, articles)

	out, err := uc.Save(&dto.MvtStkRequest{
		DateMvt:   "2024-03-01T10:00:00Z",
		Quantite:  decimal.NewFromInt(12),
		TypeMvt:   "ENTREE",
		ArticleID: articleID,
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "ENTREE", out.TypeMvt)
	require.NotNil(t, out.Article)
	assert.Equal(t, articleID, out.Article.ID)
}

func TestMvtStkSave_ArticleInconnu_NePersistePas(t *testing.T) {
	uc, mvts, _ := buildMvtStkUC(t)

	_, err := uc.Save(&dto.MvtStkRequest{
		DateMvt:   "2024-03-01T10:00:00Z",
		Quantite:  decimal.NewFromInt(12),
		TypeMvt:   "SORTIE",
		ArticleID: 42,
	})
	var notFound *domain.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.ArticleNotFound, notFound.Code)
	assert.Equal(t, "Aucun article avec l'ID 42 n'a été trouvé dans la BDD", notFound.Message)
	assert.Empty(t, mvts.byID)
}

func TestMvtStkSave_TypeInconnu(t *testing.T) {
	uc, _, articles := buildMvtStkUC(t)
	articleID := seedArticle(t, articles)

	_, err := uc.Save(&dto.MvtStkRequest{
		DateMvt:   "2024-03-01T10:00:00Z",
		Quantite:  decimal.NewFromInt(12),
		TypeMvt:   "TRANSFERT",
		ArticleID: articleID,
	})
	var invalid *domain.InvalidEntityError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, domain.MvtStkNotValid, invalid.Code)
	assert.Contains(t, invalid.Errors, "Le type du mouvement doit être ENTREE, SORTIE ou CORRECTION")
}

func TestMvtStkDelete_IDNul_NonOperation(t *testing.T) {
	uc, mvts, articles := buildMvtStkUC(t)
	articleID := seedArticle(t, articles)

	_, err := uc.Save(&dto.MvtStkRequest{
		DateMvt:   "2024-03-01T10:00:00Z",
		Quantite:  decimal.NewFromInt(3),
		TypeMvt:   "CORRECTION",
		ArticleID: articleID,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(-1))
	assert.Len(t, mvts.byID, 1)
}
