package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
	"github.com/team48/gestion-stock-api/internal/domain"
)

type venteFixture struct {
	uc       *usecase.VenteUseCase
	ventes   *fakeVenteRepo
	lignes   *fakeLigneVenteRepo
	articles *fakeArticleRepo
}

func buildVenteUC(t *testing.T) venteFixture {
	t.Helper()
	lignes := newFakeLigneVenteRepo()
	ventes := newFakeVenteRepo(lignes)
	articles := newFakeArticleRepo()
	tx := &fakeTxRunner{ventes: ventes, lignesVente: lignes}
	uc := usecase.NewVenteUseCase(ventes, articles, tx, testLogger())
	return venteFixture{uc: uc, ventes: ventes, lignes: lignes, articles: articles}
}

func venteRequest(articleID int) *dto.VenteRequest {
	return &dto.VenteRequest{
		Code:         "VTE-01",
		DateVente:    "2024-05-01T10:00:00Z",
		Commentaire:  "vente comptoir",
		EntrepriseID: 1,
		LigneVentes: []dto.LigneVenteRequest{
			{
				ArticleID:    articleID,
				Quantite:     decimal.NewFromInt(2),
				PrixUnitaire: decimal.NewFromInt(100),
			},
		},
	}
}

func TestVenteSave_PersisteEnTeteEtLignes(t *testing.T) {
	f := buildVenteUC(t)
	articleID := seedArticle(t, f.articles)

	out, err := f.uc.Save(venteRequest(articleID))
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	require.Len(t, out.LigneVentes, 1)
	require.NotNil(t, out.LigneVentes[0].Article)
	assert.Equal(t, "ART-01", out.LigneVentes[0].Article.CodeArticle)

	stored, err := f.ventes.GetByID(out.ID)
	require.NoError(t, err)
	require.Len(t, stored.Lignes, 1)
	assert.Equal(t, out.ID, stored.Lignes[0].VenteID)
	assert.Equal(t, 1, stored.Lignes[0].EntrepriseID, "la ligne hérite de l'entreprise de la vente")
}

func TestVenteSave_ArticleInconnu(t *testing.T) {
	f := buildVenteUC(t)

	_, err := f.uc.Save(venteRequest(42))
	var notFound *domain.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.ArticleNotFound, notFound.Code)
	assert.Equal(t, "Aucun article avec l'ID 42 n'a été trouvé dans la BDD", notFound.Message)
	assert.Empty(t, f.ventes.byID, "rien ne doit être persisté")
	assert.Empty(t, f.lignes.byID)
}

func TestVenteSave_SansLigne(t *testing.T) {
	f := buildVenteUC(t)

	in := venteRequest(1)
	in.LigneVentes = nil
	_, err := f.uc.Save(in)
	assert.True(t, domain.IsInvalidEntity(err))
}

func TestVenteUpdate_RemplaceLesLignes(t *testing.T) {
	f := buildVenteUC(t)
	articleID := seedArticle(t, f.articles)

	created, err := f.uc.Save(venteRequest(articleID))
	require.NoError(t, err)

	in := venteRequest(articleID)
	in.Code = "VTE-01-BIS"
	in.LigneVentes = []dto.LigneVenteRequest{
		{ArticleID: articleID, Quantite: decimal.NewFromInt(5), PrixUnitaire: decimal.NewFromInt(90)},
		{ArticleID: articleID, Quantite: decimal.NewFromInt(1), PrixUnitaire: decimal.NewFromInt(100)},
	}
	updated, err := f.uc.Update(created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "VTE-01-BIS", updated.Code)
	assert.Len(t, updated.LigneVentes, 2)

	stored, err := f.ventes.GetByID(created.ID)
	require.NoError(t, err)
	require.Len(t, stored.Lignes, 2)
	assert.True(t, stored.Lignes[0].Quantite.Equal(decimal.NewFromInt(5)))
}

func TestVenteDelete_SupprimeLesLignes(t *testing.T) {
	f := buildVenteUC(t)
	articleID := seedArticle(t, f.articles)

	created, err := f.uc.Save(venteRequest(articleID))
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(created.ID))
	assert.Empty(t, f.ventes.byID)
	assert.Empty(t, f.lignes.byID)
}

func TestVenteFindByCode(t *testing.T) {
	f := buildVenteUC(t)
	articleID := seedArticle(t, f.articles)

	_, err := f.uc.Save(venteRequest(articleID))
	require.NoError(t, err)

	out, err := f.uc.FindByCode("VTE-01")
	require.NoError(t, err)
	assert.Len(t, out.LigneVentes, 1)

	_, err = f.uc.FindByCode("VTE-99")
	var notFound *domain.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Aucune vente avec le CODE VTE-99 n'a été trouvée dans la BDD", notFound.Message)
}
