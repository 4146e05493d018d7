package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
	"github.com/team48/gestion-stock-api/internal/domain"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
)

func buildCategorieUC(t *testing.T) (*usecase.CategorieUseCase, *fakeCategorieRepo, *fakeEntrepriseRepo) {
	t.Helper()
	categories := newFakeCategorieRepo()
	entreprises := newFakeEntrepriseRepo()
	uc := usecase.NewCategorieUseCase(categories, entreprises, testLogger())
	return uc, categories, entreprises
}

func seedEntreprise(t *testing.T, entreprises *fakeEntrepriseRepo) int {
	t.Helper()
	e := &entity.Entreprise{NomEntreprise: "Acme", Email: "contact@acme.fr"}
	require.NoError(t, entreprises.Create(e))
	return e.ID
}

func TestCategorieSave_Valide(t *testing.T) {
	uc, _, entreprises := buildCategorieUC(t)
	entrepriseID := seedEntreprise(t, entreprises)

	out, err := uc.Save(&dto.CategorieRequest{Code: "CAT-01", Designation: "Boissons", EntrepriseID: entrepriseID})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, "CAT-01", out.Code)

	found, err := uc.FindByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, out, found)
}

func TestCategorieSave_Nil(t *testing.T) {
	uc, _, _ := buildCategorieUC(t)

	_, err := uc.Save(nil)
	var invalid *domain.InvalidEntityError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, domain.CategorieNotValid, invalid.Code)
	assert.Equal(t, "La catégorie ne peut pas être null", invalid.Message)
}

func TestCategorieSave_ChampManquant_NePersistePas(t *testing.T) {
	uc, categories, entreprises := buildCategorieUC(t)
	entrepriseID := seedEntreprise(t, entreprises)

	_, err := uc.Save(&dto.CategorieRequest{Designation: "Boissons", EntrepriseID: entrepriseID})
	var invalid *domain.InvalidEntityError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "La catégorie n'est pas valide", invalid.Message)
	assert.Equal(t, []string{"Veillez renseigner le code de la catégorie"}, invalid.Errors)
	assert.Empty(t, categories.byID, "rien ne doit être persisté sur échec de validation")
}

func TestCategorieSave_EntrepriseInconnue_NePersistePas(t *testing.T) {
	uc, categories, _ := buildCategorieUC(t)

	_, err := uc.Save(&dto.CategorieRequest{Code: "CAT-01", Designation: "Boissons", EntrepriseID: 42})
	var notFound *domain.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.EntrepriseNotFound, notFound.Code)
	assert.Equal(t, "Aucune entreprise avec l'ID 42 n'a été trouvée dans la BDD", notFound.Message)
	assert.Empty(t, categories.byID)
}

func TestCategorieFindByID_IDNul(t *testing.T) {
	uc, _, _ := buildCategorieUC(t)

	_, err := uc.FindByID(0)
	assert.True(t, domain.IsInvalidEntity(err))
}

func TestCategorieFindByID_Introuvable(t *testing.T) {
	uc, _, _ := buildCategorieUC(t)

	_, err := uc.FindByID(99)
	var notFound *domain.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.CategorieNotFound, notFound.Code)
	assert.Equal(t, "Aucune catégorie avec l'ID 99 n'a été trouvée dans la BDD", notFound.Message)
}

func TestCategorieFindByCode_Vide(t *testing.T) {
	uc, _, _ := buildCategorieUC(t)

	_, err := uc.FindByCode("  ")
	assert.True(t, domain.IsInvalidEntity(err))
}

func TestCategorieUpdate_ConserveID(t *testing.T) {
	uc, _, entreprises := buildCategorieUC(t)
	entrepriseID := seedEntreprise(t, entreprises)

	created, err := uc.Save(&dto.CategorieRequest{Code: "CAT-01", Designation: "Boissons", EntrepriseID: entrepriseID})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, &dto.CategorieRequest{Code: "CAT-02", Designation: "Snacks", EntrepriseID: entrepriseID})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "CAT-02", updated.Code)

	found, err := uc.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Snacks", found.Designation)
}

func TestCategorieUpdate_Introuvable(t *testing.T) {
	uc, _, entreprises := buildCategorieUC(t)
	entrepriseID := seedEntreprise(t, entreprises)

	_, err := uc.Update(7, &dto.CategorieRequest{Code: "CAT-01", Designation: "Boissons", EntrepriseID: entrepriseID})
	assert.True(t, domain.IsEntityNotFound(err))
}

func TestCategorieDelete_IDNul_NonOperation(t *testing.T) {
	uc, _, entreprises := buildCategorieUC(t)
	entrepriseID := seedEntreprise(t, entreprises)

	created, err := uc.Save(&dto.CategorieRequest{Code: "CAT-01", Designation: "Boissons", EntrepriseID: entrepriseID})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(0))
	_, err = uc.FindByID(created.ID)
	assert.NoError(t, err, "l'ID nul ne doit rien supprimer")
}

func TestCategorieDelete_PuisFind_Introuvable(t *testing.T) {
	uc, _, entreprises := buildCategorieUC(t)
	entrepriseID := seedEntreprise(t, entreprises)

	created, err := uc.Save(&dto.CategorieRequest{Code: "CAT-01", Designation: "Boissons", EntrepriseID: entrepriseID})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	_, err = uc.FindByID(created.ID)
	assert.True(t, domain.IsEntityNotFound(err))
}
