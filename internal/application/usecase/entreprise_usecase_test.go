package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
	"github.com/team48/gestion-stock-api/internal/domain"
)

func entrepriseRequest() *dto.EntrepriseRequest {
	return &dto.EntrepriseRequest{
		NomEntreprise: "Acme",
		Description:   "Distribution de fournitures",
		Email:         "contact@acme.fr",
		Adresse1:      "1 rue de la Paix",
		Ville:         "Paris",
		CodePostal:    "75001",
		Pays:          "France",
		CodeFiscal:    "FR-123456",
		NumTel:        "+33100000000",
	}
}

func TestEntrepriseSave_PoseLaDateDeCreation(t *testing.T) {
	uc := usecase.NewEntrepriseUseCase(newFakeEntrepriseRepo(), testLogger())

	out, err := uc.Save(entrepriseRequest())
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.False(t, out.CreationDate.IsZero())
}

func TestEntrepriseSave_Invalide_ListeOrdonnee(t *testing.T) {
	uc := usecase.NewEntrepriseUseCase(newFakeEntrepriseRepo(), testLogger())

	in := entrepriseRequest()
	in.NomEntreprise = ""
	in.CodeFiscal = ""
	_, err := uc.Save(in)
	var invalid *domain.InvalidEntityError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []string{
		"Veillez renseigner le nom de l'entreprise",
		"Veillez renseigner le code fiscal de l'entreprise",
	}, invalid.Errors)
}

func TestEntrepriseUpdate_ConserveLaDateDeCreation(t *testing.T) {
	uc := usecase.NewEntrepriseUseCase(newFakeEntrepriseRepo(), testLogger())

	created, err := uc.Save(entrepriseRequest())
	require.NoError(t, err)

	in := entrepriseRequest()
	in.NomEntreprise = "Acme SARL"
	updated, err := uc.Update(created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Acme SARL", updated.NomEntreprise)
	assert.Equal(t, created.CreationDate, updated.CreationDate)
}

func TestEntrepriseFindByNom(t *testing.T) {
	uc := usecase.NewEntrepriseUseCase(newFakeEntrepriseRepo(), testLogger())

	created, err := uc.Save(entrepriseRequest())
	require.NoError(t, err)

	found, err := uc.FindByNom("Acme")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = uc.FindByNom("Inconnue")
	assert.True(t, domain.IsEntityNotFound(err))
}
