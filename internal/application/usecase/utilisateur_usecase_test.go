package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
	"github.com/team48/gestion-stock-api/internal/domain"
)

func buildUtilisateurUC(t *testing.T) (*usecase.UtilisateurUseCase, *fakeUtilisateurRepo, int) {
	t.Helper()
	utilisateurs := newFakeUtilisateurRepo()
	entreprises := newFakeEntrepriseRepo()
	uc := usecase.NewUtilisateurUseCase(utilisateurs, entreprises, testLogger())
	return uc, utilisateurs, seedEntreprise(t, entreprises)
}

func utilisateurRequest(entrepriseID int) *dto.UtilisateurRequest {
	return &dto.UtilisateurRequest{
		Nom:             "Dupont",
		Prenom:          "Marie",
		Username:        "mdupont",
		Email:           "marie@exemple.fr",
		MotDePasse:      "motdepasse",
		DateDeNaissance: "1990-12-31",
		Adresse1:        "1 rue de la Paix",
		Ville:           "Paris",
		CodePostal:      "75001",
		Pays:            "France",
		EntrepriseID:    entrepriseID,
	}
}

func TestUtilisateurSave_HacheLeMotDePasse(t *testing.T) {
	uc, utilisateurs, entrepriseID := buildUtilisateurUC(t)

	out, err := uc.Save(utilisateurRequest(entrepriseID))
	require.NoError(t, err)

	stored, err := utilisateurs.GetByID(out.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "motdepasse", stored.MotDePasse)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.MotDePasse), []byte("motdepasse")))
	assert.True(t, stored.Enabled)
	assert.True(t, stored.AccountNonLocked)
}

func TestUtilisateurUpdate_ConserveLesIndicateursEtLaPhoto(t *testing.T) {
	uc, utilisateurs, entrepriseID := buildUtilisateurUC(t)

	created, err := uc.Save(utilisateurRequest(entrepriseID))
	require.NoError(t, err)

	stored, err := utilisateurs.GetByID(created.ID)
	require.NoError(t, err)
	stored.Photo = "uploads/photo.png"
	stored.Enabled = false
	require.NoError(t, utilisateurs.Update(stored))

	in := utilisateurRequest(entrepriseID)
	in.Prenom = "Marie-Claire"
	in.MotDePasse = stored.MotDePasse // hachage inchangé
	updated, err := uc.Update(created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Marie-Claire", updated.Prenom)
	assert.Equal(t, "uploads/photo.png", updated.Photo)

	after, err := utilisateurs.GetByID(created.ID)
	require.NoError(t, err)
	assert.False(t, after.Enabled, "Update ne doit pas réactiver le compte")
	assert.Equal(t, stored.MotDePasse, after.MotDePasse, "le hachage inchangé est conservé tel quel")
}

func TestUtilisateurUpdate_NouveauMotDePasse_Rehache(t *testing.T) {
	uc, utilisateurs, entrepriseID := buildUtilisateurUC(t)

	created, err := uc.Save(utilisateurRequest(entrepriseID))
	require.NoError(t, err)

	in := utilisateurRequest(entrepriseID)
	in.MotDePasse = "nouveaumotdepasse"
	_, err = uc.Update(created.ID, in)
	require.NoError(t, err)

	after, err := utilisateurs.GetByID(created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "nouveaumotdepasse", after.MotDePasse)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after.MotDePasse), []byte("nouveaumotdepasse")))
}

func TestUtilisateurFindByEmail_Introuvable(t *testing.T) {
	uc, _, _ := buildUtilisateurUC(t)

	_, err := uc.FindByEmail("personne@exemple.fr")
	var notFound *domain.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Aucun utilisateur avec l'EMAIL personne@exemple.fr n'a été trouvé dans la BDD", notFound.Message)
}

func TestUtilisateurSave_EntrepriseInconnue(t *testing.T) {
	uc, utilisateurs, _ := buildUtilisateurUC(t)

	in := utilisateurRequest(42)
	_, err := uc.Save(in)
	assert.True(t, domain.IsEntityNotFound(err))
	assert.Empty(t, utilisateurs.byID)
}
