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

type commandeClientFixture struct {
	uc           *usecase.CommandeClientUseCase
	commandes    *fakeCommandeClientRepo
	lignes       *fakeLigneCommandeClientRepo
	articles     *fakeArticleRepo
	entrepriseID int
	clientID     int
	articleID    int
}

func buildCommandeClientFixture(t *testing.T) *commandeClientFixture {
	t.Helper()
	lignes := newFakeLigneCommandeClientRepo()
	commandes := newFakeCommandeClientRepo(lignes)
	clients := newFakeClientRepo()
	articles := newFakeArticleRepo()
	entreprises := newFakeEntrepriseRepo()
	tx := &fakeTxRunner{commandesClient: commandes, lignesClient: lignes}
	uc := usecase.NewCommandeClientUseCase(commandes, lignes, clients, articles, entreprises, tx, testLogger())

	entrepriseID := seedEntreprise(t, entreprises)
	client := &entity.Client{Nom: "Durand", Prenom: "Paul", Email: "paul@exemple.fr", EntrepriseID: entrepriseID}
	require.NoError(t, clients.Create(client))
	articleID := seedArticle(t, articles)

	return &commandeClientFixture{
		uc:           uc,
		commandes:    commandes,
		lignes:       lignes,
		articles:     articles,
		entrepriseID: entrepriseID,
		clientID:     client.ID,
		articleID:    articleID,
	}
}

func (f *commandeClientFixture) createCommande(t *testing.T) *dto.CommandeClientResponse {
	t.Helper()
	out, err := f.uc.Save(&dto.CommandeClientRequest{
		Code:         "CC-2024-001",
		DateCommande: "2024-03-01T10:00:00Z",
		ClientID:     f.clientID,
		EntrepriseID: f.entrepriseID,
	})
	require.NoError(t, err)
	return out
}

func TestCommandeClientSave_AttacheLeClient(t *testing.T) {
	f := buildCommandeClientFixture(t)
	out := f.createCommande(t)

	assert.NotZero(t, out.ID)
	require.NotNil(t, out.Client)
	assert.Equal(t, f.clientID, out.Client.ID)
}

func TestCommandeClientSave_ClientInconnu(t *testing.T) {
	f := buildCommandeClientFixture(t)

	_, err := f.uc.Save(&dto.CommandeClientRequest{
		Code:         "CC-2024-002",
		DateCommande: "2024-03-01T10:00:00Z",
		ClientID:     77,
		EntrepriseID: f.entrepriseID,
	})
	var notFound *domain.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.ClientNotFound, notFound.Code)
	assert.Empty(t, f.commandes.byID)
}

func TestCommandeClientAddLigne_PuisFindLignes(t *testing.T) {
	f := buildCommandeClientFixture(t)
	commande := f.createCommande(t)

	out, err := f.uc.AddLigne(commande.ID, &dto.LigneCommandeClientRequest{
		ArticleID:    f.articleID,
		Quantite:     decimal.NewFromInt(3),
		PrixUnitaire: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	require.Len(t, out.Lignes, 1)
	assert.Equal(t, f.entrepriseID, out.Lignes[0].EntrepriseID,
		"la ligne hérite de l'entreprise de la commande")

	lignes, err := f.uc.FindAllLignesByCommandeID(commande.ID)
	require.NoError(t, err)
	assert.Len(t, lignes, 1)
}

func TestCommandeClientAddLigne_ArticleInconnu(t *testing.T) {
	f := buildCommandeClientFixture(t)
	commande := f.createCommande(t)

	_, err := f.uc.AddLigne(commande.ID, &dto.LigneCommandeClientRequest{
		ArticleID:    55,
		Quantite:     decimal.NewFromInt(3),
		PrixUnitaire: decimal.NewFromInt(100),
	})
	var notFound *domain.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.ArticleNotFound, notFound.Code)
	assert.Empty(t, f.lignes.byID)
}

func TestCommandeClientUpdateLigne_IDRequis(t *testing.T) {
	f := buildCommandeClientFixture(t)
	commande := f.createCommande(t)

	_, err := f.uc.UpdateLigne(commande.ID, &dto.LigneCommandeClientRequest{
		ArticleID:    f.articleID,
		Quantite:     decimal.NewFromInt(1),
		PrixUnitaire: decimal.NewFromInt(50),
	})
	assert.True(t, domain.IsInvalidEntity(err))
}

func TestCommandeClientRemoveLigne(t *testing.T) {
	f := buildCommandeClientFixture(t)
	commande := f.createCommande(t)

	withLigne, err := f.uc.AddLigne(commande.ID, &dto.LigneCommandeClientRequest{
		ArticleID:    f.articleID,
		Quantite:     decimal.NewFromInt(3),
		PrixUnitaire: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	require.Len(t, withLigne.Lignes, 1)

	out, err := f.uc.RemoveLigne(commande.ID, withLigne.Lignes[0].ID)
	require.NoError(t, err)
	assert.Empty(t, out.Lignes)
}

func TestCommandeClientRemoveAllLignes(t *testing.T) {
	f := buildCommandeClientFixture(t)
	commande := f.createCommande(t)

	for i := 0; i < 3; i++ {
		_, err := f.uc.AddLigne(commande.ID, &dto.LigneCommandeClientRequest{
			ArticleID:    f.articleID,
			Quantite:     decimal.NewFromInt(int64(i + 1)),
			PrixUnitaire: decimal.NewFromInt(100),
		})
		require.NoError(t, err)
	}

	out, err := f.uc.RemoveAllLignes(commande.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Lignes)
}

func TestCommandeClientUpdate_ConserveLesLignes(t *testing.T) {
	f := buildCommandeClientFixture(t)
	commande := f.createCommande(t)

	_, err := f.uc.AddLigne(commande.ID, &dto.LigneCommandeClientRequest{
		ArticleID:    f.articleID,
		Quantite:     decimal.NewFromInt(2),
		PrixUnitaire: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	out, err := f.uc.Update(commande.ID, &dto.CommandeClientRequest{
		Code:         "CC-2024-001-BIS",
		DateCommande: "2024-03-02T10:00:00Z",
		ClientID:     f.clientID,
		EntrepriseID: f.entrepriseID,
	})
	require.NoError(t, err)
	assert.Equal(t, "CC-2024-001-BIS", out.Code)
	assert.Len(t, out.Lignes, 1)
}

func TestCommandeClientDelete_SupprimeLesLignes(t *testing.T) {
	f := buildCommandeClientFixture(t)
	commande := f.createCommande(t)

	_, err := f.uc.AddLigne(commande.ID, &dto.LigneCommandeClientRequest{
		ArticleID:    f.articleID,
		Quantite:     decimal.NewFromInt(2),
		PrixUnitaire: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(commande.ID))
	assert.Empty(t, f.lignes.byID)
	_, err = f.uc.FindByID(commande.ID)
	assert.True(t, domain.IsEntityNotFound(err))
}

func TestCommandeClientFindByCode_Introuvable(t *testing.T) {
	f := buildCommandeClientFixture(t)

	_, err := f.uc.FindByCode("CC-INCONNU")
	var notFound *domain.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.CommandeClientNotFound, notFound.Code)
}

func TestCommandeClientRemoveLigne_LigneDUneAutreCommande(t *testing.T) {
	f := buildCommandeClientFixture(t)
	commandeA := f.createCommande(t)
	commandeB, err := f.uc.Save(&dto.CommandeClientRequest{
		Code:         "CC-2024-002",
		DateCommande: "2024-03-02T10:00:00Z",
		ClientID:     f.clientID,
		EntrepriseID: f.entrepriseID,
	})
	require.NoError(t, err)
	outB, err := f.uc.AddLigne(commandeB.ID, &dto.LigneCommandeClientRequest{
		ArticleID:    f.articleID,
		Quantite:     decimal.NewFromInt(2),
		PrixUnitaire: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	ligneB := outB.Lignes[0].ID

	_, err = f.uc.RemoveLigne(commandeA.ID, ligneB)
	var notFound *domain.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.LigneCommandeNotFound, notFound.Code)

	lignes, err := f.uc.FindAllLignesByCommandeID(commandeB.ID)
	require.NoError(t, err)
	assert.Len(t, lignes, 1, "la ligne de l'autre commande reste intacte")
}

func TestCommandeClientUpdateLigne_LigneDUneAutreCommande(t *testing.T) {
	f := buildCommandeClientFixture(t)
	commandeA := f.createCommande(t)
	commandeB, err := f.uc.Save(&dto.CommandeClientRequest{
		Code:         "CC-2024-003",
		DateCommande: "2024-03-02T10:00:00Z",
		ClientID:     f.clientID,
		EntrepriseID: f.entrepriseID,
	})
	require.NoError(t, err)
	outB, err := f.uc.AddLigne(commandeB.ID, &dto.LigneCommandeClientRequest{
		ArticleID:    f.articleID,
		Quantite:     decimal.NewFromInt(2),
		PrixUnitaire: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	ligneB := outB.Lignes[0].ID

	_, err = f.uc.UpdateLigne(commandeA.ID, &dto.LigneCommandeClientRequest{
		ID:           ligneB,
		ArticleID:    f.articleID,
		Quantite:     decimal.NewFromInt(9),
		PrixUnitaire: decimal.NewFromInt(100),
	})
	var notFound *domain.EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.LigneCommandeNotFound, notFound.Code)

	lignesA, err := f.uc.FindAllLignesByCommandeID(commandeA.ID)
	require.NoError(t, err)
	assert.Empty(t, lignesA, "la ligne ne doit pas changer de commande")
	lignesB, err := f.uc.FindAllLignesByCommandeID(commandeB.ID)
	require.NoError(t, err)
	require.Len(t, lignesB, 1)
	assert.True(t, lignesB[0].Quantite.Equal(decimal.NewFromInt(2)))
}
