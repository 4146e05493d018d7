package validator_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/validator"
)

func TestCategorie_Vide_RetourneMessagesOrdonnes(t *testing.T) {
	errs := validator.Categorie(dto.CategorieRequest{})
	assert.Equal(t, []string{
		"Veillez renseigner le code de la catégorie",
		"Veillez renseigner la désignation de la catégorie",
		"Veillez renseigner l'entreprise de la catégorie",
	}, errs)
}

func TestCategorie_Valide_RetourneVide(t *testing.T) {
	errs := validator.Categorie(dto.CategorieRequest{
		Code:         "CAT-01",
		Designation:  "Boissons",
		EntrepriseID: 1,
	})
	assert.Empty(t, errs)
}

func TestCategorie_CodeManquant_SignaleLeCodeSeul(t *testing.T) {
	errs := validator.Categorie(dto.CategorieRequest{
		Designation:  "Boissons",
		EntrepriseID: 1,
	})
	assert.Equal(t, []string{"Veillez renseigner le code de la catégorie"}, errs)
}

func TestArticle_PrixManquants(t *testing.T) {
	errs := validator.Article(dto.ArticleRequest{
		CodeArticle:  "ART-01",
		Designation:  "Clavier",
		CategorieID:  1,
		EntrepriseID: 1,
	})
	assert.Equal(t, []string{
		"Veillez renseigner le prix unitaire de l'article",
		"Veillez renseigner le prix unitaire TTC de l'article",
	}, errs)
}

func TestArticle_Valide(t *testing.T) {
	errs := validator.Article(dto.ArticleRequest{
		CodeArticle:     "ART-01",
		Designation:     "Clavier",
		PrixUnitaire:    decimal.NewFromInt(100),
		PrixUnitaireTtc: decimal.NewFromInt(119),
		CategorieID:     1,
		EntrepriseID:    1,
	})
	assert.Empty(t, errs)
}

func TestVente_QuantiteDeLigneManquante(t *testing.T) {
	errs := validator.Vente(dto.VenteRequest{
		Code:         "VTE-01",
		DateVente:    "2024-05-01T10:00:00Z",
		EntrepriseID: 1,
		LigneVentes: []dto.LigneVenteRequest{
			{ArticleID: 1, PrixUnitaire: decimal.NewFromInt(100)},
		},
	})
	assert.Equal(t, []string{"Ligne 1 : Veillez renseigner la quantité de la ligne de vente"}, errs)
}

func TestUtilisateur_DateDeNaissanceMalFormee(t *testing.T) {
	errs := validator.Utilisateur(dto.UtilisateurRequest{
		Nom:             "Dupont",
		Prenom:          "Marie",
		Username:        "mdupont",
		Email:           "marie@exemple.fr",
		MotDePasse:      "motdepasse",
		DateDeNaissance: "31/12/1990",
		Adresse1:        "1 rue de la Paix",
		Ville:           "Paris",
		CodePostal:      "75001",
		Pays:            "France",
		EntrepriseID:    1,
	})
	assert.Equal(t, []string{"La date de naissance doit être au format AAAA-MM-JJ"}, errs)
}

func TestRegister_EmailInvalide(t *testing.T) {
	errs := validator.Register(dto.RegisterRequest{
		Nom:      "Dupont",
		Prenom:   "Marie",
		Username: "mdupont",
		Email:    "pas-un-email",
		Password: "motdepasse",
		Role:     "ADMIN",
	})
	assert.Contains(t, errs, "Veillez renseigner un email valide")
}

func TestLogin_Vide(t *testing.T) {
	errs := validator.Login(dto.LoginRequest{})
	assert.NotEmpty(t, errs)
}

func TestMvtStk_TypeInconnu(t *testing.T) {
	errs := validator.MvtStk(dto.MvtStkRequest{
		DateMvt:   "2024-03-01T10:00:00Z",
		Quantite:  decimal.NewFromInt(5),
		TypeMvt:   "TRANSFERT",
		ArticleID: 1,
	})
	assert.NotEmpty(t, errs)
}
