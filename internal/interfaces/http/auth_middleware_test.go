package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/team48/gestion-stock-api/internal/interfaces/http"
	pkgjwt "github.com/team48/gestion-stock-api/pkg/jwt"
)

const (
	testJWTSecret     = "secret-de-test-pour-les-tests-unitaires"
	testUtilisateurID = 7
	testEntrepriseID  = 3
	testIssuer        = "gestion-stock-test"
	testExpMin        = 60
)

// buildTestApp construit une application Fiber minimale : AuthMiddleware
// puis un handler qui renvoie les claims posés dans Locals.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"utilisateurId": apphttp.GetUtilisateurID(c),
			"entrepriseId":  apphttp.GetEntrepriseID(c),
			"roles":         apphttp.GetRoles(c),
		})
	})
	return app
}

// tokenForRoles génère un jeton signé portant les rôles indiqués.
func tokenForRoles(t *testing.T, roles ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUtilisateurID, testEntrepriseID, roles, testIssuer, testExpMin)
	require.NoError(t, err, "le jeton de test doit se générer")
	return "Bearer " + tok
}

// doRequest lance une requête GET /me et retourne la réponse.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_SansHeader_Retourne401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_MauvaisSchema_Retourne401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Basic abcdef")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_JetonMalforme_Retourne401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer jeton.invalide.ici")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "jeton invalide ou expiré")
}

func TestAuthMiddleware_JetonVide_Retourne401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "Bearer ")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_MauvaisSecret_Retourne401(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.Generate("un-autre-secret", testUtilisateurID, testEntrepriseID, nil, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExtraitLesClaims(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, tokenForRoles(t, "ADMIN", "MANAGER"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UtilisateurID int      `json:"utilisateurId"`
		EntrepriseID  int      `json:"entrepriseId"`
		Roles         []string `json:"roles"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUtilisateurID, body.UtilisateurID)
	assert.Equal(t, testEntrepriseID, body.EntrepriseID)
	assert.Equal(t, []string{"ADMIN", "MANAGER"}, body.Roles)
}
