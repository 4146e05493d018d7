package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
	apphttp "github.com/team48/gestion-stock-api/internal/interfaces/http"
	"github.com/team48/gestion-stock-api/pkg/logger"
)

type memCategorieRepo struct {
	byID   map[int]*entity.Categorie
	nextID int
}

func (r *memCategorieRepo) Create(c *entity.Categorie) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCategorieRepo) GetByID(id int) (*entity.Categorie, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategorieRepo) GetByCode(code string) (*entity.Categorie, error) {
	for _, c := range r.byID {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCategorieRepo) List() ([]*entity.Categorie, error) {
	out := make([]*entity.Categorie, 0, len(r.byID))
	for _, c := range r.byID {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCategorieRepo) Update(c *entity.Categorie) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *memCategorieRepo) Delete(id int) error {
	delete(r.byID, id)
	return nil
}

type memEntrepriseRepo struct {
	byID map[int]*entity.Entreprise
}

func (r *memEntrepriseRepo) Create(e *entity.Entreprise) error {
	r.byID[e.ID] = e
	return nil
}

func (r *memEntrepriseRepo) GetByID(id int) (*entity.Entreprise, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return e, nil
}

func (r *memEntrepriseRepo) GetByNomEntreprise(nom string) (*entity.Entreprise, error) {
	for _, e := range r.byID {
		if e.NomEntreprise == nom {
			return e, nil
		}
	}
	return nil, nil
}

func (r *memEntrepriseRepo) List() ([]*entity.Entreprise, error) { return nil, nil }

func (r *memEntrepriseRepo) Update(e *entity.Entreprise) error { return nil }

func (r *memEntrepriseRepo) Delete(id int) error { return nil }

func buildCategorieApp(t *testing.T) *fiber.App {
	t.Helper()
	categories := &memCategorieRepo{byID: map[int]*entity.Categorie{}, nextID: 1}
	entreprises := &memEntrepriseRepo{byID: map[int]*entity.Entreprise{
		1: {ID: 1, NomEntreprise: "Acme"},
	}}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	uc := usecase.NewCategorieUseCase(categories, entreprises, log)
	h := apphttp.NewCategorieHandler(uc)

	app := fiber.New()
	app.Post("/categories/create", h.Create)
	app.Get("/categories/id/:id", h.FindByID)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var out dto.ErrorResponse
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = json.Unmarshal(raw, &out)
	return resp, out
}

func TestCategorieHandlerCreate_Valide(t *testing.T) {
	app := buildCategorieApp(t)

	resp, _ := postJSON(t, app, "/categories/create", dto.CategorieRequest{
		Code:         "CAT-01",
		Designation:  "Boissons",
		EntrepriseID: 1,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCategorieHandlerCreate_Invalide(t *testing.T) {
	app := buildCategorieApp(t)

	resp, body := postJSON(t, app, "/categories/create", dto.CategorieRequest{EntrepriseID: 1})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "CATEGORIE_NOT_VALID", body.Code)
	assert.Equal(t, "La catégorie n'est pas valide", body.Message)
	assert.Equal(t, []string{
		"Veillez renseigner le code de la catégorie",
		"Veillez renseigner la désignation de la catégorie",
	}, body.Errors)
}

func TestCategorieHandlerFindByID_Introuvable(t *testing.T) {
	app := buildCategorieApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/categories/id/99", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "CATEGORIE_NOT_FOUND", body.Code)
	assert.Equal(t, "Aucune catégorie avec l'ID 99 n'a été trouvée dans la BDD", body.Message)
}
