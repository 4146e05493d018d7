package usecase_test

import (
	"sort"

	"github.com/team48/gestion-stock-api/internal/domain/entity"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
	"github.com/team48/gestion-stock-api/pkg/logger"
)

// Les fakes reproduisent le contrat des repositories Postgres : Create pose
// l'ID, les lectures retournent (nil, nil) quand rien ne correspond et
// GetByID d'une commande recharge ses lignes.

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

type fakeEntrepriseRepo struct {
	byID   map[int]*entity.Entreprise
	nextID int
}

func newFakeEntrepriseRepo() *fakeEntrepriseRepo {
	return &fakeEntrepriseRepo{byID: map[int]*entity.Entreprise{}, nextID: 1}
}

func (r *fakeEntrepriseRepo) Create(e *entity.Entreprise) error {
	e.ID = r.nextID
	r.nextID++
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *fakeEntrepriseRepo) GetByID(id int) (*entity.Entreprise, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEntrepriseRepo) GetByNomEntreprise(nom string) (*entity.Entreprise, error) {
	for _, e := range r.byID {
		if e.NomEntreprise == nom {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEntrepriseRepo) List() ([]*entity.Entreprise, error) {
	out := make([]*entity.Entreprise, 0, len(r.byID))
	for _, e := range r.byID {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEntrepriseRepo) Update(e *entity.Entreprise) error {
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *fakeEntrepriseRepo) Delete(id int) error {
	delete(r.byID, id)
	return nil
}

type fakeCategorieRepo struct {
	byID   map[int]*entity.Categorie
	nextID int
}

func newFakeCategorieRepo() *fakeCategorieRepo {
	return &fakeCategorieRepo{byID: map[int]*entity.Categorie{}, nextID: 1}
}

func (r *fakeCategorieRepo) Create(c *entity.Categorie) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeCategorieRepo) GetByID(id int) (*entity.Categorie, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategorieRepo) GetByCode(code string) (*entity.Categorie, error) {
	for _, c := range r.byID {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategorieRepo) List() ([]*entity.Categorie, error) {
	out := make([]*entity.Categorie, 0, len(r.byID))
	for _, c := range r.byID {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCategorieRepo) Update(c *entity.Categorie) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeCategorieRepo) Delete(id int) error {
	delete(r.byID, id)
	return nil
}

type fakeArticleRepo struct {
	byID   map[int]*entity.Article
	nextID int
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{byID: map[int]*entity.Article{}, nextID: 1}
}

func (r *fakeArticleRepo) Create(a *entity.Article) error {
	a.ID = r.nextID
	r.nextID++
	cp := *a
	r.byID[a.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) GetByID(id int) (*entity.Article, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeArticleRepo) GetByCodeArticle(code string) (*entity.Article, error) {
	for _, a := range r.byID {
		if a.CodeArticle == code {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeArticleRepo) List() ([]*entity.Article, error) {
	out := make([]*entity.Article, 0, len(r.byID))
	for _, a := range r.byID {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeArticleRepo) Update(a *entity.Article) error {
	cp := *a
	r.byID[a.ID] = &cp
	return nil
}

func (r *fakeArticleRepo) Delete(id int) error {
	delete(r.byID, id)
	return nil
}

type fakeClientRepo struct {
	byID   map[int]*entity.Client
	nextID int
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byID: map[int]*entity.Client{}, nextID: 1}
}

func (r *fakeClientRepo) Create(c *entity.Client) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(id int) (*entity.Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) GetByNom(nom string) (*entity.Client, error) {
	for _, c := range r.byID {
		if c.Nom == nom {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeClientRepo) List() ([]*entity.Client, error) {
	out := make([]*entity.Client, 0, len(r.byID))
	for _, c := range r.byID {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeClientRepo) Update(c *entity.Client) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(id int) error {
	delete(r.byID, id)
	return nil
}

type fakeLigneCommandeClientRepo struct {
	byID   map[int]*entity.LigneCommandeClient
	nextID int
}

func newFakeLigneCommandeClientRepo() *fakeLigneCommandeClientRepo {
	return &fakeLigneCommandeClientRepo{byID: map[int]*entity.LigneCommandeClient{}, nextID: 1}
}

func (r *fakeLigneCommandeClientRepo) Create(l *entity.LigneCommandeClient) error {
	l.ID = r.nextID
	r.nextID++
	cp := *l
	r.byID[l.ID] = &cp
	return nil
}

func (r *fakeLigneCommandeClientRepo) GetByID(id int) (*entity.LigneCommandeClient, error) {
	l, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLigneCommandeClientRepo) ListByCommande(commandeID int) ([]entity.LigneCommandeClient, error) {
	var out []entity.LigneCommandeClient
	for _, l := range r.byID {
		if l.CommandeClientID == commandeID {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeLigneCommandeClientRepo) Update(l *entity.LigneCommandeClient) error {
	cp := *l
	r.byID[l.ID] = &cp
	return nil
}

func (r *fakeLigneCommandeClientRepo) Delete(id int) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeLigneCommandeClientRepo) DeleteByCommande(commandeID int) error {
	for id, l := range r.byID {
		if l.CommandeClientID == commandeID {
			delete(r.byID, id)
		}
	}
	return nil
}

// fakeCommandeClientRepo recharge les lignes à la lecture, comme le
// repository Postgres.
type fakeCommandeClientRepo struct {
	byID   map[int]*entity.CommandeClient
	lignes *fakeLigneCommandeClientRepo
	nextID int
}

func newFakeCommandeClientRepo(lignes *fakeLigneCommandeClientRepo) *fakeCommandeClientRepo {
	return &fakeCommandeClientRepo{byID: map[int]*entity.CommandeClient{}, lignes: lignes, nextID: 1}
}

func (r *fakeCommandeClientRepo) Create(c *entity.CommandeClient) error {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeCommandeClientRepo) GetByID(id int) (*entity.CommandeClient, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.Lignes, _ = r.lignes.ListByCommande(id)
	return &cp, nil
}

func (r *fakeCommandeClientRepo) GetByCode(code string) (*entity.CommandeClient, error) {
	for _, c := range r.byID {
		if c.Code == code {
			return r.GetByID(c.ID)
		}
	}
	return nil, nil
}

func (r *fakeCommandeClientRepo) List() ([]*entity.CommandeClient, error) {
	out := make([]*entity.CommandeClient, 0, len(r.byID))
	for id := range r.byID {
		c, _ := r.GetByID(id)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCommandeClientRepo) Update(c *entity.CommandeClient) error {
	cp := *c
	cp.Lignes = nil
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeCommandeClientRepo) Delete(id int) error {
	delete(r.byID, id)
	return nil
}

type fakeMvtStkRepo struct {
	byID   map[int]*entity.MvtStk
	nextID int
}

func newFakeMvtStkRepo() *fakeMvtStkRepo {
	return &fakeMvtStkRepo{byID: map[int]*entity.MvtStk{}, nextID: 1}
}

func (r *fakeMvtStkRepo) Create(m *entity.MvtStk) error {
	m.ID = r.nextID
	r.nextID++
	cp := *m
	r.byID[m.ID] = &cp
	return nil
}

func (r *fakeMvtStkRepo) GetByID(id int) (*entity.MvtStk, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *fakeMvtStkRepo) List() ([]*entity.MvtStk, error) {
	out := make([]*entity.MvtStk, 0, len(r.byID))
	for _, m := range r.byID {
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeMvtStkRepo) Update(m *entity.MvtStk) error {
	cp := *m
	r.byID[m.ID] = &cp
	return nil
}

func (r *fakeMvtStkRepo) Delete(id int) error {
	delete(r.byID, id)
	return nil
}

type fakeUtilisateurRepo struct {
	byID   map[int]*entity.Utilisateur
	nextID int
}

func newFakeUtilisateurRepo() *fakeUtilisateurRepo {
	return &fakeUtilisateurRepo{byID: map[int]*entity.Utilisateur{}, nextID: 1}
}

func (r *fakeUtilisateurRepo) Create(u *entity.Utilisateur) error {
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUtilisateurRepo) GetByID(id int) (*entity.Utilisateur, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUtilisateurRepo) GetByEmail(email string) (*entity.Utilisateur, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUtilisateurRepo) GetByUsername(username string) (*entity.Utilisateur, error) {
	for _, u := range r.byID {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUtilisateurRepo) List() ([]*entity.Utilisateur, error) {
	out := make([]*entity.Utilisateur, 0, len(r.byID))
	for _, u := range r.byID {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUtilisateurRepo) Update(u *entity.Utilisateur) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUtilisateurRepo) Delete(id int) error {
	delete(r.byID, id)
	return nil
}

type fakeLigneVenteRepo struct {
	byID   map[int]*entity.LigneVente
	nextID int
}

func newFakeLigneVenteRepo() *fakeLigneVenteRepo {
	return &fakeLigneVenteRepo{byID: map[int]*entity.LigneVente{}, nextID: 1}
}

func (r *fakeLigneVenteRepo) Create(l *entity.LigneVente) error {
	l.ID = r.nextID
	r.nextID++
	cp := *l
	r.byID[l.ID] = &cp
	return nil
}

func (r *fakeLigneVenteRepo) ListByVente(venteID int) ([]entity.LigneVente, error) {
	var out []entity.LigneVente
	for _, l := range r.byID {
		if l.VenteID == venteID {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeLigneVenteRepo) DeleteByVente(venteID int) error {
	for id, l := range r.byID {
		if l.VenteID == venteID {
			delete(r.byID, id)
		}
	}
	return nil
}

type fakeVenteRepo struct {
	byID   map[int]*entity.Vente
	lignes *fakeLigneVenteRepo
	nextID int
}

func newFakeVenteRepo(lignes *fakeLigneVenteRepo) *fakeVenteRepo {
	return &fakeVenteRepo{byID: map[int]*entity.Vente{}, lignes: lignes, nextID: 1}
}

func (r *fakeVenteRepo) Create(v *entity.Vente) error {
	v.ID = r.nextID
	r.nextID++
	cp := *v
	cp.Lignes = nil
	r.byID[v.ID] = &cp
	return nil
}

func (r *fakeVenteRepo) GetByID(id int) (*entity.Vente, error) {
	v, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	cp.Lignes, _ = r.lignes.ListByVente(id)
	return &cp, nil
}

func (r *fakeVenteRepo) GetByCode(code string) (*entity.Vente, error) {
	for _, v := range r.byID {
		if v.Code == code {
			return r.GetByID(v.ID)
		}
	}
	return nil, nil
}

func (r *fakeVenteRepo) List() ([]*entity.Vente, error) {
	out := make([]*entity.Vente, 0, len(r.byID))
	for id := range r.byID {
		v, _ := r.GetByID(id)
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeVenteRepo) Update(v *entity.Vente) error {
	cp := *v
	cp.Lignes = nil
	r.byID[v.ID] = &cp
	return nil
}

func (r *fakeVenteRepo) Delete(id int) error {
	delete(r.byID, id)
	return nil
}

// fakeTxRunner exécute les callbacks hors transaction, sur les mêmes fakes.
type fakeTxRunner struct {
	commandesClient      repository.CommandeClientRepository
	lignesClient         repository.LigneCommandeClientRepository
	commandesFournisseur repository.CommandeFournisseurRepository
	lignesFournisseur    repository.LigneCommandeFournisseurRepository
	ventes               repository.VenteRepository
	lignesVente          repository.LigneVenteRepository
}

func (t *fakeTxRunner) RunCommandeClient(fn func(
	commandes repository.CommandeClientRepository,
	lignes repository.LigneCommandeClientRepository,
) error) error {
	return fn(t.commandesClient, t.lignesClient)
}

func (t *fakeTxRunner) RunCommandeFournisseur(fn func(
	commandes repository.CommandeFournisseurRepository,
	lignes repository.LigneCommandeFournisseurRepository,
) error) error {
	return fn(t.commandesFournisseur, t.lignesFournisseur)
}

func (t *fakeTxRunner) RunVente(fn func(
	ventes repository.VenteRepository,
	lignes repository.LigneVenteRepository,
) error) error {
	return fn(t.ventes, t.lignesVente)
}
