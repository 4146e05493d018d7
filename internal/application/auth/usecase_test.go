package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/team48/gestion-stock-api/internal/application/auth"
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/domain"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
	"github.com/team48/gestion-stock-api/pkg/jwt"
	"github.com/team48/gestion-stock-api/pkg/logger"
)

const (
	testSecret = "secret-de-test-auth"
	testIssuer = "gestion-stock-test"
)

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

type fakeRolesRepo struct {
	byID   map[int]*entity.Roles
	nextID int
}

func newFakeRolesRepo() *fakeRolesRepo {
	return &fakeRolesRepo{byID: map[int]*entity.Roles{}, nextID: 1}
}

func (r *fakeRolesRepo) Create(role *entity.Roles) error {
	role.ID = r.nextID
	r.nextID++
	cp := *role
	r.byID[role.ID] = &cp
	return nil
}

func (r *fakeRolesRepo) GetByID(id int) (*entity.Roles, error) {
	role, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *role
	return &cp, nil
}

func (r *fakeRolesRepo) GetByRoleName(roleName entity.RoleName) (*entity.Roles, error) {
	for _, role := range r.byID {
		if role.RoleName == roleName {
			cp := *role
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRolesRepo) ListByUtilisateur(utilisateurID int) ([]entity.Roles, error) {
	var out []entity.Roles
	for _, role := range r.byID {
		if role.UtilisateurID == utilisateurID {
			out = append(out, *role)
		}
	}
	return out, nil
}

func (r *fakeRolesRepo) List() ([]*entity.Roles, error) {
	out := make([]*entity.Roles, 0, len(r.byID))
	for _, role := range r.byID {
		cp := *role
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRolesRepo) Update(role *entity.Roles) error {
	cp := *role
	r.byID[role.ID] = &cp
	return nil
}

func (r *fakeRolesRepo) Delete(id int) error {
	delete(r.byID, id)
	return nil
}

func buildAuthUC(t *testing.T) (*auth.AuthUseCase, *fakeUtilisateurRepo, *fakeRolesRepo) {
	t.Helper()
	utilisateurs := newFakeUtilisateurRepo()
	roles := newFakeRolesRepo()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	uc := auth.NewAuthUseCase(utilisateurs, roles, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	}, log)
	return uc, utilisateurs, roles
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Nom:          "Dupont",
		Prenom:       "Marie",
		Username:     "mdupont",
		Email:        "marie@exemple.fr",
		Password:     "motdepasse",
		Role:         "ADMIN",
		EntrepriseID: 1,
	}
}

func TestRegister_RetourneJetonExploitable(t *testing.T) {
	uc, _, roles := buildAuthUC(t)

	out, err := uc.Register(registerRequest())
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.NotZero(t, out.User.ID)
	assert.Len(t, roles.byID, 1)

	claims, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)
	assert.Equal(t, 1, claims.EntrepriseID)
	assert.Equal(t, []string{"ADMIN"}, claims.Roles)
}

func TestRegister_MotDePasseJamaisEnClair(t *testing.T) {
	uc, utilisateurs, _ := buildAuthUC(t)

	out, err := uc.Register(registerRequest())
	require.NoError(t, err)

	stored, err := utilisateurs.GetByID(out.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "motdepasse", stored.MotDePasse)
	assert.NotEmpty(t, stored.MotDePasse)
}

func TestRegister_EmailDejaUtilise(t *testing.T) {
	uc, _, _ := buildAuthUC(t)

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	in := registerRequest()
	in.Username = "autre"
	_, err = uc.Register(in)
	var dup *domain.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Email déjà utilisé", dup.Message)
}

func TestRegister_UsernameDejaUtilise(t *testing.T) {
	uc, _, _ := buildAuthUC(t)

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	in := registerRequest()
	in.Email = "autre@exemple.fr"
	_, err = uc.Register(in)
	var dup *domain.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Nom d'utilisateur déjà utilisé", dup.Message)
}

func TestRegister_RoleInconnu(t *testing.T) {
	uc, utilisateurs, _ := buildAuthUC(t)

	in := registerRequest()
	in.Role = "SUPERVISEUR"
	_, err := uc.Register(in)
	var invalid *domain.InvalidEntityError
	require.ErrorAs(t, err, &invalid)
	assert.Empty(t, utilisateurs.byID)
}

func TestLogin_ApresInscription(t *testing.T) {
	uc, _, _ := buildAuthUC(t)

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	out, err := uc.Login(&dto.LoginRequest{Email: "marie@exemple.fr", Password: "motdepasse"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "marie@exemple.fr", out.User.Email)
}

func TestLogin_MauvaisMotDePasse(t *testing.T) {
	uc, _, _ := buildAuthUC(t)

	_, err := uc.Register(registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(&dto.LoginRequest{Email: "marie@exemple.fr", Password: "autremotdepasse"})
	var bad *domain.BadCredentialsError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "Identifiants invalides", bad.Message)
}

func TestLogin_EmailInconnu_MemeMessage(t *testing.T) {
	uc, _, _ := buildAuthUC(t)

	_, err := uc.Login(&dto.LoginRequest{Email: "inconnu@exemple.fr", Password: "motdepasse"})
	var bad *domain.BadCredentialsError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "Identifiants invalides", bad.Message)
}

func TestLogin_CompteDesactive(t *testing.T) {
	uc, utilisateurs, _ := buildAuthUC(t)

	out, err := uc.Register(registerRequest())
	require.NoError(t, err)

	stored, err := utilisateurs.GetByID(out.User.ID)
	require.NoError(t, err)
	stored.Enabled = false
	require.NoError(t, utilisateurs.Update(stored))

	_, err = uc.Login(&dto.LoginRequest{Email: "marie@exemple.fr", Password: "motdepasse"})
	var bad *domain.BadCredentialsError
	require.ErrorAs(t, err, &bad)
	assert.Equal(t, "Identifiants invalides", bad.Message)
}
