package auth

import (
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/validator"
	"github.com/team48/gestion-stock-api/internal/domain"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
	"github.com/team48/gestion-stock-api/pkg/jwt"
	"github.com/team48/gestion-stock-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig paramètres de génération des jetons.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase cas d'usage d'authentification : inscription et connexion.
type AuthUseCase struct {
	utilisateurs repository.UtilisateurRepository
	roles        repository.RolesRepository
	jwtCfg       JWTConfig
	log          *logger.Logger
}

// NewAuthUseCase construit le cas d'usage.
func NewAuthUseCase(utilisateurs repository.UtilisateurRepository, roles repository.RolesRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{utilisateurs: utilisateurs, roles: roles, jwtCfg: jwtCfg, log: log}
}

// Register crée un utilisateur avec exactement un rôle, hache le mot de
// passe avec bcrypt et retourne un jeton signé. Email et username doivent
// être libres.
func (uc *AuthUseCase) Register(in *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in == nil {
		uc.log.Error().Msg("inscription nulle")
		return nil, domain.NewInvalidEntity(domain.UtilisateurNotValid, "L'utilisateur ne peut pas être null", nil)
	}
	if errs := validator.Register(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("inscription invalide")
		return nil, domain.NewInvalidEntity(domain.UtilisateurNotValid, "L'utilisateur n'est pas valide", errs)
	}
	roleName, err := entity.ParseRoleName(in.Role)
	if err != nil {
		uc.log.Error().Str("role", in.Role).Msg("rôle inconnu à l'inscription")
		return nil, domain.NewInvalidEntity(domain.UtilisateurNotValid, "L'utilisateur n'est pas valide",
			[]string{"Veillez renseigner un rôle reconnu (ADMIN, MANAGER, EMPLOYEE)"})
	}
	existing, err := uc.utilisateurs.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.DuplicateError{Message: "Email déjà utilisé"}
	}
	existing, err = uc.utilisateurs.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.DuplicateError{Message: "Nom d'utilisateur déjà utilisé"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	utilisateur := &entity.Utilisateur{
		Nom:              in.Nom,
		Prenom:           in.Prenom,
		Username:         in.Username,
		Email:            in.Email,
		MotDePasse:       string(hash),
		EntrepriseID:     in.EntrepriseID,
		Enabled:          true,
		AccountNonLocked: true,
	}
	if err := uc.utilisateurs.Create(utilisateur); err != nil {
		return nil, err
	}
	role := &entity.Roles{
		RoleName:      roleName,
		UtilisateurID: utilisateur.ID,
		EntrepriseID:  in.EntrepriseID,
	}
	if err := uc.roles.Create(role); err != nil {
		return nil, err
	}
	utilisateur.Roles = []entity.Roles{*role}
	token, err := uc.issueToken(utilisateur)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("utilisateurId", utilisateur.ID).Str("email", utilisateur.Email).Msg("utilisateur inscrit")
	return &dto.AuthResponse{Token: token, User: *dto.UtilisateurFromEntity(utilisateur)}, nil
}

// Login vérifie les identifiants et retourne un jeton signé avec la
// projection de l'utilisateur. Tout échec retourne le même message pour ne
// rien révéler sur l'existence du compte.
func (uc *AuthUseCase) Login(in *dto.LoginRequest) (*dto.AuthResponse, error) {
	if in == nil {
		uc.log.Error().Msg("connexion nulle")
		return nil, domain.NewInvalidEntity(domain.UtilisateurNotValid, "Les identifiants ne peuvent pas être null", nil)
	}
	if errs := validator.Login(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("connexion invalide")
		return nil, domain.NewInvalidEntity(domain.UtilisateurNotValid, "Les identifiants ne sont pas valides", errs)
	}
	utilisateur, err := uc.utilisateurs.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if utilisateur == nil {
		return nil, &domain.BadCredentialsError{Message: "Identifiants invalides"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(utilisateur.MotDePasse), []byte(in.Password)); err != nil {
		return nil, &domain.BadCredentialsError{Message: "Identifiants invalides"}
	}
	if !utilisateur.Enabled || !utilisateur.AccountNonLocked {
		uc.log.Error().Int("utilisateurId", utilisateur.ID).Msg("compte désactivé ou verrouillé")
		return nil, &domain.BadCredentialsError{Message: "Identifiants invalides"}
	}
	token, err := uc.issueToken(utilisateur)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *dto.UtilisateurFromEntity(utilisateur)}, nil
}

func (uc *AuthUseCase) issueToken(u *entity.Utilisateur) (string, error) {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r.RoleName))
	}
	return jwt.Generate(uc.jwtCfg.Secret, u.ID, u.EntrepriseID, roles, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}
