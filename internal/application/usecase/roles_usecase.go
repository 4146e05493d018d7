package usecase

import (
	"strings"

	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/validator"
	"github.com/team48/gestion-stock-api/internal/domain"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
	"github.com/team48/gestion-stock-api/pkg/logger"
)

// RolesUseCase pipeline CRUD pour les attributions de rôle.
type RolesUseCase struct {
	roles        repository.RolesRepository
	utilisateurs repository.UtilisateurRepository
	entreprises  repository.EntrepriseRepository
	log          *logger.Logger
}

// NewRolesUseCase construit le cas d'usage.
func NewRolesUseCase(
	roles repository.RolesRepository,
	utilisateurs repository.UtilisateurRepository,
	entreprises repository.EntrepriseRepository,
	log *logger.Logger,
) *RolesUseCase {
	return &RolesUseCase{roles: roles, utilisateurs: utilisateurs, entreprises: entreprises, log: log}
}

// Save valide la requête, vérifie l'utilisateur et l'entreprise référencés
// puis persiste.
func (uc *RolesUseCase) Save(in *dto.RolesRequest) (*dto.RolesResponse, error) {
	if in == nil {
		uc.log.Error().Msg("rôle nul")
		return nil, domain.NewInvalidEntity(domain.RolesNotValid, "Le rôle ne peut pas être null", nil)
	}
	if errs := validator.Roles(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("rôle invalide")
		return nil, domain.NewInvalidEntity(domain.RolesNotValid, "Le rôle n'est pas valide", errs)
	}
	if err := uc.resolveRelations(in.UtilisateurID, in.EntrepriseID); err != nil {
		return nil, err
	}
	role := in.ToEntity()
	if err := uc.roles.Create(role); err != nil {
		return nil, err
	}
	return dto.RolesFromEntity(role), nil
}

// FindByID retourne le rôle ou EntityNotFound.
func (uc *RolesUseCase) FindByID(id int) (*dto.RolesResponse, error) {
	if id <= 0 {
		uc.log.Error().Msg("ID de rôle nul")
		return nil, domain.NewInvalidEntity(domain.RolesNotValid, "L'ID du rôle ne peut pas être null", nil)
	}
	role, err := uc.roles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.NewEntityNotFound(domain.RolesNotFound, "Aucun rôle avec l'ID %d n'a été trouvé dans la BDD", id)
	}
	return dto.RolesFromEntity(role), nil
}

// FindByRoleName retourne la première attribution portant ce nom de rôle ou
// EntityNotFound. Un nom hors énumération est rejeté comme invalide.
func (uc *RolesUseCase) FindByRoleName(roleName string) (*dto.RolesResponse, error) {
	if strings.TrimSpace(roleName) == "" {
		uc.log.Error().Msg("nom de rôle vide")
		return nil, domain.NewInvalidEntity(domain.RolesNotValid, "Le nom du rôle ne peut pas être vide", nil)
	}
	parsed, err := entity.ParseRoleName(roleName)
	if err != nil {
		uc.log.Error().Str("roleName", roleName).Msg("nom de rôle inconnu")
		return nil, domain.NewInvalidEntity(domain.RolesNotValid, "Le rôle n'est pas valide",
			[]string{"Veillez renseigner un rôle reconnu (ADMIN, MANAGER, EMPLOYEE)"})
	}
	role, err := uc.roles.GetByRoleName(parsed)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.NewEntityNotFound(domain.RolesNotFound, "Aucun rôle avec le NOM %s n'a été trouvé dans la BDD", roleName)
	}
	return dto.RolesFromEntity(role), nil
}

// FindAll projette toutes les attributions, sans pagination.
func (uc *RolesUseCase) FindAll() ([]dto.RolesResponse, error) {
	list, err := uc.roles.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.RolesResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *dto.RolesFromEntity(r))
	}
	return out, nil
}

// Delete supprime par ID sans vérifier l'existence ; ID nul = non-opération.
func (uc *RolesUseCase) Delete(id int) error {
	if id <= 0 {
		uc.log.Error().Msg("ID de rôle nul")
		return nil
	}
	return uc.roles.Delete(id)
}

// Update remplace les champs mutables en conservant l'ID d'origine.
func (uc *RolesUseCase) Update(id int, in *dto.RolesRequest) (*dto.RolesResponse, error) {
	if in == nil || id <= 0 {
		uc.log.Error().Msg("rôle ou ID nul")
		return nil, domain.NewInvalidEntity(domain.RolesNotValid, "Le rôle ou son ID ne peut pas être null", nil)
	}
	if errs := validator.Roles(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("rôle invalide")
		return nil, domain.NewInvalidEntity(domain.RolesNotValid, "Le rôle n'est pas valide", errs)
	}
	existing, err := uc.roles.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewEntityNotFound(domain.RolesNotFound, "Aucun rôle avec l'ID %d n'a été trouvé dans la BDD", id)
	}
	if err := uc.resolveRelations(in.UtilisateurID, in.EntrepriseID); err != nil {
		return nil, err
	}
	role := in.ToEntity()
	role.ID = existing.ID
	if err := uc.roles.Update(role); err != nil {
		return nil, err
	}
	return dto.RolesFromEntity(role), nil
}

func (uc *RolesUseCase) resolveRelations(utilisateurID, entrepriseID int) error {
	utilisateur, err := uc.utilisateurs.GetByID(utilisateurID)
	if err != nil {
		return err
	}
	if utilisateur == nil {
		return domain.NewEntityNotFound(domain.UtilisateurNotFound, "Aucun utilisateur avec l'ID %d n'a été trouvé dans la BDD", utilisateurID)
	}
	entreprise, err := uc.entreprises.GetByID(entrepriseID)
	if err != nil {
		return err
	}
	if entreprise == nil {
		return domain.NewEntityNotFound(domain.EntrepriseNotFound, "Aucune entreprise avec l'ID %d n'a été trouvée dans la BDD", entrepriseID)
	}
	return nil
}
