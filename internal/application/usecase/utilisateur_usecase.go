package usecase

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/validator"
	"github.com/team48/gestion-stock-api/internal/domain"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
	"github.com/team48/gestion-stock-api/pkg/logger"
)

// UtilisateurUseCase pipeline CRUD pour les utilisateurs. Le mot de passe est
// haché avec bcrypt avant toute écriture et n'apparaît jamais en projection.
type UtilisateurUseCase struct {
	utilisateurs repository.UtilisateurRepository
	entreprises  repository.EntrepriseRepository
	log          *logger.Logger
}

// NewUtilisateurUseCase construit le cas d'usage.
func NewUtilisateurUseCase(utilisateurs repository.UtilisateurRepository, entreprises repository.EntrepriseRepository, log *logger.Logger) *UtilisateurUseCase {
	return &UtilisateurUseCase{utilisateurs: utilisateurs, entreprises: entreprises, log: log}
}

// Save valide la requête, vérifie l'entreprise référencée, hache le mot de
// passe puis persiste. Le compte est créé actif et non verrouillé.
func (uc *UtilisateurUseCase) Save(in *dto.UtilisateurRequest) (*dto.UtilisateurResponse, error) {
	if in == nil {
		uc.log.Error().Msg("utilisateur nul")
		return nil, domain.NewInvalidEntity(domain.UtilisateurNotValid, "L'utilisateur ne peut pas être null", nil)
	}
	if errs := validator.Utilisateur(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("utilisateur invalide")
		return nil, domain.NewInvalidEntity(domain.UtilisateurNotValid, "L'utilisateur n'est pas valide", errs)
	}
	if err := uc.resolveEntreprise(in.EntrepriseID); err != nil {
		return nil, err
	}
	utilisateur := in.ToEntity()
	hash, err := bcrypt.GenerateFromPassword([]byte(in.MotDePasse), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	utilisateur.MotDePasse = string(hash)
	utilisateur.Enabled = true
	utilisateur.AccountNonLocked = true
	if err := uc.utilisateurs.Create(utilisateur); err != nil {
		return nil, err
	}
	return dto.UtilisateurFromEntity(utilisateur), nil
}

// FindByID retourne l'utilisateur avec ses rôles ou EntityNotFound.
func (uc *UtilisateurUseCase) FindByID(id int) (*dto.UtilisateurResponse, error) {
	if id <= 0 {
		uc.log.Error().Msg("ID d'utilisateur nul")
		return nil, domain.NewInvalidEntity(domain.UtilisateurNotValid, "L'ID de l'utilisateur ne peut pas être null", nil)
	}
	utilisateur, err := uc.utilisateurs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if utilisateur == nil {
		return nil, domain.NewEntityNotFound(domain.UtilisateurNotFound, "Aucun utilisateur avec l'ID %d n'a été trouvé dans la BDD", id)
	}
	return dto.UtilisateurFromEntity(utilisateur), nil
}

// FindByEmail retourne l'utilisateur portant cet email ou EntityNotFound.
func (uc *UtilisateurUseCase) FindByEmail(email string) (*dto.UtilisateurResponse, error) {
	if strings.TrimSpace(email) == "" {
		uc.log.Error().Msg("email d'utilisateur vide")
		return nil, domain.NewInvalidEntity(domain.UtilisateurNotValid, "L'email de l'utilisateur ne peut pas être vide", nil)
	}
	utilisateur, err := uc.utilisateurs.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if utilisateur == nil {
		return nil, domain.NewEntityNotFound(domain.UtilisateurNotFound, "Aucun utilisateur avec l'EMAIL %s n'a été trouvé dans la BDD", email)
	}
	return dto.UtilisateurFromEntity(utilisateur), nil
}

// FindAll projette tous les utilisateurs, sans pagination.
func (uc *UtilisateurUseCase) FindAll() ([]dto.UtilisateurResponse, error) {
	list, err := uc.utilisateurs.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UtilisateurResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *dto.UtilisateurFromEntity(u))
	}
	return out, nil
}

// Delete supprime par ID sans vérifier l'existence ; ID nul = non-opération.
func (uc *UtilisateurUseCase) Delete(id int) error {
	if id <= 0 {
		uc.log.Error().Msg("ID d'utilisateur nul")
		return nil
	}
	return uc.utilisateurs.Delete(id)
}

// Update remplace les champs mutables en conservant l'ID, les indicateurs de
// compte et les rôles. Un mot de passe égal au hachage stocké est conservé
// tel quel ; toute autre valeur est rehachée.
func (uc *UtilisateurUseCase) Update(id int, in *dto.UtilisateurRequest) (*dto.UtilisateurResponse, error) {
	if in == nil || id <= 0 {
		uc.log.Error().Msg("utilisateur ou ID nul")
		return nil, domain.NewInvalidEntity(domain.UtilisateurNotValid, "L'utilisateur ou son ID ne peut pas être null", nil)
	}
	if errs := validator.Utilisateur(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("utilisateur invalide")
		return nil, domain.NewInvalidEntity(domain.UtilisateurNotValid, "L'utilisateur n'est pas valide", errs)
	}
	existing, err := uc.utilisateurs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewEntityNotFound(domain.UtilisateurNotFound, "Aucun utilisateur avec l'ID %d n'a été trouvé dans la BDD", id)
	}
	if err := uc.resolveEntreprise(in.EntrepriseID); err != nil {
		return nil, err
	}
	utilisateur := in.ToEntity()
	utilisateur.ID = existing.ID
	utilisateur.Enabled = existing.Enabled
	utilisateur.AccountNonLocked = existing.AccountNonLocked
	utilisateur.Roles = existing.Roles
	if in.MotDePasse == existing.MotDePasse {
		utilisateur.MotDePasse = existing.MotDePasse
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.MotDePasse), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		utilisateur.MotDePasse = string(hash)
	}
	if utilisateur.Photo == "" {
		utilisateur.Photo = existing.Photo
	}
	if err := uc.utilisateurs.Update(utilisateur); err != nil {
		return nil, err
	}
	return dto.UtilisateurFromEntity(utilisateur), nil
}

func (uc *UtilisateurUseCase) resolveEntreprise(id int) error {
	entreprise, err := uc.entreprises.GetByID(id)
	if err != nil {
		return err
	}
	if entreprise == nil {
		return domain.NewEntityNotFound(domain.EntrepriseNotFound, "Aucune entreprise avec l'ID %d n'a été trouvée dans la BDD", id)
	}
	return nil
}
