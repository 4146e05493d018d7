package usecase

import (
	"strings"
	"time"

	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/validator"
	"github.com/team48/gestion-stock-api/internal/domain"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
	"github.com/team48/gestion-stock-api/pkg/logger"
)

// EntrepriseUseCase pipeline CRUD pour les entreprises. Entité racine : pas
// de référence étrangère à résoudre.
type EntrepriseUseCase struct {
	entreprises repository.EntrepriseRepository
	log         *logger.Logger
}

// NewEntrepriseUseCase construit le cas d'usage.
func NewEntrepriseUseCase(entreprises repository.EntrepriseRepository, log *logger.Logger) *EntrepriseUseCase {
	return &EntrepriseUseCase{entreprises: entreprises, log: log}
}

// Save valide la requête puis persiste avec la date de création courante.
func (uc *EntrepriseUseCase) Save(in *dto.EntrepriseRequest) (*dto.EntrepriseResponse, error) {
	if in == nil {
		uc.log.Error().Msg("entreprise nulle")
		return nil, domain.NewInvalidEntity(domain.EntrepriseNotValid, "L'entreprise ne peut pas être null", nil)
	}
	if errs := validator.Entreprise(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("entreprise invalide")
		return nil, domain.NewInvalidEntity(domain.EntrepriseNotValid, "L'entreprise n'est pas valide", errs)
	}
	entreprise := in.ToEntity()
	entreprise.CreationDate = time.Now()
	if err := uc.entreprises.Create(entreprise); err != nil {
		return nil, err
	}
	return dto.EntrepriseFromEntity(entreprise), nil
}

// FindByID retourne l'entreprise ou EntityNotFound.
func (uc *EntrepriseUseCase) FindByID(id int) (*dto.EntrepriseResponse, error) {
	if id <= 0 {
		uc.log.Error().Msg("ID d'entreprise nul")
		return nil, domain.NewInvalidEntity(domain.EntrepriseNotValid, "L'ID de l'entreprise ne peut pas être null", nil)
	}
	entreprise, err := uc.entreprises.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entreprise == nil {
		return nil, domain.NewEntityNotFound(domain.EntrepriseNotFound, "Aucune entreprise avec l'ID %d n'a été trouvée dans la BDD", id)
	}
	return dto.EntrepriseFromEntity(entreprise), nil
}

// FindByNom retourne l'entreprise portant ce nom ou EntityNotFound.
func (uc *EntrepriseUseCase) FindByNom(nom string) (*dto.EntrepriseResponse, error) {
	if strings.TrimSpace(nom) == "" {
		uc.log.Error().Msg("nom d'entreprise vide")
		return nil, domain.NewInvalidEntity(domain.EntrepriseNotValid, "Le nom de l'entreprise ne peut pas être vide", nil)
	}
	entreprise, err := uc.entreprises.GetByNomEntreprise(nom)
	if err != nil {
		return nil, err
	}
	if entreprise == nil {
		return nil, domain.NewEntityNotFound(domain.EntrepriseNotFound, "Aucune entreprise avec le NOM %s n'a été trouvée dans la BDD", nom)
	}
	return dto.EntrepriseFromEntity(entreprise), nil
}

// FindAll projette toutes les entreprises, sans pagination.
func (uc *EntrepriseUseCase) FindAll() ([]dto.EntrepriseResponse, error) {
	list, err := uc.entreprises.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntrepriseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *dto.EntrepriseFromEntity(e))
	}
	return out, nil
}

// Delete supprime par ID sans vérifier l'existence ; ID nul = non-opération.
func (uc *EntrepriseUseCase) Delete(id int) error {
	if id <= 0 {
		uc.log.Error().Msg("ID d'entreprise nul")
		return nil
	}
	return uc.entreprises.Delete(id)
}

// Update remplace les champs mutables en conservant l'ID et la date de
// création d'origine.
func (uc *EntrepriseUseCase) Update(id int, in *dto.EntrepriseRequest) (*dto.EntrepriseResponse, error) {
	if in == nil || id <= 0 {
		uc.log.Error().Msg("entreprise ou ID nul")
		return nil, domain.NewInvalidEntity(domain.EntrepriseNotValid, "L'entreprise ou son ID ne peut pas être null", nil)
	}
	if errs := validator.Entreprise(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("entreprise invalide")
		return nil, domain.NewInvalidEntity(domain.EntrepriseNotValid, "L'entreprise n'est pas valide", errs)
	}
	existing, err := uc.entreprises.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewEntityNotFound(domain.EntrepriseNotFound, "Aucune entreprise avec l'ID %d n'a été trouvée dans la BDD", id)
	}
	entreprise := in.ToEntity()
	entreprise.ID = existing.ID
	entreprise.CreationDate = existing.CreationDate
	if err := uc.entreprises.Update(entreprise); err != nil {
		return nil, err
	}
	return dto.EntrepriseFromEntity(entreprise), nil
}
