package usecase

import (
	"strings"

	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/validator"
	"github.com/team48/gestion-stock-api/internal/domain"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
	"github.com/team48/gestion-stock-api/pkg/logger"
)

// FournisseurUseCase pipeline CRUD pour les fournisseurs. Symétrique du cas
// d'usage client.
type FournisseurUseCase struct {
	fournisseurs repository.FournisseurRepository
	entreprises  repository.EntrepriseRepository
	log          *logger.Logger
}

// NewFournisseurUseCase construit le cas d'usage.
func NewFournisseurUseCase(fournisseurs repository.FournisseurRepository, entreprises repository.EntrepriseRepository, log *logger.Logger) *FournisseurUseCase {
	return &FournisseurUseCase{fournisseurs: fournisseurs, entreprises: entreprises, log: log}
}

// Save valide la requête, vérifie l'entreprise référencée puis persiste.
func (uc *FournisseurUseCase) Save(in *dto.FournisseurRequest) (*dto.FournisseurResponse, error) {
	if in == nil {
		uc.log.Error().Msg("fournisseur nul")
		return nil, domain.NewInvalidEntity(domain.FournisseurNotValid, "Le fournisseur ne peut pas être null", nil)
	}
	if errs := validator.Fournisseur(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("fournisseur invalide")
		return nil, domain.NewInvalidEntity(domain.FournisseurNotValid, "Le fournisseur n'est pas valide", errs)
	}
	if err := uc.resolveEntreprise(in.EntrepriseID); err != nil {
		return nil, err
	}
	fournisseur := in.ToEntity()
	if err := uc.fournisseurs.Create(fournisseur); err != nil {
		return nil, err
	}
	return dto.FournisseurFromEntity(fournisseur), nil
}

// FindByID retourne le fournisseur ou EntityNotFound.
func (uc *FournisseurUseCase) FindByID(id int) (*dto.FournisseurResponse, error) {
	if id <= 0 {
		uc.log.Error().Msg("ID de fournisseur nul")
		return nil, domain.NewInvalidEntity(domain.FournisseurNotValid, "L'ID du fournisseur ne peut pas être null", nil)
	}
	fournisseur, err := uc.fournisseurs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if fournisseur == nil {
		return nil, domain.NewEntityNotFound(domain.FournisseurNotFound, "Aucun fournisseur avec l'ID %d n'a été trouvé dans la BDD", id)
	}
	return dto.FournisseurFromEntity(fournisseur), nil
}

// FindByNom retourne le fournisseur portant ce nom ou EntityNotFound.
func (uc *FournisseurUseCase) FindByNom(nom string) (*dto.FournisseurResponse, error) {
	if strings.TrimSpace(nom) == "" {
		uc.log.Error().Msg("nom de fournisseur vide")
		return nil, domain.NewInvalidEntity(domain.FournisseurNotValid, "Le nom du fournisseur ne peut pas être vide", nil)
	}
	fournisseur, err := uc.fournisseurs.GetByNom(nom)
	if err != nil {
		return nil, err
	}
	if fournisseur == nil {
		return nil, domain.NewEntityNotFound(domain.FournisseurNotFound, "Aucun fournisseur avec le NOM %s n'a été trouvé dans la BDD", nom)
	}
	return dto.FournisseurFromEntity(fournisseur), nil
}

// FindAll projette tous les fournisseurs, sans pagination.
func (uc *FournisseurUseCase) FindAll() ([]dto.FournisseurResponse, error) {
	list, err := uc.fournisseurs.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.FournisseurResponse, 0, len(list))
	for _, f := range list {
		out = append(out, *dto.FournisseurFromEntity(f))
	}
	return out, nil
}

// Delete supprime par ID sans vérifier l'existence ; ID nul = non-opération.
func (uc *FournisseurUseCase) Delete(id int) error {
	if id <= 0 {
		uc.log.Error().Msg("ID de fournisseur nul")
		return nil
	}
	return uc.fournisseurs.Delete(id)
}

// Update remplace les champs mutables en conservant l'ID d'origine.
func (uc *FournisseurUseCase) Update(id int, in *dto.FournisseurRequest) (*dto.FournisseurResponse, error) {
	if in == nil || id <= 0 {
		uc.log.Error().Msg("fournisseur ou ID nul")
		return nil, domain.NewInvalidEntity(domain.FournisseurNotValid, "Le fournisseur ou son ID ne peut pas être null", nil)
	}
	if errs := validator.Fournisseur(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("fournisseur invalide")
		return nil, domain.NewInvalidEntity(domain.FournisseurNotValid, "Le fournisseur n'est pas valide", errs)
	}
	existing, err := uc.fournisseurs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewEntityNotFound(domain.FournisseurNotFound, "Aucun fournisseur avec l'ID %d n'a été trouvé dans la BDD", id)
	}
	if err := uc.resolveEntreprise(in.EntrepriseID); err != nil {
		return nil, err
	}
	fournisseur := in.ToEntity()
	fournisseur.ID = existing.ID
	if err := uc.fournisseurs.Update(fournisseur); err != nil {
		return nil, err
	}
	return dto.FournisseurFromEntity(fournisseur), nil
}

func (uc *FournisseurUseCase) resolveEntreprise(id int) error {
	entreprise, err := uc.entreprises.GetByID(id)
	if err != nil {
		return err
	}
	if entreprise == nil {
		return domain.NewEntityNotFound(domain.EntrepriseNotFound, "Aucune entreprise avec l'ID %d n'a été trouvée dans la BDD", id)
	}
	return nil
}
