package usecase

import (
	"strings"

	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/validator"
	"github.com/team48/gestion-stock-api/internal/domain"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
	"github.com/team48/gestion-stock-api/pkg/logger"
)

// CategorieUseCase pipeline CRUD pour les catégories : validation, résolution
// de l'entreprise, persistance, projection.
type CategorieUseCase struct {
	categories  repository.CategorieRepository
	entreprises repository.EntrepriseRepository
	log         *logger.Logger
}

// NewCategorieUseCase construit le cas d'usage.
func NewCategorieUseCase(categories repository.CategorieRepository, entreprises repository.EntrepriseRepository, log *logger.Logger) *CategorieUseCase {
	return &CategorieUseCase{categories: categories, entreprises: entreprises, log: log}
}

// Save valide la requête, vérifie l'entreprise référencée puis persiste.
func (uc *CategorieUseCase) Save(in *dto.CategorieRequest) (*dto.CategorieResponse, error) {
	if in == nil {
		uc.log.Error().Msg("catégorie nulle")
		return nil, domain.NewInvalidEntity(domain.CategorieNotValid, "La catégorie ne peut pas être null", nil)
	}
	if errs := validator.Categorie(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("catégorie invalide")
		return nil, domain.NewInvalidEntity(domain.CategorieNotValid, "La catégorie n'est pas valide", errs)
	}
	if err := uc.resolveEntreprise(in.EntrepriseID); err != nil {
		return nil, err
	}
	categorie := in.ToEntity()
	if err := uc.categories.Create(categorie); err != nil {
		return nil, err
	}
	return dto.CategorieFromEntity(categorie), nil
}

// FindByID retourne la catégorie ou EntityNotFound.
func (uc *CategorieUseCase) FindByID(id int) (*dto.CategorieResponse, error) {
	if id <= 0 {
		uc.log.Error().Msg("ID de catégorie nul")
		return nil, domain.NewInvalidEntity(domain.CategorieNotValid, "L'ID de la catégorie ne peut pas être null", nil)
	}
	categorie, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categorie == nil {
		return nil, domain.NewEntityNotFound(domain.CategorieNotFound, "Aucune catégorie avec l'ID %d n'a été trouvée dans la BDD", id)
	}
	return dto.CategorieFromEntity(categorie), nil
}

// FindByCode retourne la catégorie portant ce code ou EntityNotFound.
func (uc *CategorieUseCase) FindByCode(code string) (*dto.CategorieResponse, error) {
	if strings.TrimSpace(code) == "" {
		uc.log.Error().Msg("code de catégorie vide")
		return nil, domain.NewInvalidEntity(domain.CategorieNotValid, "Le code de la catégorie ne peut pas être vide", nil)
	}
	categorie, err := uc.categories.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if categorie == nil {
		return nil, domain.NewEntityNotFound(domain.CategorieNotFound, "Aucune catégorie avec le CODE %s n'a été trouvée dans la BDD", code)
	}
	return dto.CategorieFromEntity(categorie), nil
}

// FindAll projette toutes les catégories, sans pagination.
func (uc *CategorieUseCase) FindAll() ([]dto.CategorieResponse, error) {
	list, err := uc.categories.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategorieResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *dto.CategorieFromEntity(c))
	}
	return out, nil
}

// Delete supprime par ID sans vérifier l'existence ; ID nul = non-opération.
func (uc *CategorieUseCase) Delete(id int) error {
	if id <= 0 {
		uc.log.Error().Msg("ID de catégorie nul")
		return nil
	}
	return uc.categories.Delete(id)
}

// Update remplace les champs mutables en conservant l'ID d'origine.
func (uc *CategorieUseCase) Update(id int, in *dto.CategorieRequest) (*dto.CategorieResponse, error) {
	if in == nil || id <= 0 {
		uc.log.Error().Msg("catégorie ou ID nul")
		return nil, domain.NewInvalidEntity(domain.CategorieNotValid, "La catégorie ou son ID ne peut pas être null", nil)
	}
	if errs := validator.Categorie(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("catégorie invalide")
		return nil, domain.NewInvalidEntity(domain.CategorieNotValid, "La catégorie n'est pas valide", errs)
	}
	existing, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewEntityNotFound(domain.CategorieNotFound, "Aucune catégorie avec l'ID %d n'a été trouvée dans la BDD", id)
	}
	if err := uc.resolveEntreprise(in.EntrepriseID); err != nil {
		return nil, err
	}
	categorie := in.ToEntity()
	categorie.ID = existing.ID
	if err := uc.categories.Update(categorie); err != nil {
		return nil, err
	}
	return dto.CategorieFromEntity(categorie), nil
}

func (uc *CategorieUseCase) resolveEntreprise(id int) error {
	entreprise, err := uc.entreprises.GetByID(id)
	if err != nil {
		return err
	}
	if entreprise == nil {
		return domain.NewEntityNotFound(domain.EntrepriseNotFound, "Aucune entreprise avec l'ID %d n'a été trouvée dans la BDD", id)
	}
	return nil
}
