package usecase

import (
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/validator"
	"github.com/team48/gestion-stock-api/internal/domain"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
	"github.com/team48/gestion-stock-api/pkg/logger"
)

// MvtStkUseCase pipeline pour le journal de stock. Journal pur en append :
// aucun calcul de solde, aucun contrôle de quantité disponible.
type MvtStkUseCase struct {
	mvts     repository.MvtStkRepository
	articles repository.ArticleRepository
	log      *logger.Logger
}

// NewMvtStkUseCase construit le cas d'usage.
func NewMvtStkUseCase(mvts repository.MvtStkRepository, articles repository.ArticleRepository, log *logger.Logger) *MvtStkUseCase {
	return &MvtStkUseCase{mvts: mvts, articles: articles, log: log}
}

// Save valide la requête, vérifie l'article référencé puis persiste.
func (uc *MvtStkUseCase) Save(in *dto.MvtStkRequest) (*dto.MvtStkResponse, error) {
	if in == nil {
		uc.log.Error().Msg("mouvement de stock nul")
		return nil, domain.NewInvalidEntity(domain.MvtStkNotValid, "Le mouvement de stock ne peut pas être null", nil)
	}
	if errs := validator.MvtStk(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("mouvement de stock invalide")
		return nil, domain.NewInvalidEntity(domain.MvtStkNotValid, "Le mouvement de stock n'est pas valide", errs)
	}
	mvt := in.ToEntity()
	if err := uc.resolveArticle(mvt); err != nil {
		return nil, err
	}
	if err := uc.mvts.Create(mvt); err != nil {
		return nil, err
	}
	return dto.MvtStkFromEntity(mvt), nil
}

// FindByID retourne le mouvement avec son article ou EntityNotFound.
func (uc *MvtStkUseCase) FindByID(id int) (*dto.MvtStkResponse, error) {
	if id <= 0 {
		uc.log.Error().Msg("ID de mouvement nul")
		return nil, domain.NewInvalidEntity(domain.MvtStkNotValid, "L'ID du mouvement de stock ne peut pas être null", nil)
	}
	mvt, err := uc.mvts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mvt == nil {
		return nil, domain.NewEntityNotFound(domain.MvtStkNotFound, "Aucun mouvement de stock avec l'ID %d n'a été trouvé dans la BDD", id)
	}
	return dto.MvtStkFromEntity(mvt), nil
}

// FindAll projette tout le journal, sans pagination.
func (uc *MvtStkUseCase) FindAll() ([]dto.MvtStkResponse, error) {
	list, err := uc.mvts.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MvtStkResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *dto.MvtStkFromEntity(m))
	}
	return out, nil
}

// Delete supprime par ID sans vérifier l'existence ; ID nul = non-opération.
func (uc *MvtStkUseCase) Delete(id int) error {
	if id <= 0 {
		uc.log.Error().Msg("ID de mouvement nul")
		return nil
	}
	return uc.mvts.Delete(id)
}

// Update remplace les champs mutables en conservant l'ID d'origine.
func (uc *MvtStkUseCase) Update(id int, in *dto.MvtStkRequest) (*dto.MvtStkResponse, error) {
	if in == nil || id <= 0 {
		uc.log.Error().Msg("mouvement ou ID nul")
		return nil, domain.NewInvalidEntity(domain.MvtStkNotValid, "Le mouvement de stock ou son ID ne peut pas être null", nil)
	}
	if errs := validator.MvtStk(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("mouvement de stock invalide")
		return nil, domain.NewInvalidEntity(domain.MvtStkNotValid, "Le mouvement de stock n'est pas valide", errs)
	}
	existing, err := uc.mvts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewEntityNotFound(domain.MvtStkNotFound, "Aucun mouvement de stock avec l'ID %d n'a été trouvé dans la BDD", id)
	}
	mvt := in.ToEntity()
	mvt.ID = existing.ID
	if err := uc.resolveArticle(mvt); err != nil {
		return nil, err
	}
	if err := uc.mvts.Update(mvt); err != nil {
		return nil, err
	}
	return dto.MvtStkFromEntity(mvt), nil
}

// resolveArticle charge l'article référencé et l'attache au mouvement pour la
// projection de retour.
func (uc *MvtStkUseCase) resolveArticle(mvt *entity.MvtStk) error {
	article, err := uc.articles.GetByID(mvt.ArticleID)
	if err != nil {
		return err
	}
	if article == nil {
		return domain.NewEntityNotFound(domain.ArticleNotFound, "Aucun article avec l'ID %d n'a été trouvé dans la BDD", mvt.ArticleID)
	}
	mvt.Article = article
	return nil
}
