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

// VenteUseCase pipeline pour les ventes. L'en-tête et ses lignes sont
// persistés dans une même transaction.
type VenteUseCase struct {
	ventes   repository.VenteRepository
	articles repository.ArticleRepository
	tx       TxRunner
	log      *logger.Logger
}

// NewVenteUseCase construit le cas d'usage.
func NewVenteUseCase(ventes repository.VenteRepository, articles repository.ArticleRepository, tx TxRunner, log *logger.Logger) *VenteUseCase {
	return &VenteUseCase{ventes: ventes, articles: articles, tx: tx, log: log}
}

// Save valide l'en-tête et chaque ligne, vérifie l'article de chaque ligne
// puis persiste le tout en transaction.
func (uc *VenteUseCase) Save(in *dto.VenteRequest) (*dto.VenteResponse, error) {
	if in == nil {
		uc.log.Error().Msg("vente nulle")
		return nil, domain.NewInvalidEntity(domain.VenteNotValid, "La vente ne peut pas être null", nil)
	}
	if errs := validator.Vente(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("vente invalide")
		return nil, domain.NewInvalidEntity(domain.VenteNotValid, "La vente n'est pas valide", errs)
	}
	vente := in.ToEntity()
	if err := uc.resolveArticles(vente); err != nil {
		return nil, err
	}
	err := uc.tx.RunVente(func(
		ventes repository.VenteRepository,
		lignes repository.LigneVenteRepository,
	) error {
		if err := ventes.Create(vente); err != nil {
			return err
		}
		for i := range vente.Lignes {
			vente.Lignes[i].VenteID = vente.ID
			if vente.Lignes[i].EntrepriseID == 0 {
				vente.Lignes[i].EntrepriseID = vente.EntrepriseID
			}
			if err := lignes.Create(&vente.Lignes[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.VenteFromEntity(vente), nil
}

// FindByID retourne la vente avec ses lignes ou EntityNotFound.
func (uc *VenteUseCase) FindByID(id int) (*dto.VenteResponse, error) {
	if id <= 0 {
		uc.log.Error().Msg("ID de vente nul")
		return nil, domain.NewInvalidEntity(domain.VenteNotValid, "L'ID de la vente ne peut pas être null", nil)
	}
	vente, err := uc.ventes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vente == nil {
		return nil, domain.NewEntityNotFound(domain.VenteNotFound, "Aucune vente avec l'ID %d n'a été trouvée dans la BDD", id)
	}
	return dto.VenteFromEntity(vente), nil
}

// FindByCode retourne la vente portant ce code ou EntityNotFound.
func (uc *VenteUseCase) FindByCode(code string) (*dto.VenteResponse, error) {
	if strings.TrimSpace(code) == "" {
		uc.log.Error().Msg("code de vente vide")
		return nil, domain.NewInvalidEntity(domain.VenteNotValid, "Le code de la vente ne peut pas être vide", nil)
	}
	vente, err := uc.ventes.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if vente == nil {
		return nil, domain.NewEntityNotFound(domain.VenteNotFound, "Aucune vente avec le CODE %s n'a été trouvée dans la BDD", code)
	}
	return dto.VenteFromEntity(vente), nil
}

// FindAll projette toutes les ventes, sans pagination.
func (uc *VenteUseCase) FindAll() ([]dto.VenteResponse, error) {
	list, err := uc.ventes.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.VenteResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *dto.VenteFromEntity(v))
	}
	return out, nil
}

// Delete supprime l'en-tête et ses lignes en transaction ; ID nul =
// non-opération.
func (uc *VenteUseCase) Delete(id int) error {
	if id <= 0 {
		uc.log.Error().Msg("ID de vente nul")
		return nil
	}
	return uc.tx.RunVente(func(
		ventes repository.VenteRepository,
		lignes repository.LigneVenteRepository,
	) error {
		if err := lignes.DeleteByVente(id); err != nil {
			return err
		}
		return ventes.Delete(id)
	})
}

// Update remplace l'en-tête et ses lignes en conservant l'ID : les anciennes
// lignes sont supprimées et remplacées par celles de la requête, le tout en
// transaction.
func (uc *VenteUseCase) Update(id int, in *dto.VenteRequest) (*dto.VenteResponse, error) {
	if in == nil || id <= 0 {
		uc.log.Error().Msg("vente ou ID nul")
		return nil, domain.NewInvalidEntity(domain.VenteNotValid, "La vente ou son ID ne peut pas être null", nil)
	}
	if errs := validator.Vente(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("vente invalide")
		return nil, domain.NewInvalidEntity(domain.VenteNotValid, "La vente n'est pas valide", errs)
	}
	existing, err := uc.ventes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewEntityNotFound(domain.VenteNotFound, "Aucune vente avec l'ID %d n'a été trouvée dans la BDD", id)
	}
	vente := in.ToEntity()
	vente.ID = existing.ID
	if err := uc.resolveArticles(vente); err != nil {
		return nil, err
	}
	err = uc.tx.RunVente(func(
		ventes repository.VenteRepository,
		lignes repository.LigneVenteRepository,
	) error {
		if err := ventes.Update(vente); err != nil {
			return err
		}
		if err := lignes.DeleteByVente(vente.ID); err != nil {
			return err
		}
		for i := range vente.Lignes {
			vente.Lignes[i].VenteID = vente.ID
			if vente.Lignes[i].EntrepriseID == 0 {
				vente.Lignes[i].EntrepriseID = vente.EntrepriseID
			}
			if err := lignes.Create(&vente.Lignes[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.VenteFromEntity(vente), nil
}

// resolveArticles vérifie l'article de chaque ligne et l'attache pour la
// projection de retour.
func (uc *VenteUseCase) resolveArticles(vente *entity.Vente) error {
	for i := range vente.Lignes {
		article, err := uc.articles.GetByID(vente.Lignes[i].ArticleID)
		if err != nil {
			return err
		}
		if article == nil {
			return domain.NewEntityNotFound(domain.ArticleNotFound, "Aucun article avec l'ID %d n'a été trouvé dans la BDD", vente.Lignes[i].ArticleID)
		}
		vente.Lignes[i].Article = article
	}
	return nil
}
