package usecase

import (
	"strings"

	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/application/validator"
	"github.com/team48/gestion-stock-api/internal/domain"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
	"github.com/team48/gestion-stock-api/pkg/logger"
)

// ClientUseCase pipeline CRUD pour les clients.
type ClientUseCase struct {
	clients     repository.ClientRepository
	entreprises repository.EntrepriseRepository
	log         *logger.Logger
}

// NewClientUseCase construit le cas d'usage.
func NewClientUseCase(clients repository.ClientRepository, entreprises repository.EntrepriseRepository, log *logger.Logger) *ClientUseCase {
	return &ClientUseCase{clients: clients, entreprises: entreprises, log: log}
}

// Save valide la requête, vérifie l'entreprise référencée puis persiste.
func (uc *ClientUseCase) Save(in *dto.ClientRequest) (*dto.ClientResponse, error) {
	if in == nil {
		uc.log.Error().Msg("client nul")
		return nil, domain.NewInvalidEntity(domain.ClientNotValid, "Le client ne peut pas être null", nil)
	}
	if errs := validator.Client(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("client invalide")
		return nil, domain.NewInvalidEntity(domain.ClientNotValid, "Le client n'est pas valide", errs)
	}
	if err := uc.resolveEntreprise(in.EntrepriseID); err != nil {
		return nil, err
	}
	client := in.ToEntity()
	if err := uc.clients.Create(client); err != nil {
		return nil, err
	}
	return dto.ClientFromEntity(client), nil
}

// FindByID retourne le client ou EntityNotFound.
func (uc *ClientUseCase) FindByID(id int) (*dto.ClientResponse, error) {
	if id <= 0 {
		uc.log.Error().Msg("ID de client nul")
		return nil, domain.NewInvalidEntity(domain.ClientNotValid, "L'ID du client ne peut pas être null", nil)
	}
	client, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NewEntityNotFound(domain.ClientNotFound, "Aucun client avec l'ID %d n'a été trouvé dans la BDD", id)
	}
	return dto.ClientFromEntity(client), nil
}

// FindByNom retourne le client portant ce nom ou EntityNotFound.
func (uc *ClientUseCase) FindByNom(nom string) (*dto.ClientResponse, error) {
	if strings.TrimSpace(nom) == "" {
		uc.log.Error().Msg("nom de client vide")
		return nil, domain.NewInvalidEntity(domain.ClientNotValid, "Le nom du client ne peut pas être vide", nil)
	}
	client, err := uc.clients.GetByNom(nom)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.NewEntityNotFound(domain.ClientNotFound, "Aucun client avec le NOM %s n'a été trouvé dans la BDD", nom)
	}
	return dto.ClientFromEntity(client), nil
}

// FindAll projette tous les clients, sans pagination.
func (uc *ClientUseCase) FindAll() ([]dto.ClientResponse, error) {
	list, err := uc.clients.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *dto.ClientFromEntity(c))
	}
	return out, nil
}

// Delete supprime par ID sans vérifier l'existence ; ID nul = non-opération.
func (uc *ClientUseCase) Delete(id int) error {
	if id <= 0 {
		uc.log.Error().Msg("ID de client nul")
		return nil
	}
	return uc.clients.Delete(id)
}

// Update remplace les champs mutables en conservant l'ID d'origine.
func (uc *ClientUseCase) Update(id int, in *dto.ClientRequest) (*dto.ClientResponse, error) {
	if in == nil || id <= 0 {
		uc.log.Error().Msg("client ou ID nul")
		return nil, domain.NewInvalidEntity(domain.ClientNotValid, "Le client ou son ID ne peut pas être null", nil)
	}
	if errs := validator.Client(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("client invalide")
		return nil, domain.NewInvalidEntity(domain.ClientNotValid, "Le client n'est pas valide", errs)
	}
	existing, err := uc.clients.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewEntityNotFound(domain.ClientNotFound, "Aucun client avec l'ID %d n'a été trouvé dans la BDD", id)
	}
	if err := uc.resolveEntreprise(in.EntrepriseID); err != nil {
		return nil, err
	}
	client := in.ToEntity()
	client.ID = existing.ID
	if err := uc.clients.Update(client); err != nil {
		return nil, err
	}
	return dto.ClientFromEntity(client), nil
}

func (uc *ClientUseCase) resolveEntreprise(id int) error {
	entreprise, err := uc.entreprises.GetByID(id)
	if err != nil {
		return err
	}
	if entreprise == nil {
		return domain.NewEntityNotFound(domain.EntrepriseNotFound, "Aucune entreprise avec l'ID %d n'a été trouvée dans la BDD", id)
	}
	return nil
}
