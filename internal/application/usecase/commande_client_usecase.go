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

// CommandeClientUseCase pipeline pour les commandes client et leurs lignes.
// Les mutations de lignes s'exécutent en transaction et retournent la
// commande rechargée, lignes comprises.
type CommandeClientUseCase struct {
	commandes   repository.CommandeClientRepository
	lignes      repository.LigneCommandeClientRepository
	clients     repository.ClientRepository
	articles    repository.ArticleRepository
	entreprises repository.EntrepriseRepository
	tx          TxRunner
	log         *logger.Logger
}

// NewCommandeClientUseCase construit le cas d'usage.
func NewCommandeClientUseCase(
	commandes repository.CommandeClientRepository,
	lignes repository.LigneCommandeClientRepository,
	clients repository.ClientRepository,
	articles repository.ArticleRepository,
	entreprises repository.EntrepriseRepository,
	tx TxRunner,
	log *logger.Logger,
) *CommandeClientUseCase {
	return &CommandeClientUseCase{
		commandes:   commandes,
		lignes:      lignes,
		clients:     clients,
		articles:    articles,
		entreprises: entreprises,
		tx:          tx,
		log:         log,
	}
}

// Save valide l'en-tête, vérifie le client et l'entreprise référencés puis
// persiste.
func (uc *CommandeClientUseCase) Save(in *dto.CommandeClientRequest) (*dto.CommandeClientResponse, error) {
	if in == nil {
		uc.log.Error().Msg("commande client nulle")
		return nil, domain.NewInvalidEntity(domain.CommandeClientNotValid, "La commande client ne peut pas être null", nil)
	}
	if errs := validator.CommandeClient(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("commande client invalide")
		return nil, domain.NewInvalidEntity(domain.CommandeClientNotValid, "La commande client n'est pas valide", errs)
	}
	commande := in.ToEntity()
	if err := uc.resolveRelations(commande); err != nil {
		return nil, err
	}
	if err := uc.commandes.Create(commande); err != nil {
		return nil, err
	}
	return dto.CommandeClientFromEntity(commande), nil
}

// FindByID retourne la commande avec ses lignes ou EntityNotFound.
func (uc *CommandeClientUseCase) FindByID(id int) (*dto.CommandeClientResponse, error) {
	commande, err := uc.getCommande(id)
	if err != nil {
		return nil, err
	}
	return dto.CommandeClientFromEntity(commande), nil
}

// FindByCode retourne la commande portant ce code ou EntityNotFound.
func (uc *CommandeClientUseCase) FindByCode(code string) (*dto.CommandeClientResponse, error) {
	if strings.TrimSpace(code) == "" {
		uc.log.Error().Msg("code de commande client vide")
		return nil, domain.NewInvalidEntity(domain.CommandeClientNotValid, "Le code de la commande client ne peut pas être vide", nil)
	}
	commande, err := uc.commandes.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if commande == nil {
		return nil, domain.NewEntityNotFound(domain.CommandeClientNotFound, "Aucune commande client avec le CODE %s n'a été trouvée dans la BDD", code)
	}
	return dto.CommandeClientFromEntity(commande), nil
}

// FindAll projette toutes les commandes client, sans pagination.
func (uc *CommandeClientUseCase) FindAll() ([]dto.CommandeClientResponse, error) {
	list, err := uc.commandes.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommandeClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *dto.CommandeClientFromEntity(c))
	}
	return out, nil
}

// Delete supprime l'en-tête et ses lignes en transaction ; ID nul =
// non-opération.
func (uc *CommandeClientUseCase) Delete(id int) error {
	if id <= 0 {
		uc.log.Error().Msg("ID de commande client nul")
		return nil
	}
	return uc.tx.RunCommandeClient(func(
		commandes repository.CommandeClientRepository,
		lignes repository.LigneCommandeClientRepository,
	) error {
		if err := lignes.DeleteByCommande(id); err != nil {
			return err
		}
		return commandes.Delete(id)
	})
}

// Update remplace les champs de l'en-tête en conservant l'ID et les lignes.
func (uc *CommandeClientUseCase) Update(id int, in *dto.CommandeClientRequest) (*dto.CommandeClientResponse, error) {
	if in == nil || id <= 0 {
		uc.log.Error().Msg("commande client ou ID nul")
		return nil, domain.NewInvalidEntity(domain.CommandeClientNotValid, "La commande client ou son ID ne peut pas être null", nil)
	}
	if errs := validator.CommandeClient(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("commande client invalide")
		return nil, domain.NewInvalidEntity(domain.CommandeClientNotValid, "La commande client n'est pas valide", errs)
	}
	existing, err := uc.getCommande(id)
	if err != nil {
		return nil, err
	}
	commande := in.ToEntity()
	commande.ID = existing.ID
	if err := uc.resolveRelations(commande); err != nil {
		return nil, err
	}
	if err := uc.commandes.Update(commande); err != nil {
		return nil, err
	}
	commande.Lignes = existing.Lignes
	return dto.CommandeClientFromEntity(commande), nil
}

// AddLigne valide la ligne, vérifie la commande et l'article puis crée la
// ligne en transaction. Retourne la commande rechargée.
func (uc *CommandeClientUseCase) AddLigne(commandeID int, in *dto.LigneCommandeClientRequest) (*dto.CommandeClientResponse, error) {
	commande, ligne, err := uc.prepareLigne(commandeID, in)
	if err != nil {
		return nil, err
	}
	err = uc.tx.RunCommandeClient(func(
		_ repository.CommandeClientRepository,
		lignes repository.LigneCommandeClientRepository,
	) error {
		return lignes.Create(ligne)
	})
	if err != nil {
		return nil, err
	}
	return uc.refresh(commande.ID)
}

// UpdateLigne valide la ligne (ID requis), vérifie la commande et l'article
// puis remplace la ligne en transaction. Retourne la commande rechargée.
func (uc *CommandeClientUseCase) UpdateLigne(commandeID int, in *dto.LigneCommandeClientRequest) (*dto.CommandeClientResponse, error) {
	if in != nil && in.ID <= 0 {
		uc.log.Error().Msg("ID de ligne nul")
		return nil, domain.NewInvalidEntity(domain.LigneCommandeNotValid, "L'ID de la ligne de commande ne peut pas être null", nil)
	}
	commande, ligne, err := uc.prepareLigne(commandeID, in)
	if err != nil {
		return nil, err
	}
	existing, err := uc.lignes.GetByID(ligne.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil || existing.CommandeClientID != commande.ID {
		return nil, domain.NewEntityNotFound(domain.LigneCommandeNotFound, "Aucune ligne de commande avec l'ID %d n'a été trouvée dans la BDD", ligne.ID)
	}
	err = uc.tx.RunCommandeClient(func(
		_ repository.CommandeClientRepository,
		lignes repository.LigneCommandeClientRepository,
	) error {
		return lignes.Update(ligne)
	})
	if err != nil {
		return nil, err
	}
	return uc.refresh(commande.ID)
}

// RemoveLigne supprime une ligne de la commande en transaction. Retourne la
// commande rechargée.
func (uc *CommandeClientUseCase) RemoveLigne(commandeID, ligneID int) (*dto.CommandeClientResponse, error) {
	if ligneID <= 0 {
		uc.log.Error().Msg("ID de ligne nul")
		return nil, domain.NewInvalidEntity(domain.LigneCommandeNotValid, "L'ID de la ligne de commande ne peut pas être null", nil)
	}
	commande, err := uc.getCommande(commandeID)
	if err != nil {
		return nil, err
	}
	ligne, err := uc.lignes.GetByID(ligneID)
	if err != nil {
		return nil, err
	}
	if ligne == nil || ligne.CommandeClientID != commande.ID {
		return nil, domain.NewEntityNotFound(domain.LigneCommandeNotFound, "Aucune ligne de commande avec l'ID %d n'a été trouvée dans la BDD", ligneID)
	}
	err = uc.tx.RunCommandeClient(func(
		_ repository.CommandeClientRepository,
		lignes repository.LigneCommandeClientRepository,
	) error {
		return lignes.Delete(ligneID)
	})
	if err != nil {
		return nil, err
	}
	return uc.refresh(commande.ID)
}

// RemoveAllLignes vide la commande de ses lignes en transaction. Retourne la
// commande rechargée.
func (uc *CommandeClientUseCase) RemoveAllLignes(commandeID int) (*dto.CommandeClientResponse, error) {
	commande, err := uc.getCommande(commandeID)
	if err != nil {
		return nil, err
	}
	err = uc.tx.RunCommandeClient(func(
		_ repository.CommandeClientRepository,
		lignes repository.LigneCommandeClientRepository,
	) error {
		return lignes.DeleteByCommande(commande.ID)
	})
	if err != nil {
		return nil, err
	}
	return uc.refresh(commande.ID)
}

// FindAllLignesByCommandeID projette les lignes de la commande.
func (uc *CommandeClientUseCase) FindAllLignesByCommandeID(commandeID int) ([]dto.LigneCommandeClientResponse, error) {
	commande, err := uc.getCommande(commandeID)
	if err != nil {
		return nil, err
	}
	list, err := uc.lignes.ListByCommande(commande.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LigneCommandeClientResponse, 0, len(list))
	for i := range list {
		out = append(out, *dto.LigneCommandeClientFromEntity(&list[i]))
	}
	return out, nil
}

// getCommande charge la commande par ID avec fail-fast sur ID nul.
func (uc *CommandeClientUseCase) getCommande(id int) (*entity.CommandeClient, error) {
	if id <= 0 {
		uc.log.Error().Msg("ID de commande client nul")
		return nil, domain.NewInvalidEntity(domain.CommandeClientNotValid, "L'ID de la commande client ne peut pas être null", nil)
	}
	commande, err := uc.commandes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if commande == nil {
		return nil, domain.NewEntityNotFound(domain.CommandeClientNotFound, "Aucune commande client avec l'ID %d n'a été trouvée dans la BDD", id)
	}
	return commande, nil
}

// prepareLigne valide la ligne, charge la commande parente et vérifie
// l'article référencé.
func (uc *CommandeClientUseCase) prepareLigne(commandeID int, in *dto.LigneCommandeClientRequest) (*entity.CommandeClient, *entity.LigneCommandeClient, error) {
	if in == nil {
		uc.log.Error().Msg("ligne de commande nulle")
		return nil, nil, domain.NewInvalidEntity(domain.LigneCommandeNotValid, "La ligne de commande ne peut pas être null", nil)
	}
	if errs := validator.LigneCommandeClient(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("ligne de commande invalide")
		return nil, nil, domain.NewInvalidEntity(domain.LigneCommandeNotValid, "La ligne de commande n'est pas valide", errs)
	}
	commande, err := uc.getCommande(commandeID)
	if err != nil {
		return nil, nil, err
	}
	article, err := uc.articles.GetByID(in.ArticleID)
	if err != nil {
		return nil, nil, err
	}
	if article == nil {
		return nil, nil, domain.NewEntityNotFound(domain.ArticleNotFound, "Aucun article avec l'ID %d n'a été trouvé dans la BDD", in.ArticleID)
	}
	ligne := in.ToEntity(commande.ID)
	if ligne.EntrepriseID == 0 {
		ligne.EntrepriseID = commande.EntrepriseID
	}
	return commande, ligne, nil
}

// refresh recharge la commande pour projeter l'état post-transaction.
func (uc *CommandeClientUseCase) refresh(id int) (*dto.CommandeClientResponse, error) {
	commande, err := uc.commandes.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.CommandeClientFromEntity(commande), nil
}

// resolveRelations charge le client et vérifie l'entreprise référencés ; le
// client est attaché pour la projection de retour.
func (uc *CommandeClientUseCase) resolveRelations(commande *entity.CommandeClient) error {
	client, err := uc.clients.GetByID(commande.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.NewEntityNotFound(domain.ClientNotFound, "Aucun client avec l'ID %d n'a été trouvé dans la BDD", commande.ClientID)
	}
	entreprise, err := uc.entreprises.GetByID(commande.EntrepriseID)
	if err != nil {
		return err
	}
	if entreprise == nil {
		return domain.NewEntityNotFound(domain.EntrepriseNotFound, "Aucune entreprise avec l'ID %d n'a été trouvée dans la BDD", commande.EntrepriseID)
	}
	commande.Client = client
	return nil
}
