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

// CommandeFournisseurUseCase pipeline pour les commandes fournisseur et leurs
// lignes, symétrique du cas d'usage commande client.
type CommandeFournisseurUseCase struct {
	commandes    repository.CommandeFournisseurRepository
	lignes       repository.LigneCommandeFournisseurRepository
	fournisseurs repository.FournisseurRepository
	articles     repository.ArticleRepository
	entreprises  repository.EntrepriseRepository
	tx           TxRunner
	log          *logger.Logger
}

// NewCommandeFournisseurUseCase construit le cas d'usage.
func NewCommandeFournisseurUseCase(
	commandes repository.CommandeFournisseurRepository,
	lignes repository.LigneCommandeFournisseurRepository,
	fournisseurs repository.FournisseurRepository,
	articles repository.ArticleRepository,
	entreprises repository.EntrepriseRepository,
	tx TxRunner,
	log *logger.Logger,
) *CommandeFournisseurUseCase {
	return &CommandeFournisseurUseCase{
		commandes:    commandes,
		lignes:       lignes,
		fournisseurs: fournisseurs,
		articles:     articles,
		entreprises:  entreprises,
		tx:           tx,
		log:          log,
	}
}

// Save valide l'en-tête, vérifie le fournisseur et l'entreprise référencés
// puis persiste.
func (uc *CommandeFournisseurUseCase) Save(in *dto.CommandeFournisseurRequest) (*dto.CommandeFournisseurResponse, error) {
	if in == nil {
		uc.log.Error().Msg("commande fournisseur nulle")
		return nil, domain.NewInvalidEntity(domain.CommandeFournisseurNotValid, "La commande fournisseur ne peut pas être null", nil)
	}
	if errs := validator.CommandeFournisseur(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("commande fournisseur invalide")
		return nil, domain.NewInvalidEntity(domain.CommandeFournisseurNotValid, "La commande fournisseur n'est pas valide", errs)
	}
	commande := in.ToEntity()
	if err := uc.resolveRelations(commande); err != nil {
		return nil, err
	}
	if err := uc.commandes.Create(commande); err != nil {
		return nil, err
	}
	return dto.CommandeFournisseurFromEntity(commande), nil
}

// FindByID retourne la commande avec ses lignes ou EntityNotFound.
func (uc *CommandeFournisseurUseCase) FindByID(id int) (*dto.CommandeFournisseurResponse, error) {
	commande, err := uc.getCommande(id)
	if err != nil {
		return nil, err
	}
	return dto.CommandeFournisseurFromEntity(commande), nil
}

// FindByCode retourne la commande portant ce code ou EntityNotFound.
func (uc *CommandeFournisseurUseCase) FindByCode(code string) (*dto.CommandeFournisseurResponse, error) {
	if strings.TrimSpace(code) == "" {
		uc.log.Error().Msg("code de commande fournisseur vide")
		return nil, domain.NewInvalidEntity(domain.CommandeFournisseurNotValid, "Le code de la commande fournisseur ne peut pas être vide", nil)
	}
	commande, err := uc.commandes.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if commande == nil {
		return nil, domain.NewEntityNotFound(domain.CommandeFournisseurNotFound, "Aucune commande fournisseur avec le CODE %s n'a été trouvée dans la BDD", code)
	}
	return dto.CommandeFournisseurFromEntity(commande), nil
}

// FindAll projette toutes les commandes fournisseur, sans pagination.
func (uc *CommandeFournisseurUseCase) FindAll() ([]dto.CommandeFournisseurResponse, error) {
	list, err := uc.commandes.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CommandeFournisseurResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *dto.CommandeFournisseurFromEntity(c))
	}
	return out, nil
}

// Delete supprime l'en-tête et ses lignes en transaction ; ID nul =
// non-opération.
func (uc *CommandeFournisseurUseCase) Delete(id int) error {
	if id <= 0 {
		uc.log.Error().Msg("ID de commande fournisseur nul")
		return nil
	}
	return uc.tx.RunCommandeFournisseur(func(
		commandes repository.CommandeFournisseurRepository,
		lignes repository.LigneCommandeFournisseurRepository,
	) error {
		if err := lignes.DeleteByCommande(id); err != nil {
			return err
		}
		return commandes.Delete(id)
	})
}

// Update remplace les champs de l'en-tête en conservant l'ID et les lignes.
func (uc *CommandeFournisseurUseCase) Update(id int, in *dto.CommandeFournisseurRequest) (*dto.CommandeFournisseurResponse, error) {
	if in == nil || id <= 0 {
		uc.log.Error().Msg("commande fournisseur ou ID nul")
		return nil, domain.NewInvalidEntity(domain.CommandeFournisseurNotValid, "La commande fournisseur ou son ID ne peut pas être null", nil)
	}
	if errs := validator.CommandeFournisseur(*in); len(errs) > 0 {
		uc.log.Error().Strs("violations", errs).Msg("commande fournisseur invalide")
		return nil, domain.NewInvalidEntity(domain.CommandeFournisseurNotValid, "La commande fournisseur n'est pas valide", errs)
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
	return dto.CommandeFournisseurFromEntity(commande), nil
}

// AddLigne valide la ligne, vérifie la commande et l'article puis crée la
// ligne en transaction. Retourne la commande rechargée.
func (uc *CommandeFournisseurUseCase) AddLigne(commandeID int, in *dto.LigneCommandeFournisseurRequest) (*dto.CommandeFournisseurResponse, error) {
	commande, ligne, err := uc.prepareLigne(commandeID, in)
	if err != nil {
		return nil, err
	}
	err = uc.tx.RunCommandeFournisseur(func(
		_ repository.CommandeFournisseurRepository,
		lignes repository.LigneCommandeFournisseurRepository,
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
func (uc *CommandeFournisseurUseCase) UpdateLigne(commandeID int, in *dto.LigneCommandeFournisseurRequest) (*dto.CommandeFournisseurResponse, error) {
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
	if existing == nil || existing.CommandeFournisseurID != commande.ID {
		return nil, domain.NewEntityNotFound(domain.LigneCommandeNotFound, "Aucune ligne de commande avec l'ID %d n'a été trouvée dans la BDD", ligne.ID)
	}
	err = uc.tx.RunCommandeFournisseur(func(
		_ repository.CommandeFournisseurRepository,
		lignes repository.LigneCommandeFournisseurRepository,
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
func (uc *CommandeFournisseurUseCase) RemoveLigne(commandeID, ligneID int) (*dto.CommandeFournisseurResponse, error) {
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
	if ligne == nil || ligne.CommandeFournisseurID != commande.ID {
		return nil, domain.NewEntityNotFound(domain.LigneCommandeNotFound, "Aucune ligne de commande avec l'ID %d n'a été trouvée dans la BDD", ligneID)
	}
	err = uc.tx.RunCommandeFournisseur(func(
		_ repository.CommandeFournisseurRepository,
		lignes repository.LigneCommandeFournisseurRepository,
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
func (uc *CommandeFournisseurUseCase) RemoveAllLignes(commandeID int) (*dto.CommandeFournisseurResponse, error) {
	commande, err := uc.getCommande(commandeID)
	if err != nil {
		return nil, err
	}
	err = uc.tx.RunCommandeFournisseur(func(
		_ repository.CommandeFournisseurRepository,
		lignes repository.LigneCommandeFournisseurRepository,
	) error {
		return lignes.DeleteByCommande(commande.ID)
	})
	if err != nil {
		return nil, err
	}
	return uc.refresh(commande.ID)
}

// FindAllLignesByCommandeID projette les lignes de la commande.
func (uc *CommandeFournisseurUseCase) FindAllLignesByCommandeID(commandeID int) ([]dto.LigneCommandeFournisseurResponse, error) {
	commande, err := uc.getCommande(commandeID)
	if err != nil {
		return nil, err
	}
	list, err := uc.lignes.ListByCommande(commande.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LigneCommandeFournisseurResponse, 0, len(list))
	for i := range list {
		out = append(out, *dto.LigneCommandeFournisseurFromEntity(&list[i]))
	}
	return out, nil
}

// getCommande charge la commande par ID avec fail-fast sur ID nul.
func (uc *CommandeFournisseurUseCase) getCommande(id int) (*entity.CommandeFournisseur, error) {
	if id <= 0 {
		uc.log.Error().Msg("ID de commande fournisseur nul")
		return nil, domain.NewInvalidEntity(domain.CommandeFournisseurNotValid, "L'ID de la commande fournisseur ne peut pas être null", nil)
	}
	commande, err := uc.commandes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if commande == nil {
		return nil, domain.NewEntityNotFound(domain.CommandeFournisseurNotFound, "Aucune commande fournisseur avec l'ID %d n'a été trouvée dans la BDD", id)
	}
	return commande, nil
}

// prepareLigne valide la ligne, charge la commande parente et vérifie
// l'article référencé.
func (uc *CommandeFournisseurUseCase) prepareLigne(commandeID int, in *dto.LigneCommandeFournisseurRequest) (*entity.CommandeFournisseur, *entity.LigneCommandeFournisseur, error) {
	if in == nil {
		uc.log.Error().Msg("ligne de commande nulle")
		return nil, nil, domain.NewInvalidEntity(domain.LigneCommandeNotValid, "La ligne de commande ne peut pas être null", nil)
	}
	if errs := validator.LigneCommandeFournisseur(*in); len(errs) > 0 {
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
func (uc *CommandeFournisseurUseCase) refresh(id int) (*dto.CommandeFournisseurResponse, error) {
	commande, err := uc.commandes.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.CommandeFournisseurFromEntity(commande), nil
}

// resolveRelations charge le fournisseur et vérifie l'entreprise référencés ;
// le fournisseur est attaché pour la projection de retour.
func (uc *CommandeFournisseurUseCase) resolveRelations(commande *entity.CommandeFournisseur) error {
	fournisseur, err := uc.fournisseurs.GetByID(commande.FournisseurID)
	if err != nil {
		return err
	}
	if fournisseur == nil {
		return domain.NewEntityNotFound(domain.FournisseurNotFound, "Aucun fournisseur avec l'ID %d n'a été trouvé dans la BDD", commande.FournisseurID)
	}
	entreprise, err := uc.entreprises.GetByID(commande.EntrepriseID)
	if err != nil {
		return err
	}
	if entreprise == nil {
		return domain.NewEntityNotFound(domain.EntrepriseNotFound, "Aucune entreprise avec l'ID %d n'a été trouvée dans la BDD", commande.EntrepriseID)
	}
	commande.Fournisseur = fournisseur
	return nil
}
