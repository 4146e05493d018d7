package usecase

import "github.com/team48/gestion-stock-api/internal/domain/repository"

// TxRunner exécute une fonction dans une transaction de BDD, en lui passant
// des repositories attachés à cette transaction. Garantit l'atomicité des
// opérations qui écrivent l'en-tête et ses lignes ensemble.
type TxRunner interface {
	RunCommandeClient(fn func(
		commandes repository.CommandeClientRepository,
		lignes repository.LigneCommandeClientRepository,
	) error) error
	RunCommandeFournisseur(fn func(
		commandes repository.CommandeFournisseurRepository,
		lignes repository.LigneCommandeFournisseurRepository,
	) error) error
	RunVente(fn func(
		ventes repository.VenteRepository,
		lignes repository.LigneVenteRepository,
	) error) error
}
