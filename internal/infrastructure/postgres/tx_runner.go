package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
	"github.com/team48/gestion-stock-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner exécute des callbacks dans une transaction PostgreSQL, avec des
// repositories attachés à la transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construit le runner avec le pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunCommandeClient ouvre une transaction, exécute fn avec les repositories
// commande client et lignes attachés, puis Commit ou Rollback.
func (r *TxRunner) RunCommandeClient(fn func(
	commandes repository.CommandeClientRepository,
	lignes repository.LigneCommandeClientRepository,
) error) error {
	return r.run(func(q Querier) error {
		return fn(NewCommandeClientRepository(q), NewLigneCommandeClientRepository(q))
	})
}

// RunCommandeFournisseur ouvre une transaction côté commandes fournisseur.
func (r *TxRunner) RunCommandeFournisseur(fn func(
	commandes repository.CommandeFournisseurRepository,
	lignes repository.LigneCommandeFournisseurRepository,
) error) error {
	return r.run(func(q Querier) error {
		return fn(NewCommandeFournisseurRepository(q), NewLigneCommandeFournisseurRepository(q))
	})
}

// RunVente ouvre une transaction côté ventes.
func (r *TxRunner) RunVente(fn func(
	ventes repository.VenteRepository,
	lignes repository.LigneVenteRepository,
) error) error {
	return r.run(func(q Querier) error {
		return fn(NewVenteRepository(q), NewLigneVenteRepository(q))
	})
}

func (r *TxRunner) run(fn func(q Querier) error) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
