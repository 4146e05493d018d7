package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TypeMvtStk étiquette le sens d'un mouvement de stock.
type TypeMvtStk string

const (
	MvtEntree     TypeMvtStk = "ENTREE"
	MvtSortie     TypeMvtStk = "SORTIE"
	MvtCorrection TypeMvtStk = "CORRECTION"
)

// ParseTypeMvtStk valide une étiquette de mouvement fournie en entrée.
func ParseTypeMvtStk(s string) (TypeMvtStk, error) {
	switch TypeMvtStk(s) {
	case MvtEntree, MvtSortie, MvtCorrection:
		return TypeMvtStk(s), nil
	}
	return "", fmt.Errorf("type de mouvement inconnu: %q", s)
}

// MvtStk est une écriture du journal de stock. Le journal est en append
// seul : aucun solde courant n'est maintenu ni recalculé à la lecture.
type MvtStk struct {
	ID        int
	DateMvt   time.Time
	Quantite  decimal.Decimal
	TypeMvt   TypeMvtStk
	ArticleID int

	Article *Article
}
