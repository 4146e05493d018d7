package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
)

// MvtStkRequest entrée pour enregistrer un mouvement de stock. DateMvt est un
// horodatage RFC 3339 ; TypeMvt une étiquette de l'énumération (ENTREE,
// SORTIE, CORRECTION).
type MvtStkRequest struct {
	DateMvt   string          `json:"dateMvt" validate:"required"`
	Quantite  decimal.Decimal `json:"quantite" validate:"required"`
	TypeMvt   string          `json:"typeMvt" validate:"required"`
	ArticleID int             `json:"articleId" validate:"required"`
}

// ToEntity convertit la requête en entité. Date et type invalides sont
// rejetés par le validateur en amont.
func (r MvtStkRequest) ToEntity() *entity.MvtStk {
	date, _ := time.Parse(time.RFC3339, r.DateMvt)
	return &entity.MvtStk{
		DateMvt:   date,
		Quantite:  r.Quantite,
		TypeMvt:   entity.TypeMvtStk(r.TypeMvt),
		ArticleID: r.ArticleID,
	}
}

// MvtStkResponse projection d'un mouvement avec son article.
type MvtStkResponse struct {
	ID       int              `json:"id"`
	DateMvt  time.Time        `json:"dateMvt"`
	Quantite decimal.Decimal  `json:"quantite"`
	TypeMvt  string           `json:"typeMvt"`
	Article  *ArticleResponse `json:"article,omitempty"`
}

// MvtStkFromEntity convertit l'entité vers sa projection.
func MvtStkFromEntity(m *entity.MvtStk) *MvtStkResponse {
	if m == nil {
		return nil
	}
	return &MvtStkResponse{
		ID:       m.ID,
		DateMvt:  m.DateMvt,
		Quantite: m.Quantite,
		TypeMvt:  string(m.TypeMvt),
		Article:  ArticleFromEntity(m.Article),
	}
}
