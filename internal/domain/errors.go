package domain

import (
	"errors"
	"fmt"
)

// ErrorCode identifie la règle métier violée. Les codes sont exposés tels
// quels dans les réponses HTTP d'erreur.
type ErrorCode string

const (
	ArticleNotFound             ErrorCode = "ARTICLE_NOT_FOUND"
	ArticleNotValid             ErrorCode = "ARTICLE_NOT_VALID"
	CategorieNotFound           ErrorCode = "CATEGORIE_NOT_FOUND"
	CategorieNotValid           ErrorCode = "CATEGORIE_NOT_VALID"
	ClientNotFound              ErrorCode = "CLIENT_NOT_FOUND"
	ClientNotValid              ErrorCode = "CLIENT_NOT_VALID"
	CommandeClientNotFound      ErrorCode = "COMMANDE_CLIENT_NOT_FOUND"
	CommandeClientNotValid      ErrorCode = "COMMANDE_CLIENT_NOT_VALID"
	CommandeFournisseurNotFound ErrorCode = "COMMANDE_FOURNISSEUR_NOT_FOUND"
	CommandeFournisseurNotValid ErrorCode = "COMMANDE_FOURNISSEUR_NOT_VALID"
	EntrepriseNotFound          ErrorCode = "ENTREPRISE_NOT_FOUND"
	EntrepriseNotValid          ErrorCode = "ENTREPRISE_NOT_VALID"
	FournisseurNotFound         ErrorCode = "FOURNISSEUR_NOT_FOUND"
	FournisseurNotValid         ErrorCode = "FOURNISSEUR_NOT_VALID"
	LigneCommandeNotFound       ErrorCode = "LIGNE_COMMANDE_NOT_FOUND"
	LigneCommandeNotValid       ErrorCode = "LIGNE_COMMANDE_NOT_VALID"
	MvtStkNotFound              ErrorCode = "MVT_STK_NOT_FOUND"
	MvtStkNotValid              ErrorCode = "MVT_STK_NOT_VALID"
	RolesNotFound               ErrorCode = "ROLES_NOT_FOUND"
	RolesNotValid               ErrorCode = "ROLES_NOT_VALID"
	UtilisateurNotFound         ErrorCode = "UTILISATEUR_NOT_FOUND"
	UtilisateurNotValid         ErrorCode = "UTILISATEUR_NOT_VALID"
	VenteNotFound               ErrorCode = "VENTE_NOT_FOUND"
	VenteNotValid               ErrorCode = "VENTE_NOT_VALID"
	InvalidCredentials          ErrorCode = "INVALID_CREDENTIALS"
	DuplicateEntity             ErrorCode = "DUPLICATE_ENTITY"
)

// InvalidEntityError : le DTO est nul ou la validation métier a échoué.
// Errors porte la liste ordonnée des messages du validateur.
type InvalidEntityError struct {
	Code    ErrorCode
	Message string
	Errors  []string
}

func (e *InvalidEntityError) Error() string { return e.Message }

// NewInvalidEntity construit l'erreur avec la liste des violations (peut être vide).
func NewInvalidEntity(code ErrorCode, message string, errs []string) *InvalidEntityError {
	return &InvalidEntityError{Code: code, Message: message, Errors: errs}
}

// EntityNotFoundError : aucune ligne pour l'ID ou le champ unique demandé.
type EntityNotFoundError struct {
	Code    ErrorCode
	Message string
}

func (e *EntityNotFoundError) Error() string { return e.Message }

// NewEntityNotFound construit l'erreur avec le message utilisateur.
func NewEntityNotFound(code ErrorCode, format string, args ...any) *EntityNotFoundError {
	return &EntityNotFoundError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// BadCredentialsError : échec d'authentification (email ou mot de passe
// invalide, compte désactivé ou verrouillé).
type BadCredentialsError struct {
	Message string
}

func (e *BadCredentialsError) Error() string { return e.Message }

// DuplicateError : contrainte d'unicité violée à l'enregistrement (email,
// username, code article...).
type DuplicateError struct {
	Message string
}

func (e *DuplicateError) Error() string { return e.Message }

// IsInvalidEntity indique si err (ou sa chaîne) est une InvalidEntityError.
func IsInvalidEntity(err error) bool {
	var target *InvalidEntityError
	return errors.As(err, &target)
}

// IsEntityNotFound indique si err (ou sa chaîne) est une EntityNotFoundError.
func IsEntityNotFound(err error) bool {
	var target *EntityNotFoundError
	return errors.As(err, &target)
}
