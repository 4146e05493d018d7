package validator

import (
	"github.com/team48/gestion-stock-api/internal/application/dto"
	"github.com/team48/gestion-stock-api/internal/domain/entity"
)

var rolesFields = []fieldMessage{
	{"RoleName", "Veillez renseigner le nom du rôle"},
	{"UtilisateurID", "Veillez renseigner l'utilisateur du rôle"},
	{"EntrepriseID", "Veillez renseigner l'entreprise du rôle"},
}

// Roles valide une requête d'attribution de rôle, énumération comprise.
func Roles(in dto.RolesRequest) []string {
	errs := collect(in, rolesFields)
	if in.RoleName != "" {
		if _, err := entity.ParseRoleName(in.RoleName); err != nil {
			errs = append(errs, "Le rôle doit être ADMIN, MANAGER ou EMPLOYEE")
		}
	}
	return errs
}

var registerFields = []fieldMessage{
	{"Nom", "Veillez renseigner le nom de l'utilisateur"},
	{"Prenom", "Veillez renseigner le prénom de l'utilisateur"},
	{"Username", "Veillez renseigner le nom d'utilisateur"},
	{"Email", "Veillez renseigner un email valide"},
	{"Password", "Le mot de passe doit contenir au moins 8 caractères"},
	{"Role", "Veillez renseigner le rôle de l'utilisateur"},
}

// Register valide une requête d'inscription. Le rôle est contrôlé contre
// l'énumération ici plutôt que de laisser échouer l'analyse en aval.
func Register(in dto.RegisterRequest) []string {
	errs := collect(in, registerFields)
	if in.Role != "" {
		if _, err := entity.ParseRoleName(in.Role); err != nil {
			errs = append(errs, "Le rôle doit être ADMIN, MANAGER ou EMPLOYEE")
		}
	}
	return errs
}

var loginFields = []fieldMessage{
	{"Email", "Veillez renseigner un email valide"},
	{"Password", "Veillez renseigner le mot de passe"},
}

// Login valide une requête de connexion.
func Login(in dto.LoginRequest) []string {
	return collect(in, loginFields)
}
