package validator

import (
	"time"

	"github.com/team48/gestion-stock-api/internal/application/dto"
)

var utilisateurFields = []fieldMessage{
	{"Nom", "Veillez renseigner le nom de l'utilisateur"},
	{"Prenom", "Veillez renseigner le prénom de l'utilisateur"},
	{"Username", "Veillez renseigner le nom d'utilisateur"},
	{"Email", "Veillez renseigner un email valide pour l'utilisateur"},
	{"MotDePasse", "Veillez renseigner le mot de passe de l'utilisateur"},
	{"DateDeNaissance", "Veillez renseigner la date de naissance de l'utilisateur"},
	{"Adresse1", "Veillez renseigner l'adresse de l'utilisateur"},
	{"Ville", "Veillez renseigner la ville de l'utilisateur"},
	{"CodePostal", "Veillez renseigner le code postal de l'utilisateur"},
	{"Pays", "Veillez renseigner le pays de l'utilisateur"},
	{"EntrepriseID", "Veillez renseigner l'entreprise de l'utilisateur"},
}

// Utilisateur valide une requête d'utilisateur, format de date compris.
func Utilisateur(in dto.UtilisateurRequest) []string {
	errs := collect(in, utilisateurFields)
	if in.DateDeNaissance != "" {
		if _, err := time.Parse("2006-01-02", in.DateDeNaissance); err != nil {
			errs = append(errs, "La date de naissance doit être au format AAAA-MM-JJ")
		}
	}
	return errs
}
