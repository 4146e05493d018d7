package validator

import "github.com/team48/gestion-stock-api/internal/application/dto"

var entrepriseFields = []fieldMessage{
	{"NomEntreprise", "Veillez renseigner le nom de l'entreprise"},
	{"Description", "Veillez renseigner la description de l'entreprise"},
	{"Email", "Veillez renseigner un email valide pour l'entreprise"},
	{"Adresse1", "Veillez renseigner l'adresse de l'entreprise"},
	{"Ville", "Veillez renseigner la ville de l'entreprise"},
	{"CodePostal", "Veillez renseigner le code postal de l'entreprise"},
	{"Pays", "Veillez renseigner le pays de l'entreprise"},
	{"CodeFiscal", "Veillez renseigner le code fiscal de l'entreprise"},
	{"NumTel", "Veillez renseigner le numéro de téléphone de l'entreprise"},
}

// Entreprise valide une requête d'entreprise.
func Entreprise(in dto.EntrepriseRequest) []string {
	return collect(in, entrepriseFields)
}
