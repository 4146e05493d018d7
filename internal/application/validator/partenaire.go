package validator

import "github.com/team48/gestion-stock-api/internal/application/dto"

// Client et Fournisseur partagent la même forme ; seules les formulations
// changent.

var clientFields = []fieldMessage{
	{"Nom", "Veillez renseigner le nom du client"},
	{"Prenom", "Veillez renseigner le prénom du client"},
	{"Email", "Veillez renseigner un email valide pour le client"},
	{"Adresse1", "Veillez renseigner l'adresse du client"},
	{"Ville", "Veillez renseigner la ville du client"},
	{"CodePostal", "Veillez renseigner le code postal du client"},
	{"Pays", "Veillez renseigner le pays du client"},
	{"NumTel", "Veillez renseigner le numéro de téléphone du client"},
	{"EntrepriseID", "Veillez renseigner l'entreprise du client"},
}

// Client valide une requête de client.
func Client(in dto.ClientRequest) []string {
	return collect(in, clientFields)
}

var fournisseurFields = []fieldMessage{
	{"Nom", "Veillez renseigner le nom du fournisseur"},
	{"Prenom", "Veillez renseigner le prénom du fournisseur"},
	{"Email", "Veillez renseigner un email valide pour le fournisseur"},
	{"Adresse1", "Veillez renseigner l'adresse du fournisseur"},
	{"Ville", "Veillez renseigner la ville du fournisseur"},
	{"CodePostal", "Veillez renseigner le code postal du fournisseur"},
	{"Pays", "Veillez renseigner le pays du fournisseur"},
	{"NumTel", "Veillez renseigner le numéro de téléphone du fournisseur"},
	{"EntrepriseID", "Veillez renseigner l'entreprise du fournisseur"},
}

// Fournisseur valide une requête de fournisseur.
func Fournisseur(in dto.FournisseurRequest) []string {
	return collect(in, fournisseurFields)
}
