package validator

import (
	"time"

	"github.com/team48/gestion-stock-api/internal/application/dto"
)

var commandeClientFields = []fieldMessage{
	{"Code", "Veillez renseigner le code de la commande client"},
	{"DateCommande", "Veillez renseigner la date de la commande client"},
	{"ClientID", "Veillez renseigner le client de la commande"},
	{"EntrepriseID", "Veillez renseigner l'entreprise de la commande client"},
}

// CommandeClient valide un en-tête de commande client.
func CommandeClient(in dto.CommandeClientRequest) []string {
	errs := collect(in, commandeClientFields)
	if in.DateCommande != "" {
		if _, err := time.Parse(time.RFC3339, in.DateCommande); err != nil {
			errs = append(errs, "La date de la commande doit être un horodatage RFC 3339")
		}
	}
	return errs
}

var commandeFournisseurFields = []fieldMessage{
	{"Code", "Veillez renseigner le code de la commande fournisseur"},
	{"DateCommande", "Veillez renseigner la date de la commande fournisseur"},
	{"FournisseurID", "Veillez renseigner le fournisseur de la commande"},
	{"EntrepriseID", "Veillez renseigner l'entreprise de la commande fournisseur"},
}

// CommandeFournisseur valide un en-tête de commande fournisseur.
func CommandeFournisseur(in dto.CommandeFournisseurRequest) []string {
	errs := collect(in, commandeFournisseurFields)
	if in.DateCommande != "" {
		if _, err := time.Parse(time.RFC3339, in.DateCommande); err != nil {
			errs = append(errs, "La date de la commande doit être un horodatage RFC 3339")
		}
	}
	return errs
}

var ligneCommandeClientFields = []fieldMessage{
	{"ArticleID", "Veillez renseigner l'identifiant de l'article de la ligne de commande client"},
	{"Quantite", "Veillez renseigner la quantité de la ligne de commande client"},
	{"PrixUnitaire", "Veillez renseigner le prix unitaire de la ligne de commande client"},
}

// LigneCommandeClient valide une ligne de commande client.
func LigneCommandeClient(in dto.LigneCommandeClientRequest) []string {
	return collect(in, ligneCommandeClientFields)
}

var ligneCommandeFournisseurFields = []fieldMessage{
	{"ArticleID", "Veillez renseigner l'identifiant de l'article de la ligne de commande fournisseur"},
	{"Quantite", "Veillez renseigner la quantité de la ligne de commande fournisseur"},
	{"PrixUnitaire", "Veillez renseigner le prix unitaire de la ligne de commande fournisseur"},
}

// LigneCommandeFournisseur valide une ligne de commande fournisseur.
func LigneCommandeFournisseur(in dto.LigneCommandeFournisseurRequest) []string {
	return collect(in, ligneCommandeFournisseurFields)
}
