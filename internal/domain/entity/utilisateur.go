package entity

import "time"

// Utilisateur représente un compte applicatif rattaché à une Entreprise.
// MotDePasse contient le hash bcrypt, jamais le mot de passe en clair.
// Roles est chargé avec l'utilisateur pour les besoins de l'authentification.
type Utilisateur struct {
	ID               int
	Nom              string
	Prenom           string
	Username         string
	Email            string
	MotDePasse       string
	DateDeNaissance  time.Time
	Photo            string
	Adresse          Adresse
	EntrepriseID     int
	Enabled          bool
	AccountNonLocked bool
	Roles            []Roles
}
