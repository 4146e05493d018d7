package dto

// RegisterRequest entrée d'inscription. Le rôle est un nom de l'énumération
// (ADMIN, MANAGER, EMPLOYEE) validé avant toute écriture.
type RegisterRequest struct {
	Nom          string `json:"nom" validate:"required"`
	Prenom       string `json:"prenom" validate:"required"`
	Username     string `json:"username" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Role         string `json:"role" validate:"required"`
	EntrepriseID int    `json:"entrepriseId"`
}

// LoginRequest entrée de connexion.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse sortie d'inscription et de connexion : jeton signé plus la
// projection de l'utilisateur.
type AuthResponse struct {
	Token string              `json:"token"`
	User  UtilisateurResponse `json:"user"`
}
