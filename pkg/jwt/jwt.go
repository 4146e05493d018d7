package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclut les claims JWT standard plus les champs propres à
// l'application. Les rôles sont embarqués pour que le middleware puisse
// décider sans consulter la BDD.
type Claims struct {
	jwt.RegisteredClaims
	UserID       int      `json:"userId"`
	EntrepriseID int      `json:"entrepriseId"`
	Roles        []string `json:"roles"` // "ADMIN" | "MANAGER" | "EMPLOYEE"
}

// Generate signe un jeton HS256 portant l'utilisateur, son entreprise et ses
// rôles.
func Generate(secret string, userID, entrepriseID int, roles []string, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vide")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:       userID,
		EntrepriseID: entrepriseID,
		Roles:        roles,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valide le jeton et retourne ses claims. Erreur sur jeton invalide,
// expiré ou de signature incorrecte.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vide")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims invalides")
	}
	return claims, nil
}
