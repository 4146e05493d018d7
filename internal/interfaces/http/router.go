package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/team48/gestion-stock-api/internal/application/auth"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
)

// RouterDeps dépendances du routeur.
type RouterDeps struct {
	EntrepriseUC          *usecase.EntrepriseUseCase
	UtilisateurUC         *usecase.UtilisateurUseCase
	RolesUC               *usecase.RolesUseCase
	CategorieUC           *usecase.CategorieUseCase
	ArticleUC             *usecase.ArticleUseCase
	ClientUC              *usecase.ClientUseCase
	FournisseurUC         *usecase.FournisseurUseCase
	CommandeClientUC      *usecase.CommandeClientUseCase
	CommandeFournisseurUC *usecase.CommandeFournisseurUseCase
	MvtStkUC              *usecase.MvtStkUseCase
	VenteUC               *usecase.VenteUseCase
	AuthUC                *auth.AuthUseCase
	JWTSecret             string
	UploadsDir            string
}

// Router enregistre les routes de l'API sous /gestiondestock/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/gestiondestock/v1")

	// Santé (public)
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Routes protégées (Bearer Token requis)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	entreprises := protected.Group("/entreprises")
	entrepriseHandler := NewEntrepriseHandler(deps.EntrepriseUC)
	entreprises.Post("/create", entrepriseHandler.Create)
	entreprises.Get("/id/:id", entrepriseHandler.FindByID)
	entreprises.Get("/nom/:nom", entrepriseHandler.FindByNom)
	entreprises.Get("/showAll", entrepriseHandler.FindAll)
	entreprises.Put("/update/:id", entrepriseHandler.Update)
	entreprises.Delete("/delete/:id", entrepriseHandler.Delete)

	// Utilisateurs : la recherche par ID est historiquement sur /{id},
	// enregistrée en dernier pour ne pas capter les autres routes GET.
	utilisateurs := protected.Group("/utilisateurs")
	utilisateurHandler := NewUtilisateurHandler(deps.UtilisateurUC, deps.UploadsDir)
	utilisateurs.Post("/create", utilisateurHandler.Create)
	utilisateurs.Get("/email/:email", utilisateurHandler.FindByEmail)
	utilisateurs.Get("/showAll", utilisateurHandler.FindAll)
	utilisateurs.Put("/update/:id", utilisateurHandler.Update)
	utilisateurs.Delete("/delete/:id", utilisateurHandler.Delete)
	utilisateurs.Get("/:id", utilisateurHandler.FindByID)

	roles := protected.Group("/roles")
	rolesHandler := NewRolesHandler(deps.RolesUC)
	roles.Post("/create", rolesHandler.Create)
	roles.Get("/id/:id", rolesHandler.FindByID)
	roles.Get("/nom/:roleName", rolesHandler.FindByRoleName)
	roles.Get("/showAll", rolesHandler.FindAll)
	roles.Put("/update/:id", rolesHandler.Update)
	roles.Delete("/delete/:id", rolesHandler.Delete)

	categories := protected.Group("/categories")
	categorieHandler := NewCategorieHandler(deps.CategorieUC)
	categories.Post("/create", categorieHandler.Create)
	categories.Get("/id/:id", categorieHandler.FindByID)
	categories.Get("/code/:code", categorieHandler.FindByCode)
	categories.Get("/showAll", categorieHandler.FindAll)
	categories.Put("/update/:id", categorieHandler.Update)
	categories.Delete("/delete/:id", categorieHandler.Delete)

	articles := protected.Group("/articles")
	articleHandler := NewArticleHandler(deps.ArticleUC, deps.UploadsDir)
	articles.Post("/create", articleHandler.Create)
	articles.Get("/id/:id", articleHandler.FindByID)
	articles.Get("/code/:codeArticle", articleHandler.FindByCodeArticle)
	articles.Get("/showAll", articleHandler.FindAll)
	articles.Put("/update/:id", articleHandler.Update)
	articles.Delete("/delete/:id", articleHandler.Delete)

	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/create", clientHandler.Create)
	clients.Get("/id/:id", clientHandler.FindByID)
	clients.Get("/nom/:nom", clientHandler.FindByNom)
	clients.Get("/showAll", clientHandler.FindAll)
	clients.Put("/update/:id", clientHandler.Update)
	clients.Delete("/delete/:id", clientHandler.Delete)

	fournisseurs := protected.Group("/fournisseurs")
	fournisseurHandler := NewFournisseurHandler(deps.FournisseurUC)
	fournisseurs.Post("/create", fournisseurHandler.Create)
	fournisseurs.Get("/id/:id", fournisseurHandler.FindByID)
	fournisseurs.Get("/nom/:nom", fournisseurHandler.FindByNom)
	fournisseurs.Get("/showAll", fournisseurHandler.FindAll)
	fournisseurs.Put("/update/:id", fournisseurHandler.Update)
	fournisseurs.Delete("/delete/:id", fournisseurHandler.Delete)

	commandesClient := protected.Group("/commandesclient")
	commandeClientHandler := NewCommandeClientHandler(deps.CommandeClientUC)
	commandesClient.Post("/create", commandeClientHandler.Create)
	commandesClient.Get("/id/:id", commandeClientHandler.FindByID)
	commandesClient.Get("/code/:code", commandeClientHandler.FindByCode)
	commandesClient.Get("/showAll", commandeClientHandler.FindAll)
	commandesClient.Put("/update/:id", commandeClientHandler.Update)
	commandesClient.Delete("/delete/:id", commandeClientHandler.Delete)
	commandesClient.Post("/lignes/create/:commandeId", commandeClientHandler.AddLigne)
	commandesClient.Put("/lignes/update/:commandeId", commandeClientHandler.UpdateLigne)
	commandesClient.Delete("/lignes/delete/:commandeId/:ligneId", commandeClientHandler.RemoveLigne)
	commandesClient.Delete("/lignes/deleteAll/:commandeId", commandeClientHandler.RemoveAllLignes)
	commandesClient.Get("/lignes/:commandeId", commandeClientHandler.FindLignes)

	commandesFournisseur := protected.Group("/commandesfournisseur")
	commandeFournisseurHandler := NewCommandeFournisseurHandler(deps.CommandeFournisseurUC)
	commandesFournisseur.Post("/create", commandeFournisseurHandler.Create)
	commandesFournisseur.Get("/id/:id", commandeFournisseurHandler.FindByID)
	commandesFournisseur.Get("/code/:code", commandeFournisseurHandler.FindByCode)
	commandesFournisseur.Get("/showAll", commandeFournisseurHandler.FindAll)
	commandesFournisseur.Put("/update/:id", commandeFournisseurHandler.Update)
	commandesFournisseur.Delete("/delete/:id", commandeFournisseurHandler.Delete)
	commandesFournisseur.Post("/lignes/create/:commandeId", commandeFournisseurHandler.AddLigne)
	commandesFournisseur.Put("/lignes/update/:commandeId", commandeFournisseurHandler.UpdateLigne)
	commandesFournisseur.Delete("/lignes/delete/:commandeId/:ligneId", commandeFournisseurHandler.RemoveLigne)
	commandesFournisseur.Delete("/lignes/deleteAll/:commandeId", commandeFournisseurHandler.RemoveAllLignes)
	commandesFournisseur.Get("/lignes/:commandeId", commandeFournisseurHandler.FindLignes)

	// MvtStk : recherche par ID sur /{id}, enregistrée en dernier.
	mvtstk := protected.Group("/mvtstk")
	mvtStkHandler := NewMvtStkHandler(deps.MvtStkUC)
	mvtstk.Post("/create", mvtStkHandler.Create)
	mvtstk.Get("/showAll", mvtStkHandler.FindAll)
	mvtstk.Put("/update/:id", mvtStkHandler.Update)
	mvtstk.Delete("/delete/:id", mvtStkHandler.Delete)
	mvtstk.Get("/:id", mvtStkHandler.FindByID)

	ventes := protected.Group("/ventes")
	venteHandler := NewVenteHandler(deps.VenteUC)
	ventes.Post("/create", venteHandler.Create)
	ventes.Get("/id/:id", venteHandler.FindByID)
	ventes.Get("/code/:code", venteHandler.FindByCode)
	ventes.Get("/showAll", venteHandler.FindAll)
	ventes.Put("/update/:id", venteHandler.Update)
	ventes.Delete("/delete/:id", venteHandler.Delete)
}
