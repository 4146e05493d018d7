package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/team48/gestion-stock-api/internal/application/auth"
	"github.com/team48/gestion-stock-api/internal/application/usecase"
	"github.com/team48/gestion-stock-api/internal/infrastructure/postgres"
	httpRouter "github.com/team48/gestion-stock-api/internal/interfaces/http"
	"github.com/team48/gestion-stock-api/pkg/config"
	"github.com/team48/gestion-stock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("chargement de la configuration : " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("démarrage de l'application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connexion à PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.ConnectionString(), log); err != nil {
		log.Fatal().Err(err).Msg("migration du schéma")
	}

	entrepriseRepo := postgres.NewEntrepriseRepository(pool)
	utilisateurRepo := postgres.NewUtilisateurRepository(pool)
	rolesRepo := postgres.NewRolesRepository(pool)
	categorieRepo := postgres.NewCategorieRepository(pool)
	articleRepo := postgres.NewArticleRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	fournisseurRepo := postgres.NewFournisseurRepository(pool)
	commandeClientRepo := postgres.NewCommandeClientRepository(pool)
	ligneCommandeClientRepo := postgres.NewLigneCommandeClientRepository(pool)
	commandeFournisseurRepo := postgres.NewCommandeFournisseurRepository(pool)
	ligneCommandeFournisseurRepo := postgres.NewLigneCommandeFournisseurRepository(pool)
	mvtStkRepo := postgres.NewMvtStkRepository(pool)
	venteRepo := postgres.NewVenteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	entrepriseUC := usecase.NewEntrepriseUseCase(entrepriseRepo, log)
	utilisateurUC := usecase.NewUtilisateurUseCase(utilisateurRepo, entrepriseRepo, log)
	rolesUC := usecase.NewRolesUseCase(rolesRepo, utilisateurRepo, entrepriseRepo, log)
	categorieUC := usecase.NewCategorieUseCase(categorieRepo, entrepriseRepo, log)
	articleUC := usecase.NewArticleUseCase(articleRepo, categorieRepo, entrepriseRepo, log)
	clientUC := usecase.NewClientUseCase(clientRepo, entrepriseRepo, log)
	fournisseurUC := usecase.NewFournisseurUseCase(fournisseurRepo, entrepriseRepo, log)
	commandeClientUC := usecase.NewCommandeClientUseCase(
		commandeClientRepo, ligneCommandeClientRepo, clientRepo, articleRepo, entrepriseRepo, txRunner, log,
	)
	commandeFournisseurUC := usecase.NewCommandeFournisseurUseCase(
		commandeFournisseurRepo, ligneCommandeFournisseurRepo, fournisseurRepo, articleRepo, entrepriseRepo, txRunner, log,
	)
	mvtStkUC := usecase.NewMvtStkUseCase(mvtStkRepo, articleRepo, log)
	venteUC := usecase.NewVenteUseCase(venteRepo, articleRepo, txRunner, log)
	authUC := auth.NewAuthUseCase(utilisateurRepo, rolesRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local : http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestion de Stock API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		EntrepriseUC:          entrepriseUC,
		UtilisateurUC:         utilisateurUC,
		RolesUC:               rolesUC,
		CategorieUC:           categorieUC,
		ArticleUC:             articleUC,
		ClientUC:              clientUC,
		FournisseurUC:         fournisseurUC,
		CommandeClientUC:      commandeClientUC,
		CommandeFournisseurUC: commandeFournisseurUC,
		MvtStkUC:              mvtStkUC,
		VenteUC:               venteUC,
		AuthUC:                authUC,
		JWTSecret:             cfg.JWT.Secret,
		UploadsDir:            cfg.Uploads.Dir,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("serveur HTTP arrêté")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("signal d'arrêt reçu, fermeture du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arrêt du serveur")
	}

	log.Info().Msg("application arrêtée")
}
