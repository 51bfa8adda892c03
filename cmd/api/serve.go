package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/georgemunganga/stockroom-api/internal/credential"
	"github.com/georgemunganga/stockroom-api/internal/database"
	"github.com/georgemunganga/stockroom-api/internal/modules/auth"
	"github.com/georgemunganga/stockroom-api/internal/modules/inventory"
	"github.com/georgemunganga/stockroom-api/internal/modules/user"
	"github.com/georgemunganga/stockroom-api/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	started := time.Now()

	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		log.Error("Database connection error", zap.Error(err))
		return err
	}
	defer db.Close()
	log.Info("Connected to PostgreSQL")

	hasher, err := credential.NewHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}

	// ── Inventory ───────────────────────────────────────────
	inventoryRepo := inventory.NewPostgresRepository(db, cfg.Database.QueryTimeout)
	inventoryService := inventory.NewService(inventoryRepo)

	// ── Accounts ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db, cfg.Database.QueryTimeout)
	userService := user.NewService(userRepo, hasher)
	authService := auth.NewService(userRepo, hasher)

	router := server.NewRouter(server.Deps{
		Config:    cfg.Server,
		Logger:    log,
		Inventory: inventoryService,
		Users:     userService,
		Auth:      authService,
		Started:   started,
	})

	return server.Run(ctx, cfg.Server, router, log)
}
