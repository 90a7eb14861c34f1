package cmd

import (
	"context"
	"fmt"

	"devclub-portal/app/repository/memory"
	"devclub-portal/app/repository/mongodb"
	"devclub-portal/app/repository/postgresql"
	"devclub-portal/config"
	"devclub-portal/database"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

var seedTarget string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the embedded fixtures into PostgreSQL or MongoDB",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedTarget, "target", config.SourcePostgres, "database to seed (postgres or mongo)")
}

func runSeed(cmd *cobra.Command, args []string) error {
	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ds, err := memory.LoadDataset()
	if err != nil {
		return err
	}
	creds, err := memory.DemoCredentials(ds.Members, cfg.DemoPassword, cfg.BcryptCost)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.LoadTimeout)
	defer cancel()

	switch seedTarget {
	case config.SourcePostgres:
		if cfg.DatabaseDSN == "" {
			return fmt.Errorf("DB_DSN is required to seed postgres")
		}
		db, err := database.ConnectPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := postgresql.Seed(ctx, db, ds, creds); err != nil {
			return fmt.Errorf("seed postgres: %w", err)
		}

	case config.SourceMongo:
		client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return err
		}
		defer client.Disconnect(context.Background())
		if err := mongodb.Seed(ctx, db, ds, creds); err != nil {
			return fmt.Errorf("seed mongo: %w", err)
		}

	default:
		return fmt.Errorf("unknown seed target %q", seedTarget)
	}

	log.Infof("seeded %s with %d members and %d events", seedTarget, len(ds.Members), len(ds.Events))
	return nil
}
