package cmd

import (
	"context"
	"fmt"

	"devclub-portal/app/models"
	"devclub-portal/app/repository"
	"devclub-portal/app/repository/memory"
	"devclub-portal/app/repository/mongodb"
	"devclub-portal/app/repository/postgresql"
	"devclub-portal/config"
	"devclub-portal/database"

	"github.com/gofiber/fiber/v2/log"
)

// dataSource is the loaded dataset plus the credential store that goes with
// it. close releases any database connection.
type dataSource struct {
	repo        repository.ClubRepository
	credentials repository.CredentialRepository
	close       func()
}

func openSource(ctx context.Context, cfg config.Config) (*dataSource, error) {
	switch cfg.DataSource {
	case config.SourcePostgres:
		db, err := database.ConnectPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		ds, err := postgresql.LoadDataset(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		logDataset(cfg.DataSource, ds)
		return &dataSource{
			repo:        repository.NewDatasetRepository(ds),
			credentials: postgresql.NewCredentialRepository(db),
			close:       func() { db.Close() },
		}, nil

	case config.SourceMongo:
		client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, err
		}
		ds, err := mongodb.LoadDataset(ctx, db)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		logDataset(cfg.DataSource, ds)
		return &dataSource{
			repo:        repository.NewDatasetRepository(ds),
			credentials: mongodb.NewCredentialRepository(db),
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					log.Errorf("disconnect mongo: %v", err)
				}
			},
		}, nil

	case config.SourceMemory:
		ds, err := memory.LoadDataset()
		if err != nil {
			return nil, err
		}
		creds, err := memory.DemoCredentials(ds.Members, cfg.DemoPassword, cfg.BcryptCost)
		if err != nil {
			return nil, err
		}
		logDataset(cfg.DataSource, ds)
		return &dataSource{
			repo:        repository.NewDatasetRepository(ds),
			credentials: memory.NewCredentialRepository(creds),
			close:       func() {},
		}, nil
	}
	return nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
}

func logDataset(source string, ds *models.Dataset) {
	log.Infof("loaded dataset from %s: %d members, %d events, %d students, %d branches, %d years",
		source, len(ds.Members), len(ds.Events), len(ds.StudentRankings), len(ds.BranchRankings), len(ds.YearRankings))
}
