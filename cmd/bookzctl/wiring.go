package main

import (
	"bookz/config"
	logs "bookz/internal/infra/log"
	"bookz/internal/infra/persistence/postgres"
	"bookz/internal/infra/sms"
	"bookz/internal/usecase"
	"bookz/internal/usecase/impl"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deps bundles everything a command needs plus the DB handle to close on exit.
type deps struct {
	notification usecase.NotificationUsecase
	closeDB      func() error
}

// buildDeps wires the notification use case by hand. The CLI runs one
// operation and exits, so it skips the fx lifecycle the server uses.
func buildDeps() (*deps, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to PostgreSQL")
	}
	db = db.Session(&gorm.Session{SkipDefaultTransaction: true})

	gateway, err := sms.NewSMSPilotGateway(cfg, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMS gateway")
	}

	notification := impl.NewNotificationService(impl.NotificationServiceParams{
		Logger:           logger,
		BookRepo:         postgres.NewBookRepository(db),
		SubscriptionRepo: postgres.NewSubscriptionRepository(db),
		Gateway:          gateway,
	})

	return &deps{
		notification: notification,
		closeDB: func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}

			return sqlDB.Close()
		},
	}, nil
}
