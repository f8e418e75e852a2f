package db

import (
	"context"

	"consent_governance_system/configs"

	"github.com/go-pg/migrations/v8"
	"github.com/go-pg/pg/v10"
	"go.uber.org/zap"
)

type queryLogger struct {
	logger *zap.SugaredLogger
}

func (l queryLogger) BeforeQuery(c context.Context, q *pg.QueryEvent) (context.Context, error) {
	query, err := q.FormattedQuery()
	if err != nil {
		return c, nil
	}

	l.logger.Debugw("executing query", "query", string(query))
	return c, nil
}

func (l queryLogger) AfterQuery(c context.Context, q *pg.QueryEvent) error {
	if q.Err != nil {
		l.logger.Debugw("query failed", "error", q.Err)
	}
	return nil
}

// StartDB connects to postgres and applies the SQL migrations found in
// config.MigrationsDir.
func StartDB(config configs.DB, logger *zap.SugaredLogger) (*pg.DB, error) {
	options, err := pg.ParseURL(config.URL)
	if err != nil {
		logger.Errorw("failed to parse db url", "error", err)
		return nil, err
	}

	db := pg.Connect(options)
	db.AddQueryHook(queryLogger{logger})

	if err := migrate(db, config.MigrationsDir, logger); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

func migrate(db *pg.DB, dir string, logger *zap.SugaredLogger) error {
	collection := migrations.NewCollection()
	collection.DisableSQLAutodiscover(true)

	if err := collection.DiscoverSQLMigrations(dir); err != nil {
		logger.Errorw("failed to discover migrations", "dir", dir, "error", err)
		return err
	}

	if _, _, err := collection.Run(db, "init"); err != nil {
		logger.Errorw("failed to init migrations", "error", err)
		return err
	}

	oldVersion, newVersion, err := collection.Run(db, "up")
	if err != nil {
		logger.Errorw("failed to run migrations", "error", err)
		return err
	}

	if newVersion != oldVersion {
		logger.Infow("migrated", "from", oldVersion, "to", newVersion)
	} else {
		logger.Infow("schema is up to date", "version", oldVersion)
	}
	return nil
}
