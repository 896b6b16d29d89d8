package helper

//nolint:revive
import (
	"agenda/config"
	"agenda/infras/postgres"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

// DefaultSource is resolved against the working directory.
const DefaultSource = "file://migrations/postgres"

var ErrUnknownAction = errors.New("unknown migration action")

func getConnection(source, dsn, table string) (*migrate.Migrate, error) {
	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}

	connectionString := fmt.Sprintf("%s%sx-migrations-table=%s", dsn, separator, table)

	mig, err := migrate.New(source, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Run applies action to the database at dsn using the migrations found at source.
func Run(source, dsn, table, action string) error {
	mig, err := getConnection(source, dsn, table)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migrations (%s): %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migrations completed successfully")

	return nil
}

func Runner(config *config.Config, action string) error {
	return Run(DefaultSource, postgres.DSN(*config), config.DB.Postgres.MigrationTable, action)
}

func Up(config *config.Config) error {
	return Runner(config, ActionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, ActionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, ActionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, ActionDrop)
}
