package config

import (
	"os"
	"strconv"
)

type Config struct {
	DatabasePath string
	Port         string
	Workers      int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// Defaults suit a local single-user deployment.
	env := Config{
		DatabasePath: "ledger.db",
		Port:         "9446",
		Workers:      4,
	}

	envDatabasePath := os.Getenv("LEDGER_DB_PATH")
	envPort := os.Getenv("LEDGER_PORT")
	envWorkers := os.Getenv("LEDGER_WORKERS")

	if len(envDatabasePath) != 0 {
		env.DatabasePath = envDatabasePath
	}

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envWorkers) != 0 {
		workers, err := strconv.Atoi(envWorkers)
		if err != nil {
			return nil, err
		}
		env.Workers = workers
	}

	return &env, nil
}
