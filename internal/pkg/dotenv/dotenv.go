package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load читает .env (если он есть) и применяет флаги командной строки.
// Уже заданные переменные окружения godotenv не перезаписывает.
func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	var portFlag, backendFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.StringVar(&backendFlag, "backend", "", "Backend base URL (overrides BACKEND_BASE_URL environment variable)")
	flag.Parse()

	overrides := map[string]string{
		"PORT":             portFlag,
		"BACKEND_BASE_URL": backendFlag,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
