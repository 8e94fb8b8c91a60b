package internal

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// LoadConfig fills config from the environment, after loading any .env file
// found in the working directory, then validates its `validate` tags.
func LoadConfig(config any, envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("env file error: %w", err)
	}
	if _, err := env.UnmarshalFromEnviron(config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
