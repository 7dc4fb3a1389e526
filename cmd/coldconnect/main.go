package main

import (
	"github.com/joho/godotenv"

	"github.com/coldconnect-labs/coldconnect-cli/internal/adapters/driving/cli"
)

func main() {
	// A missing .env is fine; credentials can come from the shell or
	// the config file.
	_ = godotenv.Load()

	cli.Execute()
}
