package main

import (
	"github.com/joho/godotenv"

	"github.com/pasardb/pasardb/internal/cmd"
)

func main() {
	// A .env file is a development convenience; absence is fine.
	_ = godotenv.Load()

	cmd.Execute()
}
