// cmd/bingo/main.go
package main

import (
	"os"

	config "github.com/tombola-games/minibingo/configs"
)

const SERVICE_NAME = "bingo"

func init() {
	config.Logging(SERVICE_NAME + "_session")
	config.LoadEnv(SERVICE_NAME)
	config.CreateUniqueInstance(SERVICE_NAME)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
