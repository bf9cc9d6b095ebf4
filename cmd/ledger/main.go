package main

import (
	"os"

	"github.com/PedroCamargo-dev/core-bank-ledger-service/cmd/ledger/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
