package main

import (
	"os"

	"github.com/avm2rt/avm2core/cmd/avm2tool/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
