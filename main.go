// main is the entry point of the roadmap CLI.
package main

import (
	"os"

	"github.com/huangsam/roadmap/cmd"
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/internal/iocache"
)

func main() {
	defer iocache.CloseStores()
	if err := cmd.Execute(); err != nil {
		contract.LogWarn("roadmap failed", err)
		iocache.CloseStores()
		os.Exit(1)
	}
}
