// main is the entry point for the peakform CLI.
package main

import (
	"github.com/peakform/peakform/cmd"
	"github.com/peakform/peakform/internal/contract"
	"github.com/peakform/peakform/internal/iocache"
)

func main() {
	// The manager is a stable pointer; its stores are populated during
	// command setup once the backend configuration is known.
	cmd.SetCacheManager(iocache.Manager)

	err := cmd.Execute()

	// Flush profiling output and close store connections before exiting.
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Could not stop profiling cleanly", perr)
	}
	iocache.CloseStores()

	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
