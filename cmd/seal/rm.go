package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bouncing-seal/internal/storage"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Delete stored replays",
	Args:  cobra.MinimumNArgs(1),
	Run:   runRm,
}

func runRm(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open replay database", "error", err)
	}
	defer store.Close()

	failed := false
	for _, id := range args {
		if err := store.DeleteReplay(id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "no replay with id %q\n", id)
			} else {
				logger.Error("cannot delete replay", "id", id, "error", err)
			}
			failed = true
			continue
		}
		fmt.Printf("deleted %s\n", id)
	}
	if failed {
		store.Close()
		os.Exit(1)
	}
}
