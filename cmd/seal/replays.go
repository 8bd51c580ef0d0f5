package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bouncing-seal/internal/platform/tui"
	"github.com/vovakirdan/bouncing-seal/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse stored replays",
	Long: `List the most recent stored replays, newest first.

In a terminal this opens an interactive table where Enter re-simulates
the highlighted replay. When output is redirected, or with --plain, a
text table is printed instead.

Examples:
  seal replays
  seal replays --plain --limit 5`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

func init() {
	replaysCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of replays to list in plain mode")
	replaysCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
}

func runReplays(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open replay database", "error", err)
	}
	defer store.Close()

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		if err := tui.RunReplays(store, width, height); err != nil {
			logger.Error("error running replay browser", "error", err)
		}
		return
	}

	entries, err := store.RecentReplays(flagLimit)
	if err != nil {
		logger.Error("cannot list replays", "error", err)
		return
	}

	if len(entries) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Play 'seal play' or run 'seal sim --save' to record one!")
		return
	}

	fmt.Printf("  %-36s  %-6s  %-7s  %-7s  %s\n", "ID", "Score", "Ticks", "Bounces", "Date")
	fmt.Printf("  %-36s  %-6s  %-7s  %-7s  %s\n", "--", "-----", "-----", "-------", "----")
	for _, e := range entries {
		fmt.Printf("  %-36s  %-6d  %-7d  %-7d  %s\n",
			e.ID, e.Log.Score, e.Log.Ticks, len(e.Log.Bounces), e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
