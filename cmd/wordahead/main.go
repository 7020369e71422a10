// Command wordahead runs the WordAhead backend: text importance scoring
// and English to Hebrew translation for the reading frontend.
//
// Without a subcommand it serves HTTP, which is the same as "wordahead serve".
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordahead-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	serve := newServeCmd()

	rootCmd := &cobra.Command{
		Use:   "wordahead",
		Short: "Reading assistant backend: word importance and translation",
		Long: `WordAhead scores how important each word of an English text is,
fading the less important ones, and offers Hebrew translations of words
and sentences.`,
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	rootCmd.AddCommand(
		serve,
		newScoreCmd(),
		newTranslateCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
