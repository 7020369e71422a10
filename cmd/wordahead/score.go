package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordahead-backend/internal/app"
	"github.com/heartmarshall/wordahead-backend/internal/config"
	"github.com/heartmarshall/wordahead-backend/internal/service/scoring"
	"github.com/heartmarshall/wordahead-backend/internal/transport/rest"
)

func newScoreCmd() *cobra.Command {
	var outputFmt string

	cmd := &cobra.Command{
		Use:   "score [text]",
		Short: "Score the words of a text",
		Long: `Scores text given as arguments, or read from stdin when no argument is
given, with the same scorer the server would select.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				raw, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(raw)
			}
			return runScore(cmd.Context(), cmd.OutOrStdout(), text, outputFmt)
		},
	}

	cmd.Flags().StringVar(&outputFmt, "output", "json", "Output format: json or text")

	return cmd
}

func runScore(ctx context.Context, w io.Writer, text, outputFmt string) error {
	if outputFmt != "json" && outputFmt != "text" {
		return fmt.Errorf("unknown output format %q", outputFmt)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := app.NewLogger(cfg.Log, cfg.Server.Debug)

	components, err := app.Build(ctx, cfg, logger)
	if err != nil {
		return err
	}

	result, err := components.Scoring.ProcessText(ctx, scoring.ProcessTextInput{Text: &text})
	if err != nil {
		return err
	}
	resp := rest.NewProcessTextResponse(result)

	if outputFmt == "text" {
		if resp.Warning != nil {
			fmt.Fprintf(w, "warning: %s\n", *resp.Warning)
		}
		for _, ws := range resp.Words {
			fmt.Fprintf(w, "%-24s %d  %.2f\n", ws.Word, ws.Importance, ws.Opacity)
		}
		return nil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
