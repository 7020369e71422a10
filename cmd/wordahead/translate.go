package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordahead-backend/internal/adapter/provider/translate"
	"github.com/heartmarshall/wordahead-backend/internal/service/translation"
	"github.com/heartmarshall/wordahead-backend/internal/transport/rest"
)

func newTranslateCmd() *cobra.Command {
	var sentence bool

	cmd := &cobra.Command{
		Use:   "translate <word>",
		Short: "Print the Hebrew translation record of a word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stub, err := translate.NewStub()
			if err != nil {
				return err
			}
			svc := translation.NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), stub)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if sentence {
				result, err := svc.TranslateSentence(cmd.Context(), translation.TranslateSentenceInput{
					Sentence: strings.Join(args, " "),
				})
				if err != nil {
					return err
				}
				return enc.Encode(rest.NewSentenceTranslationResponse(result))
			}

			result, err := svc.TranslateWord(cmd.Context(), translation.TranslateWordInput{Word: args[0]})
			if err != nil {
				return err
			}
			return enc.Encode(rest.NewWordTranslationResponse(result))
		},
	}

	cmd.Flags().BoolVar(&sentence, "sentence", false, "Treat the arguments as one sentence")

	return cmd
}
