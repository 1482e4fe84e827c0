package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/errors"
	"github.com/KirkDiggler/dg-generator/internal/orchestrators/generator"
)

var showFlags struct {
	batch  bool
	format string
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a stored character, or a whole batch with --batch",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showFlags.batch, "batch", false, "treat the id as a batch id")
	showCmd.Flags().StringVarP(&showFlags.format, "format", "o", formatText, "output format: text or json")
}

func runShow(cmd *cobra.Command, args []string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("format", showFlags.format, []string{formatText, formatJSON}, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, cleanup, err := newService(ctx, serviceOptions{persist: true})
	if err != nil {
		return err
	}
	defer cleanup()

	if showFlags.batch {
		out, err := svc.ListBatch(ctx, &generator.ListBatchInput{BatchID: args[0]})
		if err != nil {
			return err
		}
		return writeCharacters(cmd.OutOrStdout(), showFlags.format, out.Characters)
	}

	out, err := svc.GetCharacter(ctx, &generator.GetCharacterInput{ID: args[0]})
	if err != nil {
		return err
	}
	return writeCharacters(cmd.OutOrStdout(), showFlags.format, []*deltagreen.Character{out.Character})
}
