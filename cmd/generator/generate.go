package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dg-generator/internal/entities/deltagreen"
	"github.com/KirkDiggler/dg-generator/internal/errors"
	"github.com/KirkDiggler/dg-generator/internal/orchestrators/generator"
)

const (
	formatText = "text"
	formatJSON = "json"
)

var generateFlags struct {
	professions []string
	all         bool
	count       int
	sex         string
	minAge      int
	maxAge      int
	veterancy   bool
	damage      bool
	equip       bool
	label       string
	employer    string
	seed        uint64
	format      string
	persist     bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one or more characters",
	Example: `  dg-generator generate --profession "Federal Agent" --veterancy --equip
  dg-generator generate --all --damage --format json
  dg-generator generate --profession nurse --profession physician --count 3 --persist`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringArrayVarP(&generateFlags.professions, "profession", "p", nil, "profession id or label (repeatable)")
	f.BoolVar(&generateFlags.all, "all", false, "generate every profession in the catalog")
	f.IntVarP(&generateFlags.count, "count", "n", 0, "characters per profession (default: the profession's own count in batches, 1 otherwise)")
	f.StringVar(&generateFlags.sex, "sex", "", "male or female (default: random, alternating in batches)")
	f.IntVar(&generateFlags.minAge, "min-age", deltagreen.DefaultMinAge, "youngest possible age")
	f.IntVar(&generateFlags.maxAge, "max-age", deltagreen.DefaultMaxAge, "oldest possible age")
	f.BoolVar(&generateFlags.veterancy, "veterancy", false, "apply age-based skill improvement and decline")
	f.BoolVar(&generateFlags.damage, "damage", false, "roll for damaged-veteran trauma")
	f.BoolVar(&generateFlags.equip, "equip", false, "resolve the profession's equipment kit")
	f.StringVar(&generateFlags.label, "label", "", "override the profession label on the sheet")
	f.StringVar(&generateFlags.employer, "employer", "", "override the employer on the sheet")
	f.Uint64Var(&generateFlags.seed, "seed", 0, "seed for reproducible output (0 = random)")
	f.StringVarP(&generateFlags.format, "format", "o", formatText, "output format: text or json")
	f.BoolVar(&generateFlags.persist, "persist", false, "store the characters in redis")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	flags := generateFlags

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("format", flags.format, []string{formatText, formatJSON}, vb)
	if !flags.all && len(flags.professions) == 0 {
		vb.Field("profession", "is required unless --all is set")
	}
	if flags.all && len(flags.professions) > 0 {
		vb.Field("profession", "cannot be combined with --all")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	ctx := cmd.Context()
	svc, cleanup, err := newService(ctx, serviceOptions{seed: flags.seed, persist: flags.persist})
	if err != nil {
		return err
	}
	defer cleanup()

	opts := generator.Options{
		MinAge:    flags.minAge,
		MaxAge:    flags.maxAge,
		Veterancy: flags.veterancy,
		Damage:    flags.damage,
		Equip:     flags.equip,
		Label:     flags.label,
		Employer:  flags.employer,
	}
	sex := deltagreen.Sex(flags.sex)

	single := !flags.all && len(flags.professions) == 1 && flags.count <= 1 && !flags.persist
	if single {
		out, err := svc.Generate(ctx, &generator.GenerateInput{
			ProfessionID: flags.professions[0],
			Sex:          sex,
			Options:      opts,
		})
		if err != nil {
			return err
		}
		return writeCharacters(cmd.OutOrStdout(), flags.format, []*deltagreen.Character{out.Character})
	}

	out, err := svc.GenerateBatch(ctx, &generator.GenerateBatchInput{
		ProfessionIDs: flags.professions,
		Count:         flags.count,
		Sex:           sex,
		Options:       opts,
		Persist:       flags.persist,
	})
	if err != nil {
		return err
	}
	if len(out.Characters) == 0 {
		return errors.NotFoundf("no professions matched %v", flags.professions)
	}

	if flags.persist {
		fmt.Fprintf(cmd.ErrOrStderr(), "Stored batch %s (%d characters)\n", out.BatchID, len(out.Characters))
	}
	return writeCharacters(cmd.OutOrStdout(), flags.format, out.Characters)
}

// writeCharacters prints characters as text sheets or as a JSON array of
// flat field records
func writeCharacters(w io.Writer, format string, chars []*deltagreen.Character) error {
	if format == formatJSON {
		records := make([]map[string]string, len(chars))
		for i, c := range chars {
			records[i] = c.Fields()
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return errors.Wrap(err, "failed to encode characters")
		}
		return nil
	}

	for i, c := range chars {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if err := renderSheet(w, c); err != nil {
			return err
		}
	}
	return nil
}
