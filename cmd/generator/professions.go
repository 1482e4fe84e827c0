package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dg-generator/internal/orchestrators/generator"
)

var professionsCmd = &cobra.Command{
	Use:   "professions",
	Short: "List the professions in the catalog",
	RunE:  runProfessions,
}

func runProfessions(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	svc, cleanup, err := newService(ctx, serviceOptions{})
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.ListProfessions(ctx, &generator.ListProfessionsInput{})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLABEL\tEMPLOYER\tBONDS\tCOUNT\tKIT")
	for _, p := range out.Professions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			p.ID, p.Label, p.Employer, p.Bonds, p.NumberToGenerate, p.EquipmentKit)
	}
	return tw.Flush()
}
