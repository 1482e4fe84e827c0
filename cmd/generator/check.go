package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dg-generator/internal/errors"
	"github.com/KirkDiggler/dg-generator/internal/redis"
	characterrepo "github.com/KirkDiggler/dg-generator/internal/repositories/character"
)

var checkFlags struct {
	yes bool
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Scan stored characters for records that no longer decode",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkFlags.yes, "yes", "y", false, "delete corrupted records without asking")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	if !cfg.Persistent() {
		return errors.FailedPrecondition("check needs --redis-addr or DG_REDIS_ADDR")
	}

	ctx := cmd.Context()
	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	out, err := characterrepo.Audit(ctx, client)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Checked %d characters, found %d corrupted\n", out.Checked, len(out.Corrupted))
	if len(out.Corrupted) == 0 {
		return nil
	}
	for _, key := range out.Corrupted {
		fmt.Fprintf(w, "  - %s\n", key)
	}

	if !checkFlags.yes {
		fmt.Fprint(w, "Delete these records? (yes/no): ")
		answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Fprintln(w, "Aborted, no changes made")
			return nil
		}
	}

	n, err := characterrepo.Purge(ctx, client, out.Corrupted)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted %d records\n", n)
	return nil
}
