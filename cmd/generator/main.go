// Package main is the entry point for the character generator CLI
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dg-generator/internal/catalog"
	"github.com/KirkDiggler/dg-generator/internal/config"
	"github.com/KirkDiggler/dg-generator/internal/errors"
	"github.com/KirkDiggler/dg-generator/internal/orchestrators/generator"
	"github.com/KirkDiggler/dg-generator/internal/pkg/clock"
	"github.com/KirkDiggler/dg-generator/internal/pkg/idgen"
	"github.com/KirkDiggler/dg-generator/internal/pkg/random"
	"github.com/KirkDiggler/dg-generator/internal/redis"
	characterrepo "github.com/KirkDiggler/dg-generator/internal/repositories/character"
)

var (
	logLevel     string
	dataDir      string
	redisAddr    string
	characterTTL time.Duration

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dg-generator",
	Short: "Generate pre-made investigator characters",
	Long: `dg-generator builds finished character records: attributes, a profession
skill profile, optional veterancy and trauma, and an equipped loadout.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		reportError(os.Stderr, err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

// reportError prints the outermost message, then each wrapped cause
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", errors.GetMessage(err))

	var dgErr *errors.Error
	for errors.As(err, &dgErr) && dgErr.Cause != nil {
		err = dgErr.Cause
		fmt.Fprintf(w, "  caused by: %s\n", errors.GetMessage(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (env DG_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "catalog directory; empty uses the built-in catalog (env DG_DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "", "redis address for persistence (env DG_REDIS_ADDR)")
	rootCmd.PersistentFlags().DurationVar(&characterTTL, "ttl", 0, "expiry for persisted characters (env DG_CHARACTER_TTL)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(professionsCmd)
}

// setup merges environment config with flags and configures logging
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if flags.Changed("data-dir") {
		loaded.DataDir = dataDir
	}
	if flags.Changed("redis-addr") {
		loaded.RedisAddr = redisAddr
	}
	if flags.Changed("ttl") {
		loaded.CharacterTTL = characterTTL
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	})))

	return nil
}

func loadCatalog() (*catalog.Store, error) {
	if cfg.DataDir != "" {
		slog.Debug("Loading catalog", "dir", cfg.DataDir)
		return catalog.LoadDir(cfg.DataDir)
	}
	return catalog.LoadEmbedded()
}

func openRepository(ctx context.Context) (characterrepo.Repository, func(), error) {
	client, err := redis.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}

	if err := client.Ping(ctx).Err(); err != nil {
		closeFn()
		return nil, nil, errors.Unavailablef("redis at %s is unreachable: %v", cfg.RedisAddr, err)
	}

	repo, err := characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return repo, closeFn, nil
}

// serviceOptions controls how the generator is wired for one command
type serviceOptions struct {
	seed    uint64
	persist bool
}

// newService wires the generator. A non-zero seed makes rolls and ids
// reproducible.
func newService(ctx context.Context, opts serviceOptions) (generator.Service, func(), error) {
	store, err := loadCatalog()
	if err != nil {
		return nil, nil, err
	}

	var roller dice.Roller = dice.DefaultRoller
	var ids idgen.Generator = idgen.NewUUID("char")
	if opts.seed != 0 {
		roller = random.NewSeededRoller(opts.seed)
		ids = idgen.NewSequential(fmt.Sprintf("seed%d", opts.seed))
	}

	bus := events.NewBus()
	bus.SubscribeFunc(generator.EventCharacterDamaged, 0, func(_ context.Context, e events.Event) error {
		category, _ := e.Context().Get(generator.EventKeyCategory)
		slog.Debug("Character damaged",
			"character_id", e.Source().GetID(),
			"category", category,
		)
		return nil
	})

	svcCfg := &generator.Config{
		Catalog:     store,
		Roller:      roller,
		IDGenerator: ids,
		Clock:       clock.New(),
		EventBus:    bus,
		TTL:         cfg.CharacterTTL,
	}

	cleanup := func() {}
	if opts.persist {
		if !cfg.Persistent() {
			return nil, nil, errors.FailedPrecondition("persistence needs --redis-addr or DG_REDIS_ADDR")
		}
		repo, closeFn, err := openRepository(ctx)
		if err != nil {
			return nil, nil, err
		}
		svcCfg.Repository = repo
		cleanup = closeFn
	}

	svc, err := generator.New(svcCfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
