package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/skauts-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/skauts-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/skauts-stats/internal/platform/logging"
)

const seedTimeout = 30 * time.Second

var migrationDirCandidates = []string{"./db/migrations", "/app/db/migrations"}

// command runs against the console replica. needsMigrator is false for
// commands that talk to the database directly.
type command struct {
	usage         string
	needsMigrator bool
	run           func(ctx context.Context, env runEnv, args []string) error
}

type runEnv struct {
	dbURL    string
	migrator *migrate.Migrate
	logger   *logging.Logger
}

var commands = map[string]command{
	"up":      {usage: "up", needsMigrator: true, run: runUp},
	"down":    {usage: "down [steps]", needsMigrator: true, run: runDown},
	"version": {usage: "version", needsMigrator: true, run: runVersion},
	"force":   {usage: "force <version>", needsMigrator: true, run: runForce},
	"goto":    {usage: "goto <version>", needsMigrator: true, run: runGoto},
	"seed":    {usage: "seed", run: runSeed},
}

func main() {
	logger := logging.NewJSON(logging.LevelInfo).Named("migration")
	defer func() { _ = logger.Sync() }()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}
	name := strings.ToLower(strings.TrimSpace(os.Args[1]))
	if name == "migrate" {
		name = "goto"
	}
	cmd, ok := commands[name]
	if !ok {
		printUsage()
		os.Exit(2)
	}

	if err := execute(name, cmd, os.Args[2:], logger); err != nil {
		logger.Error("migration command failed", "command", name, "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func execute(name string, cmd command, args []string, logger *logging.Logger) error {
	rawDBURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if rawDBURL == "" {
		return errors.New("DB_URL is required")
	}
	disableBinary, err := envBool("DB_DISABLE_PREPARED_BINARY_RESULT")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env := runEnv{dbURL: postgres.NormalizeDSN(rawDBURL, disableBinary), logger: logger.With("command", name)}
	if cmd.needsMigrator {
		dir, err := resolveMigrationsDir()
		if err != nil {
			return err
		}
		sourceURL := "file://" + filepath.ToSlash(dir)
		m, err := migrate.New(sourceURL, env.dbURL)
		if err != nil {
			return fmt.Errorf("create migrator: %w", err)
		}
		defer closeMigrator(m, env.logger)
		env.migrator = m
		env.logger = env.logger.With("source", sourceURL)
	}

	return cmd.run(ctx, env, args)
}

func runUp(_ context.Context, env runEnv, _ []string) error {
	return applied(env, "replica schema up to date", env.migrator.Up())
}

func runDown(_ context.Context, env runEnv, args []string) error {
	steps := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil || n <= 0 {
			return fmt.Errorf("down steps must be a positive integer, got %q", args[0])
		}
		steps = n
	}
	return applied(env.withFields("steps", steps), "replica schema rolled back", env.migrator.Steps(-steps))
}

func runVersion(_ context.Context, env runEnv, _ []string) error {
	version, dirty, err := env.migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Println("version: none")
		fmt.Println("dirty: false")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read version: %w", err)
	}
	fmt.Printf("version: %d\n", version)
	fmt.Printf("dirty: %t\n", dirty)
	return nil
}

func runForce(_ context.Context, env runEnv, args []string) error {
	if len(args) == 0 {
		return errors.New("force requires a version argument")
	}
	version, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil || version < 0 {
		return fmt.Errorf("force version must be a non-negative integer, got %q", args[0])
	}
	if err := env.migrator.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	env.logger.Info("forced version", "version", version)
	return nil
}

func runGoto(_ context.Context, env runEnv, args []string) error {
	if len(args) == 0 {
		return errors.New("goto requires a target version argument")
	}
	target, err := strconv.ParseUint(strings.TrimSpace(args[0]), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid target version %q: %w", args[0], err)
	}
	return applied(env.withFields("version", target), "replica schema migrated", env.migrator.Migrate(uint(target)))
}

// runSeed loads the bundled demo organizations into an empty replica.
func runSeed(ctx context.Context, env runEnv, _ []string) error {
	ctx, cancel := context.WithTimeout(ctx, seedTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", env.dbURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer db.Close()

	if err := postgres.BootstrapSeed(ctx, db, memory.SeedDataset()); err != nil {
		return err
	}
	env.logger.Info("console replica seeded")
	return nil
}

func (e runEnv) withFields(args ...any) runEnv {
	e.logger = e.logger.With(args...)
	return e
}

func applied(env runEnv, msg string, err error) error {
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		env.logger.Info("no migration changes")
		return nil
	case err != nil:
		return err
	}
	env.logger.Info(msg)
	return nil
}

func closeMigrator(m *migrate.Migrate, logger *logging.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db", "error", dbErr)
	}
}

func resolveMigrationsDir() (string, error) {
	candidates := append([]string{
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		strings.TrimSpace(os.Getenv("MIGRATIONS_PATH")),
	}, migrationDirCandidates...)

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			return abs, nil
		}
	}
	return "", fmt.Errorf("migration directory not found (checked MIGRATIONS_DIR, MIGRATIONS_PATH, %s)", strings.Join(migrationDirCandidates, ", "))
}

func envBool(key string) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func printUsage() {
	bin := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <command> [args]\ncommands:\n", bin)
	for _, name := range []string{"up", "down", "version", "force", "goto", "seed"} {
		fmt.Fprintf(os.Stderr, "  %s %s\n", bin, commands[name].usage)
	}
}
