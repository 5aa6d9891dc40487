package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/balkashynov/taskflow/internal/clock"
	"github.com/balkashynov/taskflow/internal/config"
	"github.com/balkashynov/taskflow/internal/db"
	"github.com/balkashynov/taskflow/internal/logging"
	"github.com/balkashynov/taskflow/internal/todo"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	v          = viper.New()
	cfg        config.Config
	appClock   clock.Clock = clock.RealClock{}
	openKV                 = defaultOpenKV
	store      *todo.Store
	closeStore func() error
)

var rootCmd = &cobra.Command{
	Use:   "taskflow",
	Short: "A terminal todo list with reminders and achievements",
	Long: `taskflow is a command-line todo list. Organize tasks by category and
priority, get reminded before they are due, keep a daily streak and unlock
achievements along the way, all from the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		shutdown()
	},
}

// initConfig loads configuration and installs the process logger
func initConfig(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	for key, name := range map[string]string{
		"data_dir":  "data-dir",
		"db_path":   "db",
		"ephemeral": "ephemeral",
		"verbose":   "verbose",
		"log_level": "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	c, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = c

	if err := logging.Init(logging.Options{
		Dir:     cfg.LogDir(),
		Level:   cfg.LogLevel,
		Console: cfg.Verbose,
	}); err != nil {
		return fmt.Errorf("failed to init logging: %w", err)
	}
	logging.L().Debugw("config loaded", "db", cfg.DBPath, "ephemeral", cfg.Ephemeral)
	return nil
}

func defaultOpenKV(c config.Config) (db.KV, func() error, error) {
	if c.Ephemeral {
		return db.NewMemoryKV(), func() error { return nil }, nil
	}
	kv, err := db.Open(c.DBPath)
	if err != nil {
		return nil, nil, err
	}
	return kv, kv.Close, nil
}

// openStore opens the task store once per process
func openStore() (*todo.Store, error) {
	if store != nil {
		return store, nil
	}
	kv, closer, err := openKV(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	store = todo.Open(kv,
		todo.WithClock(appClock),
		todo.WithLogger(logging.Component("store")),
	)
	closeStore = closer
	return store, nil
}

// withStore wraps a command function to open the store first
func withStore(fn func(*cobra.Command, []string, *todo.Store) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		return fn(cmd, args, s)
	}
}

func shutdown() {
	if closeStore != nil {
		if err := closeStore(); err != nil {
			logging.L().Warnw("failed to close database", "error", err)
		}
	}
	store, closeStore = nil, nil
	logging.Sync()
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	defer shutdown()
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "taskflow %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for the database, config and logs (default ~/.taskflow)")
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite database (default <data-dir>/taskflow.db)")
	rootCmd.PersistentFlags().Bool("ephemeral", false, "Keep state in memory only")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log to stderr")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(snoozeCmd)
	rootCmd.AddCommand(dismissCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
