package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sghaida/creational/internal/config"
	"github.com/sghaida/creational/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	return runApp(newApp(stdout, stderr), args)
}

func runApp(a *app, args []string) int {
	root := newRootCmd(a)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(a.stderr, "creational:", err)
		return 1
	}
	return 0
}

// app carries state shared by the subcommands of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string

	// envFile and getenv feed config.Loader; zero values mean ./.env and os.Getenv.
	envFile string
	getenv  func(string) string

	cfg config.Config
	log *zap.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr, log: zap.NewNop()}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "creational",
		Short:         "Run creational design pattern walkthroughs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newListCmd(a), newRunCmd(a))
	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup() error {
	loader := &config.Loader{File: a.configPath, EnvFile: a.envFile, Getenv: a.getenv}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = strings.ToLower(a.logLevel)
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}

	log, err := logging.New(cfg.LogLevel, a.stderr)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log.With(zap.String("run_id", uuid.NewString()))
	a.log.Debug("config loaded", zap.String("log_level", cfg.LogLevel), zap.Strings("demos", cfg.Demos))
	return nil
}
