package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/Harshitr03/Code-Reviewer/internal/config"
	"github.com/Harshitr03/Code-Reviewer/internal/tui"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// UsageError marks a bad invocation; main prints usage and exits 2.
type UsageError struct {
	Message string
}

func (e UsageError) Error() string { return e.Message }

// Env holds the process dependencies of the command tree.
type Env struct {
	Stdout     io.Writer
	Stderr     io.Writer
	WorkDir    string
	HTTPClient *http.Client
	StartTUI   func(tui.Options) error
}

type app struct {
	env     Env
	apiURL  string
	verbose bool
	cfg     config.ResolvedConfig
}

// Run executes the command line with the process environment.
func Run(ctx context.Context, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	root := NewRootCommand(Env{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		WorkDir:  wd,
		StartTUI: tui.Start,
	})
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func NewRootCommand(env Env) *cobra.Command {
	if env.Stdout == nil {
		env.Stdout = io.Discard
	}
	if env.Stderr == nil {
		env.Stderr = io.Discard
	}
	a := &app{env: env}

	rootCmd := &cobra.Command{
		Use:           "reviewer",
		Short:         "Upload source files for code review and read the reports",
		Long:          "reviewer uploads a source file to a code review service, waits for the analysis and renders the report.\nWithout a subcommand it starts the interactive client.",
		Args:          noArgs("reviewer"),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}
	rootCmd.SetOut(env.Stdout)
	rootCmd.SetErr(env.Stderr)
	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api-url", "", "Review service base URL (overrides config and "+config.EnvAPIURL+")")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log requests to stderr")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return UsageError{Message: err.Error()}
	})

	rootCmd.AddCommand(a.reviewCmd())
	rootCmd.AddCommand(a.reportCmd())
	rootCmd.AddCommand(a.initCmd())
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

// loadConfig resolves config files, .env and environment, then the
// --api-url flag.
func (a *app) loadConfig() error {
	config.LoadDotEnv(a.env.WorkDir)
	cfg, err := config.LoadConfig(a.env.WorkDir)
	if err != nil {
		return err
	}
	if url := strings.TrimSpace(a.apiURL); url != "" {
		cfg.API.BaseURL = strings.TrimRight(url, "/")
	}
	a.cfg = cfg
	return nil
}

func (a *app) runTUI() error {
	logger, closeLog, err := tuiLogger(a.cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := a.newClient(logger)
	if err != nil {
		return err
	}
	start := a.env.StartTUI
	if start == nil {
		start = tui.Start
	}
	return start(tui.Options{
		Service:       client,
		BaseURL:       client.BaseURL(),
		WorkspaceRoot: a.env.WorkDir,
		AltScreen:     a.cfg.TUI.AltScreen,
	})
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print reviewer version",
		Args:  noArgs("version"),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reviewer version %s\n", version)
		},
	}
}

func noArgs(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 {
			return UsageError{Message: fmt.Sprintf("%s takes no arguments", name)}
		}
		return nil
	}
}

func exactArgs(n int, message string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return UsageError{Message: message}
		}
		return nil
	}
}
