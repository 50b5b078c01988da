package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmrzaf/uerr"
	"github.com/mmrzaf/uerr/internal/app"
	"github.com/mmrzaf/uerr/internal/checkup"
	"github.com/mmrzaf/uerr/internal/config"
	"github.com/mmrzaf/uerr/internal/gitinfo"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		cfgPath string
		verbose bool
	)
	exitCode := app.ExitOK

	var (
		reasons   []string
		tips      []string
		prefix    string
		blockCode int
	)

	rootCmd := &cobra.Command{
		Use:           "uerr <message>",
		Short:         "uerr renders structured, human-readable error blocks for shell scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		Example: strings.TrimSpace(`
# Render a block on stderr and exit 1
uerr "could not open file" --reason "No such file or directory" --tip "Does this file exist?"

# Prefix and exit code
uerr "deploy failed" --prefix "deploy: " --code 3

# Verify files a script depends on
uerr check "conf/**/*.yaml" "bin/migrate"
`),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfgPath = config.FindConfigPath(cfgPath)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return app.Wrap(app.ExitUsage, err)
			}
			block, pfx := buildBlock(cfg, args[0], reasons, tips, cmd.Flags().Changed("prefix"), prefix)
			block.PrintAll(pfx)

			exitCode = cfg.Code
			if cmd.Flags().Changed("code") {
				exitCode = blockCode
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to .uerr.yaml (or set UERR_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose output")

	rootCmd.Flags().StringArrayVar(&reasons, "reason", nil, "Causal-chain entry (repeatable, in order)")
	rootCmd.Flags().StringArrayVar(&tips, "tip", nil, "Remediation tip (repeatable, in order)")
	rootCmd.Flags().StringVar(&prefix, "prefix", "", "Prefix for the first line (overrides config; no separator is added)")
	rootCmd.Flags().IntVar(&blockCode, "code", 0, "Exit code (overrides config)")

	rootCmd.AddCommand(newCheckCmd(&cfgPath, &verbose, &exitCode))
	rootCmd.AddCommand(newDoctorCmd(&cfgPath))
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		uerr.Chain(err).
			WithHelp("run 'uerr --help' for usage").
			PrintAll("uerr: ")
		return app.CodeFor(err)
	}
	return exitCode
}

// buildBlock assembles the rendered value from config and flags. Flag
// reasons/tips keep their command-line order; standing tips from config come
// after flag tips. The --prefix flag wins over config even when empty.
func buildBlock(cfg config.Config, msg string, reasons, tips []string, prefixSet bool, prefix string) (*uerr.UserError, string) {
	e := uerr.New(msg)
	for _, r := range reasons {
		e.AddReason(r)
	}
	for _, h := range tips {
		e.AddHelp(h)
	}
	for _, h := range cfg.Help {
		e.AddHelp(h)
	}

	pfx := cfg.Prefix
	if prefixSet {
		pfx = prefix
	}
	return e, pfx
}

func loggerFn(verbose bool) *slog.Logger {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func newCheckCmd(cfgPath *string, verbose *bool, exitCode *int) *cobra.Command {
	var rootOverride string
	cmd := &cobra.Command{
		Use:   "check [patterns...]",
		Short: "Verify that required files exist and are readable",
		Long: strings.TrimSpace(`
Verify that required files exist and are readable.

Patterns are doublestar globs resolved against the check root. With no
arguments, check.require from the config is used. Files matched by
.gitignore or check.ignore are skipped. On failure a block is rendered on
stderr and the exit code is the first unreadable file's OS error code when
one is available.
`),
		Example: strings.TrimSpace(`
uerr check "conf/**/*.yaml"
uerr check "bin/migrate" "*.env.example"
uerr check
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return app.Wrap(app.ExitUsage, err)
			}
			root, err := config.EffectiveRoot(cfg, rootOverride)
			if err != nil {
				return app.Wrap(app.ExitUsage, err)
			}

			patterns := args
			if len(patterns) == 0 {
				patterns = cfg.Check.Require
			}
			if len(patterns) == 0 {
				return app.Wrap(app.ExitUsage, errors.New("no patterns: pass arguments or set check.require"))
			}

			logger := loggerFn(*verbose)
			checker, err := checkup.New(root, !cfg.Check.NoGitignore, cfg.Check.Ignore, logger)
			if err != nil {
				return app.Wrap(app.ExitIO, err)
			}
			rep, err := checker.Check(patterns)
			if err != nil {
				return app.Wrap(app.ExitUsage, err)
			}
			if rep.OK() {
				logger.Debug("check passed", "patterns", len(rep.Required), "files", rep.Matched)
				return nil
			}

			block := rep.Err()
			for _, h := range cfg.Help {
				block.AddHelp(h)
			}
			if len(cfg.Help) == 0 {
				block.AddHelp("run 'uerr doctor' to inspect the check environment")
			}
			block.PrintAll(cfg.Prefix)

			if code, ok := rep.OSCode(); ok {
				*exitCode = code
			} else {
				*exitCode = app.ExitFailure
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rootOverride, "root", "", "Check root override")
	return cmd
}

func newDoctorCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:     "doctor",
		Short:   "Print effective config + environment diagnostics",
		Example: "uerr doctor\n",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return app.Wrap(app.ExitUsage, err)
			}
			root, err := config.EffectiveRoot(cfg, "")
			if err != nil {
				return app.Wrap(app.ExitUsage, err)
			}
			info, gitErr := gitinfo.Head(root)

			out := doctorReport(*cfgPath, cfg, root, info, gitErr)
			if _, err := fmt.Fprint(os.Stdout, out); err != nil {
				return app.Wrap(app.ExitIO, fmt.Errorf("write stdout: %w", err))
			}
			return nil
		},
	}
}

func doctorReport(cfgPath string, cfg config.Config, root string, info gitinfo.Info, gitErr error) string {
	gitAvail := gitErr == nil
	sha, branch := info.SHA, info.Branch
	if !gitAvail {
		sha, branch = "(unavailable)", "(unavailable)"
	}

	var b strings.Builder
	w := func(s string, a ...any) { fmt.Fprintf(&b, s+"\n", a...) }

	w("uerr doctor")
	w("")
	w("config_path: %s", cfgPath)
	w("prefix: %q", cfg.Prefix)
	w("default_code: %d", cfg.Code)
	w("check_root: %s", root)
	w("check: use_gitignore=%t require=%d ignore=%d", !cfg.Check.NoGitignore, len(cfg.Check.Require), len(cfg.Check.Ignore))
	w("git: available=%t sha=%s branch=%s", gitAvail, sha, branch)
	w("exit_status: POSIX shells report negative codes truncated to a byte (-1 => 255)")
	return b.String()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   "Print version",
		Example: "uerr version\n",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := fmt.Fprintln(os.Stdout, app.Version); err != nil {
				return app.Wrap(app.ExitIO, fmt.Errorf("write stdout: %w", err))
			}
			return nil
		},
	}
}
