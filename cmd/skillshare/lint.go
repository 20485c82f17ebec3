package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/getskill/skillshare/pkg/lint"
	"github.com/getskill/skillshare/pkg/logger"
	"github.com/getskill/skillshare/pkg/presenter"
)

type LintConfig struct {
	Root   string
	Strict bool
	Format string
	Watch  bool
}

func NewLintConfig() *LintConfig {
	return &LintConfig{
		Root:   "./skills",
		Format: "text",
	}
}

var lintCmd = &cobra.Command{
	Use:   "lint [root]",
	Short: "Lint the skill collection",
	Long: `Lint every skill directory under the collection root against the
collection conventions: SKILL.md and skill.yaml both exist, required
metadata fields are present, ids are unique, versions are semantic,
conventional sections exist, and relative links resolve.

Hard convention violations are errors and fail the run; soft ones are
warnings and fail only with --strict.

Examples:
  skillshare lint
  skillshare lint ./skills --strict
  skillshare lint --format json
  skillshare lint --watch`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getLintConfigFromFlags(cmd, args)

		if config.Watch {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := watchLint(ctx, config); err != nil {
				presenter.Error(err, "Watch failed")
				os.Exit(1)
			}
			return
		}

		result, err := runLint(cmd.Context(), config)
		if err != nil {
			presenter.Error(err, "Lint failed")
			os.Exit(1)
		}
		if result.HasErrors() || (config.Strict && len(result.Findings) > 0) {
			os.Exit(1)
		}
	},
}

func init() {
	defaults := NewLintConfig()
	lintCmd.Flags().Bool("strict", defaults.Strict, "Treat warnings as failures")
	lintCmd.Flags().String("format", defaults.Format, "Output format (text, json)")
	lintCmd.Flags().Bool("watch", defaults.Watch, "Re-lint when files under the root change")
	rootCmd.AddCommand(lintCmd)
}

func getLintConfigFromFlags(cmd *cobra.Command, args []string) *LintConfig {
	config := NewLintConfig()
	if root := viper.GetString("root"); root != "" {
		config.Root = root
	}
	if len(args) > 0 {
		config.Root = args[0]
	}
	if strict, err := cmd.Flags().GetBool("strict"); err == nil {
		config.Strict = strict
	}
	if format, err := cmd.Flags().GetString("format"); err == nil {
		config.Format = format
	}
	if watch, err := cmd.Flags().GetBool("watch"); err == nil {
		config.Watch = watch
	}
	return config
}

// newLinter builds a linter for the root, picking up ignore patterns
// and the allowed tag list from config
func newLinter(root string) *lint.Linter {
	var opts []lint.Option
	if ignore := viper.GetStringSlice("lint.ignore"); len(ignore) > 0 {
		opts = append(opts, lint.WithIgnorePatterns(ignore...))
	}
	if allowed := viper.GetStringSlice("lint.allowed_tags"); len(allowed) > 0 {
		opts = append(opts, lint.WithAllowedTags(allowed...))
	}
	return lint.New(root, opts...)
}

func runLint(ctx context.Context, config *LintConfig) (*lint.Result, error) {
	result, err := newLinter(config.Root).Run(ctx)
	if err != nil {
		return nil, err
	}

	switch config.Format {
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode findings")
		}
		fmt.Println(string(out))
	case "text":
		printFindings(result)
	default:
		return nil, errors.Errorf("unknown format '%s' (expected text or json)", config.Format)
	}

	return result, nil
}

func printFindings(result *lint.Result) {
	for _, f := range result.Findings {
		fmt.Printf("%-8s %-18s %s: %s\n", f.Severity, f.Rule, f.Path, f.Message)
	}

	summary := fmt.Sprintf("checked %d skill directories: %d errors, %d warnings",
		result.Checked, result.ErrorCount(), result.WarningCount())
	if len(result.Findings) == 0 {
		presenter.Success(summary)
	} else {
		presenter.Info(summary)
	}
}

// watchLint re-lints the collection whenever files under the root
// change, until interrupted
func watchLint(ctx context.Context, config *LintConfig) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create watcher")
	}
	defer watcher.Close()

	if err := watcher.Add(config.Root); err != nil {
		return errors.Wrapf(err, "failed to watch %s", config.Root)
	}
	entries, err := os.ReadDir(config.Root)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", config.Root)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			if err := watcher.Add(filepath.Join(config.Root, entry.Name())); err != nil {
				logger.G(ctx).WithError(err).Warn("Failed to watch skill directory")
			}
		}
	}

	if _, err := runLint(ctx, config); err != nil {
		return err
	}
	presenter.Info(fmt.Sprintf("Watching %s for changes...", config.Root))

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New skill directories need their own watch
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			debounce = time.After(200 * time.Millisecond)
		case <-debounce:
			debounce = nil
			if _, err := runLint(ctx, config); err != nil {
				presenter.Error(err, "Lint failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.G(ctx).WithError(err).Warn("Watcher error")
		}
	}
}
