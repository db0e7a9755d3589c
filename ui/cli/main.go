// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/toeirei/kvedit/internal/config"
	"github.com/toeirei/kvedit/internal/editor"
	"github.com/toeirei/kvedit/internal/i18n"
	"github.com/toeirei/kvedit/internal/kvdata"
	"github.com/toeirei/kvedit/internal/logging"
	"github.com/toeirei/kvedit/ui/tui"
	"github.com/toeirei/kvedit/ui/tui/models/views/kveditor"
	"golang.org/x/term"
)

const stdinArg = "-"

// replaced in tests
var (
	runEditor  = tui.Run
	isTerminal = func(w io.Writer) bool {
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd()))
	}
)

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates the root command. Tests create fresh instances.
func NewRootCmd() *cobra.Command {
	var write bool
	var output string

	cmd := &cobra.Command{
		Use:   "kvedit [FILE]",
		Short: i18n.T("cli.short"),
		Long: `kvedit opens a list of KEY=VALUE lines (a .env file, for example) in an
interactive editor. FILE may be gzip (.gz) or zstd (.zst) compressed; "-"
reads from stdin, no FILE starts with an empty list.

On submit the edited list is printed to stdout, written back to FILE with
--write, or written to --output. Quitting with ctrl+c leaves everything
untouched. When stdout is not a terminal the entries are printed without
starting the editor.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		Version:       compositeVersion(),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			closeLog, err := logging.Setup(c.LogFile, c.Debug)
			if err != nil {
				return err
			}
			defer func() { _ = closeLog() }()

			i18n.Init(c.Language)

			var path string
			if len(args) > 0 {
				path = args[0]
			}
			if write && (path == "" || path == stdinArg) {
				return errors.New("--write needs a FILE argument")
			}

			entries, name, err := readEntries(cmd, path)
			if err != nil {
				return err
			}
			logging.Infof("loaded %d entries from %s", len(entries), name)

			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				// without the editor there is nothing submitted to write
				if write || output != "" {
					return errors.New("--write and --output need stdout to be a terminal")
				}
				logging.Infof("%s", i18n.T("cli.no_terminal"))
				return emit(out, editor.Export(entries))
			}

			var progOpts []tea.ProgramOption
			if path == stdinArg {
				progOpts = append(progOpts, tea.WithInputTTY())
			}

			state := editor.NewState(entries, c.Suggestions)
			submitted, err := runEditor(state, kveditor.OptionsFromConfig(c.Editor), name, progOpts...)
			if err != nil {
				return fmt.Errorf("editor failed: %w", err)
			}
			if submitted == nil {
				return nil
			}

			result := editor.Export(submitted.Entries())
			switch {
			case write:
				return kvdata.Save(path, result+"\n")
			case output != "":
				return kvdata.Save(output, result+"\n")
			default:
				return emit(out, result)
			}
		},
	}

	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `UI language ("en", "de")`)
	cmd.PersistentFlags().String("log-file", "", "write logs to this file")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.Flags().StringSlice("suggestions", nil, "additional key suggestions")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the submitted entries back to FILE")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the submitted entries to this file")
	cmd.MarkFlagsMutuallyExclusive("write", "output")

	cmd.AddCommand(newConfigCmd(), newVersionCmd())

	return cmd
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return config.Config{}, err
	}
	c, err := config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if err != nil {
		return c, fmt.Errorf("error loading config: %w", err)
	}
	return c, nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// readEntries loads path, stdin for "-", or nothing for an empty path. The
// returned name is shown in the window title.
func readEntries(cmd *cobra.Command, path string) ([]kvdata.Entry, string, error) {
	switch path {
	case "":
		return nil, "", nil
	case stdinArg:
		entries, err := kvdata.Parse(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("stdin: %w", err)
		}
		return entries, "stdin", nil
	default:
		entries, err := kvdata.Load(path)
		return entries, path, err
	}
}

func emit(w io.Writer, export string) error {
	if export == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, export)
	return err
}
