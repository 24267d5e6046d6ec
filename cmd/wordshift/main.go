// Package main implements the CLI driver for the wordshift cipher engine.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/715d/wordshift/internal/batch"
	"github.com/715d/wordshift/pkg/cipher"
	"github.com/715d/wordshift/pkg/message"
)

// Config holds all command-line configuration options.
type Config struct {
	Verbose bool // enables slog output to stderr
	JSON    bool // enables JSON output format
	Profile bool // enables CPU and memory profiling
}

const (
	exitJobsFailed = 1
	exitError      = 2
)

var (
	// Set via ldflags during build.
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

var cfg Config

func main() {
	var rootCmd = &cobra.Command{
		Use:   "wordshift",
		Short: "Encode and decode messages with a word-length shift cipher",
		Long: `wordshift applies a circular alphabetic shift to every word of a
message, with each word shifted by its own length. Separators pass
through unchanged, so encoding and decoding are exact inverses on
messages produced by wordshift itself.

The guess command estimates an unknown single shift from letter
frequencies (assuming 'E' is the most frequent letter of the source
language); it is an analysis tool and is never applied implicitly.`,
		Example: `  wordshift encode "Hello World!"      # prints "Mjqqt Btwqi!"
  wordshift decode "Mjqqt Btwqi!"      # prints "Hello World!"
  wordshift guess < cipher.txt         # frequency-based shift estimate
  wordshift batch suites/night.yaml    # run a yaml job suite`,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Version:            version,
	}

	// Set custom version template to include build info.
	rootCmd.SetVersionTemplate(fmt.Sprintf("wordshift version %s\n  commit: %s\n  built:  %s\n", version, gitCommit, buildTime))

	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&cfg.JSON, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&cfg.Profile, "profile", false, "Enable CPU and memory profiling (writes cpu.prof and mem.prof to current directory)")

	rootCmd.AddCommand(encodeCmd(), decodeCmd(), guessCmd(), batchCmd())

	if err := rootCmd.Execute(); err != nil {
		_ = teardown(nil, nil)
		if err.Error() != "" {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		var cErr *codedError
		if errors.As(err, &cErr) {
			os.Exit(cErr.code)
		}
		os.Exit(exitError)
	}
}

func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [text]",
		Short: "Encode clear text word by word",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(args)
			if err != nil {
				return errWithCode(err, exitError)
			}
			t := message.NewTransformer()
			t.SetClearText(text)
			slog.Info("encoded message", "len", len(text))
			return writeMessage(t, t.CipherText())
		},
	}
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [text]",
		Short: "Decode cipher text word by word",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(args)
			if err != nil {
				return errWithCode(err, exitError)
			}
			t := message.NewTransformer()
			t.SetCipherText(text)
			slog.Info("decoded message", "len", len(text))
			return writeMessage(t, t.ClearText())
		},
	}
}

func guessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess [text]",
		Short: "Estimate a shift from letter frequencies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(args)
			if err != nil {
				return errWithCode(err, exitError)
			}
			shift := cipher.GuessShift(text)
			if cfg.JSON {
				return writeJSON(jGuess{Shift: shift, Version: version, Timestamp: timestamp()})
			}
			fmt.Println(shift)
			return nil
		},
	}
}

func batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <suite.yaml>",
		Short: "Run a yaml suite of encode/decode/guess jobs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := batch.LoadSuite(args[0])
			if err != nil {
				return errWithCode(fmt.Errorf("load suite: %w", err), exitError)
			}
			slog.Info("running suite", "suite", args[0], "jobs", len(suite.Jobs))

			runner := batch.NewRunner(filepath.Dir(args[0]))
			report := runner.Run(cmd.Context(), suite)

			if err := writeReport(report); err != nil {
				return errWithCode(fmt.Errorf("format results: %w", err), exitError)
			}
			if report.Failed > 0 {
				return errWithCode(nil, exitJobsFailed)
			}
			return nil
		},
	}
}

// inputText takes the message from the single positional argument, or
// from stdin when no argument is given.
func inputText(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// writeMessage reports a transformed message pair; out is the side the
// command computed, printed alone in text mode.
func writeMessage(t *message.Transformer, out string) error {
	if cfg.JSON {
		return writeJSON(jMessage{
			Clear:     t.ClearText(),
			Cipher:    t.CipherText(),
			Version:   version,
			Timestamp: timestamp(),
		})
	}
	fmt.Println(out)
	return nil
}

func writeReport(report *batch.Report) error {
	if cfg.JSON {
		return writeJSON(jReport{Report: report, Version: version, Timestamp: timestamp()})
	}

	var output strings.Builder
	for _, res := range report.Results {
		switch {
		case res.Err != "":
			output.WriteString(fmt.Sprintf("%s: error: %s\n", res.Name, res.Err))
		case res.Op == batch.OpGuess:
			output.WriteString(fmt.Sprintf("%s: shift=%d\n", res.Name, res.Shift))
		default:
			output.WriteString(fmt.Sprintf("%s: %s\n", res.Name, res.Output))
		}
	}
	if report.Failed > 0 {
		output.WriteString(fmt.Sprintf("%d of %d jobs failed\n", report.Failed, len(report.Results)))
	}
	fmt.Print(output.String())
	return nil
}

func writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling json output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

type jMessage struct {
	Clear     string `json:"clear"`
	Cipher    string `json:"cipher"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type jGuess struct {
	Shift     int    `json:"shift"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type jReport struct {
	*batch.Report
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

var cpuProfile *os.File

func setup(_ *cobra.Command, _ []string) error {
	// Disable logger unless verbose flag is set.
	slog.SetDefault(slog.New(slog.DiscardHandler))
	if cfg.Verbose {
		opts := &slog.HandlerOptions{Level: slog.LevelDebug}
		var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
		if cfg.JSON {
			handler = slog.NewJSONHandler(os.Stderr, opts)
		}
		logger := slog.New(handler)
		slog.SetDefault(logger)
	}

	if !cfg.Profile {
		return nil
	}

	// Start CPU profiling.
	var err error
	cpuProfile, err = os.Create("cpu.prof")
	if err != nil {
		return fmt.Errorf("creating cpu.prof: %w", err)
	}
	if err := pprof.StartCPUProfile(cpuProfile); err != nil {
		_ = cpuProfile.Close()
		return fmt.Errorf("starting CPU profile: %w", err)
	}
	slog.Info("cpu profiling started", "file", "cpu.prof")
	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	if !cfg.Profile || cpuProfile == nil {
		return nil
	}

	// Stop CPU profiling and close file.
	pprof.StopCPUProfile()
	defer cpuProfile.Close()
	slog.Info("cpu profiling stopped", "file", "cpu.prof")

	// Write memory profile.
	memFile, err := os.Create("mem.prof")
	if err != nil {
		return fmt.Errorf("creating mem.prof: %w", err)
	}
	defer memFile.Close()
	runtime.GC() // Get up-to-date statistics
	if err := pprof.WriteHeapProfile(memFile); err != nil {
		return fmt.Errorf("writing memory profile: %w", err)
	}
	slog.Info("memory profiling completed", "file", "mem.prof")
	return nil
}

func errWithCode(err error, code int) error {
	return &codedError{err: err, code: code}
}

type codedError struct {
	err  error
	code int
}

func (e codedError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return ""
}
