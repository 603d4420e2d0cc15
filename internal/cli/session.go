// Package cli implements the interactive explorer session: a dispatcher
// table mapping command names to handlers, and the read-eval loop that owns
// it. The dataset and every collaborator are passed in explicitly so the
// loop is testable without process-level setup.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/ship-data-explorer/internal/domain"
	"github.com/couchcryptid/ship-data-explorer/internal/observability"
)

const (
	prompt       = "> "
	searchPrompt = "Type the name of the ship you are looking for: "

	defaultHistogramFile = "ship_speed_histogram.png"
	defaultMapFile       = "ship_map.png"

	splash  = "Welcome to the Ships CLI! Enter 'help' to view available commands."
	goodbye = "Exiting CLI."
)

// errExit signals a clean, user-requested end of the session.
var errExit = errors.New("exit requested")

// LineReader abstracts the interactive input source. Production sessions use
// chzyer/readline; tests use a scripted fake.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// HistogramRenderer writes a distribution plot of the values to path.
type HistogramRenderer interface {
	Render(values []float64, path string) error
}

// MapRenderer writes a position scatter plot to path.
type MapRenderer interface {
	Render(positions []domain.Geo, path string) error
}

// Session is one interactive explorer run over an immutable fleet.
type Session struct {
	// Out receives command results; Err receives error messages. Both
	// default to the process streams and are overridable for tests.
	Out io.Writer
	Err io.Writer

	fleet     domain.Fleet
	histogram HistogramRenderer
	worldMap  MapRenderer
	logger    *slog.Logger
	metrics   *observability.Metrics
	clock     clockwork.Clock

	commands map[string]command
	reader   LineReader  // set for the duration of Run
	ready    atomic.Bool // true while the read-eval loop is running
}

// command couples a handler with the usage line help prints for it. rest is
// the raw remainder of the input line; each handler parses it itself.
type command struct {
	usage    string
	describe string
	run      func(s *Session, rest string) error
}

// NewSession wires a session over the given fleet. The dispatcher table is
// built once here and never mutated afterwards.
func NewSession(
	fleet domain.Fleet,
	histogram HistogramRenderer,
	worldMap MapRenderer,
	logger *slog.Logger,
	metrics *observability.Metrics,
	clock clockwork.Clock,
) *Session {
	s := &Session{
		Out:       os.Stdout,
		Err:       os.Stderr,
		fleet:     fleet,
		histogram: histogram,
		worldMap:  worldMap,
		logger:    logger,
		metrics:   metrics,
		clock:     clock,
	}
	s.commands = commandTable()
	return s
}

// CommandNames returns the registered command names, sorted. help derives
// its output from the same table, so the two cannot drift apart.
func (s *Session) CommandNames() []string {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckReadiness returns nil once the session loop is running over the loaded
// dataset, or an error describing why the explorer is not yet ready.
func (s *Session) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("session has not started yet")
	}
	return nil
}

// Run executes the read-eval loop until the user exits, input ends, or the
// context is cancelled. Cancellation is observed between reads, so a signal
// arriving while Readline blocks takes effect on the next line of input.
// Per-command failures are reported and the loop continues; nothing a
// handler does terminates the session.
func (s *Session) Run(ctx context.Context, reader LineReader) error {
	s.reader = reader
	defer func() { s.reader = nil }()

	s.metrics.SessionActive.Set(1)
	s.ready.Store(true)
	defer func() {
		s.ready.Store(false)
		s.metrics.SessionActive.Set(0)
	}()

	fmt.Fprintln(s.Out, splash)
	s.logger.Info("session started", "records", len(s.fleet))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session stopping", "reason", ctx.Err())
			return nil
		default:
		}

		reader.SetPrompt(prompt)
		line, err := reader.Readline()
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, readline.ErrInterrupt):
			fmt.Fprintln(s.Out, goodbye)
			return nil
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}

		if err := s.Dispatch(line); errors.Is(err, errExit) {
			return nil
		}
	}
}

// Dispatch resolves and executes one input line. The returned error is
// errExit when the line requested session termination; every other failure
// has already been reported to the user and is returned only for callers
// that want to inspect it.
func (s *Session) Dispatch(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	name, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		name, rest = line[:i], strings.TrimSpace(line[i:])
	}

	cmd, ok := s.commands[name]
	if !ok {
		s.metrics.UnknownCommands.Inc()
		fmt.Fprintf(s.Out, "Unknown command %q. Type 'help' to see available commands.\n", name)
		return nil
	}

	start := s.clock.Now()
	err := s.runCommand(cmd, rest)
	s.metrics.CommandDuration.WithLabelValues(name).Observe(s.clock.Since(start).Seconds())

	outcome := "success"
	if err != nil && !errors.Is(err, errExit) {
		outcome = "error"
		fmt.Fprintf(s.Err, "Error: %v\n", err)
		s.logger.Warn("command failed", "command", name, "error", err)
	}
	s.metrics.CommandsTotal.WithLabelValues(name, outcome).Inc()

	return err
}

// runCommand invokes the handler, converting a panic into an ordinary error
// so a misbehaving handler cannot take down the session.
func (s *Session) runCommand(cmd command, rest string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	return cmd.run(s, rest)
}

// promptLine asks the user a follow-up question mid-command.
func (s *Session) promptLine(question string) (string, error) {
	s.reader.SetPrompt(question)
	line, err := s.reader.Readline()
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// NewReadline builds the production LineReader with optional persistent
// history. historyFile may be empty to disable persistence.
func NewReadline(historyFile string) (LineReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       prompt,
		HistoryFile:  historyFile,
		HistoryLimit: 1000,
	})
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}
	return rl, nil
}
