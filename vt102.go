// Package vt102 emulates a VT100/VT102 terminal in memory. Bytes written
// to the emulator update a cell grid that callers can inspect at any time;
// nothing is ever rendered and no host connection exists.
package vt102

import (
	"fmt"
	"runtime/debug"

	"github.com/amarao/vt102/logger"
	"github.com/amarao/vt102/terminal/core"
	"github.com/amarao/vt102/terminal/screen"
	"github.com/amarao/vt102/terminal/size"
	"github.com/amarao/vt102/terminal/stream"
)

// Emulator wires a Screen to a Stream parser. The Screen is the grid
// state, the Stream parses the escape-code stream and calls back into
// the Screen.
type Emulator struct {
	screen *screen.Screen
	stream *stream.Stream

	// Non-nil when the emulator was built with WithDecoder: raw input
	// bytes go through the codec chain before the parser sees them.
	decoder *stream.Decoder

	logger logger.Logger
}

type config struct {
	logger logger.Logger
	modes  map[core.Mode]bool
	codecs []stream.Codec
}

type Option func(*config)

// WithLogger routes diagnostics to the given logger instead of
// discarding them.
func WithLogger(log logger.Logger) Option {
	return func(c *config) { c.logger = log }
}

// WithModes overrides the power-on mode defaults. A full reset reverts
// to these values.
func WithModes(modes map[core.Mode]bool) Option {
	return func(c *config) { c.modes = modes }
}

// WithDecoder enables charset detection on input bytes: each chunk is
// tried against the codecs in order and the first that decodes cleanly
// wins. With no codecs listed the default chain is used (strict UTF-8,
// then ISO-8859-1). Without this option input is treated as UTF-8 with
// invalid bytes replaced.
func WithDecoder(codecs ...stream.Codec) Option {
	return func(c *config) {
		if len(codecs) == 0 {
			codecs = stream.DefaultCodecs()
		}
		c.codecs = codecs
	}
}

// New builds an emulator with a cols x rows screen. Dimensions must be
// positive.
func New(cols, rows int, opts ...Option) *Emulator {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger
	if log == nil {
		log = logger.Nop()
	}

	scr := screen.NewScreen(screen.Options{
		Cols:   cols,
		Rows:   rows,
		Modes:  cfg.modes,
		Logger: log,
	})
	e := &Emulator{
		screen: scr,
		stream: stream.NewStream(log, scr),
		logger: log,
	}
	if cfg.codecs != nil {
		e.decoder = stream.NewDecoder(cfg.codecs)
	}
	return e
}

// ProcessOutput feeds a chunk of terminal output to the emulator. This
// is the manual API for callers that read pty data themselves.
//
// A malformed stream must never take the caller down, so any panic in
// the pipeline is recovered and returned as an error; the emulator
// stays usable afterwards.
func (e *Emulator) ProcessOutput(buf []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("panic in ProcessOutput", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic in ProcessOutput: %v", r)
		}
	}()
	if e.decoder != nil {
		text, derr := e.decoder.Decode(buf)
		if derr != nil {
			return derr
		}
		e.stream.NextString(text)
		return nil
	}
	e.stream.NextSlice(buf)
	return nil
}

// ProcessString is ProcessOutput for string input.
func (e *Emulator) ProcessString(s string) error {
	return e.ProcessOutput([]byte(s))
}

// Write implements io.Writer. Errors from the pipeline are reported
// but the chunk always counts as consumed.
func (e *Emulator) Write(p []byte) (n int, err error) {
	return len(p), e.ProcessOutput(p)
}

// Resize changes the screen dimensions, anchoring existing content at
// the top-left. Non-positive dimensions are ignored.
func (e *Emulator) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	e.screen.Resize(size.CellCountInt(cols), size.CellCountInt(rows))
}

// Screen exposes the grid state for inspection.
func (e *Emulator) Screen() *screen.Screen {
	return e.screen
}

// PlainString renders the grid as text, one space-padded line per row.
func (e *Emulator) PlainString() string {
	return e.screen.PlainString()
}

// TrimmedString renders the grid as text with trailing blanks removed
// from each row.
func (e *Emulator) TrimmedString() string {
	return e.screen.TrimmedString()
}

// Display returns a copy of the grid as rows of cells.
func (e *Emulator) Display() [][]screen.Cell {
	return e.screen.Display()
}

// Attach registers an extra listener on the escape-code stream. The
// listener receives the same callbacks as the screen, filtered by
// which handler interfaces it implements.
func (e *Emulator) Attach(listener any) {
	e.stream.Attach(listener)
}

// Detach removes a previously attached listener.
func (e *Emulator) Detach(listener any) {
	e.stream.Detach(listener)
}
