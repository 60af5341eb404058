package vt102

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The classic curses program startup: save cursor, switch to the
// alternate screen, designate line drawing on G1, clear, then write the
// banner on the second line.
func TestEmulatorNetHackStartup(t *testing.T) {
	e := New(80, 24)
	err := e.ProcessString("\x1b7\x1b[?47h\x1b)0\x1b[H\x1b[2J\x1b[H\x1b[2;1HNetHack, Copyright 1985-2003")
	require.NoError(t, err)

	lines := strings.Split(e.PlainString(), "\n")
	require.Len(t, lines, 24)
	banner := "NetHack, Copyright 1985-2003"
	assert.Equal(t, banner+strings.Repeat(" ", 80-len(banner)), lines[1])
	for i, line := range lines {
		if i == 1 {
			continue
		}
		assert.Equal(t, strings.Repeat(" ", 80), line, "row %d", i)
	}

	pos := e.Screen().CursorPos()
	assert.Equal(t, len(banner), int(pos.X))
	assert.Equal(t, 1, int(pos.Y))
}

func TestEmulatorWriter(t *testing.T) {
	e := New(20, 3)
	n, err := e.Write([]byte("hello\r\nworld"))
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.Equal(t, "hello\nworld\n", e.TrimmedString())
}

func TestEmulatorResize(t *testing.T) {
	e := New(10, 4)
	require.NoError(t, e.ProcessString("abcdef"))
	e.Resize(4, 2)
	assert.Equal(t, 4, e.Screen().Cols())
	assert.Equal(t, 2, e.Screen().Rows())
	assert.Equal(t, "abcd", strings.Split(e.PlainString(), "\n")[0])

	// Nonsense dimensions are ignored.
	e.Resize(0, -3)
	assert.Equal(t, 4, e.Screen().Cols())
}

// Arbitrary garbage, truncated sequences and stray controls must never
// disturb the grid shape or take the pipeline down.
func TestEmulatorGarbageInput(t *testing.T) {
	e := New(40, 10)
	inputs := []string{
		"\x1b[999;999H\x1b[999Aclamped",
		"\x1b[;;;;;;;;;;;;;;;;;;;;;;;;;;;;;m",
		"\x1b[?99999h\x1b[<>!?junk",
		"\x1bP payload never terminated",
		"\x1b[2;1r\x1b[1;2r\x1b[5;3r",
		string([]byte{0xff, 0xfe, 0x80, 0x1b, '[', 0x18, 'x'}),
		"\x1b",
	}
	for _, in := range inputs {
		require.NoError(t, e.ProcessString(in))
		lines := strings.Split(e.PlainString(), "\n")
		require.Len(t, lines, 10)
		for _, l := range lines {
			require.Len(t, []rune(l), 40)
		}
	}
}

type panicListener struct{}

func (panicListener) Print(rune) { panic("boom") }

func TestEmulatorRecoversListenerPanic(t *testing.T) {
	e := New(10, 2)
	bad := panicListener{}
	e.Attach(bad)

	err := e.ProcessString("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panic in ProcessOutput")

	// The emulator survives and keeps working once the offender is
	// removed.
	e.Detach(bad)
	require.NoError(t, e.ProcessString("ok"))
	assert.Contains(t, e.TrimmedString(), "ok")
}

func TestEmulatorDecoderFallback(t *testing.T) {
	e := New(10, 2, WithDecoder())

	// Latin-1 bytes that are not valid UTF-8 fall through to the
	// second codec.
	require.NoError(t, e.ProcessOutput([]byte{'n', 'a', 0xef, 'v', 'e'}))
	assert.Equal(t, "naïve", strings.Split(e.TrimmedString(), "\n")[0])
}

type bellCounter struct{ n int }

func (b *bellCounter) Bell() { b.n++ }

func TestEmulatorExtraListener(t *testing.T) {
	e := New(10, 2)
	counter := &bellCounter{}
	e.Attach(counter)

	require.NoError(t, e.ProcessString("\x07a\x07"))
	assert.Equal(t, 2, counter.n)
	assert.Equal(t, 2, e.Screen().BellCount())

	e.Detach(counter)
	require.NoError(t, e.ProcessString("\x07"))
	assert.Equal(t, 2, counter.n)
	assert.Equal(t, 3, e.Screen().BellCount())
}
