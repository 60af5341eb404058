package stream

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUndecodable reports that every codec in the chain rejected the
// current input under its error policy. The caller should drop the
// chunk and keep feeding; the condition is never fatal.
var ErrUndecodable = errors.New("stream: no codec could decode input")

// Policy controls how a codec treats bytes it cannot decode.
type Policy uint8

const (
	// PolicyStrict rejects the input on the first undecodable byte.
	PolicyStrict Policy = iota
	// PolicyReplace substitutes U+FFFD for undecodable bytes.
	PolicyReplace
)

// Codec pairs a character encoding with an error policy.
type Codec struct {
	Name     string
	Encoding encoding.Encoding
	Policy   Policy
}

// DefaultCodecs is the power-on decoding chain: strict UTF-8 first,
// then Latin-1, which accepts any byte.
func DefaultCodecs() []Codec {
	return []Codec{
		{Name: "utf-8", Encoding: unicode.UTF8, Policy: PolicyStrict},
		{Name: "iso8859-1", Encoding: charmap.ISO8859_1, Policy: PolicyReplace},
	}
}

// Decoder converts raw bytes to text by trying an ordered codec
// chain. The first codec that decodes the whole buffer under its
// policy wins, and is consulted first on subsequent calls. Multi-byte
// sequences split across chunks are buffered, not treated as
// malformed.
type Decoder struct {
	codecs    []Codec
	preferred int
	pending   []byte
}

// NewDecoder builds a Decoder over the given chain. A nil or empty
// chain gets DefaultCodecs.
func NewDecoder(codecs []Codec) *Decoder {
	if len(codecs) == 0 {
		codecs = DefaultCodecs()
	}
	return &Decoder{codecs: codecs}
}

// Decode converts input to text. On ErrUndecodable the pending buffer
// is dropped so the next chunk is retried independently.
func (d *Decoder) Decode(input []byte) (string, error) {
	buf := input
	if len(d.pending) > 0 {
		buf = make([]byte, 0, len(d.pending)+len(input))
		buf = append(buf, d.pending...)
		buf = append(buf, input...)
		d.pending = nil
	}
	if len(buf) == 0 {
		return "", nil
	}

	// Try the codec that last succeeded first, then the rest of the
	// chain in order.
	order := make([]int, 0, len(d.codecs))
	order = append(order, d.preferred)
	for i := range d.codecs {
		if i != d.preferred {
			order = append(order, i)
		}
	}

	for _, i := range order {
		out, rest, ok := d.tryCodec(d.codecs[i], buf)
		if !ok {
			continue
		}
		d.preferred = i
		d.pending = rest
		return out, nil
	}
	return "", ErrUndecodable
}

// tryCodec decodes buf with one codec. rest holds trailing bytes of
// an incomplete multi-byte sequence to be completed by the next
// chunk.
func (d *Decoder) tryCodec(c Codec, buf []byte) (out string, rest []byte, ok bool) {
	dec := c.Encoding.NewDecoder()

	var sb strings.Builder
	dst := make([]byte, len(buf)*utf8.UTFMax+16)
	src := buf
	for {
		nDst, nSrc, err := dec.Transform(dst, src, false)
		sb.Write(dst[:nDst])
		src = src[nSrc:]

		switch {
		case err == nil:
			out = sb.String()
			if c.Policy == PolicyStrict && strings.ContainsRune(out, utf8.RuneError) {
				return "", nil, false
			}
			if len(src) > 0 {
				rest = append([]byte(nil), src...)
			}
			return out, rest, true

		case errors.Is(err, transform.ErrShortSrc):
			// The buffer ends mid-sequence: stash the tail.
			out = sb.String()
			if c.Policy == PolicyStrict && strings.ContainsRune(out, utf8.RuneError) {
				return "", nil, false
			}
			rest = append([]byte(nil), src...)
			return out, rest, true

		case errors.Is(err, transform.ErrShortDst):
			continue

		default:
			return "", nil, false
		}
	}
}

// Pending returns a copy of the bytes buffered from an incomplete
// multi-byte sequence.
func (d *Decoder) Pending() []byte {
	return append([]byte(nil), d.pending...)
}
