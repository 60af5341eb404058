package ansi

type c0 struct {
	NUL uint8 // NUL is the null character (Caret: ^@, Char: \0).
	ENQ uint8 // ENQ is the enquiry character (Caret: ^E).
	BEL uint8 // BEL is the bell character (Caret: ^G, Char: \a).
	BS  uint8 // BS is the backspace character (Caret: ^H, Char: \b).
	HT  uint8 // HT is the horizontal tab character (Caret: ^I, Char: \t).
	LF  uint8 // LF is the line feed character (Caret: ^J, Char: \n).
	VT  uint8 // VT is the vertical tab character (Caret: ^K, Char: \v).
	FF  uint8 // FF is the form feed character (Caret: ^L, Char: \f).
	CR  uint8 // CR is the carriage return character (Caret: ^M, Char: \r).
	SO  uint8 // SO is the shift out character (Caret: ^N). Selects G1.
	SI  uint8 // SI is the shift in character (Caret: ^O). Selects G0.
	CAN uint8 // CAN cancels a control sequence in progress (Caret: ^X).
	SUB uint8 // SUB cancels a control sequence in progress (Caret: ^Z).
	ESC uint8 // ESC is the escape character (Caret: ^[).
	DEL uint8 // DEL is ignored on input (Caret: ^?).
}

// C0 holds the 7-bit control characters the emulator recognizes, per
// chapter 3 of the VT100 user guide:
// https://vt100.net/docs/vt100-ug/chapter3.html#S3.2
var C0 = c0{
	NUL: 0x00,
	ENQ: 0x05,
	BEL: 0x07,
	BS:  0x08,
	HT:  0x09,
	LF:  0x0A,
	VT:  0x0B,
	FF:  0x0C,
	CR:  0x0D,
	SO:  0x0E,
	SI:  0x0F,
	CAN: 0x18,
	SUB: 0x1A,
	ESC: 0x1B,
	DEL: 0x7F,
}

var names = map[uint8]string{
	C0.NUL: "NUL",
	C0.ENQ: "ENQ",
	C0.BEL: "BEL",
	C0.BS:  "BS",
	C0.HT:  "HT",
	C0.LF:  "LF",
	C0.VT:  "VT",
	C0.FF:  "FF",
	C0.CR:  "CR",
	C0.SO:  "SO",
	C0.SI:  "SI",
	C0.CAN: "CAN",
	C0.SUB: "SUB",
	C0.ESC: "ESC",
	C0.DEL: "DEL",
}

// String returns a diagnostic name for a control byte, or the byte
// itself for printable characters.
func String(c uint8) string {
	if name, ok := names[c]; ok {
		return name
	}
	if c >= 0x20 && c < 0x7F {
		return string(rune(c))
	}
	return "0x" + string(hexDigits[c>>4]) + string(hexDigits[c&0xF])
}

const hexDigits = "0123456789abcdef"
