package peg

// Input is the random-access window the interpreter reads from. It
// owns a mutable cursor position into an otherwise immutable source
// and is shared by reference with every atom for the lifetime of one
// Parse call.
//
// Positions and counts throughout this interface are in code points,
// not bytes: a StringInput is rune-indexed, so Read, Pos and Seek all
// agree on the same unit and the line/column reporting in errors.go
// never has to reconcile the two.
type Input interface {
	// Read returns up to n code points starting at the cursor and
	// advances the cursor by the number actually returned. At EOF
	// it returns a short (possibly empty) read rather than erroring.
	Read(n int) string

	// Pos returns the current cursor position.
	Pos() int

	// Seek moves the cursor to an arbitrary position, 0 <= p <= len.
	Seek(p int)

	// Eof reports whether the cursor is at the end of the input.
	Eof() bool

	// SliceTo returns the prefix input[0:p], used for line/column
	// reporting when formatting a cause.
	SliceTo(p int) string

	// Len returns the total number of code points in the input.
	Len() int
}

// StringInput is the core's own Input implementation: an immutable
// []rune buffer with a mutable position.
type StringInput struct {
	runes []rune
	pos   int
}

// NewStringInput wraps s for parsing. Indexing is by code point.
func NewStringInput(s string) *StringInput {
	return &StringInput{runes: []rune(s)}
}

func (in *StringInput) Read(n int) string {
	if n < 0 {
		n = 0
	}
	end := in.pos + n
	if end > len(in.runes) {
		end = len(in.runes)
	}
	out := string(in.runes[in.pos:end])
	in.pos = end
	return out
}

func (in *StringInput) Pos() int { return in.pos }

func (in *StringInput) Seek(p int) {
	if p < 0 {
		p = 0
	}
	if p > len(in.runes) {
		p = len(in.runes)
	}
	in.pos = p
}

func (in *StringInput) Eof() bool { return in.pos >= len(in.runes) }

func (in *StringInput) SliceTo(p int) string {
	if p > len(in.runes) {
		p = len(in.runes)
	}
	return string(in.runes[:p])
}

func (in *StringInput) Len() int { return len(in.runes) }
