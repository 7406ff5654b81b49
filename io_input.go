package peg

import "io"

// NewReaderInput adapts any io.Reader into an Input by reading it to
// completion up front and delegating to a StringInput. Streaming,
// suspendable input isn't supported; this is the narrow adapter
// callers need to feed a stream-like source into a Grammar.
func NewReaderInput(r io.Reader) (*StringInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewStringInput(string(data)), nil
}
