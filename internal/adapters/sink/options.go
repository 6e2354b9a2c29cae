package sink

// Option applies a configuration option to the JSONWriter.
type Option func(*JSONWriter)

// WithIndent sets the number of spaces used per nesting level.
func WithIndent(spaces int) Option {
	return func(w *JSONWriter) {
		if spaces > 0 {
			w.indent = spaces
		}
	}
}

// WithFileMode sets the permission bits of the written file.
func WithFileMode(mode uint32) Option {
	return func(w *JSONWriter) {
		if mode != 0 {
			w.mode = mode
		}
	}
}
