package ports

// OutputPort writes fully rendered output in a single operation,
// creating missing parent directories. Nothing may be written before
// the whole document is rendered.
type OutputPort interface {
	WriteFile(path string, content []byte) error
}
