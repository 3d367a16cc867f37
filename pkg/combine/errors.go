package combine

import "fmt"

// FileReadError reports a file that could not be read as text. It is never fatal.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("error reading file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// ProbeError reports a subtree whose stats could not be computed.
type ProbeError struct {
	Path string
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("failed to probe %s: %v", e.Path, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// OutputWriteError reports that the output artifact could not be written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("failed to write output file %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
