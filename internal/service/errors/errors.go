// Package errors provides custom errors for types implementing Processor interface.
package errors

type (
	ServiceFoundNilWriter struct {
		Msg string
	}
	ServiceWriteError struct {
		Msg string
	}
)

func (e *ServiceFoundNilWriter) Error() string {
	return e.Msg
}

func (e *ServiceWriteError) Error() string {
	return e.Msg
}
