// Package hal provides definitions shared by the hardware abstraction
// layer packages.
package hal

// Error describes an error raised by one of the hal packages. All errors
// must be defined as global variables that are pointers to the Error
// structure. This requirement stems from the fact that the code may run
// before the Go allocator is available so raising an error must not
// allocate.
type Error struct {
	// The module where the error occurred.
	Module string

	// The error message
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
