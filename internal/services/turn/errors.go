package turn

// ControllerError is a custom error type for controller construction errors
type ControllerError string

// Error implements the error interface
func (e ControllerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig    ControllerError = "config cannot be nil"
	ErrNilSession   ControllerError = "session store cannot be nil"
	ErrNilPicker    ControllerError = "picker cannot be nil"
	ErrNilScheduler ControllerError = "scheduler cannot be nil"
)
