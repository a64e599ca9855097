package session

// StoreError is a custom error type for session store errors
type StoreError string

// Error implements the error interface
func (e StoreError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        StoreError = "config cannot be nil"
	ErrNilRepository    StoreError = "session repository cannot be nil"
	ErrNilClock         StoreError = "clock cannot be nil"
	ErrNilUUIDGenerator StoreError = "UUID generator cannot be nil"
	ErrNilInput         StoreError = "input cannot be nil"
)
