package mission

// StoreError is a custom error type for mission store errors
type StoreError string

// Error implements the error interface
func (e StoreError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        StoreError = "config cannot be nil"
	ErrNilRepository    StoreError = "mission repository cannot be nil"
	ErrNilClock         StoreError = "clock cannot be nil"
	ErrNilUUIDGenerator StoreError = "UUID generator cannot be nil"
	ErrNilInput         StoreError = "input cannot be nil"
	ErrInvalidMission   StoreError = "mission requires a title, a positive requirement and a positive reward"
)
