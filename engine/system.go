package engine

import "time"

// System is an interface that all systems must implement
type System interface {
	// Init resets session state for a new run
	Init()
	// Name returns the system's name for logs
	Name() string
	Update(dt time.Duration)
	Priority() int // Lower values run first
}
