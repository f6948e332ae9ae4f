package console

import "io"

// Sink is the active output surface
type Sink interface {
	io.Writer
	// Clear wipes the visible surface
	Clear() error
}

// Settings are handed to the platform when the console is acquired
type Settings struct {
	Title    string
	Encoding string
}

// Platform acquires and releases the output surface
type Platform interface {
	Acquire(settings Settings) (Sink, error)
	Release() error
	SetFont(name string, size int) error
	FontWidth() (int, error)
}
