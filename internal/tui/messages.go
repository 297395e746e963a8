package tui

import (
	"time"
)

// TickMsg drives the UI refresh and the reload poll timer.
type TickMsg struct {
	Time time.Time
}

// FileChangedMsg is sent when the watcher sees the document change on disk.
type FileChangedMsg struct{}

// WatchErrorMsg reports a watcher failure. Polling continues.
type WatchErrorMsg struct {
	Err error
}

// QuitMsg requests the program to exit.
type QuitMsg struct{}
