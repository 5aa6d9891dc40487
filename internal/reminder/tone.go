package reminder

import (
	"errors"
	"io"
	"sync"
	"time"
)

// Tone is a continuous audible alert that can be started and stopped
type Tone interface {
	Start() error
	Stop() error
}

// Silent is a Tone that does nothing
type Silent struct{}

func (Silent) Start() error { return nil }
func (Silent) Stop() error  { return nil }

// Chime writes one terminal bell, the short cue played when a task is
// added or completed or an achievement unlocks
func Chime(w io.Writer) error {
	_, err := io.WriteString(w, "\a")
	return err
}

// Bell rings the terminal bell on w at a fixed cadence until stopped
type Bell struct {
	w        io.Writer
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewBell(w io.Writer, interval time.Duration) *Bell {
	if interval <= 0 {
		interval = time.Second
	}
	return &Bell{w: w, interval: interval}
}

// Start begins ringing. Starting a bell that is already ringing fails.
func (b *Bell) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stop != nil {
		return errors.New("bell already ringing")
	}
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		return err
	}

	b.stop = make(chan struct{})
	b.done = make(chan struct{})
	go b.ring(b.stop, b.done)
	return nil
}

func (b *Bell) ring(stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if _, err := io.WriteString(b.w, "\a"); err != nil {
				return
			}
		}
	}
}

// Stop silences the bell and waits for the ringing goroutine to exit.
// Stopping a silent bell is a no-op.
func (b *Bell) Stop() error {
	b.mu.Lock()
	stop, done := b.stop, b.done
	b.stop, b.done = nil, nil
	b.mu.Unlock()

	if stop == nil {
		return nil
	}
	close(stop)
	<-done
	return nil
}

// Ringing reports whether the bell is currently held
func (b *Bell) Ringing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stop != nil
}
