package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Spinner animates a progress indicator on a terminal while a long
// operation runs. It is safe to call Stop more than once.
type Spinner struct {
	out     io.Writer
	frames  []string
	message string

	mu      sync.Mutex
	running bool

	stop   sync.Once
	ticker *time.Ticker
	done   chan struct{}
}

func NewSpinner() *Spinner {
	return &Spinner{
		out:    os.Stdout,
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		ticker: time.NewTicker(time.Millisecond * 90),
		done:   make(chan struct{}),
	}
}

func (s *Spinner) SetOutput(w io.Writer) {
	s.out = w
}

func (s *Spinner) SetMessage(msg string) {
	msg = strings.TrimSpace(msg)
	s.message = strings.TrimRight(msg, ".")
}

func (s *Spinner) Run(fn func()) {
	s.Start()
	defer s.Stop()
	fn()
}

func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	go s.run()
}

func (s *Spinner) Stop() {
	s.stop.Do(func() {
		close(s.done)
		s.ticker.Stop()
		s.clearLine()
	})
}

func (s *Spinner) run() {
	for i := 0; ; i++ {
		select {
		case <-s.ticker.C:
			frame := s.frames[i%len(s.frames)]
			if s.message != "" {
				fmt.Fprintf(s.out, "\r%s %s...", frame, s.message)
			} else {
				fmt.Fprintf(s.out, "\r%s", frame)
			}
		case <-s.done:
			return
		}
	}
}

func (s *Spinner) clearLine() {
	io.WriteString(s.out, "\x1b[0G\x1b[2K\x1b[0G")
}
