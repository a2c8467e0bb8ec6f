package cmd

import (
	"fmt"
	"os"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"dremio/cli/pkg/dremio"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// jobSpinner renders an area spinner with the latest job poll state. It is a
// no-op when stdout is not a terminal.
type jobSpinner struct {
	label string

	mu   sync.Mutex
	last dremio.PollEvent

	area *pterm.AreaPrinter
	stop chan struct{}
	wg   sync.WaitGroup
}

func newJobSpinner(label string) *jobSpinner {
	return &jobSpinner{label: label, stop: make(chan struct{})}
}

// start hides the cursor and begins animating.
func (s *jobSpinner) start() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}
	cursor.Hide()
	area, err := pterm.DefaultArea.WithRemoveWhenDone(true).Start()
	if err != nil {
		cursor.Show()
		return
	}
	s.area = area
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		t := time.NewTicker(120 * time.Millisecond)
		defer t.Stop()
		for i := 0; ; i++ {
			select {
			case <-t.C:
				s.mu.Lock()
				ev := s.last
				s.mu.Unlock()
				area.Update(spinnerLine(spinnerFrames[i%len(spinnerFrames)], s.label, ev))
			case <-s.stop:
				return
			}
		}
	}()
}

// observe records a poll event; pass it to dremio.WithPollObserver.
func (s *jobSpinner) observe(ev dremio.PollEvent) {
	s.mu.Lock()
	s.last = ev
	s.mu.Unlock()
}

// finish stops the animation, clears the area and shows the cursor again.
func (s *jobSpinner) finish() {
	if s.area == nil {
		return
	}
	close(s.stop)
	s.wg.Wait()
	_ = s.area.Stop()
	s.area = nil
	cursor.Show()
}

// spinnerLine formats one frame of the spinner.
func spinnerLine(frame, label string, ev dremio.PollEvent) string {
	if ev.Attempt == 0 {
		return fmt.Sprintf("%s %s", frame, label)
	}
	state := string(ev.State)
	if state == "" {
		state = "waiting"
	}
	return fmt.Sprintf("%s %s  job %s %s (poll %d/%d)", frame, label, ev.JobID, state, ev.Attempt, ev.Attempts)
}

// startInlineSpinner animates text on the current line until the returned
// function is called. Nothing is drawn when stdout is not a terminal.
func startInlineSpinner(text string) func() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return func() {}
	}
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(120 * time.Millisecond)
		defer ticker.Stop()
		for i := 0; ; i++ {
			line := fmt.Sprintf("%s %s", spinnerFrames[i%len(spinnerFrames)], text)
			select {
			case <-stop:
				fmt.Printf("\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				fmt.Printf("\r%s", line)
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}
