// Package spinning provides a friendly spinning symbol, with the elapsed time, to use while the
// AI is thinking about its move.
package spinning

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"k8s.io/klog/v2"
)

// Spinning display, created with New and stopped with Done.
type Spinning struct {
	wg     sync.WaitGroup
	cancel func()
}

var (
	ThemeAscii   = []rune(`|/-\`)
	ThemeBraille = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")
	ThemeClock   = []rune("🕐🕑🕒🕓🕔🕕🕖🕗🕘🕙🕚🕛")

	// Theme defaults to ThemeBraille, but it can be set to anything else.
	Theme = ThemeBraille

	// Interval between updates of the display.
	Interval = 200 * time.Millisecond
)

// SafeInterrupt will capture SigInt (Ctrl+C) and SigTerm and call the provided onInterrupt.
// If the program hasn't exited after gracePeriod, it will call Reset to reset the terminal
// and exit.
func SafeInterrupt(onInterrupt func(), gracePeriod time.Duration) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-sigChan
		fmt.Println()
		klog.Errorf("Got interrupted (signal %q), shutting down... (%s)", s, gracePeriod)
		if onInterrupt != nil {
			go onInterrupt()
		}
		time.Sleep(gracePeriod)
		Reset()
		klog.Fatalf("Graceful shutting down %s period expired, exiting.", gracePeriod)
	}()
}

// Reset terminal: make cursor visible, restore default terminal colors.
func Reset() {
	fmt.Print("\033[?25h\033[39;49;0m\n")
}

// New starts a spinning display on the standard output, after the message, that runs on a separate
// goroutine. It stops when Spinning.Done is called or ctx is cancelled.
func New(ctx context.Context, message string) *Spinning {
	return NewWithWriter(ctx, os.Stdout, message)
}

// NewWithWriter is like New, but writes to w.
func NewWithWriter(ctx context.Context, w io.Writer, message string) *Spinning {
	s := &Spinning{}
	ctx, s.cancel = context.WithCancel(ctx)
	theme := Theme
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		start := time.Now()
		ticker := time.NewTicker(Interval)
		defer ticker.Stop()
		// Hide cursor while spinning.
		_, _ = fmt.Fprint(w, "\033[?25l")
		defer fmt.Fprint(w, "\033[?25h")

		for idx := 0; ; idx = (idx + 1) % len(theme) {
			_, _ = fmt.Fprintf(w, "\r%s %c %.1fs\033[0K", message, theme[idx], time.Since(start).Seconds())
			select {
			case <-ctx.Done():
				_, _ = fmt.Fprint(w, "\r\033[0K")
				return
			case <-ticker.C:
			}
		}
	}()
	return s
}

// Done stops the spinning display and waits for it to clear the line. It can be called more than once.
func (s *Spinning) Done() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.wg.Wait()
}
