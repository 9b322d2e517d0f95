package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"atomicgo.dev/cursor"
	"github.com/ethereum/go-ethereum/core/types"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// pendingIndicator returns the hook that shows a spinner while a transaction
// is being mined. Without a terminal it returns nil and nothing is drawn.
func pendingIndicator(interactive bool) func(*types.Transaction) func() {
	if !interactive {
		return nil
	}
	return func(tx *types.Transaction) func() {
		cursor.Hide()
		hash := tx.Hash().Hex()
		stop := startInlineSpinner(os.Stderr, "waiting for "+hash[:10]+"… to be mined", spinnerFrames, 120*time.Millisecond)
		return func() {
			stop()
			cursor.Show()
		}
	}
}

// startInlineSpinner draws frames followed by text on one line of w until the
// returned function is called, which also clears the line.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for i := 0; ; i++ {
			line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
			select {
			case <-stop:
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s", line)
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}
