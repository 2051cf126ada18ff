// Package secureclip writes generated strings to the OS clipboard. In
// one-shot use the clipboard keeps its contents; in an interactive
// session the clipboard is cleared shortly after the last copy so a
// generated secret does not linger.
package secureclip

import (
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
)

var (
	lastClip    = time.Now().Unix()
	clipTimeout = time.Second * 30
)

// Copy writes `s` to the clipboard and leaves it there. Used for the
// one-shot --copy flag, where the process exits immediately after.
func Copy(s string) error {
	return clipboard.WriteAll(s)
}

// Clip writes `s` to the clipboard and schedules a wipe 30 seconds
// after the most recent Clip call. Used by the interactive session.
func Clip(s string) error {
	if err := clipboard.WriteAll(s); err != nil {
		return err
	}
	atomic.StoreInt64(&lastClip, time.Now().Unix())
	go func() {
		time.Sleep(clipTimeout)
		lc := atomic.LoadInt64(&lastClip)
		if time.Since(time.Unix(lc, 0)) > clipTimeout {
			clipboard.WriteAll("")
		}
	}()
	return nil
}

// Clear wipes the clipboard.
func Clear() error {
	return clipboard.WriteAll("")
}
