// Package announce carries short, transient status strings meant for
// assistive technology, the terminal counterpart of an aria-live region.
package announce

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

const DefaultClearAfter = time.Second

type Announcer interface {
	Announce(msg string)
}

// Discard drops every announcement.
var Discard Announcer = discard{}

type discard struct{}

func (discard) Announce(string) {}

// Func adapts a plain function to Announcer.
type Func func(msg string)

func (f Func) Announce(msg string) { f(msg) }

// LogAnnouncer writes announcements to a logger at debug level.
type LogAnnouncer struct {
	Logger *log.Logger
}

func (a LogAnnouncer) Announce(msg string) {
	if a.Logger == nil {
		return
	}
	a.Logger.Debug("announce", "msg", msg)
}

// Region holds the most recent announcement until it expires. Each message
// gets a sequence number so clearing an older one never wipes a newer one.
// It is driven from a single event loop and is not safe for concurrent use.
type Region struct {
	clearAfter time.Duration
	now        func() time.Time

	msg     string
	seq     uint64
	setAt   time.Time
	cleared bool
}

func NewRegion(clearAfter time.Duration) *Region {
	if clearAfter <= 0 {
		clearAfter = DefaultClearAfter
	}
	return &Region{
		clearAfter: clearAfter,
		now:        time.Now,
		cleared:    true,
	}
}

func (r *Region) Announce(msg string) {
	r.seq++
	r.msg = msg
	r.setAt = r.now()
	r.cleared = false
}

// sequence number of the latest announcement
func (r *Region) Seq() uint64 {
	return r.seq
}

func (r *Region) ClearAfter() time.Duration {
	return r.clearAfter
}

// Clear empties the region if seq is still the latest announcement and
// reports whether it did.
func (r *Region) Clear(seq uint64) bool {
	if seq != r.seq || r.cleared {
		return false
	}
	r.msg = ""
	r.cleared = true
	return true
}

// Text returns the live text until it is cleared.
func (r *Region) Text() string {
	if r.cleared {
		return ""
	}
	return r.msg
}

// Current returns the live text at now, empty once it has expired.
func (r *Region) Current(now time.Time) string {
	if r.cleared || now.Sub(r.setAt) >= r.clearAfter {
		return ""
	}
	return r.msg
}

func (r *Region) String() string {
	return fmt.Sprintf("announce.Region(seq=%d)", r.Seq())
}

// Recorder keeps every announcement, for tests and batch callers.
type Recorder struct {
	Messages []string
}

func (r *Recorder) Announce(msg string) {
	r.Messages = append(r.Messages, msg)
}

func (r *Recorder) Last() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1]
}
