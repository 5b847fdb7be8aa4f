package announce

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestRegion_ExpiresAfterDelay(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegion(time.Second)
	r.now = func() time.Time { return base }

	assert.Equal(t, "", r.Current(base))

	r.Announce("Added task Buy milk")
	assert.Equal(t, "Added task Buy milk", r.Current(base))
	assert.Equal(t, "Added task Buy milk", r.Current(base.Add(999*time.Millisecond)))
	assert.Equal(t, "", r.Current(base.Add(time.Second)))
}

func TestRegion_StaleClearKeepsNewerMessage(t *testing.T) {
	r := NewRegion(time.Second)
	now := time.Now()
	r.now = func() time.Time { return now }

	r.Announce("first")
	first := r.Seq()
	r.Announce("second")

	assert.False(t, r.Clear(first))
	assert.Equal(t, "second", r.Current(now))

	assert.True(t, r.Clear(r.Seq()))
	assert.Equal(t, "", r.Current(now))
	assert.False(t, r.Clear(r.Seq()), "already cleared")
}

func TestNewRegion_DefaultDelay(t *testing.T) {
	assert.Equal(t, DefaultClearAfter, NewRegion(0).ClearAfter())
	assert.Equal(t, 3*time.Second, NewRegion(3*time.Second).ClearAfter())
}

func TestRecorder(t *testing.T) {
	var rec Recorder
	assert.Equal(t, "", rec.Last())

	rec.Announce("a")
	rec.Announce("b")
	assert.Equal(t, []string{"a", "b"}, rec.Messages)
	assert.Equal(t, "b", rec.Last())
}

func TestLogAnnouncer(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	LogAnnouncer{Logger: logger}.Announce("Deleted task x")
	assert.Contains(t, buf.String(), "Deleted task x")

	// nil logger is a no-op
	LogAnnouncer{}.Announce("ignored")
}

func TestFuncAndDiscard(t *testing.T) {
	var got string
	Func(func(msg string) { got = msg }).Announce("hello")
	assert.Equal(t, "hello", got)

	Discard.Announce("nothing happens")
}

func TestRegion_TextUntilCleared(t *testing.T) {
	r := NewRegion(time.Second)
	assert.Equal(t, "", r.Text())

	r.Announce("Marked 'A' completed")
	assert.Equal(t, "Marked 'A' completed", r.Text())

	r.Clear(r.Seq())
	assert.Equal(t, "", r.Text())
}
