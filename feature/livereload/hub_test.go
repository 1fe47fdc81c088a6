package livereload

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeConn records broadcast frames; fail makes every write error.
type fakeConn struct {
	mu       sync.Mutex
	messages []string
	fail     bool
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("connection gone")
	}
	f.messages = append(f.messages, string(data))
	return nil
}

func (f *fakeConn) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func (f *fakeConn) snapshot() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.messages...)
}

func TestHub_BroadcastReachesAllClients(t *testing.T) {
	h := newHub()
	a, b := &fakeConn{}, &fakeConn{}
	h.add(a)
	h.add(b)

	sent := h.broadcast(ReloadMessage)

	assert.Equal(t, 2, sent)
	assert.Equal(t, []string{"reload"}, a.messages)
	assert.Equal(t, []string{"reload"}, b.messages)
}

func TestHub_RemovedClientNotBroadcastTo(t *testing.T) {
	h := newHub()
	a, b := &fakeConn{}, &fakeConn{}
	h.add(a)
	h.add(b)
	h.remove(a)

	sent := h.broadcast(ReloadMessage)

	assert.Equal(t, 1, sent)
	assert.Equal(t, 0, a.count())
	assert.Equal(t, 1, b.count())
}

func TestHub_FailedWriteDropsClient(t *testing.T) {
	h := newHub()
	dead := &fakeConn{fail: true}
	live := &fakeConn{}
	h.add(dead)
	h.add(live)

	sent := h.broadcast(ReloadMessage)

	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, h.count())

	// The dead client stays gone on the next broadcast.
	sent = h.broadcast(ReloadMessage)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 2, live.count())
}
