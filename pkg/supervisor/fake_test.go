package supervisor_test

import (
	"context"
	"errors"
	"sync"

	"github.com/black-desk/watchmux/pkg/protocol"
	"github.com/black-desk/watchmux/pkg/types"
)

var errPermission = errors.New("permission denied")

// fakeHandle records its subscriptions and lets tests inject events.
type fakeHandle struct {
	lock        sync.Mutex
	subs        map[string]int
	failWatch   map[string]bool
	failUnwatch bool

	events chan types.RawEvent
}

func newFakeHandle() *fakeHandle {
	return &fakeHandle{
		subs:      map[string]int{},
		failWatch: map[string]bool{},
		events:    make(chan types.RawEvent, 16),
	}
}

func (h *fakeHandle) Events() <-chan types.RawEvent { return h.events }

func (h *fakeHandle) Run(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (h *fakeHandle) Watch(root string) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	if h.failWatch[root] {
		return errPermission
	}
	h.subs[root]++
	return nil
}

func (h *fakeHandle) Unwatch(root string) error {
	h.lock.Lock()
	defer h.lock.Unlock()

	if h.failUnwatch {
		return errPermission
	}
	h.subs[root]--
	if h.subs[root] == 0 {
		delete(h.subs, root)
	}
	return nil
}

func (h *fakeHandle) Subscriptions() map[string]int {
	h.lock.Lock()
	defer h.lock.Unlock()

	ret := map[string]int{}
	for k, v := range h.subs {
		ret[k] = v
	}
	return ret
}

// fakeCanonicalizer resolves known paths only.
type fakeCanonicalizer map[string]string

func (c fakeCanonicalizer) Canonicalize(path string) (string, error) {
	ret, ok := c[path]
	if !ok {
		return "", errors.New("no such file or directory")
	}
	return ret, nil
}

// recorder is an emitter that keeps what it is given.
type recorder struct {
	lock     sync.Mutex
	messages []protocol.Message
}

func (r *recorder) Emit(msg protocol.Message) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.messages = append(r.messages, msg)
}

func (r *recorder) Run(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (r *recorder) Messages() []protocol.Message {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]protocol.Message{}, r.messages...)
}

// lines collects what the encoder writes, one message per Write.
type lines chan string

func (l lines) Write(p []byte) (int, error) {
	l <- string(p)
	return len(p), nil
}
