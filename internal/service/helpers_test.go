package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// recordingPublisher 记录所有发布的事件
type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	events []Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, key string, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	var evt Event
	if err := json.Unmarshal(value, &evt); err != nil {
		return err
	}
	p.keys = append(p.keys, key)
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) types() []EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

var errStore = errors.New("store unavailable")

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

// waitForEvents 事件由后台 worker 投递，等到 n 条落地
func waitForEvents(t *testing.T, p *recordingPublisher, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return p.count() >= n }, time.Second, 5*time.Millisecond)
}

func requireOneEvent(t *testing.T, p *recordingPublisher) Event {
	t.Helper()
	waitForEvents(t, p, 1)
	p.mu.Lock()
	defer p.mu.Unlock()
	require.Len(t, p.events, 1)
	return p.events[0]
}

// blockingPublisher 在 release 关闭前一直阻塞
type blockingPublisher struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
	calls   atomic.Int32
}

func newBlockingPublisher() *blockingPublisher {
	return &blockingPublisher{started: make(chan struct{}), release: make(chan struct{})}
}

func (p *blockingPublisher) Publish(ctx context.Context, _ string, _ []byte) error {
	p.calls.Add(1)
	p.once.Do(func() { close(p.started) })
	select {
	case <-p.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
