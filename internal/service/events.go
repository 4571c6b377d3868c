package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"Social_Forum/internal/pkg"
)

const (
	eventQueueSize = 1024
	publishTimeout = 5 * time.Second
)

type Publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type EventType string

const (
	EventPostCreated    EventType = "post.created"
	EventCommentCreated EventType = "comment.created"
	EventReplyCreated   EventType = "reply.created"
	EventPostLiked      EventType = "post.liked"
	EventPostUnliked    EventType = "post.unliked"
)

type Event struct {
	Type       EventType `json:"type"`
	PostID     uint64    `json:"post_id,omitempty"`
	CommentID  uint64    `json:"comment_id,omitempty"`
	ReplyID    uint64    `json:"reply_id,omitempty"`
	UserID     uint64    `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// key 以帖子为分区键；回复事件没有帖子 id 时退回评论 id
func (e Event) key() string {
	if e.PostID != 0 {
		return pkg.MakeKeyFromID(e.PostID)
	}
	return pkg.MakeKeyFromID(e.CommentID)
}

type queuedEvent struct {
	ctx     context.Context
	key     string
	payload []byte
	typ     EventType
}

// Emitter 请求路径只负责入队，后台单个 worker 按顺序投递。
// 队列满或投递失败只记日志和指标，不影响请求结果。nil Emitter 可以直接调用。
type Emitter struct {
	pub Publisher
	log *slog.Logger
	now func() time.Time

	mu     sync.RWMutex
	closed bool
	queue  chan queuedEvent
	done   chan struct{}
}

func NewEmitter(pub Publisher, log *slog.Logger) *Emitter {
	return newEmitter(pub, log, eventQueueSize)
}

func newEmitter(pub Publisher, log *slog.Logger, size int) *Emitter {
	if log == nil {
		log = slog.Default()
	}
	e := &Emitter{pub: pub, log: log, now: time.Now}
	if pub != nil {
		e.queue = make(chan queuedEvent, size)
		e.done = make(chan struct{})
		go e.run()
	}
	return e
}

func (e *Emitter) Emit(ctx context.Context, evt Event) {
	if e == nil || e.pub == nil {
		return
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = e.now().UTC()
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		e.log.ErrorContext(ctx, "marshal event", "type", evt.Type, "error", err)
		return
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.closed {
		return
	}
	// 脱离请求的取消信号，保留 request_id 等上下文值
	item := queuedEvent{ctx: context.WithoutCancel(ctx), key: evt.key(), payload: payload, typ: evt.Type}
	select {
	case e.queue <- item:
	default:
		pkg.EventPublishFailures.Inc()
		e.log.WarnContext(ctx, "event queue full, dropping event", "type", evt.Type)
	}
}

func (e *Emitter) run() {
	defer close(e.done)
	for item := range e.queue {
		ctx, cancel := context.WithTimeout(item.ctx, publishTimeout)
		if err := e.pub.Publish(ctx, item.key, item.payload); err != nil {
			pkg.EventPublishFailures.Inc()
			e.log.WarnContext(ctx, "publish event failed", "type", item.typ, "error", err)
		}
		cancel()
	}
}

// Close 停止接收新事件，并等待队列中已有事件投递完
func (e *Emitter) Close() {
	if e == nil || e.queue == nil {
		return
	}
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.queue)
	e.mu.Unlock()
	<-e.done
}
