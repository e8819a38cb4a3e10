package client

import (
	"sync"
	"time"
)

// NoticeDuration is how long a notice stays visible after it was last set.
const NoticeDuration = 3 * time.Second

// noticeTimer holds at most one pending expiry. Scheduling a new one stops
// the previous timer first, so two expiries never coexist.
type noticeTimer struct {
	mu     sync.Mutex
	delay  time.Duration
	timer  *time.Timer
	expire func(id uint64)
}

func newNoticeTimer(delay time.Duration, expire func(id uint64)) *noticeTimer {
	return &noticeTimer{delay: delay, expire: expire}
}

func (t *noticeTimer) schedule(id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.delay, func() {
		t.expire(id)
	})
}

func (t *noticeTimer) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
