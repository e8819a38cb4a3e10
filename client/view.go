package client

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"web3dir/models"
)

// ProjectFetcher loads the full project list. *Client satisfies it.
type ProjectFetcher interface {
	FetchProjects(ctx context.Context) ([]models.Project, error)
}

// View owns the browsing state. Every change goes through a State reducer
// under the view's lock, so Snapshot always returns a consistent State.
type View struct {
	fetcher ProjectFetcher

	mu       sync.Mutex
	state    State
	noticeID uint64
	timer    *noticeTimer

	loadOnce sync.Once
	loadErr  error
}

type Option func(*View)

// WithNoticeDuration overrides NoticeDuration.
func WithNoticeDuration(d time.Duration) Option {
	return func(v *View) {
		v.timer.delay = d
	}
}

func NewView(fetcher ProjectFetcher, opts ...Option) *View {
	v := &View{
		fetcher: fetcher,
		state:   InitialState(),
	}
	v.timer = newNoticeTimer(NoticeDuration, v.expireNotice)
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Load fetches the project list. Only the first call hits the API; later
// calls return the first call's result. On failure the projects stay empty
// and an error notice is shown.
func (v *View) Load(ctx context.Context) error {
	v.loadOnce.Do(func() {
		projects, err := v.fetcher.FetchProjects(ctx)
		if err != nil {
			log.Printf("Error loading projects: %v", err)
			v.loadErr = err
			v.update(State.LoadFailed)
			v.Notify(MessageLoadFailed, true)
			return
		}
		v.update(func(s State) State { return s.Loaded(projects) })
	})
	return v.loadErr
}

// Snapshot returns the current state.
func (v *View) Snapshot() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Visible is shorthand for Snapshot().Visible().
func (v *View) Visible() []models.Project {
	return v.Snapshot().Visible()
}

func (v *View) SetSearch(term string) {
	v.update(func(s State) State { return s.WithSearch(term) })
}

func (v *View) ToggleFilter(tag string) {
	v.update(func(s State) State { return s.ToggleFilter(tag) })
}

// Notify shows msg, replacing any current notice, and restarts the clear timer.
func (v *View) Notify(msg string, isError bool) Notice {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.noticeID++
	n := Notice{ID: v.noticeID, Message: msg, IsError: isError}
	v.state = v.state.WithNotice(n)
	// Scheduled under v.mu so timers are replaced in the same order as notices.
	v.timer.schedule(n.ID)
	return n
}

// CopyWallet returns the wallet for label and confirms the copy with a notice.
// Putting the address on a clipboard is up to the caller.
func (v *View) CopyWallet(label string) (Wallet, error) {
	w, ok := FindWallet(label)
	if !ok {
		v.Notify(fmt.Sprintf("Unknown wallet %q", label), true)
		return Wallet{}, fmt.Errorf("unknown wallet %q", label)
	}
	v.Notify(fmt.Sprintf("%s address copied!", w.Chain), false)
	return w, nil
}

// Close stops any pending notice timer.
func (v *View) Close() {
	v.timer.stop()
}

func (v *View) expireNotice(id uint64) {
	v.update(func(s State) State { return s.ClearNotice(id) })
}

func (v *View) update(reduce func(State) State) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = reduce(v.state)
}
