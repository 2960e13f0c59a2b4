package syncstore

import (
	"time"

	"github.com/jsamuelsen11/storeops-gateway/internal/domain"
)

// Phase is the coarse state a Store is in.
type Phase int

const (
	// Idle means nothing has been fetched yet.
	Idle Phase = iota
	// Loading is the first fetch, with no data to show.
	Loading
	// Refreshing is a fetch while earlier data stays visible.
	Refreshing
	// Success means the last fetch applied fresh data.
	Success
	// Error means the last fetch failed. Data from an earlier success is kept.
	Error
)

var phaseNames = [...]string{"idle", "loading", "refreshing", "success", "error"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// State is a copy of what a Store holds.
type State[T any] struct {
	Data    T
	HasData bool

	IsLoading    bool
	IsRefreshing bool

	Err           *domain.Error
	LastFetchedAt time.Time // zero until the first success
	FetchCount    int       // successful fetches
	CurrentPage   int

	// Version grows with every change a Store publishes. Of two copies, the
	// one with the higher Version is newer.
	Version uint64
}

// Phase derives the coarse state from the flags.
func (s State[T]) Phase() Phase {
	switch {
	case s.IsLoading:
		return Loading
	case s.IsRefreshing:
		return Refreshing
	case s.Err != nil:
		return Error
	case s.HasData:
		return Success
	default:
		return Idle
	}
}

// Pager is implemented by fetch parameters that select a page. The store
// records the page of the last fetch it started.
type Pager interface {
	PageNumber() int
}
