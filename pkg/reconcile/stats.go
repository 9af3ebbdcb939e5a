package reconcile

import (
	"fmt"
	"time"
)

// Stats counts what a single render did to the real tree.
type Stats struct {
	Mounted          int // Nodes created, including descendants
	Updated          int // Nodes updated in place
	Replaced         int // Nodes swapped for a different kind
	Removed          int // Nodes removed (surplus children and replaced nodes)
	TextUpdated      int
	AttrsSet         int
	AttrsRemoved     int
	PropsSet         int
	ListenersAdded   int
	ListenersRemoved int
}

// Mutations is the total number of host writes counted by s.
func (s Stats) Mutations() int {
	return s.Mounted + s.Removed + s.TextUpdated + s.AttrsSet + s.AttrsRemoved +
		s.PropsSet + s.ListenersAdded + s.ListenersRemoved
}

// String returns a one-line summary.
func (s Stats) String() string {
	return fmt.Sprintf("mounted=%d updated=%d replaced=%d removed=%d text=%d attrs=+%d/-%d props=%d listeners=+%d/-%d",
		s.Mounted, s.Updated, s.Replaced, s.Removed, s.TextUpdated,
		s.AttrsSet, s.AttrsRemoved, s.PropsSet, s.ListenersAdded, s.ListenersRemoved)
}

// Observer is notified after every Render or Mount call, including failed
// ones.
type Observer interface {
	ObserveRender(stats Stats, elapsed time.Duration, err error)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(stats Stats, elapsed time.Duration, err error)

// ObserveRender implements Observer.
func (f ObserverFunc) ObserveRender(stats Stats, elapsed time.Duration, err error) {
	f(stats, elapsed, err)
}
