package interfaces

import "time"

// Clock abstracts wall-clock reads so that time tracking and statistics are
// deterministic under test. Every transition reads the clock exactly once
// and reuses that instant for both the closing and the opening stage window.
type Clock interface {
	Now() time.Time
}
