package domain

import (
	"sync"
	"time"
)

// ActivityLogCapacity is the number of entries kept by an ActivityLog.
const ActivityLogCapacity = 10

const activityTimeLayout = "15:04:05"

type ActivityKind string

const (
	ActivityInfo    ActivityKind = "info"
	ActivityWarning ActivityKind = "warning"
	ActivityError   ActivityKind = "error"
)

type ActivityEntry struct {
	Timestamp string       `json:"timestamp" yaml:"timestamp"`
	Message   string       `json:"message" yaml:"message"`
	Kind      ActivityKind `json:"kind" yaml:"kind"`
}

// ActivityLog keeps the most recent entries, newest first.
//
// The change hook runs synchronously under the log lock after every
// mutation, so observers see renders in mutation order. It must not call
// back into the log.
type ActivityLog struct {
	mu       sync.Mutex
	entries  []ActivityEntry
	now      func() time.Time
	onChange func([]ActivityEntry)
}

func NewActivityLog(now func() time.Time, onChange func([]ActivityEntry)) *ActivityLog {
	if now == nil {
		now = time.Now
	}

	return &ActivityLog{
		entries:  make([]ActivityEntry, 0, ActivityLogCapacity),
		now:      now,
		onChange: onChange,
	}
}

// Record prepends an entry stamped with the local time and drops the
// oldest entries beyond capacity. An empty kind records as info.
func (l *ActivityLog) Record(message string, kind ActivityKind) {
	if kind == "" {
		kind = ActivityInfo
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := make([]ActivityEntry, 0, ActivityLogCapacity)
	timestamp := l.now().Format(activityTimeLayout)
	next = append(next, ActivityEntry{Timestamp: timestamp, Message: message, Kind: kind})
	for _, entry := range l.entries {
		if len(next) == ActivityLogCapacity {
			break
		}
		next = append(next, entry)
	}
	l.entries = next

	if l.onChange != nil {
		l.onChange(l.snapshot())
	}
}

func (l *ActivityLog) Entries() []ActivityEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.snapshot()
}

func (l *ActivityLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

func (l *ActivityLog) snapshot() []ActivityEntry {
	out := make([]ActivityEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
