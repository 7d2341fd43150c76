package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2026, 2, 14, 11, 30, 5, 0, time.UTC)
}

func TestActivityLogKeepsNewestTenInReverseOrder(t *testing.T) {
	t.Parallel()

	log := NewActivityLog(fixedNow, nil)
	for i := 1; i <= 25; i++ {
		log.Record(fmt.Sprintf("entry %d", i), ActivityInfo)
		require.LessOrEqual(t, log.Len(), ActivityLogCapacity)
	}

	entries := log.Entries()
	require.Len(t, entries, ActivityLogCapacity)
	for i, entry := range entries {
		assert.Equal(t, fmt.Sprintf("entry %d", 25-i), entry.Message)
	}
}

func TestActivityLogDefaultsKindToInfo(t *testing.T) {
	t.Parallel()

	log := NewActivityLog(fixedNow, nil)
	log.Record("hello", "")

	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, ActivityInfo, entries[0].Kind)
	assert.Equal(t, "11:30:05", entries[0].Timestamp)
}

func TestActivityLogNotifiesSynchronouslyWithSnapshot(t *testing.T) {
	t.Parallel()

	var seen [][]ActivityEntry
	log := NewActivityLog(fixedNow, func(entries []ActivityEntry) {
		seen = append(seen, entries)
	})

	log.Record("first", ActivityInfo)
	require.Len(t, seen, 1)
	log.Record("second", ActivityError)
	require.Len(t, seen, 2)

	assert.Equal(t, "first", seen[0][0].Message)
	assert.Equal(t, []string{"second", "first"}, []string{seen[1][0].Message, seen[1][1].Message})
	assert.Equal(t, ActivityError, seen[1][0].Kind)
}

func TestActivityLogEntriesIsACopy(t *testing.T) {
	t.Parallel()

	log := NewActivityLog(fixedNow, nil)
	log.Record("original", ActivityInfo)

	entries := log.Entries()
	entries[0].Message = "mutated"

	assert.Equal(t, "original", log.Entries()[0].Message)
}
