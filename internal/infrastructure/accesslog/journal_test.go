package accesslog

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := OpenJournal(filepath.Join(t.TempDir(), "journal", "access.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func entryAt(at time.Time, url string) Entry {
	return NewEntry(at, RequestInfo{Method: "GET", URL: url}, ResponseInfo{StatusCode: 200, StatusMessage: "OK"}, time.Millisecond)
}

func TestJournal_AppendAndRecent(t *testing.T) {
	j := openTestJournal(t)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	for i, url := range []string{"/a", "/b", "/c"} {
		require.NoError(t, j.Record(entryAt(base.Add(time.Duration(i)*time.Second), url)))
	}

	size, err := j.Size()
	require.NoError(t, err)
	assert.Equal(t, 3, size)

	recent, err := j.Recent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "/c", recent[0].Request.URL)
	assert.Equal(t, "/b", recent[1].Request.URL)
	assert.Equal(t, "Petición a /c", recent[0].Message)
}

func TestJournal_SameTimestampKeepsBothEntries(t *testing.T) {
	j := openTestJournal(t)
	at := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, j.Append(entryAt(at, "/a")))
	require.NoError(t, j.Append(entryAt(at, "/b")))

	size, err := j.Size()
	require.NoError(t, err)
	assert.Equal(t, 2, size)
}

func TestJournal_Cleanup(t *testing.T) {
	j := openTestJournal(t)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, j.Append(entryAt(base.Add(-2*time.Hour), "/old")))
	require.NoError(t, j.Append(entryAt(base.Add(-time.Hour), "/older")))
	require.NoError(t, j.Append(entryAt(base.Add(time.Minute), "/new")))

	removed, err := j.Cleanup(base)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	recent, err := j.Recent(10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "/new", recent[0].Request.URL)

	removed, err = j.Cleanup(base)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestJournal_StatsCountReads(t *testing.T) {
	j := openTestJournal(t)
	require.NoError(t, j.Append(entryAt(time.Now(), "/")))

	before := j.Stats().TxN
	_, err := j.Recent(1)
	require.NoError(t, err)
	_, err = j.Size()
	require.NoError(t, err)

	assert.Equal(t, before+2, j.Stats().TxN)
	assert.Zero(t, j.Stats().OpenTxN)
}

func TestJournal_Closed(t *testing.T) {
	var j *Journal
	assert.Equal(t, 0, j.Stats().TxN)
	assert.Error(t, j.Append(Entry{}))
	_, err := j.Size()
	assert.Error(t, err)
	assert.NoError(t, j.Close())
}
