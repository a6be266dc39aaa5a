package history

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T, limit int) *Store {
	t.Helper()
	s, err := Open(":memory:", limit)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreAddAndGet(t *testing.T) {
	s := openMemory(t, 10)

	e := &Entry{
		Question:   "total profit by month",
		Completion: "total profit by month in 2024",
		SQL:        "SELECT date_trunc('month', order_date), sum(profit) FROM orders GROUP BY 1",
		Status:     StatusSuccess,
		DurationMs: 420,
	}
	require.NoError(t, s.Add(e))
	assert.NotZero(t, e.ID)
	assert.False(t, e.CreatedAt.IsZero())

	got, err := s.GetByID(e.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, e.Question, got.Question)
	assert.Equal(t, e.Completion, got.Completion)
	assert.Equal(t, e.SQL, got.SQL)
	assert.Equal(t, StatusSuccess, got.Status)
	assert.Equal(t, int64(420), got.DurationMs)
	assert.WithinDuration(t, e.CreatedAt, got.CreatedAt, time.Second)

	missing, err := s.GetByID(e.ID + 100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStoreListNewestFirst(t *testing.T) {
	s := openMemory(t, 10)
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Add(&Entry{
			Question:  fmt.Sprintf("question %d", i),
			Status:    StatusSuccess,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := s.List(10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "question 2", entries[0].Question)
	assert.Equal(t, "question 0", entries[2].Question)

	page, err := s.List(1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "question 1", page[0].Question)
}

func TestStoreSearch(t *testing.T) {
	s := openMemory(t, 10)
	require.NoError(t, s.Add(&Entry{Question: "orders per user", SQL: "SELECT user_id, count(*) FROM orders GROUP BY 1", Status: StatusSuccess}))
	require.NoError(t, s.Add(&Entry{Question: "top customers", SQL: "SELECT user_id FROM orders ORDER BY total_amount DESC", Status: StatusSuccess}))
	require.NoError(t, s.Add(&Entry{Question: "bad request", Status: StatusError, ErrorMessage: "backend error"}))

	byQuestion, err := s.Search("customers", 10)
	require.NoError(t, err)
	require.Len(t, byQuestion, 1)
	assert.Equal(t, "top customers", byQuestion[0].Question)

	bySQL, err := s.Search("GROUP BY", 10)
	require.NoError(t, err)
	require.Len(t, bySQL, 1)
	assert.Equal(t, "orders per user", bySQL[0].Question)

	none, err := s.Search("nothing matches", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStoreEnforcesLimit(t *testing.T) {
	s := openMemory(t, 2)
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 4; i++ {
		require.NoError(t, s.Add(&Entry{
			Question:  fmt.Sprintf("q%d", i),
			Status:    StatusSuccess,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	count, err := s.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	entries, err := s.List(10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "q3", entries[0].Question)
	assert.Equal(t, "q2", entries[1].Question)
}

func TestStoreDelete(t *testing.T) {
	s := openMemory(t, 10)
	e := &Entry{Question: "remove me", Status: StatusEmpty}
	require.NoError(t, s.Add(e))

	require.NoError(t, s.Delete(e.ID))

	count, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStorePrunesOldEntriesOnOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path, 10)
	require.NoError(t, err)
	require.NoError(t, s.Add(&Entry{Question: "ancient", Status: StatusSuccess, CreatedAt: time.Now().AddDate(0, 0, -120)}))
	require.NoError(t, s.Add(&Entry{Question: "recent", Status: StatusSuccess}))
	require.NoError(t, s.Close())

	s, err = Open(path, 10)
	require.NoError(t, err)
	defer s.Close()

	entries, err := s.List(10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "recent", entries[0].Question)
}

func TestQuestionPreview(t *testing.T) {
	e := Entry{Question: "show me monthly revenue"}
	assert.Equal(t, "show me...", e.QuestionPreview(10))
	assert.Equal(t, e.Question, e.QuestionPreview(100))
}
