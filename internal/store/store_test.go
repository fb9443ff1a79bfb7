package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dotcommander/uttrack/internal/course"
)

func TestFileKVRoundTrip(t *testing.T) {
	kv := NewFileKV(filepath.Join(t.TempDir(), "data"))

	_, err := kv.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set("k", []byte("v1")))
	require.NoError(t, kv.Set("k", []byte("v2")))

	got, err := kv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v2", string(got))

	require.NoError(t, kv.Remove("k"))
	require.NoError(t, kv.Remove("k"))
	_, err = kv.Get("k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileKVLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	kv := NewFileKV(dir)
	require.NoError(t, kv.Set("k", []byte("v")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "k.json", entries[0].Name())
}

func TestFileKVRejectsBadKeys(t *testing.T) {
	kv := NewFileKV(t.TempDir())
	for _, key := range []string{"", "../escape", "a/b", "with space"} {
		assert.ErrorIs(t, kv.Set(key, nil), ErrInvalidKey, key)
		_, err := kv.Get(key)
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestProbe(t *testing.T) {
	t.Run("writable", func(t *testing.T) {
		dir := t.TempDir()
		kv := NewFileKV(dir)
		require.NoError(t, kv.Probe(CoursesKey))
		assert.False(t, kv.ReadOnly())

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("unwritable", func(t *testing.T) {
		// A regular file where the directory should be cannot be written
		// under, regardless of the user running the test.
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		kv := NewFileKV(filepath.Join(blocker, "data"))
		require.Error(t, kv.Probe(CoursesKey))
		assert.True(t, kv.ReadOnly())
		assert.ErrorIs(t, kv.Set(CoursesKey, []byte("[]")), ErrReadOnly)
		assert.ErrorIs(t, kv.Remove(CoursesKey), ErrReadOnly)

		_, err := kv.Get(CoursesKey)
		assert.Error(t, err)
	})
}

func TestCourseRepositorySaveLoad(t *testing.T) {
	repo := NewCourseRepository(NewFileKV(t.TempDir()), nil)

	courses, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, courses)
	assert.NotNil(t, courses)

	c := course.New("Aljabar", 2, course.SchemeTuton)
	c, err = course.Apply(c, course.SetExamTarget{Value: "80"})
	require.NoError(t, err)

	require.NoError(t, repo.Save([]course.Course{c}))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, c, loaded[0])
}

func TestCourseRepositoryMalformedData(t *testing.T) {
	tests := []struct {
		name string
		blob string
		msg  string
	}{
		{"not json", "{oops", "Discarding malformed course data"},
		{"not a list", `{"name":"A"}`, "Discarding course data that is not a list"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := NewFileKV(t.TempDir())
			require.NoError(t, kv.Set(CoursesKey, []byte(tt.blob)))

			core, logs := observer.New(zapcore.ErrorLevel)
			repo := NewCourseRepository(kv, zap.New(core))

			courses, err := repo.Load()
			require.NoError(t, err)
			assert.Empty(t, courses)
			require.Equal(t, 1, logs.Len())
			assert.Equal(t, tt.msg, logs.All()[0].Message)
		})
	}
}

func TestCourseRepositoryNormalizesLegacyRecords(t *testing.T) {
	kv := NewFileKV(t.TempDir())
	blob := `[{"name":"Statistika","sks":"2","tutorial":{"diskusi":[true,false,"75"]},"uas":{"target":"70"}}]`
	require.NoError(t, kv.Set(CoursesKey, []byte(blob)))

	courses, err := NewCourseRepository(kv, nil).Load()
	require.NoError(t, err)
	require.Len(t, courses, 1)

	c := courses[0]
	assert.Equal(t, 2, c.CreditUnits)
	assert.Equal(t, course.DefaultScheme, c.Scheme)
	assert.Equal(t, "100", c.Tutorial.DiscussionScore[0])
	assert.Equal(t, "", c.Tutorial.DiscussionScore[1])
	assert.Equal(t, "75", c.Tutorial.DiscussionScore[2])
	assert.Equal(t, "70", c.FinalExam.Target)
	assert.Len(t, c.FinalExam.Modules, 6)
}

func TestCourseRepositoryWatch(t *testing.T) {
	dir := t.TempDir()
	watched := NewCourseRepository(NewFileKV(dir), nil)
	writer := NewCourseRepository(NewFileKV(dir), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan []course.Course, 16)
	done := make(chan error, 1)
	go func() {
		done <- watched.Watch(ctx, func(cs []course.Course) { got <- cs })
	}()

	want := []course.Course{course.New("Fisika", 1, course.SchemeTuweb)}

	// The watcher registers asynchronously, so keep writing until it reports.
	deadline := time.After(5 * time.Second)
	for received := false; !received; {
		require.NoError(t, writer.Save(want))
		select {
		case cs := <-got:
			require.Len(t, cs, 1)
			assert.Equal(t, "Fisika", cs[0].Name)
			received = true
		case <-time.After(100 * time.Millisecond):
		case <-deadline:
			t.Fatal("Expected a change notification, got none")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Expected Watch to return after cancel")
	}
}
