package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/sip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	_ sip.Store = (*Memory)(nil)
	_ sip.Store = (*Dir)(nil)
	_ sip.Store = (*Postgres)(nil)
)

// testStore runs the key-value contract against a store.
func testStore(t *testing.T, s interface {
	sip.Store
	Delete(string) error
}) {
	_, ok, err := s.Get("absent")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("sipCalculatorState", `{"a":1}`))
	v, ok, err := s.Get("sipCalculatorState")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, v)

	require.NoError(t, s.Set("sipCalculatorState", `{"a":2}`))
	v, _, err = s.Get("sipCalculatorState")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, v, "Set must overwrite")

	require.NoError(t, s.Delete("sipCalculatorState"))
	_, ok, err = s.Get("sipCalculatorState")
	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, s.Delete("sipCalculatorState"), "deleting an absent key is not an error")
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory())
}

func TestDir(t *testing.T) {
	d, err := OpenDir(filepath.Join(t.TempDir(), "state"), zap.NewNop())
	require.NoError(t, err)
	testStore(t, d)
}

func TestDir_KeysAreEscaped(t *testing.T) {
	folder := t.TempDir()
	d, err := OpenDir(folder, nil)
	require.NoError(t, err)

	require.NoError(t, d.Set("users/42 goal", "x"))
	require.NoError(t, d.Set("a", "y"))

	keys, err := d.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "users/42 goal"}, keys)

	entries, err := os.ReadDir(folder)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files must not be left behind")
}

// A session persisted in a Dir survives a restart.
func TestDir_Session(t *testing.T) {
	folder := t.TempDir()
	d, err := OpenDir(folder, nil)
	require.NoError(t, err)

	s := sip.NewSession(d, "sipCalculatorState")
	_, err = s.Recompute(sip.DefaultState().Plan)
	require.NoError(t, err)

	reopened, err := OpenDir(folder, nil)
	require.NoError(t, err)
	got := sip.NewSession(reopened, "sipCalculatorState").State()
	assert.True(t, got.Equal(s.State()))
	assert.True(t, got.ResultsVisible)
}
