package checklist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youruser/surgechecklist/internal/cards"
	"github.com/youruser/surgechecklist/internal/logger"
)

func open(t *testing.T) (*Service, *cards.Store) {
	t.Helper()
	store := cards.NewStore(filepath.Join(t.TempDir(), "surge_checklist.json"))
	svc, err := Open(store, logger.Discard())
	require.NoError(t, err)
	return svc, store
}

func reload(t *testing.T, store *cards.Store) *cards.Collection {
	t.Helper()
	c, err := store.Load()
	require.NoError(t, err)
	return c
}

func TestOpen_MaterialisesDefault(t *testing.T) {
	svc, store := open(t)

	_, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.True(t, reload(t, store).Equal(cards.DefaultCollection()))
	assert.True(t, svc.Snapshot().Equal(cards.DefaultCollection()))
}

func TestOpen_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Open(cards.NewStore(path), logger.Discard())
	require.Error(t, err)
	assert.True(t, cards.IsKind(err, cards.KindParse))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "not json", string(b))
}

func TestOpen_NonCollectionFileUntouched(t *testing.T) {
	for _, doc := range []string{`null`, `{"decks":[{"name":"mine"}]}`} {
		path := filepath.Join(t.TempDir(), "c.json")
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		_, err := Open(cards.NewStore(path), logger.Discard())
		require.Error(t, err, doc)
		assert.True(t, cards.IsKind(err, cards.KindParse))

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, doc, string(b))
	}
}

// blockSaves replaces the data file with a non-empty directory so the
// rename in Save fails.
func blockSaves(t *testing.T, store *cards.Store) {
	t.Helper()
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(store.Path(), "keep"), []byte("x"), 0o644))
}

func TestUpdate_FailedSaveRollsBack(t *testing.T) {
	svc, store := open(t)
	before := svc.Snapshot()
	blockSaves(t, store)

	added, err := svc.AddSet("Opus X")
	require.Error(t, err)
	assert.True(t, cards.IsKind(err, cards.KindIO))
	assert.False(t, added)

	_, err = svc.AddCard(cards.NewCard{Name: "Aerith", NewSet: "Opus Y"})
	require.Error(t, err)

	require.Error(t, svc.ToggleOwned(0, true))
	require.Error(t, svc.SetOwnedVisible([]int{1}, []int{1}))

	assert.True(t, before.Equal(svc.Snapshot()))
	assert.Equal(t, 0, svc.Stats().Owned)
}

func TestToggleOwned_Persists(t *testing.T) {
	svc, store := open(t)

	require.NoError(t, svc.ToggleOwned(1, true))
	assert.True(t, reload(t, store).Cards[1].Owned)
	assert.Equal(t, 1, svc.Stats().Owned)

	assert.ErrorIs(t, svc.ToggleOwned(10, true), cards.ErrIndexOutOfRange)
}

func TestSetOwnedVisible(t *testing.T) {
	svc, store := open(t)
	require.NoError(t, svc.ToggleOwned(2, true))

	require.NoError(t, svc.SetOwnedVisible([]int{0, 1}, []int{0}))

	c := reload(t, store)
	assert.True(t, c.Cards[0].Owned)
	assert.False(t, c.Cards[1].Owned)
	assert.True(t, c.Cards[2].Owned, "cards outside the visible set are untouched")

	assert.ErrorIs(t, svc.SetOwnedVisible([]int{0, 7}, nil), cards.ErrIndexOutOfRange)
	assert.True(t, svc.Snapshot().Cards[0].Owned)
}

func TestAddCardAndSet_Persist(t *testing.T) {
	svc, store := open(t)

	ok, err := svc.AddCard(cards.NewCard{Name: "Aerith", NewSet: "Opus II", Type: cards.TypeCharacter, Value: cards.NewPrice(3)})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.AddCard(cards.NewCard{Set: "Opus II"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.AddSet("Opus II")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.AddSet("Opus III")
	require.NoError(t, err)
	assert.True(t, ok)

	c := reload(t, store)
	assert.Len(t, c.Cards, 4)
	assert.Equal(t, []string{"Dawn of Heroes", "Rebellion's Call", "Opus II", "Opus III"}, c.Sets)
	assert.True(t, c.Equal(svc.Snapshot()))
}

func TestSnapshot_IsCopy(t *testing.T) {
	svc, _ := open(t)

	snap := svc.Snapshot()
	snap.Cards[0].Owned = true

	assert.False(t, svc.Snapshot().Cards[0].Owned)
}
