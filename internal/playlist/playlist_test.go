package playlist

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazadus/go-playlist/internal/data"
)

func newPlaylist(opts ...Option) *Playlist {
	p := New(opts...)
	p.Add(data.Track{Title: "A", Artist: "X", Mood: "happy"})
	p.Add(data.Track{Title: "B", Artist: "Y", Mood: "sad"})
	p.Add(data.Track{Title: "C", Artist: "Z", Mood: "calm"})
	return p
}

func TestPlaylist_Scenario(t *testing.T) {
	p := newPlaylist()

	assert.Equal(t, []string{"A", "B", "C"}, titles(p.Tracks()))
	require.NoError(t, p.Remove("B"))
	assert.Equal(t, []string{"A", "C"}, titles(p.Tracks()))
	assert.Equal(t, 2, p.Len())
}

func TestPlaylist_RemoveErrors(t *testing.T) {
	p := New()
	assert.ErrorIs(t, p.Remove("A"), ErrEmptyPlaylist)

	p = newPlaylist()
	assert.ErrorIs(t, p.Remove("Nope"), ErrNotFound)
	assert.Equal(t, 3, p.Len())
}

func TestPlaylist_Search(t *testing.T) {
	p := New()
	_, err := p.Search("A")
	assert.ErrorIs(t, err, ErrEmptyPlaylist)

	p = newPlaylist()
	tr, err := p.Search("B")
	require.NoError(t, err)
	assert.Equal(t, "Y", tr.Artist)

	_, err = p.Search("Missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlaylist_SearchCollision(t *testing.T) {
	// Совместимый режим: поиск отдает содержимое корзины как есть
	compat := New(WithStrictSearch(false), WithIndexPruning(false))
	compat.Add(data.Track{Title: "A", Artist: "first", Mood: "m"})
	compat.Add(data.Track{Title: "Ad", Artist: "second", Mood: "m"})

	tr, err := compat.Search("A")
	require.NoError(t, err)
	assert.Equal(t, "Ad", tr.Title)

	// Строгий режим: чужой трек в корзине не считается находкой
	strict := New()
	strict.Add(data.Track{Title: "A", Artist: "first", Mood: "m"})
	strict.Add(data.Track{Title: "Ad", Artist: "second", Mood: "m"})

	_, err = strict.Search("A")
	assert.ErrorIs(t, err, ErrNotFound)
	tr, err = strict.Search("Ad")
	require.NoError(t, err)
	assert.Equal(t, "second", tr.Artist)
}

func TestPlaylist_SearchAfterRemove(t *testing.T) {
	for _, prune := range []bool{true, false} {
		p := newPlaylist(WithIndexPruning(prune), WithStrictSearch(false))
		require.NoError(t, p.Remove("B"))

		// Ссылка в корзине устарела и не разрешается ни в каком режиме
		_, err := p.Search("B")
		assert.ErrorIs(t, err, ErrNotFound, "prune=%v", prune)
	}
}

func TestPlaylist_NextPrevious(t *testing.T) {
	p := New()
	_, err := p.Next(ModeLinear)
	assert.ErrorIs(t, err, ErrEmptyPlaylist)
	_, err = p.Previous()
	assert.ErrorIs(t, err, ErrEmptyPlaylist)

	p = newPlaylist()
	tr, err := p.Next(ModeLinear)
	require.NoError(t, err)
	assert.Equal(t, "B", tr.Title)

	tr, err = p.Previous()
	require.NoError(t, err)
	assert.Equal(t, "A", tr.Title)

	tr, err = p.Previous()
	require.NoError(t, err)
	assert.Equal(t, "C", tr.Title)

	cur, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "C", cur.Title)
}

func TestPlaylist_RemoveCurrentKeepsFlow(t *testing.T) {
	p := newPlaylist()
	require.NoError(t, p.Seek("B"))

	require.NoError(t, p.Remove("B"))

	cur, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "A", cur.Title)

	tr, err := p.Next(ModeLinear)
	require.NoError(t, err)
	assert.Equal(t, "C", tr.Title)
}

func TestPlaylist_RemoveLastResetsCursor(t *testing.T) {
	p := New()
	p.Add(data.Track{Title: "Only", Artist: "X", Mood: "m"})
	_, err := p.Next(ModeLinear)
	require.NoError(t, err)

	require.NoError(t, p.Remove("Only"))

	assert.True(t, p.IsEmpty())
	_, ok := p.Current()
	assert.False(t, ok)

	p.Add(data.Track{Title: "New", Artist: "Y", Mood: "m"})
	tr, err := p.Next(ModeLinear)
	require.NoError(t, err)
	assert.Equal(t, "New", tr.Title)
}

func TestPlaylist_PremiumShuffle(t *testing.T) {
	p := newPlaylist(WithRand(rand.New(rand.NewPCG(9, 9))))
	assert.False(t, p.IsPremium())

	p.GrantPremium()
	assert.True(t, p.IsPremium())

	members := map[string]bool{"A": true, "B": true, "C": true}
	for i := 0; i < 50; i++ {
		tr, err := p.Next(ModeShuffled)
		require.NoError(t, err)
		assert.True(t, members[tr.Title])
	}
}

func TestPlaylist_SeekAndPosition(t *testing.T) {
	p := New()
	i, n := p.Position()
	assert.Equal(t, 0, i)
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, p.Seek("A"), ErrEmptyPlaylist)

	p = newPlaylist()
	i, n = p.Position()
	assert.Equal(t, 1, i)
	assert.Equal(t, 3, n)

	require.NoError(t, p.Seek("C"))
	i, _ = p.Position()
	assert.Equal(t, 3, i)

	assert.ErrorIs(t, p.Seek("Z"), ErrNotFound)
}

func TestPlaylist_Close(t *testing.T) {
	p := newPlaylist()
	p.GrantPremium()
	p.Close()

	assert.True(t, p.IsEmpty())
	assert.Empty(t, p.Tracks())
	_, ok := p.Current()
	assert.False(t, ok)
}
