package playlist

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazadus/go-playlist/internal/data"
)

func track(title string) data.Track {
	return data.Track{Title: title, Artist: "Artist " + title, Mood: "calm"}
}

func titles(tracks []data.Track) []string {
	out := make([]string, len(tracks))
	for i, t := range tracks {
		out[i] = t.Title
	}
	return out
}

// assertRing проверяет, что N шагов вперед от головы и N шагов назад
// от хвоста замыкают кольцо, а prev обратен next
func assertRing(t *testing.T, s *Sequence) {
	t.Helper()

	n := s.Len()
	if n == 0 {
		require.True(t, s.IsEmpty())
		_, ok := s.Head()
		assert.False(t, ok)
		_, ok = s.Tail()
		assert.False(t, ok)
		return
	}

	head, ok := s.Head()
	require.True(t, ok)
	tail, ok := s.Tail()
	require.True(t, ok)

	h := head
	for i := 0; i < n; i++ {
		next := s.Next(h)
		assert.Equal(t, h, s.Prev(next), "prev должен быть обратен next")
		h = next
	}
	assert.Equal(t, head, h, "после N шагов вперед должны вернуться к голове")

	h = tail
	for i := 0; i < n; i++ {
		h = s.Prev(h)
	}
	assert.Equal(t, tail, h, "после N шагов назад должны вернуться к хвосту")

	assert.Equal(t, head, s.Next(tail))
}

func TestSequence_Empty(t *testing.T) {
	s := NewSequence()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Tracks())
	assertRing(t, s)
}

func TestSequence_AppendSingleSelfLinks(t *testing.T) {
	s := NewSequence()
	h := s.Append(track("A"))

	head, _ := s.Head()
	tail, _ := s.Tail()
	assert.Equal(t, h, head)
	assert.Equal(t, h, tail)
	assert.Equal(t, h, s.Next(h))
	assert.Equal(t, h, s.Prev(h))
}

func TestSequence_Circularity(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 50} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			s := NewSequence()
			for i := 0; i < n; i++ {
				s.Append(track(fmt.Sprintf("T%d", i)))
			}
			require.Equal(t, n, s.Len())
			assertRing(t, s)
		})
	}
}

func TestSequence_RemoveScenario(t *testing.T) {
	s := NewSequence()
	a := s.Append(data.Track{Title: "A", Artist: "X", Mood: "happy"})
	s.Append(data.Track{Title: "B", Artist: "Y", Mood: "sad"})
	c := s.Append(data.Track{Title: "C", Artist: "Z", Mood: "calm"})

	assert.Equal(t, []string{"A", "B", "C"}, titles(s.Tracks()))

	_, ok := s.RemoveByTitle("B")
	require.True(t, ok)

	assert.Equal(t, []string{"A", "C"}, titles(s.Tracks()))
	assert.Equal(t, c, s.Next(a))
	assert.Equal(t, a, s.Next(c))
	assertRing(t, s)
}

func TestSequence_RemoveHeadAndTail(t *testing.T) {
	s := NewSequence()
	for _, title := range []string{"A", "B", "C", "D"} {
		s.Append(track(title))
	}

	_, ok := s.RemoveByTitle("A")
	require.True(t, ok)
	head, _ := s.Head()
	headTrack, _ := s.Track(head)
	assert.Equal(t, "B", headTrack.Title)
	assertRing(t, s)

	_, ok = s.RemoveByTitle("D")
	require.True(t, ok)
	tail, _ := s.Tail()
	tailTrack, _ := s.Track(tail)
	assert.Equal(t, "C", tailTrack.Title)
	assertRing(t, s)

	assert.Equal(t, []string{"B", "C"}, titles(s.Tracks()))
}

func TestSequence_RemoveMissingIsNoop(t *testing.T) {
	s := NewSequence()
	s.Append(track("A"))
	s.Append(track("B"))
	before := s.Tracks()

	_, ok := s.RemoveByTitle("Z")

	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, before, s.Tracks())
	assertRing(t, s)
}

func TestSequence_RemoveFirstDuplicateOnly(t *testing.T) {
	s := NewSequence()
	s.Append(data.Track{Title: "Same", Artist: "first", Mood: "m"})
	s.Append(track("Other"))
	s.Append(data.Track{Title: "Same", Artist: "second", Mood: "m"})

	_, ok := s.RemoveByTitle("Same")
	require.True(t, ok)

	tracks := s.Tracks()
	require.Len(t, tracks, 2)
	assert.Equal(t, "Other", tracks[0].Title)
	assert.Equal(t, "second", tracks[1].Artist)
}

func TestSequence_RemoveAll(t *testing.T) {
	s := NewSequence()
	names := []string{"A", "B", "C", "D", "E"}
	for _, title := range names {
		s.Append(track(title))
	}

	for i, title := range names {
		_, ok := s.RemoveByTitle(title)
		require.True(t, ok)
		assert.Equal(t, len(names)-i-1, s.Len())
		assertRing(t, s)
	}

	assert.True(t, s.IsEmpty())
}

func TestSequence_StaleHandleAfterReuse(t *testing.T) {
	s := NewSequence()
	s.Append(track("A"))
	b := s.Append(track("B"))

	_, ok := s.RemoveByTitle("B")
	require.True(t, ok)
	assert.False(t, s.Valid(b))

	// Новый трек занимает освободившийся слот
	c := s.Append(track("C"))
	assert.Equal(t, b.slot, c.slot)
	assert.False(t, s.Valid(b))

	_, ok = s.Track(b)
	assert.False(t, ok)
	got, ok := s.Track(c)
	require.True(t, ok)
	assert.Equal(t, "C", got.Title)
	assertRing(t, s)
}

func TestSequence_AllIsRestartable(t *testing.T) {
	s := NewSequence()
	s.Append(track("A"))
	s.Append(track("B"))

	seq := s.All()
	var first, second []string
	for _, tr := range seq {
		first = append(first, tr.Title)
	}
	for _, tr := range seq {
		second = append(second, tr.Title)
	}

	assert.Equal(t, []string{"A", "B"}, first)
	assert.Equal(t, first, second)

	// Ранний выход из обхода
	count := 0
	for range s.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestSequence_Clear(t *testing.T) {
	s := NewSequence()
	h := s.Append(track("A"))
	s.Clear()

	assert.True(t, s.IsEmpty())
	assert.False(t, s.Valid(h))
	assertRing(t, s)
}
