// Package playlist содержит ядро плейлиста: кольцевую последовательность
// треков, индекс по названию и курсор воспроизведения
package playlist

import (
	"iter"

	"github.com/hazadus/go-playlist/internal/data"
)

// noSlot обозначает отсутствие ссылки на слот арены
const noSlot = -1

// Handle - стабильная ссылка на запись в последовательности.
// После удаления записи ссылка становится недействительной.
type Handle struct {
	slot int
	gen  uint32
}

// node - слот арены
type node struct {
	track data.Track
	next  int
	prev  int
	gen   uint32
	used  bool
}

// Sequence - кольцевой двусвязный список треков, хранящийся в арене.
// Связи next/prev - индексы слотов, освобожденные слоты переиспользуются.
type Sequence struct {
	nodes []node
	free  []int
	head  int
	tail  int
	count int
}

// NewSequence создает пустую последовательность
func NewSequence() *Sequence {
	return &Sequence{head: noSlot, tail: noSlot}
}

// IsEmpty возвращает true, если в последовательности нет треков
func (s *Sequence) IsEmpty() bool {
	return s.head == noSlot
}

// Len возвращает количество треков
func (s *Sequence) Len() int {
	return s.count
}

// Append добавляет трек в конец кольца
func (s *Sequence) Append(track data.Track) Handle {
	slot := s.alloc(track)

	if s.head == noSlot {
		// Единственный элемент замыкается сам на себя
		s.nodes[slot].next = slot
		s.nodes[slot].prev = slot
		s.head = slot
		s.tail = slot
	} else {
		s.nodes[s.tail].next = slot
		s.nodes[slot].prev = s.tail
		s.nodes[slot].next = s.head
		s.nodes[s.head].prev = slot
		s.tail = slot
	}

	s.count++
	return s.handle(slot)
}

// RemoveByTitle удаляет первый трек с точным совпадением названия,
// обходя кольцо от головы ровно один раз
func (s *Sequence) RemoveByTitle(title string) (Handle, bool) {
	h, ok := s.FindByTitle(title)
	if !ok {
		return Handle{}, false
	}
	s.unlink(h.slot)
	return h, true
}

// FindByTitle возвращает первый трек с точным совпадением названия
// в порядке кольца начиная с головы
func (s *Sequence) FindByTitle(title string) (Handle, bool) {
	for h, track := range s.All() {
		if track.Title == title {
			return h, true
		}
	}
	return Handle{}, false
}

// All возвращает ленивый обход кольца от головы ровно один круг
func (s *Sequence) All() iter.Seq2[Handle, data.Track] {
	return func(yield func(Handle, data.Track) bool) {
		if s.head == noSlot {
			return
		}
		slot := s.head
		for {
			if !yield(s.handle(slot), s.nodes[slot].track) {
				return
			}
			slot = s.nodes[slot].next
			if slot == s.head {
				return
			}
		}
	}
}

// Tracks возвращает копию треков в порядке кольца
func (s *Sequence) Tracks() []data.Track {
	tracks := make([]data.Track, 0, s.count)
	for _, track := range s.All() {
		tracks = append(tracks, track)
	}
	return tracks
}

// Head возвращает ссылку на голову кольца
func (s *Sequence) Head() (Handle, bool) {
	if s.head == noSlot {
		return Handle{}, false
	}
	return s.handle(s.head), true
}

// Tail возвращает ссылку на хвост кольца
func (s *Sequence) Tail() (Handle, bool) {
	if s.tail == noSlot {
		return Handle{}, false
	}
	return s.handle(s.tail), true
}

// Valid проверяет, что ссылка указывает на существующую запись
func (s *Sequence) Valid(h Handle) bool {
	if h.slot < 0 || h.slot >= len(s.nodes) {
		return false
	}
	n := &s.nodes[h.slot]
	return n.used && n.gen == h.gen
}

// Track возвращает трек по ссылке
func (s *Sequence) Track(h Handle) (data.Track, bool) {
	if !s.Valid(h) {
		return data.Track{}, false
	}
	return s.nodes[h.slot].track, true
}

// Next возвращает следующую запись кольца. Для недействительной ссылки
// возвращается голова.
func (s *Sequence) Next(h Handle) Handle {
	if !s.Valid(h) {
		head, _ := s.Head()
		return head
	}
	return s.handle(s.nodes[h.slot].next)
}

// Prev возвращает предыдущую запись кольца. Для недействительной ссылки
// возвращается хвост.
func (s *Sequence) Prev(h Handle) Handle {
	if !s.Valid(h) {
		tail, _ := s.Tail()
		return tail
	}
	return s.handle(s.nodes[h.slot].prev)
}

// Clear освобождает все записи
func (s *Sequence) Clear() {
	s.nodes = nil
	s.free = nil
	s.head = noSlot
	s.tail = noSlot
	s.count = 0
}

func (s *Sequence) handle(slot int) Handle {
	return Handle{slot: slot, gen: s.nodes[slot].gen}
}

// alloc занимает свободный слот или расширяет арену
func (s *Sequence) alloc(track data.Track) int {
	if n := len(s.free); n > 0 {
		slot := s.free[n-1]
		s.free = s.free[:n-1]
		s.nodes[slot].track = track
		s.nodes[slot].used = true
		return slot
	}
	s.nodes = append(s.nodes, node{track: track, next: noSlot, prev: noSlot, gen: 1, used: true})
	return len(s.nodes) - 1
}

// unlink исключает слот из кольца и освобождает его
func (s *Sequence) unlink(slot int) {
	n := &s.nodes[slot]

	if n.next == slot {
		// Удаляется последний элемент
		s.head = noSlot
		s.tail = noSlot
	} else {
		s.nodes[n.prev].next = n.next
		s.nodes[n.next].prev = n.prev
		if slot == s.head {
			s.head = n.next
		}
		if slot == s.tail {
			s.tail = n.prev
		}
	}

	n.track = data.Track{}
	n.next = noSlot
	n.prev = noSlot
	n.used = false
	n.gen++
	s.free = append(s.free, slot)
	s.count--
}
