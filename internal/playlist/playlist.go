package playlist

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/hazadus/go-playlist/internal/data"
)

var (
	// ErrNotFound возвращается, если трек с таким названием не найден
	ErrNotFound = errors.New("трек не найден")
	// ErrEmptyPlaylist возвращается при операциях над пустым плейлистом
	ErrEmptyPlaylist = errors.New("плейлист пуст")
)

// Option настраивает Playlist
type Option func(*Playlist)

// WithStrictSearch включает проверку названия найденного в индексе трека.
// Без нее поиск возвращает то, что лежит в корзине, даже при коллизии.
func WithStrictSearch(strict bool) Option {
	return func(p *Playlist) {
		p.strictSearch = strict
	}
}

// WithIndexPruning включает очистку корзины индекса при удалении трека
func WithIndexPruning(prune bool) Option {
	return func(p *Playlist) {
		p.pruneIndex = prune
	}
}

// WithRand задает генератор случайных чисел для случайного воспроизведения
func WithRand(rnd *rand.Rand) Option {
	return func(p *Playlist) {
		p.rnd = rnd
	}
}

// Playlist объединяет последовательность, индекс и курсор. Экземпляр
// принадлежит вызывающему коду и передается в каждую операцию.
type Playlist struct {
	seq    *Sequence
	index  *Index
	cursor *Cursor

	strictSearch bool
	pruneIndex   bool
	rnd          *rand.Rand
}

// New создает пустой плейлист
func New(opts ...Option) *Playlist {
	p := &Playlist{
		seq:          NewSequence(),
		index:        NewIndex(),
		strictSearch: true,
		pruneIndex:   true,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.cursor = NewCursor(p.rnd)
	return p
}

// Add добавляет трек в конец плейлиста и в индекс
func (p *Playlist) Add(track data.Track) {
	h := p.seq.Append(track)
	p.index.Put(track.Title, h)
}

// Remove удаляет первый трек с указанным названием
func (p *Playlist) Remove(title string) error {
	if p.seq.IsEmpty() {
		return ErrEmptyPlaylist
	}

	h, ok := p.seq.FindByTitle(title)
	if !ok {
		return fmt.Errorf("%q: %w", title, ErrNotFound)
	}

	// Если удаляется текущий трек, курсор переходит на предыдущий, чтобы
	// следующий линейный шаг попал на бывшего преемника
	if current, ok := p.cursor.Position(p.seq); ok && current == h {
		if prev := p.seq.Prev(h); prev != h {
			p.cursor.Seek(prev)
		} else {
			p.cursor.Reset()
		}
	}

	p.seq.RemoveByTitle(title)
	if p.pruneIndex {
		p.index.Delete(title, h)
	}
	if p.seq.IsEmpty() {
		p.cursor.Reset()
	}
	return nil
}

// Search ищет трек по точному названию через индекс
func (p *Playlist) Search(title string) (data.Track, error) {
	if p.seq.IsEmpty() {
		return data.Track{}, ErrEmptyPlaylist
	}

	h, ok := p.index.Get(title)
	if !ok {
		return data.Track{}, fmt.Errorf("%q: %w", title, ErrNotFound)
	}

	track, ok := p.seq.Track(h)
	if !ok {
		// Корзина ссылается на удаленный трек
		return data.Track{}, fmt.Errorf("%q: %w", title, ErrNotFound)
	}
	if p.strictSearch && track.Title != title {
		return data.Track{}, fmt.Errorf("%q: %w", title, ErrNotFound)
	}
	return track, nil
}

// Tracks возвращает треки в порядке воспроизведения
func (p *Playlist) Tracks() []data.Track {
	return p.seq.Tracks()
}

// All возвращает ленивый обход треков от головы
func (p *Playlist) All() iter.Seq2[Handle, data.Track] {
	return p.seq.All()
}

// Len возвращает количество треков
func (p *Playlist) Len() int {
	return p.seq.Len()
}

// IsEmpty возвращает true, если треков нет
func (p *Playlist) IsEmpty() bool {
	return p.seq.IsEmpty()
}

// GrantPremium включает премиум-режим
func (p *Playlist) GrantPremium() {
	p.cursor.GrantPrivilege()
}

// IsPremium возвращает true в премиум-режиме
func (p *Playlist) IsPremium() bool {
	return p.cursor.Privileged()
}

// Next переходит к следующему треку и возвращает его
func (p *Playlist) Next(mode Mode) (data.Track, error) {
	h, err := p.cursor.Advance(p.seq, mode)
	if err != nil {
		return data.Track{}, err
	}
	track, _ := p.seq.Track(h)
	return track, nil
}

// Previous переходит к предыдущему треку и возвращает его
func (p *Playlist) Previous() (data.Track, error) {
	h, err := p.cursor.Retreat(p.seq)
	if err != nil {
		return data.Track{}, err
	}
	track, _ := p.seq.Track(h)
	return track, nil
}

// Current возвращает текущий трек
func (p *Playlist) Current() (data.Track, bool) {
	h, ok := p.cursor.Position(p.seq)
	if !ok {
		return data.Track{}, false
	}
	return p.seq.Track(h)
}

// Seek устанавливает курсор на первый трек с указанным названием
func (p *Playlist) Seek(title string) error {
	if p.seq.IsEmpty() {
		return ErrEmptyPlaylist
	}
	h, ok := p.seq.FindByTitle(title)
	if !ok {
		return fmt.Errorf("%q: %w", title, ErrNotFound)
	}
	p.cursor.Seek(h)
	return nil
}

// Position возвращает порядковый номер текущего трека (с единицы) и
// общее количество треков. Для пустого плейлиста возвращает 0, 0.
func (p *Playlist) Position() (int, int) {
	current, ok := p.cursor.Position(p.seq)
	if !ok {
		return 0, 0
	}
	i := 0
	for h := range p.seq.All() {
		i++
		if h == current {
			break
		}
	}
	return i, p.seq.Len()
}

// Close освобождает все треки при завершении работы
func (p *Playlist) Close() {
	p.seq.Clear()
	p.index.Reset()
	p.cursor.Reset()
}
