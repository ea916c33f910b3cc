package playlist

import (
	"math/rand/v2"
)

// Cursor хранит текущую позицию воспроизведения и флаг премиум-режима
type Cursor struct {
	position   Handle
	positioned bool
	privileged bool
	rnd        *rand.Rand
}

// NewCursor создает курсор в состоянии Empty. rnd используется для
// случайного выбора; nil означает глобальный генератор.
func NewCursor(rnd *rand.Rand) *Cursor {
	return &Cursor{rnd: rnd}
}

// GrantPrivilege включает премиум-режим. Отменить его нельзя.
func (c *Cursor) GrantPrivilege() {
	c.privileged = true
}

// Privileged возвращает true в премиум-режиме
func (c *Cursor) Privileged() bool {
	return c.privileged
}

// Position возвращает текущий трек. Если курсор не был спозиционирован,
// текущим считается голова кольца.
func (c *Cursor) Position(seq *Sequence) (Handle, bool) {
	if seq.IsEmpty() {
		return Handle{}, false
	}
	if c.positioned && seq.Valid(c.position) {
		return c.position, true
	}
	return seq.Head()
}

// Seek устанавливает курсор на указанную запись
func (c *Cursor) Seek(h Handle) {
	c.position = h
	c.positioned = true
}

// Reset возвращает курсор в состояние Empty, сохраняя премиум-режим
func (c *Cursor) Reset() {
	c.position = Handle{}
	c.positioned = false
}

// Advance переходит к следующему треку. Режим учитывается только в
// премиум-режиме.
func (c *Cursor) Advance(seq *Sequence, mode Mode) (Handle, error) {
	current, ok := c.Position(seq)
	if !ok {
		return Handle{}, ErrEmptyPlaylist
	}

	var next Handle
	if c.privileged && mode == ModeShuffled {
		next = c.pick(seq)
	} else {
		next = seq.Next(current)
	}

	c.Seek(next)
	return next, nil
}

// Retreat переходит к предыдущему треку независимо от режима
func (c *Cursor) Retreat(seq *Sequence) (Handle, error) {
	current, ok := c.Position(seq)
	if !ok {
		return Handle{}, ErrEmptyPlaylist
	}

	prev := seq.Prev(current)
	c.Seek(prev)
	return prev, nil
}

// pick выбирает случайный трек. Отсчет всегда ведется от головы кольца,
// а не от текущей позиции.
func (c *Cursor) pick(seq *Sequence) Handle {
	count := 0
	for range seq.All() {
		count++
	}

	steps := c.intN(count)
	h, _ := seq.Head()
	for i := 0; i < steps; i++ {
		h = seq.Next(h)
	}
	return h
}

func (c *Cursor) intN(n int) int {
	if c.rnd != nil {
		return c.rnd.IntN(n)
	}
	return rand.IntN(n)
}
