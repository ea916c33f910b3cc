package playlist

// Mode определяет способ выбора следующего трека
type Mode int

const (
	// ModeLinear - следующий трек по кольцу
	ModeLinear Mode = iota
	// ModeShuffled - случайный трек (только для премиум-режима)
	ModeShuffled
)

// String возвращает название режима
func (m Mode) String() string {
	switch m {
	case ModeShuffled:
		return "shuffled"
	default:
		return "linear"
	}
}

// ParseMode преобразует строку в Mode. Неизвестные значения дают ModeLinear.
func ParseMode(s string) Mode {
	switch s {
	case "shuffled", "shuffle", "2":
		return ModeShuffled
	default:
		return ModeLinear
	}
}
