// Package utils содержит утилитарные функции, используемые в разных частях приложения
package utils

import (
	"github.com/mattn/go-runewidth"
)

// TruncateString обрезает строку до указанной ширины в колонках терминала,
// добавляя "..." если строка длиннее
func TruncateString(s string, maxLen int) string {
	if runewidth.StringWidth(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return runewidth.Truncate(s, maxLen, "")
	}
	return runewidth.Truncate(s, maxLen, "...")
}

// PadRight дополняет строку пробелами справа до указанной ширины
func PadRight(s string, width int) string {
	return runewidth.FillRight(TruncateString(s, width), width)
}
