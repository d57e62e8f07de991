package dialog

import (
	"strings"
	"unicode/utf8"
)

// validDate — структурная проверка YYYY-MM-DD: длина и позиции дефисов.
// Календарная корректность не проверяется: дата в норме приходит кнопкой.
func validDate(text string) bool {
	return len(text) == 10 && text[4] == '-' && text[7] == '-'
}

func validName(text string) bool {
	return utf8.RuneCountInString(text) >= 2
}

// normalizePhone убирает пробелы; validPhone требует «+» и только цифры
// после него.
func normalizePhone(text string) string {
	return strings.ReplaceAll(text, " ", "")
}

func validPhone(phone string) bool {
	if len(phone) < 2 || phone[0] != '+' {
		return false
	}
	for _, r := range phone[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
