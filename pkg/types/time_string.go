package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM[:SS]
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате HH:MM или HH:MM:SS
// Хранит исходную строку как есть (так её отдаёт сервис расписания),
// а для сравнений и арифметики переводится в минуты от начала суток
type TimeString string

// FromMinutes создает TimeString из количества минут от начала суток (0..1440)
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes is out of day range", ErrInvalidTimeString, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)), nil
}

// String возвращает исходное строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не указано
func (t TimeString) IsZero() bool {
	return strings.TrimSpace(string(t)) == ""
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	return parseMinutes(string(t))
}

// Hour возвращает час по первым двум символам значения ("9:00" -> 9, "12:75" -> 12)
// Остальная часть строки не проверяется
func (t TimeString) Hour() (int, error) {
	s := strings.TrimSpace(string(t))
	if len(s) > 2 {
		s = s[:2]
	}
	digits := leadingDigits(s)
	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	hour, _ := strconv.Atoi(digits)
	return hour, nil
}

// HHMM возвращает первые пять символов значения (секунды отбрасываются)
func (t TimeString) HHMM() string {
	s := strings.TrimSpace(string(t))
	if len(s) > 5 {
		return s[:5]
	}
	return s
}

// AddMinutes возвращает время, сдвинутое на n минут
// Результат не может выходить за пределы суток
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	minutes, err := parseMinutes(string(t))
	if err != nil {
		return "", err
	}
	return FromMinutes(minutes + n)
}

// parseMinutes читает ведущие H:MM или HH:MM
// Всё после минут (секунды, доли секунды, смещение) игнорируется
// Допускается 24:00 как конец суток
func parseMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)

	hourPart := leadingDigits(s)
	if hourPart == "" || len(hourPart) > 2 || len(s) <= len(hourPart) || s[len(hourPart)] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	rest := s[len(hourPart)+1:]
	minutePart := leadingDigits(rest)
	if len(minutePart) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hours, _ := strconv.Atoi(hourPart)
	minutes, _ := strconv.Atoi(minutePart)
	if minutes >= minutesPerHour || hours > 24 || (hours == 24 && minutes != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return hours*minutesPerHour + minutes, nil
}

func leadingDigits(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return s[:i]
		}
	}
	return s
}
