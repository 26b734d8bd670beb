package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeString возвращается при некорректном каноническом времени (ожидается "HH:MM")
	ErrInvalidTimeString = errors.New("types: invalid time string format")
)

// TimeString каноническое представление времени суток в формате "HH:MM" (24 часа).
// Используется для сравнения интервалов; пользовательское отображение — DisplayTime.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	t := TimeString(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate проверяет, что значение имеет вид "HH:MM" и лежит в пределах суток
func (t TimeString) Validate() error {
	_, err := t.totalMinutes()
	return err
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает каноническую строку "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.totalMinutes()
	b, errB := other.totalMinutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.totalMinutes()
	b, errB := other.totalMinutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// InRange проверяет попадание в полуоткрытый интервал [start, end)
func (t TimeString) InRange(start, end TimeString) bool {
	v, err := t.totalMinutes()
	if err != nil {
		return false
	}
	s, err := start.totalMinutes()
	if err != nil {
		return false
	}
	e, err := end.totalMinutes()
	if err != nil {
		return false
	}
	return v >= s && v < e
}

// AddMinutes возвращает новый TimeString, сдвинутый на m минут вперед.
// Выход за границу суток считается ошибкой: слоты не пересекают полночь.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	v, err := t.totalMinutes()
	if err != nil {
		return "", err
	}
	v += m
	if v < 0 || v > 24*60 {
		return "", fmt.Errorf("%w: %s + %d minutes is out of day bounds", ErrInvalidTimeString, t, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", v/60, v%60)), nil
}

// totalMinutes парсит "HH:MM" в количество минут с начала суток
func (t TimeString) totalMinutes() (int, error) {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}

	return hours*60 + minutes, nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = TimeString(v)
		return nil
	case []byte:
		*t = TimeString(v)
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}
