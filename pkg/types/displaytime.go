package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidDisplayTime возвращается при некорректном отображаемом времени (ожидается "H:MM AM/PM")
	ErrInvalidDisplayTime = errors.New("types: invalid display time format")
)

// DisplayTime пользовательское представление времени суток в 12-часовом формате,
// например "9:00 AM" или "12:30 PM". Именно эта форма является идентичностью слота:
// клиент выбирает слот из сетки, БД хранит это же значение.
// Все сравнения интервалов выполняются только после конвертации в TimeString.
type DisplayTime string

// ParseDisplayTime создает DisplayTime из строки с валидацией формата
func ParseDisplayTime(s string) (DisplayTime, error) {
	d := DisplayTime(s)
	if _, err := d.To24h(); err != nil {
		return "", err
	}
	return d, nil
}

// String возвращает отображаемую строку
func (d DisplayTime) String() string {
	return string(d)
}

// IsZero возвращает true для пустого значения
func (d DisplayTime) IsZero() bool {
	return d == ""
}

// To24h конвертирует "H:MM AM/PM" в каноническую форму "HH:MM".
// Правила: 12:xx AM -> 00:xx, 12:xx PM -> 12:xx, иначе PM добавляет 12 часов.
func (d DisplayTime) To24h() (TimeString, error) {
	parts := strings.Split(string(d), " ")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: %q: missing AM/PM separator", ErrInvalidDisplayTime, string(d))
	}

	clock := strings.Split(parts[0], ":")
	if len(clock) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDisplayTime, string(d))
	}

	hours, err := strconv.Atoi(clock[0])
	if err != nil {
		return "", fmt.Errorf("%w: %q: non-numeric hour", ErrInvalidDisplayTime, string(d))
	}
	minutes, err := strconv.Atoi(clock[1])
	if err != nil {
		return "", fmt.Errorf("%w: %q: non-numeric minutes", ErrInvalidDisplayTime, string(d))
	}
	if hours < 1 || hours > 12 || minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("%w: %q", ErrInvalidDisplayTime, string(d))
	}

	switch parts[1] {
	case "AM":
		if hours == 12 {
			hours = 0
		}
	case "PM":
		if hours != 12 {
			hours += 12
		}
	default:
		return "", fmt.Errorf("%w: %q: period must be AM or PM", ErrInvalidDisplayTime, string(d))
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hours, minutes)), nil
}

// To12h конвертирует каноническую форму "HH:MM" в отображаемую "H:MM AM/PM".
// Обратное преобразование к DisplayTime.To24h: 00:xx -> "12:xx AM", 12:xx -> "12:xx PM",
// час без ведущего нуля, минуты с ведущим нулем.
func (t TimeString) To12h() (DisplayTime, error) {
	total, err := t.totalMinutes()
	if err != nil {
		return "", err
	}

	hours := total / 60
	minutes := total % 60

	switch {
	case hours == 0:
		return DisplayTime(fmt.Sprintf("12:%02d AM", minutes)), nil
	case hours < 12:
		return DisplayTime(fmt.Sprintf("%d:%02d AM", hours, minutes)), nil
	case hours == 12:
		return DisplayTime(fmt.Sprintf("12:%02d PM", minutes)), nil
	default:
		return DisplayTime(fmt.Sprintf("%d:%02d PM", hours-12, minutes)), nil
	}
}

// Value реализует driver.Valuer для записи в БД
func (d DisplayTime) Value() (driver.Value, error) {
	return string(d), nil
}

// Scan реализует sql.Scanner для чтения из БД
func (d *DisplayTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case string:
		*d = DisplayTime(v)
		return nil
	case []byte:
		*d = DisplayTime(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidDisplayTime, src)
	}
}
