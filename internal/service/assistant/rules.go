package assistant

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/elitecuts/booking-service/internal/domain"
	"github.com/elitecuts/booking-service/pkg/types"
)

// Ключевые слова, по которым сообщение распознаётся как вопрос о записи
var appointmentKeywords = []string{
	"appointment", "available", "free", "booked", "time", "date", "reservation", "schedule",
	"book", "open", "slot", "today", "tomorrow",
	"january", "february", "march", "april", "may", "june", "july",
	"august", "september", "october", "november", "december",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"am", "pm", ":", "hour", "o'clock", "busy", "when", "what time",
}

var (
	isoDateRe      = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
	clockTimeRe    = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*(am|pm)`)
	shortTimeRe    = regexp.MustCompile(`(?:at\s+)?(\d{1,2})\s*(am|pm)`)
	weekdaysByName = map[string]time.Weekday{
		"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
		"wednesday": time.Wednesday, "thursday": time.Thursday,
		"friday": time.Friday, "saturday": time.Saturday,
	}
)

// RuleBasedExtractor извлекает дату и время по правилам, без модели.
// Понимает ISO даты, today/tomorrow, дни недели и время вида "3pm" / "9:00 am".
type RuleBasedExtractor struct{}

// NewRuleBasedExtractor создает новый экземпляр извлекателя по правилам
func NewRuleBasedExtractor() *RuleBasedExtractor {
	return &RuleBasedExtractor{}
}

// Extract извлекает дату и время из сообщения клиента
func (e *RuleBasedExtractor) Extract(_ context.Context, message string, now time.Time) (*AppointmentQuery, error) {
	message = strings.ToLower(message)

	if !looksLikeAppointmentQuery(message) {
		return nil, nil
	}

	query := &AppointmentQuery{
		Date: extractDate(message, now),
		Time: extractTime(message),
	}

	if query.Date == nil && query.Time == nil {
		return nil, nil
	}
	return query, nil
}

func looksLikeAppointmentQuery(message string) bool {
	for _, keyword := range appointmentKeywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

func extractDate(message string, now time.Time) *time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if m := isoDateRe.FindStringSubmatch(message); m != nil {
		parsed, err := time.Parse(domain.DateFormat, fmt.Sprintf("%s-%s-%s",
			m[1], pad2(m[2]), pad2(m[3])))
		if err == nil {
			return &parsed
		}
	}

	if strings.Contains(message, "today") {
		return &today
	}
	if strings.Contains(message, "tomorrow") {
		tomorrow := today.AddDate(0, 0, 1)
		return &tomorrow
	}

	// День недели трактуем как ближайшее будущее вхождение
	for name, weekday := range weekdaysByName {
		if !strings.Contains(message, name) {
			continue
		}
		days := (int(weekday) - int(today.Weekday()) + 7) % 7
		if days == 0 {
			days = 7
		}
		target := today.AddDate(0, 0, days)
		return &target
	}

	return nil
}

func extractTime(message string) *types.DisplayTime {
	if m := clockTimeRe.FindStringSubmatch(message); m != nil {
		return buildDisplayTime(m[1], m[2], m[3])
	}
	if m := shortTimeRe.FindStringSubmatch(message); m != nil {
		return buildDisplayTime(m[1], "00", m[2])
	}
	return nil
}

func buildDisplayTime(hours, minutes, period string) *types.DisplayTime {
	h, err := strconv.Atoi(hours)
	if err != nil || h < 1 || h > 12 {
		return nil
	}

	candidate, err := types.ParseDisplayTime(fmt.Sprintf("%d:%s %s", h, minutes, strings.ToUpper(period)))
	if err != nil {
		return nil
	}
	return &candidate
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
