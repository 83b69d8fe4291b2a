package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/utsav/internal/calendar"
)

var monthNames = map[string][]string{
	"en": calendar.MonthNames[:],
	"hi": {"जनवरी", "फ़रवरी", "मार्च", "अप्रैल", "मई", "जून", "जुलाई", "अगस्त", "सितंबर", "अक्टूबर", "नवंबर", "दिसंबर"},
}

var weekdayShortNames = map[string][]string{
	"en": {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	"hi": {"रवि", "सोम", "मंगल", "बुध", "गुरु", "शुक्र", "शनि"},
}

func translateMessage(messages map[string]string, key string) string {
	if key == "" {
		return ""
	}
	if messages != nil {
		if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return key
}

func currentLanguage(c *fiber.Ctx) string {
	language, ok := c.Locals(contextLanguageKey).(string)
	if !ok || strings.TrimSpace(language) == "" {
		return ""
	}
	return language
}

func currentMessages(c *fiber.Ctx) map[string]string {
	messages, ok := c.Locals(contextMessagesKey).(map[string]string)
	if !ok || messages == nil {
		return map[string]string{}
	}
	return messages
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	if data == nil {
		data = fiber.Map{}
	}

	if _, ok := data["Messages"]; !ok {
		data["Messages"] = currentMessages(c)
	}

	if _, ok := data["Lang"]; !ok {
		language := currentLanguage(c)
		if language == "" {
			language = handler.i18n.DefaultLanguage()
		}
		data["Lang"] = language
	}

	if _, ok := data["CurrentPath"]; !ok {
		data["CurrentPath"] = currentPathWithQuery(c)
	}

	if _, ok := data["CSRFToken"]; !ok {
		data["CSRFToken"] = csrfToken(c)
	}

	data["PasscodeEnabled"] = handler.passcodeEnabled()
	data["Unlocked"] = handler.notesUnlocked(c)
	return data
}

func currentPathWithQuery(c *fiber.Ctx) string {
	path := string(c.Request().URI().RequestURI())
	if path == "" {
		return c.Path()
	}
	return path
}

func localizedMonthName(language string, month time.Month) string {
	names, ok := monthNames[strings.ToLower(language)]
	index := int(month) - 1
	if !ok || index < 0 || index >= len(names) {
		return month.String()
	}
	return names[index]
}

func localizedMonthYear(language string, reference calendar.Date) string {
	return fmt.Sprintf("%s %d", localizedMonthName(language, reference.Month), reference.Year)
}

func localizedWeekdays(language string, weekdays []time.Weekday) []string {
	names, ok := weekdayShortNames[strings.ToLower(language)]
	labels := make([]string, 0, len(weekdays))
	for _, weekday := range weekdays {
		if !ok {
			labels = append(labels, weekday.String()[:3])
			continue
		}
		labels = append(labels, names[int(weekday)])
	}
	return labels
}
