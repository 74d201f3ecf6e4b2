// Package timeutil parses day offsets such as "-1", "2w" or "-1w3d".
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	offsetPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]*)`)
	unitDays      = map[string]int{
		"":      1,
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// ParseOffset returns the number of days in input. A leading "+" or "-"
// applies to the whole offset, and a bare number counts days.
func ParseOffset(input string) (int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return 0, nil
	}

	sign := 1
	switch trimmed[0] {
	case '-':
		sign = -1
		trimmed = trimmed[1:]
	case '+':
		trimmed = trimmed[1:]
	}

	remaining := strings.TrimSpace(trimmed)
	if remaining == "" {
		return 0, fmt.Errorf("invalid offset %q, missing value after sign", strings.TrimSpace(input))
	}
	total := 0
	for len(remaining) > 0 {
		matches := offsetPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, fmt.Errorf("invalid offset segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, fmt.Errorf("invalid offset value %q: %w", matches[1], err)
		}
		days, ok := unitDays[matches[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported offset unit %q", matches[2])
		}
		total += value * days

		remaining = strings.TrimSpace(remaining[len(matches[0]):])
	}
	return sign * total, nil
}

// FormatOffset renders days using week and day tokens, for example -10
// becomes "-1w3d".
func FormatOffset(days int) string {
	if days == 0 {
		return "0d"
	}
	sign := ""
	if days < 0 {
		sign = "-"
		days = -days
	}
	var parts []string
	if w := days / 7; w > 0 {
		parts = append(parts, fmt.Sprintf("%dw", w))
	}
	if d := days % 7; d > 0 {
		parts = append(parts, fmt.Sprintf("%dd", d))
	}
	return sign + strings.Join(parts, "")
}
