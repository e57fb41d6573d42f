package resultsservice

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/en"
)

var digitRuns = regexp.MustCompile(`[0-9]+`)

// ParseWhen resolves a user-supplied date such as "8/15 21", "21"
// or "tomorrow 9pm" against now. Bare numbers fill the time fields
// from the right (hour, then day, month, year); missing fields come
// from now. Text without digits goes through natural-language parsing.
func ParseWhen(text string, now time.Time) (time.Time, error) {
	matches := digitRuns.FindAllString(text, 4)
	if len(matches) == 0 {
		w := when.New(nil)
		w.Add(en.All...)
		r, err := w.Parse(text, now)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse %q: %w", text, err)
		}
		if r == nil {
			return time.Time{}, fmt.Errorf("no date found in %q", text)
		}
		return r.Time, nil
	}

	// Right to left: hour, day, month, year.
	nums := make([]int, 0, 4)
	for i := len(matches) - 1; i >= 0; i-- {
		n, err := strconv.Atoi(matches[i])
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse %q: %w", text, err)
		}
		nums = append(nums, n)
	}

	pick := func(index int, fallback int) int {
		if index < len(nums) && nums[index] != 0 {
			return nums[index]
		}
		return fallback
	}

	return time.Date(
		pick(3, now.Year()),
		time.Month(pick(2, int(now.Month()))),
		pick(1, now.Day()),
		pick(0, now.Hour()),
		0, 0, 0,
		now.Location(),
	), nil
}
