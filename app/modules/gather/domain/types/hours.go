package gathertypes

import (
	"regexp"
	"sort"
	"strconv"
)

// maxHours bounds the number of distinct recruitment hours per guild.
const maxHours = 26

var (
	intRe  = regexp.MustCompile(`[0-9]+`)
	spanRe = regexp.MustCompile(`[0-9]+-[0-9]+`)
)

// ParseHours extracts recruitment hours from free text. Plain integers
// count individually and "a-b" spans expand inclusively; the result is
// a sorted set.
func ParseHours(text string) ([]int, error) {
	var hours []int
	for _, match := range intRe.FindAllString(text, -1) {
		n, err := strconv.Atoi(match)
		if err != nil {
			return nil, ErrTimeNotSelected
		}
		hours = append(hours, n)
	}
	for _, span := range spanRe.FindAllString(text, -1) {
		bounds := intRe.FindAllString(span, -1)
		lo, err := strconv.Atoi(bounds[0])
		if err != nil {
			return nil, ErrTimeNotSelected
		}
		hi, err := strconv.Atoi(bounds[len(bounds)-1])
		if err != nil {
			return nil, ErrTimeNotSelected
		}
		for h := lo; h <= hi; h++ {
			hours = append(hours, h)
		}
	}

	set := map[int]bool{}
	for _, h := range hours {
		set[h] = true
	}
	out := make([]int, 0, len(set))
	for h := range set {
		out = append(out, h)
	}
	sort.Ints(out)

	if len(out) == 0 {
		return nil, ErrTimeNotSelected
	}
	if len(out) >= maxHours {
		return nil, ErrTooManyHours
	}
	return out, nil
}
