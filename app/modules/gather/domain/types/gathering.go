package gathertypes

import (
	"fmt"
	"sort"
	"strings"
)

// slotSize is the number of confirmed players that fills an hour.
const slotSize = 6

// Slot holds the hands raised for one hour: confirmed and tentative.
type Slot struct {
	Confirmed []string `json:"c"`
	Tentative []string `json:"t"`
}

// Gathering is one guild's recruitment board, keyed by hour.
type Gathering map[int]*Slot

// LineupField is one rendered hour of the war list.
type LineupField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Lineup is the fixed-shape render of the recruitment board.
type Lineup struct {
	Title  string        `json:"title"`
	Fields []LineupField `json:"fields"`
}

// LineupTitle marks lineup messages so the gateway can find and
// supersede previous posts.
const LineupTitle = "**6v6 War List**"

// hoursKeys returns the board's hours in ascending order.
func (g Gathering) hoursKeys() []int {
	hours := make([]int, 0, len(g))
	for h := range g {
		hours = append(hours, h)
	}
	sort.Ints(hours)
	return hours
}

// Participate raises hands for the given hours. tentative moves the
// users to the tentative list, otherwise to the confirmed list; either
// way they leave the opposite list. The returned hours are the ones a
// confirmed raise just filled.
func (g Gathering) Participate(hours []int, users []string, tentative bool) ([]int, error) {
	if len(hours)+len(g) > maxHours {
		return nil, ErrTooManyHours
	}

	var filled []int
	for _, hour := range hours {
		slot, ok := g[hour]
		if !ok {
			slot = &Slot{}
			g[hour] = slot
		}
		if tentative {
			slot.Tentative = addAll(slot.Tentative, users)
			slot.Confirmed = removeAll(slot.Confirmed, users)
		} else {
			slot.Confirmed = addAll(slot.Confirmed, users)
			slot.Tentative = removeAll(slot.Tentative, users)
		}
		if !tentative && len(slot.Confirmed) >= slotSize {
			filled = append(filled, hour)
		}
	}
	return filled, nil
}

// Drop lowers the users' hands for the given hours.
func (g Gathering) Drop(hours []int, users []string) {
	for _, hour := range hours {
		slot, ok := g[hour]
		if !ok {
			continue
		}
		slot.Confirmed = removeAll(slot.Confirmed, users)
		slot.Tentative = removeAll(slot.Tentative, users)
	}
}

// Out removes whole hours from the board.
func (g Gathering) Out(hours []int) {
	for _, hour := range hours {
		delete(g, hour)
	}
}

// Lineup renders the war list.
func (g Gathering) Lineup() (*Lineup, error) {
	if len(g) == 0 {
		return nil, ErrNotGathering
	}
	if len(g) >= maxHours {
		return nil, ErrTooManyHours
	}

	lineup := &Lineup{Title: LineupTitle}
	for _, hour := range g.hoursKeys() {
		slot := g[hour]
		if len(slot.Confirmed)+len(slot.Tentative) == 0 {
			lineup.Fields = append(lineup.Fields, LineupField{
				Name:  fmt.Sprintf("%d@%d", hour, slotSize),
				Value: "> なし",
			})
			continue
		}

		name := fmt.Sprintf("%d@%d", hour, slotSize-len(slot.Confirmed))
		if len(slot.Tentative) > 0 {
			name += fmt.Sprintf("(%d)", len(slot.Tentative))
		}
		value := "> " + strings.Join(mentions(slot.Confirmed), ",")
		if len(slot.Tentative) > 0 {
			value += "(" + strings.Join(mentions(slot.Tentative), ",") + ")"
		}
		lineup.Fields = append(lineup.Fields, LineupField{Name: name, Value: value})
	}
	return lineup, nil
}

func mentions(users []string) []string {
	out := make([]string, len(users))
	for i, u := range users {
		out[i] = "<@" + u + ">"
	}
	return out
}

func addAll(list, users []string) []string {
	set := map[string]bool{}
	for _, u := range list {
		set[u] = true
	}
	for _, u := range users {
		if !set[u] {
			list = append(list, u)
			set[u] = true
		}
	}
	return list
}

func removeAll(list, users []string) []string {
	drop := map[string]bool{}
	for _, u := range users {
		drop[u] = true
	}
	out := list[:0]
	for _, u := range list {
		if !drop[u] {
			out = append(out, u)
		}
	}
	return out
}
