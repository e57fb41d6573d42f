package sokujitypes

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Yumax-panda/MK8DX-discordbot/app/modules/track"
)

// Reserved field names in the rendered summary. Everything else is a
// race field.
const (
	FieldPenalty = "Penalty"
	FieldRepick  = "Repick"
	FieldMembers = "Members"
)

const (
	titleJA   = "即時集計"
	titleEN   = "Sokuji"
	archiveJA = "アーカイブ"
	archiveEN = "Archive"

	// ResultImageName is the attachment name of the rendered result
	// graph on the final summary.
	ResultImageName = "result.png"
)

// SummaryField is one name/value pair of the rendered summary.
type SummaryField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Summary is the fixed-shape record of a rendered match summary. It is
// both the presentation payload sent to the chat gateway and the codec
// through which state can be recovered from an existing message.
type Summary struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Author      string         `json:"author,omitempty"`
	Fields      []SummaryField `json:"fields,omitempty"`
	Image       string         `json:"image,omitempty"`
}

var integersRE = regexp.MustCompile(`-?[0-9]+`)

func getIntegers(text string) []int {
	matches := integersRE.FindAllString(text, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// Summary renders the match state.
func (m *Mogi) Summary() Summary {
	title := titleEN + " "
	if m.IsJA {
		title = titleJA + " "
	}
	title += fmt.Sprintf("6v6\n%s - %s", m.Tags[0], m.Tags[1])

	s := Summary{
		Title:       title,
		Description: fmt.Sprintf("`%s @%d`", FormatScores(m.Total(), false), m.Left()),
	}

	for i, race := range m.Races {
		name := fmt.Sprintf("%d ", i+1)
		if race.Track != nil {
			name += "- " + race.Track.Nick(m.IsJA)
		}
		s.Fields = append(s.Fields, SummaryField{
			Name:  name,
			Value: fmt.Sprintf("`%s`|`%s`", FormatScores(race.Scores(), false), race.Ranks[0].String()),
		})
	}

	if m.Penalty != [2]int{} {
		s.Fields = append(s.Fields, SummaryField{
			Name:  FieldPenalty,
			Value: fmt.Sprintf("`%s`", FormatScores(m.Penalty, true)),
		})
	}
	if m.Repick != [2]int{} {
		s.Fields = append(s.Fields, SummaryField{
			Name:  FieldRepick,
			Value: fmt.Sprintf("`%s`", FormatScores(m.Repick, true)),
		})
	}
	if len(m.BannerUsers) > 0 {
		mentions := make([]string, len(m.BannerUsers))
		for i, u := range m.BannerUsers {
			mentions[i] = "@" + u
		}
		s.Fields = append(s.Fields, SummaryField{
			Name:  FieldMembers,
			Value: "> " + strings.Join(mentions, ", "),
		})
	}

	if m.IsArchive {
		s.Author = archiveEN
		if m.IsJA {
			s.Author = archiveJA
		}
	}
	if len(m.Races) == MaxRaces {
		s.Image = "attachment://" + ResultImageName
	}
	return s
}

// IsReadable reports whether the summary's title marks it as a match
// summary this system understands.
func (s Summary) IsReadable() bool {
	return strings.HasPrefix(s.Title, titleEN) || strings.HasPrefix(s.Title, titleJA)
}

// FromSummary reconstructs match state from a rendered summary.
// Penalty and Repick field values are summed into the vectors, so a
// summary carrying the field twice would double up — absence of the
// field is the only guard, matching the rendered form.
func FromSummary(s Summary) (*Mogi, error) {
	if !s.IsReadable() {
		return nil, ErrInvalidMessage
	}

	m := &Mogi{IsJA: strings.Contains(s.Title, titleJA)}

	_, tagPart, found := strings.Cut(s.Title, "\n")
	if !found {
		return nil, ErrInvalidMessage
	}
	tags := strings.SplitN(tagPart, " - ", 2)
	if len(tags) != 2 {
		return nil, ErrInvalidMessage
	}
	m.Tags = [2]string{tags[0], tags[1]}
	m.IsArchive = s.Author == archiveEN || s.Author == archiveJA

	for _, field := range s.Fields {
		switch field.Name {
		case FieldPenalty, FieldRepick:
			numbers := getIntegers(field.Value)
			if len(numbers) < 2 {
				return nil, ErrInvalidMessage
			}
			if field.Name == FieldPenalty {
				m.Penalty[0] += numbers[0]
				m.Penalty[1] += numbers[1]
			} else {
				m.Repick[0] += numbers[0]
				m.Repick[1] += numbers[1]
			}
		case FieldMembers:
			value := field.Value
			if _, after, ok := strings.Cut(value, "> @"); ok {
				value = after
			}
			m.AddBannerUsers(strings.Split(value, ", @"))
		default:
			numbers := getIntegers(field.Value)
			if len(numbers) < 6 {
				return nil, ErrInvalidMessage
			}
			positions := numbers[len(numbers)-6:]
			home := Rank{Data: append([]int(nil), positions...)}
			enemy := complementRank(positions)

			var tr *track.Track
			if idx := strings.Index(field.Name, "-"); idx >= 0 && idx+2 <= len(field.Name) {
				if found, ok := track.FromNick(field.Name[idx+2:]); ok {
					tr = &found
				}
			}
			m.Races = append(m.Races, Race{Ranks: []Rank{home, enemy}, Track: tr})
		}
	}
	return m, nil
}

func complementRank(positions []int) Rank {
	taken := make(map[int]bool, len(positions))
	for _, pos := range positions {
		taken[pos] = true
	}
	var rest []int
	for pos := 1; pos <= 12; pos++ {
		if !taken[pos] {
			rest = append(rest, pos)
		}
	}
	return Rank{Data: rest}
}
