package sokujitypes

import (
	"fmt"
	"sort"

	"github.com/Yumax-panda/MK8DX-discordbot/app/modules/track"
)

// MaxRaces is the number of race slots in one match.
const MaxRaces = 12

// swingPerRace is the largest score swing one race can produce
// (15+12+10+9+8+7 minus 6+5+4+3+2+1).
const swingPerRace = 40

// Mogi is the live state of one match in one channel.
type Mogi struct {
	Races       []Race       `json:"races"`
	Tags        [2]string    `json:"tags"`
	BannerUsers []string     `json:"banner_users,omitempty"`
	Penalty     [2]int       `json:"penalty"`
	Repick      [2]int       `json:"repick"`
	IsArchive   bool         `json:"is_archive"`
	IsJA        bool         `json:"is_ja"`
	LoadedTrack *track.Track `json:"loaded_track,omitempty"`
}

// NewMogi starts an empty active match between the two tags.
func NewMogi(homeTag, enemyTag string) *Mogi {
	return &Mogi{Tags: [2]string{homeTag, enemyTag}, IsJA: true}
}

// Total is the running score pair: race scores plus penalty and repick
// adjustments per side.
func (m *Mogi) Total() [2]int {
	var total [2]int
	for _, race := range m.Races {
		s := race.Scores()
		total[0] += s[0]
		total[1] += s[1]
	}
	total[0] += m.Penalty[0] + m.Repick[0]
	total[1] += m.Penalty[1] + m.Repick[1]
	return total
}

// Left is the number of unplayed race slots.
func (m *Mogi) Left() int {
	return MaxRaces - len(m.Races)
}

// Diff is the signed score differential, home minus enemy.
func (m *Mogi) Diff() int {
	total := m.Total()
	return total[0] - total[1]
}

// Winning reports whether the home side's lead exceeds the maximum
// possible remaining swing, i.e. the outcome is already decided.
func (m *Mogi) Winning() bool {
	return m.Diff() > m.Left()*swingPerRace
}

// FormatScores renders a score pair; the long form appends the signed
// differential.
func FormatScores(scores [2]int, compact bool) string {
	if compact {
		return fmt.Sprintf("%d : %d", scores[0], scores[1])
	}
	return fmt.Sprintf("%d : %d(%+d)", scores[0], scores[1], scores[0]-scores[1])
}

// AddRace parses rank shorthand and appends (or inserts) a race.
// slot 0 appends; slot 1..len+1 inserts at that 1-based position.
// trackName empty falls back to the channel's pending loaded track,
// which is consumed either way.
func (m *Mogi) AddRace(rankText, trackName string, slot int) error {
	if m.IsArchive {
		return ErrMogiArchived
	}
	if len(m.Races) == MaxRaces {
		return ErrNotAddable
	}
	normalized, ok := ValidateText(rankText)
	if !ok {
		return ErrInvalidRankInput
	}
	ranks, err := GetRanks(normalized, nil)
	if err != nil {
		return err
	}

	var tr *track.Track
	if trackName == "" {
		tr = m.LoadedTrack
	} else if found, ok := track.FromNick(trackName); ok {
		tr = &found
	}

	race := Race{Ranks: ranks, Track: tr}
	if !race.IsValid() {
		return ErrInvalidRankInput
	}
	m.LoadedTrack = nil

	if slot == 0 {
		m.Races = append(m.Races, race)
		return nil
	}
	if slot < 1 || slot > len(m.Races)+1 {
		return ErrOutOfRange
	}
	m.Races = append(m.Races, Race{})
	copy(m.Races[slot:], m.Races[slot-1:])
	m.Races[slot-1] = race
	return nil
}

// Back removes the race at the 1-based slot.
func (m *Mogi) Back(slot int) error {
	if m.IsArchive {
		return ErrMogiArchived
	}
	if len(m.Races) == 0 {
		return ErrNotBackable
	}
	if slot < 1 || slot > len(m.Races) {
		return ErrOutOfRange
	}
	m.Races = append(m.Races[:slot-1], m.Races[slot:]...)
	return nil
}

// EditRace replaces the race at the 1-based slot. Empty rankText keeps
// the existing ranks; empty or unknown trackName keeps the existing
// track.
func (m *Mogi) EditRace(slot int, rankText, trackName string) error {
	if m.IsArchive {
		return ErrMogiArchived
	}
	if slot < 1 || slot > len(m.Races) {
		return ErrOutOfRange
	}
	old := m.Races[slot-1]

	ranks := old.Ranks
	if rankText != "" {
		// Edits skip the chat-line charset filter so the hex shorthand
		// (a-f for 10-15) stays reachable here.
		parsed, err := GetRanks(rankText, nil)
		if err != nil {
			return err
		}
		race := Race{Ranks: parsed}
		if !race.IsValid() {
			return ErrInvalidRankInput
		}
		ranks = parsed
	}

	tr := old.Track
	if found, ok := track.FromNick(trackName); ok {
		tr = &found
	}

	m.Races[slot-1] = Race{Ranks: ranks, Track: tr}
	return nil
}

// AddBannerUsers adds subscribers to the live-push set.
func (m *Mogi) AddBannerUsers(users []string) {
	set := make(map[string]bool, len(m.BannerUsers)+len(users))
	for _, u := range m.BannerUsers {
		set[u] = true
	}
	for _, u := range users {
		set[u] = true
	}
	m.BannerUsers = sortedSet(set)
}

// RemoveBannerUsers drops subscribers from the live-push set.
func (m *Mogi) RemoveBannerUsers(users []string) {
	set := make(map[string]bool, len(m.BannerUsers))
	for _, u := range m.BannerUsers {
		set[u] = true
	}
	for _, u := range users {
		delete(set, u)
	}
	m.BannerUsers = sortedSet(set)
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for u := range set {
		out = append(out, u)
	}
	sort.Strings(out)
	if len(out) == 0 {
		return nil
	}
	return out
}
