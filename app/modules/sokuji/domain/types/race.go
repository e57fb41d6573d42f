package sokujitypes

import "github.com/Yumax-panda/MK8DX-discordbot/app/modules/track"

// Race is one 12-position event split into two 6-position ranks. The
// two rank sets partition {1..12} once validated.
type Race struct {
	Ranks []Rank       `json:"ranks"`
	Track *track.Track `json:"track,omitempty"`
}

// IsValid reports whether the race holds exactly two ranks.
func (r Race) IsValid() bool {
	return len(r.Ranks) == 2
}

// Scores returns the per-side score pair.
func (r Race) Scores() [2]int {
	var out [2]int
	for i, rank := range r.Ranks {
		if i > 1 {
			break
		}
		out[i] = rank.Score()
	}
	return out
}
