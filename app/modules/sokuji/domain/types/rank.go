package sokujitypes

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// scores is the fixed position→points table for a 12-player race.
var scores = [12]int{15, 12, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}

// fullwidth maps full-width digits, hyphen, plus and space to ASCII.
var fullwidth = strings.NewReplacer(
	"１", "1", "２", "2", "３", "3", "４", "4", "５", "5",
	"６", "6", "７", "7", "８", "8", "９", "9", "０", "0",
	"ー", "-", "＋", "+", "　", " ",
)

var invalidChar = regexp.MustCompile(`[^0-9\- +]`)

// Rank is the set of finishing positions one team took in one race.
// Data is kept in placement order until Validate sorts it.
type Rank struct {
	Data []int `json:"data"`
}

// Score sums the point table over the rank's positions.
func (r Rank) Score() int {
	total := 0
	for _, pos := range r.Data {
		total += scores[pos-1]
	}
	return total
}

// String renders the positions ascending, comma separated.
func (r Rank) String() string {
	sorted := append([]int(nil), r.Data...)
	sort.Ints(sorted)
	parts := make([]string, len(sorted))
	for i, pos := range sorted {
		parts[i] = strconv.Itoa(pos)
	}
	return strings.Join(parts, ",")
}

// ValidateText normalizes shorthand input: full-width characters are
// translated to ASCII, and the result is rejected if anything outside
// [0-9- +] remains.
func ValidateText(text string) (string, bool) {
	translated := fullwidth.Replace(text)
	if invalidChar.MatchString(translated) {
		return "", false
	}
	return translated, true
}

// rankScanner consumes shorthand text one token at a time. The range
// continuation ("-") is an explicit scanner state: once the next token
// resolves, every position strictly between the range start and the
// token's first value is backfilled ascending.
type rankScanner struct {
	rest       string
	placed     []int
	rangeOpen  bool
	rangeStart int
}

func (s *rankScanner) run() error {
	for s.rest != "" {
		if strings.HasPrefix(s.rest, "-") {
			s.rangeOpen = true
			s.rangeStart = 0
			if len(s.placed) > 0 {
				s.rangeStart = s.placed[len(s.placed)-1]
			}
			s.rest = s.rest[1:]
		}
		next, err := s.nextToken()
		if err != nil {
			return err
		}
		s.place(next)
	}
	return nil
}

// nextToken consumes one move. Position 10 is written '0', position 11
// is written '+'; the multi-digit forms disambiguate "1x" prefixes.
func (s *rankScanner) nextToken() ([]int, error) {
	type pattern struct {
		prefix string
		values []int
	}
	for _, p := range []pattern{
		{"0", []int{10}},
		{"+", []int{11}},
		{"10", []int{10}},
		{"110", []int{1, 10}},
		{"1112", []int{11, 12}},
		{"111", []int{1, 11}},
		{"112", []int{1, 12}},
		{"11", []int{11}},
	} {
		if strings.HasPrefix(s.rest, p.prefix) {
			s.rest = s.rest[len(p.prefix):]
			return p.values, nil
		}
	}
	if strings.HasPrefix(s.rest, "12") {
		s.rest = s.rest[2:]
		// A leading "12" means two single-digit placements; anywhere
		// else it is position 12.
		if len(s.placed) > 0 {
			return []int{12}, nil
		}
		return []int{1, 2}, nil
	}
	if s.rest == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(s.rest[:1], 16, 8)
	if err != nil {
		return nil, ErrInvalidRankInput
	}
	s.rest = s.rest[1:]
	return []int{int(value)}, nil
}

func (s *rankScanner) place(next []int) {
	if s.rangeOpen {
		if len(next) == 0 {
			// Text exhausted with a pending range: fill up to 12.
			next = []int{12}
		}
		for pos := s.rangeStart + 1; pos < next[0]; pos++ {
			s.placed = append(s.placed, pos)
		}
		s.rangeOpen = false
	}
	s.placed = append(s.placed, next...)
}

func (s *rankScanner) result() []int {
	seen := make(map[int]bool, len(s.placed))
	unique := make([]int, 0, len(s.placed))
	for _, pos := range s.placed {
		if pos > 0 && pos < 13 && !seen[pos] {
			seen[pos] = true
			unique = append(unique, pos)
		}
	}
	sort.Ints(unique)
	return unique
}

// RankFromText parses one whitespace-free shorthand token. A nil Rank
// with a nil error means the token carries no rank data; the error is
// ErrInvalidRankInput when a non-hex character is hit where a
// single-character fallback is required.
func RankFromText(text string) (*Rank, error) {
	if strings.ContainsRune(text, ' ') {
		return nil, nil
	}
	scanner := rankScanner{rest: text}
	if err := scanner.run(); err != nil {
		return nil, err
	}
	return &Rank{Data: scanner.result()}, nil
}

// Validate completes the rank against the ranks already committed for
// the same race. Positions claimed by siblings are dropped from the
// candidate; a short candidate is completed from the unclaimed pool —
// all of it when that closes the gap, otherwise from the worst position
// downward. Returns whether the rank now holds exactly 6 positions.
func (r *Rank) Validate(ranks []Rank) bool {
	filled := make(map[int]bool)
	for _, committed := range ranks {
		for _, pos := range committed.Data {
			filled[pos] = true
		}
	}
	kept := r.Data[:0]
	for _, pos := range r.Data {
		if !filled[pos] {
			kept = append(kept, pos)
		}
	}
	r.Data = kept

	if len(r.Data) == 6 {
		return true
	}
	if len(r.Data) > 6 {
		r.Data = r.Data[:6]
		return true
	}

	mine := make(map[int]bool, len(r.Data))
	for _, pos := range r.Data {
		mine[pos] = true
	}
	var unfilled []int
	for pos := 1; pos <= 12; pos++ {
		if !filled[pos] && !mine[pos] {
			unfilled = append(unfilled, pos)
		}
	}
	if len(unfilled)+len(r.Data) <= 6 {
		r.Data = append(r.Data, unfilled...)
	} else {
		// Unexplained picks default to the worst remaining positions.
		for len(r.Data) < 6 {
			worst := unfilled[len(unfilled)-1]
			unfilled = unfilled[:len(unfilled)-1]
			r.Data = append(r.Data, worst)
		}
	}
	sort.Ints(r.Data)
	return len(r.Data) == 6
}

// GetRanks splits text on whitespace and parses/validates each token,
// accumulating onto ranks. When exactly one rank results, a second
// empty rank is synthesized and completed to the complement.
func GetRanks(text string, ranks []Rank) ([]Rank, error) {
	for _, token := range strings.Fields(text) {
		rank, err := RankFromText(token)
		if err != nil {
			return nil, err
		}
		if rank == nil {
			continue
		}
		if rank.Validate(ranks) {
			ranks = append(ranks, *rank)
		}
	}
	if len(ranks) == 1 {
		complement := &Rank{}
		if complement.Validate(ranks) {
			ranks = append(ranks, *complement)
		}
	}
	return ranks, nil
}
