package sokujitypes

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func buildMatch(t *testing.T, races int) *Mogi {
	t.Helper()
	m := NewMogi("AB", "XY")
	inputs := []string{"123456", "1-5", "789012", "135+", "2468", "11129"}
	for i := 0; i < races; i++ {
		text := inputs[i%len(inputs)]
		trackName := ""
		if i%3 == 0 {
			trackName = "MKS"
		}
		if err := m.AddRace(text, trackName, 0); err != nil {
			t.Fatalf("AddRace %d (%q): %v", i+1, text, err)
		}
	}
	return m
}

func TestSummaryRoundTrip(t *testing.T) {
	for _, races := range []int{0, 1, 6, 12} {
		t.Run(fmt.Sprintf("%d races", races), func(t *testing.T) {
			m := buildMatch(t, races)
			m.Penalty = [2]int{-15, 0}
			m.Repick = [2]int{0, -30}
			m.AddBannerUsers([]string{"viewer#0001", "caster#0002"})

			recovered, err := FromSummary(m.Summary())
			if err != nil {
				t.Fatalf("FromSummary: %v", err)
			}
			opts := cmpopts.IgnoreFields(Mogi{}, "LoadedTrack")
			if diff := cmp.Diff(m, recovered, opts); diff != "" {
				t.Errorf("round trip mismatch (-rendered +recovered):\n%s", diff)
			}
		})
	}
}

func TestSummaryRoundTripArchived(t *testing.T) {
	for _, ja := range []bool{true, false} {
		m := buildMatch(t, 3)
		m.IsJA = ja
		m.IsArchive = true
		recovered, err := FromSummary(m.Summary())
		if err != nil {
			t.Fatalf("FromSummary: %v", err)
		}
		if !recovered.IsArchive {
			t.Errorf("ja=%v: archive flag lost in round trip", ja)
		}
		if recovered.IsJA != ja {
			t.Errorf("ja=%v: language flag lost in round trip", ja)
		}
	}
}

func TestSummaryZeroAdjustmentsOmitted(t *testing.T) {
	m := buildMatch(t, 1)
	for _, field := range m.Summary().Fields {
		if field.Name == FieldPenalty || field.Name == FieldRepick {
			t.Errorf("zero %s vector should not render a field", field.Name)
		}
	}
}

func TestSummaryDescription(t *testing.T) {
	m := buildMatch(t, 1)
	want := "`61 : 21(+40) @11`"
	if got := m.Summary().Description; got != want {
		t.Errorf("description = %q, want %q", got, want)
	}
}

func TestSummaryResultImage(t *testing.T) {
	if img := buildMatch(t, 12).Summary().Image; img != "attachment://result.png" {
		t.Errorf("12-race summary image = %q", img)
	}
	if img := buildMatch(t, 11).Summary().Image; img != "" {
		t.Errorf("11-race summary should not attach an image, got %q", img)
	}
}

func TestFromSummaryRejectsForeignMessage(t *testing.T) {
	_, err := FromSummary(Summary{Title: "Weekly standings"})
	if !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("got %v, want ErrInvalidMessage", err)
	}
}

func TestFromSummaryTrackFromFieldName(t *testing.T) {
	m := buildMatch(t, 1)
	recovered, err := FromSummary(m.Summary())
	if err != nil {
		t.Fatal(err)
	}
	if recovered.Races[0].Track == nil || recovered.Races[0].Track.Code != "MKS" {
		t.Errorf("track not recovered from field name, got %+v", recovered.Races[0].Track)
	}
}

func TestFromSummaryPenaltyAccumulates(t *testing.T) {
	// Penalty values are summed into the vector; only field absence
	// guards against double counting.
	s := Summary{
		Title: "Sokuji 6v6\nAB - XY",
		Fields: []SummaryField{
			{Name: FieldPenalty, Value: "`-15 : 0`"},
			{Name: FieldPenalty, Value: "`-15 : -10`"},
		},
	}
	m, err := FromSummary(s)
	if err != nil {
		t.Fatal(err)
	}
	if m.Penalty != [2]int{-30, -10} {
		t.Errorf("penalty = %v, want [-30 -10]", m.Penalty)
	}
}
