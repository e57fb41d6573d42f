package sokujitypes

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Yumax-panda/MK8DX-discordbot/app/modules/track"
)

func fullMatch(t *testing.T, races int) *Mogi {
	t.Helper()
	m := NewMogi("AB", "XY")
	for i := 0; i < races; i++ {
		if err := m.AddRace("123456", "", 0); err != nil {
			t.Fatalf("AddRace %d: %v", i+1, err)
		}
	}
	return m
}

func TestMogiTotals(t *testing.T) {
	m := fullMatch(t, 2)
	if got := m.Total(); got != [2]int{122, 42} {
		t.Errorf("Total = %v, want [122 42]", got)
	}
	m.Penalty[1] = -15
	m.Repick[0] = -10
	if got := m.Total(); got != [2]int{112, 27} {
		t.Errorf("Total with adjustments = %v, want [112 27]", got)
	}
}

func TestMogiAddRaceBoundaries(t *testing.T) {
	m := fullMatch(t, MaxRaces)
	if err := m.AddRace("123456", "", 0); !errors.Is(err, ErrNotAddable) {
		t.Errorf("13th race: got %v, want ErrNotAddable", err)
	}
}

func TestMogiAddRaceInsertSlot(t *testing.T) {
	m := fullMatch(t, 2)
	if err := m.AddRace("789012", "", 1); err != nil {
		t.Fatalf("insert at slot 1: %v", err)
	}
	if diff := cmp.Diff([]int{7, 8, 9, 10, 11, 12}, m.Races[0].Ranks[0].Data); diff != "" {
		t.Errorf("inserted race not at front (-want +got):\n%s", diff)
	}
	if err := m.AddRace("123456", "", 5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("insert past end+1: got %v, want ErrOutOfRange", err)
	}
}

func TestMogiAddRaceInvalidInput(t *testing.T) {
	m := NewMogi("AB", "XY")
	if err := m.AddRace("abc", "", 0); !errors.Is(err, ErrInvalidRankInput) {
		t.Errorf("letters: got %v, want ErrInvalidRankInput", err)
	}
	if err := m.AddRace("", "", 0); !errors.Is(err, ErrInvalidRankInput) {
		t.Errorf("empty: got %v, want ErrInvalidRankInput", err)
	}
}

func TestMogiBack(t *testing.T) {
	m := NewMogi("AB", "XY")
	if err := m.Back(1); !errors.Is(err, ErrNotBackable) {
		t.Errorf("empty list: got %v, want ErrNotBackable", err)
	}

	before := append([]Race(nil), m.Races...)
	if err := m.AddRace("123456", "", 0); err != nil {
		t.Fatal(err)
	}
	if err := m.Back(len(m.Races)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, m.Races, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("back after add did not restore race list (-want +got):\n%s", diff)
	}
}

func TestMogiBackOutOfRange(t *testing.T) {
	m := fullMatch(t, 2)
	for _, slot := range []int{0, 3, 13} {
		if err := m.Back(slot); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Back(%d): got %v, want ErrOutOfRange", slot, err)
		}
	}
}

func TestMogiArchiveGuards(t *testing.T) {
	m := fullMatch(t, 1)
	m.IsArchive = true
	if err := m.AddRace("123456", "", 0); !errors.Is(err, ErrMogiArchived) {
		t.Errorf("AddRace on archive: got %v, want ErrMogiArchived", err)
	}
	if err := m.Back(1); !errors.Is(err, ErrMogiArchived) {
		t.Errorf("Back on archive: got %v, want ErrMogiArchived", err)
	}
}

func TestMogiEditRace(t *testing.T) {
	m := fullMatch(t, 2)
	if err := m.EditRace(1, "789012", "MKS"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{7, 8, 9, 10, 11, 12}, m.Races[0].Ranks[0].Data); diff != "" {
		t.Errorf("edited ranks mismatch (-want +got):\n%s", diff)
	}
	if m.Races[0].Track == nil || m.Races[0].Track.Code != "MKS" {
		t.Errorf("edited track = %+v, want MKS", m.Races[0].Track)
	}

	// Empty rank text keeps the ranks, unknown track keeps the track.
	if err := m.EditRace(1, "", "nosuchtrack"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{7, 8, 9, 10, 11, 12}, m.Races[0].Ranks[0].Data); diff != "" {
		t.Errorf("ranks should be unchanged (-want +got):\n%s", diff)
	}
	if m.Races[0].Track == nil || m.Races[0].Track.Code != "MKS" {
		t.Errorf("track should be unchanged, got %+v", m.Races[0].Track)
	}

	if err := m.EditRace(3, "123456", ""); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("edit slot 3 of 2: got %v, want ErrOutOfRange", err)
	}
}

func TestMogiEditRaceHexShorthand(t *testing.T) {
	// Edits accept the hex letters the chat-line path filters out.
	m := fullMatch(t, 1)
	if err := m.EditRace(1, "789abc", ""); err != nil {
		t.Fatalf("EditRace hex: %v", err)
	}
	if diff := cmp.Diff([]int{7, 8, 9, 10, 11, 12}, m.Races[0].Ranks[0].Data); diff != "" {
		t.Errorf("hex ranks mismatch (-want +got):\n%s", diff)
	}

	if err := m.EditRace(1, "1;2", ""); !errors.Is(err, ErrInvalidRankInput) {
		t.Errorf("symbols: got %v, want ErrInvalidRankInput", err)
	}
}

func TestMogiLoadedTrackConsumed(t *testing.T) {
	m := NewMogi("AB", "XY")
	loaded, _ := track.FromNick("dBB")
	m.LoadedTrack = &loaded
	if err := m.AddRace("123456", "", 0); err != nil {
		t.Fatal(err)
	}
	if m.Races[0].Track == nil || m.Races[0].Track.Code != "dBB" {
		t.Errorf("race track = %+v, want loaded dBB", m.Races[0].Track)
	}
	if m.LoadedTrack != nil {
		t.Error("loaded track hint should be cleared after use")
	}
}

func TestMogiWinning(t *testing.T) {
	m := fullMatch(t, 11)
	// After 11 races of 61:21 the lead is 440 with one slot (40) left.
	if !m.Winning() {
		t.Errorf("diff %d with %d left should project a win", m.Diff(), m.Left())
	}
	m2 := fullMatch(t, 1)
	if m2.Winning() {
		t.Errorf("diff %d with %d left should not project a win", m2.Diff(), m2.Left())
	}
}

func TestMogiBannerUsers(t *testing.T) {
	m := NewMogi("AB", "XY")
	m.AddBannerUsers([]string{"b#2", "a#1", "b#2"})
	if diff := cmp.Diff([]string{"a#1", "b#2"}, m.BannerUsers); diff != "" {
		t.Errorf("banner set mismatch (-want +got):\n%s", diff)
	}
	m.RemoveBannerUsers([]string{"a#1", "missing"})
	if diff := cmp.Diff([]string{"b#2"}, m.BannerUsers); diff != "" {
		t.Errorf("banner set after remove mismatch (-want +got):\n%s", diff)
	}
}
