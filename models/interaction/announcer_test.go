package interaction

import (
	"fmt"
	"testing"

	mp "github.com/armadagame/armada-backend/models/placement"
)

func TestAnnouncementLogEviction(t *testing.T) {
	a := NewAnnouncer()

	for i := 1; i <= 15; i++ {
		a.AnnounceAction(fmt.Sprintf("action %d", i))
	}

	recent := a.Recent()
	if len(recent) != 10 {
		t.Fatalf("log capacity is 10, got: %d", len(recent))
	}
	if recent[0] != "action 6" {
		t.Fatalf("oldest five must be evicted, index 0 holds: %q", recent[0])
	}
	if recent[9] != "action 15" {
		t.Fatalf("most recent must be last, index 9 holds: %q", recent[9])
	}
}

func TestAnnouncementTemplates(t *testing.T) {
	a := NewAnnouncer()

	a.AnnounceShipSelection(mp.ShipCruiser)
	a.AnnounceShipPlacement(mp.ShipCruiser, mp.NewCell(3, 7))
	a.AnnounceShipRemoval(mp.ShipCruiser)

	recent := a.Recent()
	if len(recent) != 3 {
		t.Fatalf("expected 3 announcements, got: %d", len(recent))
	}

	// Selection and placement capitalize the kind name, removal does
	// not. The asymmetry is part of the contract.
	if recent[0] != "Cruiser selected for placement" {
		t.Fatalf("unexpected selection text: %q", recent[0])
	}
	if recent[1] != "Cruiser placed at grid 3, 7" {
		t.Fatalf("unexpected placement text: %q", recent[1])
	}
	if recent[2] != "cruiser removed from the board" {
		t.Fatalf("unexpected removal text: %q", recent[2])
	}
}

func TestRecentReturnsACopy(t *testing.T) {
	a := NewAnnouncer()
	a.AnnounceAction("first")

	recent := a.Recent()
	recent[0] = "mutated"

	if a.Recent()[0] != "first" {
		t.Fatal("Recent must return a copy of the log")
	}
}
