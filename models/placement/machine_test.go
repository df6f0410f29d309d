package placement

import (
	"math/rand"
	"reflect"
	"testing"
)

func assertFleetConservation(t *testing.T, m *Machine) {
	t.Helper()

	var remaining int
	for _, count := range m.Inventory() {
		remaining += count
	}

	if remaining+len(m.PlacedShips()) != TotalFleetSize() {
		t.Fatalf("fleet conservation violated: remaining %d + placed %d != %d",
			remaining, len(m.PlacedShips()), TotalFleetSize())
	}
}

func assertPairwiseDisjoint(t *testing.T, m *Machine) {
	t.Helper()

	ships := m.PlacedShips()
	for i := 0; i < len(ships); i++ {
		for j := i + 1; j < len(ships); j++ {
			for _, cell := range ships[i].OccupiedCells {
				if ships[j].Occupies(cell) {
					t.Fatalf("ships %d and %d share cell %v", i, j, cell)
				}
			}
		}
	}
}

func mustPlace(t *testing.T, m *Machine, kind uint8, cell Cell) {
	t.Helper()

	if err := m.SelectShip(kind); err != nil {
		t.Fatal(err)
	}
	if err := m.Place(cell); err != nil {
		t.Fatal(err)
	}
}

func TestPlaceRemoveConservation(t *testing.T) {
	m := NewMachine("test01", DefaultGridSize)
	assertFleetConservation(t, m)

	// One ship per row, all horizontal.
	for i, kind := range FleetOrder() {
		mustPlace(t, m, kind, NewCell(0, i))
		assertFleetConservation(t, m)
		assertPairwiseDisjoint(t, m)
	}

	if !m.IsFleetComplete() {
		t.Fatal("expected complete fleet after placing every kind")
	}

	if _, err := m.RemoveAt(NewCell(0, 2)); err != nil {
		t.Fatal(err)
	}
	assertFleetConservation(t, m)

	if _, err := m.Remove(ShipDestroyer); err != nil {
		t.Fatal(err)
	}
	assertFleetConservation(t, m)

	if m.IsFleetComplete() {
		t.Fatal("fleet must not be complete after removals")
	}
}

func TestPlaceRemoveRoundTrip(t *testing.T) {
	m := NewMachine("test02", DefaultGridSize)

	before := m.Inventory()[ShipCruiser]
	mustPlace(t, m, ShipCruiser, NewCell(4, 4))

	if m.Inventory()[ShipCruiser] != before-1 {
		t.Fatalf("expected inventory %d after place, got: %d", before-1, m.Inventory()[ShipCruiser])
	}

	kind, err := m.RemoveAt(NewCell(5, 4))
	if err != nil {
		t.Fatal(err)
	}
	if kind != ShipCruiser {
		t.Fatalf("expected removed kind %d, got: %d", ShipCruiser, kind)
	}

	if m.Inventory()[ShipCruiser] != before {
		t.Fatalf("expected inventory restored to %d, got: %d", before, m.Inventory()[ShipCruiser])
	}
	if len(m.PlacedShips()) != 0 {
		t.Fatalf("expected no placed ships, got: %d", len(m.PlacedShips()))
	}
}

func TestRejectedPlaceLeavesStateUnchanged(t *testing.T) {
	m := NewMachine("test03", DefaultGridSize)

	mustPlace(t, m, ShipBattleship, NewCell(0, 0))

	if err := m.SelectShip(ShipSubmarine); err != nil {
		t.Fatal(err)
	}

	before := m.Snapshot()

	// Overlaps the battleship at (2, 0).
	err := m.Place(NewCell(2, 0))
	if err == nil {
		t.Fatal("expected overlap rejection")
	}
	if err.(PlacementError).Reason() != ReasonOverlap {
		t.Fatalf("expected reason %d, got: %d", ReasonOverlap, err.(PlacementError).Reason())
	}

	after := m.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("state changed on rejected place:\nbefore: %+v\nafter: %+v", before, after)
	}

	// Out of bounds is also rejected with untouched state.
	err = m.Place(NewCell(8, 8))
	if err == nil {
		t.Fatal("expected out of bounds rejection")
	}

	after = m.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Fatal("state changed on out-of-bounds place")
	}
}

func TestPreviewLegalityFlag(t *testing.T) {
	m := NewMachine("test04", DefaultGridSize)

	mustPlace(t, m, ShipDestroyer, NewCell(0, 0))

	if err := m.SelectShip(ShipCruiser); err != nil {
		t.Fatal(err)
	}

	legal, err := m.PreviewAt(NewCell(0, 0))
	if err != nil {
		t.Fatal(err)
	}
	if legal {
		t.Fatal("preview over a placed ship must be illegal")
	}
	if m.Mode() != ModePreviewing {
		t.Fatalf("machine must be previewing even for illegal spots, mode: %d", m.Mode())
	}
	if len(m.PlacedShips()) != 1 {
		t.Fatal("preview must not mutate placed ships")
	}

	legal, err = m.PreviewAt(NewCell(5, 5))
	if err != nil {
		t.Fatal(err)
	}
	if !legal {
		t.Fatal("open water preview must be legal")
	}
}

func TestRotateReevaluatesPreview(t *testing.T) {
	m := NewMachine("test05", DefaultGridSize)

	if err := m.Rotate(); err == nil {
		t.Fatal("rotate without selection must be rejected")
	}

	if err := m.SelectShip(ShipCarrier); err != nil {
		t.Fatal(err)
	}

	// Horizontal carrier fits at (5, 5): cells (5..9, 5).
	legal, err := m.PreviewAt(NewCell(5, 5))
	if err != nil {
		t.Fatal(err)
	}
	if !legal {
		t.Fatal("horizontal carrier at (5,5) must be legal")
	}

	// Vertical it overflows the bottom edge: cells (5, 5..9) fit, so
	// use (5, 6) instead.
	if _, err := m.PreviewAt(NewCell(5, 6)); err != nil {
		t.Fatal(err)
	}
	if err := m.Rotate(); err != nil {
		t.Fatal(err)
	}

	snap := m.Snapshot()
	if snap.Preview == nil {
		t.Fatal("preview must survive a rotate")
	}
	if snap.Preview.Legal {
		t.Fatal("vertical carrier at (5,6) overflows the grid, preview must be illegal")
	}
}

func TestSelectShipRejections(t *testing.T) {
	m := NewMachine("test06", DefaultGridSize)

	if err := m.SelectShip(42); err == nil {
		t.Fatal("unknown kind must be rejected")
	}

	mustPlace(t, m, ShipCarrier, NewCell(0, 0))

	err := m.SelectShip(ShipCarrier)
	if err == nil {
		t.Fatal("exhausted kind must be rejected")
	}
	if err.(PlacementError).Reason() != ReasonInventoryExhausted {
		t.Fatalf("expected reason %d, got: %d", ReasonInventoryExhausted, err.(PlacementError).Reason())
	}
}

func TestAutoPlaceSeeded(t *testing.T) {
	seeds := []int64{1, 7, 42, 1337}

	for _, seed := range seeds {
		m := NewMachine("test07", DefaultGridSize, WithRand(rand.New(rand.NewSource(seed))))

		if err := m.AutoPlace(); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		if !m.IsFleetComplete() {
			t.Fatalf("seed %d: fleet incomplete after auto place", seed)
		}
		assertFleetConservation(t, m)
		assertPairwiseDisjoint(t, m)

		for _, ship := range m.PlacedShips() {
			for _, cell := range ship.OccupiedCells {
				if !cell.InBounds(int(m.GridSize())) {
					t.Fatalf("seed %d: cell %v out of bounds", seed, cell)
				}
			}
		}
	}
}

func TestAutoPlaceDeterministicForSeed(t *testing.T) {
	m1 := NewMachine("test08a", DefaultGridSize, WithRand(rand.New(rand.NewSource(99))))
	m2 := NewMachine("test08b", DefaultGridSize, WithRand(rand.New(rand.NewSource(99))))

	if err := m1.AutoPlace(); err != nil {
		t.Fatal(err)
	}
	if err := m2.AutoPlace(); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(m1.PlacedShips(), m2.PlacedShips()) {
		t.Fatal("same seed must yield the same layout")
	}
}

func TestAutoPlaceExhaustedBudget(t *testing.T) {
	m := NewMachine("test09", DefaultGridSize,
		WithRand(rand.New(rand.NewSource(1))),
		WithAutoPlaceAttempts(0),
	)

	err := m.AutoPlace()
	if err == nil {
		t.Fatal("zero attempts must exhaust the budget")
	}
	if err.(PlacementError).Reason() != ReasonAutoPlaceFailed {
		t.Fatalf("expected reason %d, got: %d", ReasonAutoPlaceFailed, err.(PlacementError).Reason())
	}
	assertFleetConservation(t, m)
}

func TestConfirmFleet(t *testing.T) {
	m := NewMachine("test10", DefaultGridSize)

	err := m.ConfirmFleet()
	if err == nil {
		t.Fatal("confirming an incomplete fleet must fail")
	}
	if err.(PlacementError).Reason() != ReasonFleetIncomplete {
		t.Fatalf("expected reason %d, got: %d", ReasonFleetIncomplete, err.(PlacementError).Reason())
	}

	if err := m.AutoPlace(); err != nil {
		t.Fatal(err)
	}
	if err := m.ConfirmFleet(); err != nil {
		t.Fatal(err)
	}
	if m.Mode() != ModeFleetComplete {
		t.Fatalf("expected terminal mode, got: %d", m.Mode())
	}

	// Terminal mode only exits through reset; every other mutating
	// transition is rejected and the mode stays terminal.
	if err := m.SelectShip(ShipDestroyer); err == nil {
		t.Fatal("selection after confirm must be rejected")
	}

	_, err = m.RemoveAt(m.PlacedShips()[0].Origin)
	if err == nil {
		t.Fatal("removal by cell after confirm must be rejected")
	}
	if err.(PlacementError).Reason() != ReasonFleetAlreadyComplete {
		t.Fatalf("expected reason %d, got: %d", ReasonFleetAlreadyComplete, err.(PlacementError).Reason())
	}

	if _, err := m.Remove(ShipDestroyer); err == nil {
		t.Fatal("removal by kind after confirm must be rejected")
	}

	if err := m.AutoPlace(); err == nil {
		t.Fatal("auto place after confirm must be rejected")
	}

	if m.Mode() != ModeFleetComplete {
		t.Fatalf("rejected transitions must leave the terminal mode, got: %d", m.Mode())
	}
	if len(m.PlacedShips()) != TotalFleetSize() {
		t.Fatal("rejected transitions must leave the fleet intact")
	}

	m.ClearAll()
	if m.Mode() != ModeIdle {
		t.Fatalf("expected idle after clear, got: %d", m.Mode())
	}
	assertFleetConservation(t, m)
	if len(m.PlacedShips()) != 0 {
		t.Fatal("clear must remove every ship")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	m := NewMachine("test14", DefaultGridSize)
	mustPlace(t, m, ShipDestroyer, NewCell(0, 0))

	ships := m.PlacedShips()
	ships[0].Kind = ShipCarrier
	if m.PlacedShips()[0].Kind != ShipDestroyer {
		t.Fatal("PlacedShips must return a copy")
	}

	inventory := m.Inventory()
	inventory[ShipCruiser] = 0
	if m.Inventory()[ShipCruiser] != 1 {
		t.Fatal("Inventory must return a copy")
	}
}

func TestRemoveNotFound(t *testing.T) {
	m := NewMachine("test11", DefaultGridSize)

	if _, err := m.RemoveAt(NewCell(3, 3)); err == nil {
		t.Fatal("removing from an empty cell must fail")
	}
	if _, err := m.Remove(ShipCarrier); err == nil {
		t.Fatal("removing an unplaced kind must fail")
	}
}

func TestSnapshotSubscription(t *testing.T) {
	m := NewMachine("test12", DefaultGridSize)

	var got []Snapshot
	token := m.Subscribe(func(snap Snapshot) {
		got = append(got, snap)
	})

	if err := m.SelectShip(ShipDestroyer); err != nil {
		t.Fatal(err)
	}
	if err := m.Place(NewCell(0, 0)); err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 published snapshots, got: %d", len(got))
	}
	if got[1].Mode != ModePlaced {
		t.Fatalf("expected placed mode in snapshot, got: %d", got[1].Mode)
	}

	m.Unsubscribe(token)
	m.ClearAll()

	if len(got) != 2 {
		t.Fatal("unsubscribed callback must not fire")
	}
}

func TestScoreAndGrade(t *testing.T) {
	m := NewMachine("test13", DefaultGridSize)

	if Score(m.PlacedShips(), m.GridSize()) != 0 {
		t.Fatal("empty layout must score zero")
	}

	// Edge-hugging layout scores higher than a center cluster.
	edge := NewMachine("test13e", DefaultGridSize)
	mustPlace(t, edge, ShipCarrier, NewCell(0, 0))
	mustPlace(t, edge, ShipBattleship, NewCell(0, 9))
	if err := edge.SelectShip(ShipCruiser); err != nil {
		t.Fatal(err)
	}
	if err := edge.Rotate(); err != nil {
		t.Fatal(err)
	}
	if err := edge.Place(NewCell(9, 0)); err != nil {
		t.Fatal(err)
	}
	if err := edge.SelectShip(ShipSubmarine); err != nil {
		t.Fatal(err)
	}
	if err := edge.Rotate(); err != nil {
		t.Fatal(err)
	}
	if err := edge.Place(NewCell(9, 4)); err != nil {
		t.Fatal(err)
	}
	mustPlace(t, edge, ShipDestroyer, NewCell(4, 9))

	center := NewMachine("test13c", DefaultGridSize)
	mustPlace(t, center, ShipCarrier, NewCell(2, 4))
	mustPlace(t, center, ShipBattleship, NewCell(2, 5))
	mustPlace(t, center, ShipCruiser, NewCell(2, 6))
	mustPlace(t, center, ShipSubmarine, NewCell(2, 3))
	mustPlace(t, center, ShipDestroyer, NewCell(2, 2))

	edgeScore := Score(edge.PlacedShips(), edge.GridSize())
	centerScore := Score(center.PlacedShips(), center.GridSize())
	if edgeScore <= centerScore {
		t.Fatalf("edge layout must outscore center cluster: %d <= %d", edgeScore, centerScore)
	}

	if Grade(0) != GradeEnsign {
		t.Fatalf("expected %s for zero score, got: %s", GradeEnsign, Grade(0))
	}
	if Grade(100) != GradeAdmiral {
		t.Fatalf("expected %s for top score, got: %s", GradeAdmiral, Grade(100))
	}
}
