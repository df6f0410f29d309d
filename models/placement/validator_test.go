package placement

import (
	"testing"
)

func TestComputeOccupiedCells(t *testing.T) {
	tests := []struct {
		name        string
		origin      Cell
		orientation uint8
		length      int
		gridSize    int
		wantErr     bool
		wantLast    Cell
	}{
		{
			name:        "horizontal in bounds",
			origin:      NewCell(2, 3),
			orientation: OrientationHorizontal,
			length:      4,
			gridSize:    10,
			wantLast:    NewCell(5, 3),
		},
		{
			name:        "vertical in bounds",
			origin:      NewCell(0, 0),
			orientation: OrientationVertical,
			length:      5,
			gridSize:    10,
			wantLast:    NewCell(0, 4),
		},
		{
			name:        "horizontal overflows right edge",
			origin:      NewCell(7, 0),
			orientation: OrientationHorizontal,
			length:      5,
			gridSize:    10,
			wantErr:     true,
		},
		{
			name:        "vertical overflows bottom edge",
			origin:      NewCell(0, 9),
			orientation: OrientationVertical,
			length:      2,
			gridSize:    10,
			wantErr:     true,
		},
		{
			name:        "negative origin",
			origin:      NewCell(-1, 0),
			orientation: OrientationHorizontal,
			length:      2,
			gridSize:    10,
			wantErr:     true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cells, err := ComputeOccupiedCells(test.origin, test.orientation, test.length, test.gridSize)

			if test.wantErr {
				if err == nil {
					t.Fatalf("expected out of bounds error, got cells: %v", cells)
				}
				placementErr, ok := err.(PlacementError)
				if !ok {
					t.Fatalf("expected PlacementError, got: %T", err)
				}
				if placementErr.Reason() != ReasonOutOfBounds {
					t.Fatalf("expected reason %d, got: %d", ReasonOutOfBounds, placementErr.Reason())
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}
			if len(cells) != test.length {
				t.Fatalf("expected %d cells, got: %d", test.length, len(cells))
			}
			if cells[0] != test.origin {
				t.Fatalf("expected first cell %v, got: %v", test.origin, cells[0])
			}
			if cells[len(cells)-1] != test.wantLast {
				t.Fatalf("expected last cell %v, got: %v", test.wantLast, cells[len(cells)-1])
			}
		})
	}
}

func TestIsLegalPlacement(t *testing.T) {
	inventory := NewFleetInventory()

	destroyerCells, err := ComputeOccupiedCells(NewCell(0, 0), OrientationHorizontal, SpecOf(ShipDestroyer).Length, 10)
	if err != nil {
		t.Fatal(err)
	}
	placed := []PlacedShip{{
		Kind:          ShipDestroyer,
		Origin:        NewCell(0, 0),
		Orientation:   OrientationHorizontal,
		OccupiedCells: destroyerCells,
	}}
	inventory[ShipDestroyer]--

	tests := []struct {
		name        string
		kind        uint8
		origin      Cell
		orientation uint8
		want        bool
	}{
		{"legal far placement", ShipCruiser, NewCell(5, 5), OrientationVertical, true},
		{"overlap with destroyer", ShipCruiser, NewCell(1, 0), OrientationHorizontal, false},
		{"adjacency is permitted", ShipCruiser, NewCell(0, 1), OrientationHorizontal, true},
		{"out of bounds", ShipCarrier, NewCell(6, 0), OrientationHorizontal, false},
		{"exhausted inventory", ShipDestroyer, NewCell(5, 5), OrientationHorizontal, false},
		{"unknown kind", 99, NewCell(5, 5), OrientationHorizontal, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := IsLegalPlacement(placed, inventory, test.kind, test.origin, test.orientation, 10)
			if got != test.want {
				t.Fatalf("expected legal=%v, got: %v", test.want, got)
			}
		})
	}
}
