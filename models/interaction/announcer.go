package interaction

import (
	"fmt"

	mp "github.com/armadagame/armada-backend/models/placement"
)

const announcementLogCapacity = 10

// Announcer keeps a bounded log of human-readable action
// descriptions for assistive technology. It is independent of any
// visual rendering.
type Announcer struct {
	entries []string
}

func NewAnnouncer() *Announcer {
	return &Announcer{
		entries: make([]string, 0, announcementLogCapacity),
	}
}

// AnnounceAction appends to the log, evicting the oldest entry once
// capacity is exceeded.
func (a *Announcer) AnnounceAction(text string) {
	a.entries = append(a.entries, text)
	if len(a.entries) > announcementLogCapacity {
		a.entries = a.entries[1:]
	}
}

func (a *Announcer) AnnounceShipSelection(kind uint8) {
	a.AnnounceAction(fmt.Sprintf("%s selected for placement", capitalize(mp.SpecOf(kind).Name)))
}

func (a *Announcer) AnnounceShipPlacement(kind uint8, cell mp.Cell) {
	a.AnnounceAction(fmt.Sprintf("%s placed at grid %d, %d", capitalize(mp.SpecOf(kind).Name), cell.X, cell.Y))
}

// Removal announcements use the lower-case kind name while selection
// and placement capitalize it. The asymmetry is a documented contract
// with the assistive-technology layer, keep it as is.
func (a *Announcer) AnnounceShipRemoval(kind uint8) {
	a.AnnounceAction(fmt.Sprintf("%s removed from the board", mp.SpecOf(kind).Name))
}

// Recent returns the log in order, most recent last.
func (a *Announcer) Recent() []string {
	out := make([]string, len(a.entries))
	copy(out, a.entries)
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
