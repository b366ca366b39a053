package arena

import "github.com/knightsmove/isolation/pkg/isolation"

// Competitor pairs a player with a display name. The value itself is the
// tallying key, so two Competitors are distinct entrants even when they wrap
// logically equivalent strategies. Immutable once constructed.
type Competitor struct {
	Player isolation.Player
	Name   string
}

func NewCompetitor(p isolation.Player, name string) Competitor {
	return Competitor{Player: p, Name: name}
}

func (c Competitor) String() string {
	return c.Name
}
