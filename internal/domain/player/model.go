package player

// Player is one row of the independently maintained players table. It has no
// enforced relationship to match or team rows.
type Player struct {
	ID           int64
	FullName     string
	TeamName     string
	BattingStyle string
	BowlingStyle string
	Country      string
}
