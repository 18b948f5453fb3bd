package postgres

import "github.com/cricstats/cricket-dashboard/internal/domain/player"

type playerTableModel struct {
	PlayerID     int64  `db:"player_id"`
	FullName     string `db:"full_name"`
	TeamName     string `db:"team_name"`
	BattingStyle string `db:"batting_style"`
	BowlingStyle string `db:"bowling_style"`
	Country      string `db:"country"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:           row.PlayerID,
		FullName:     row.FullName,
		TeamName:     row.TeamName,
		BattingStyle: row.BattingStyle,
		BowlingStyle: row.BowlingStyle,
		Country:      row.Country,
	}
}

func playerToRow(p player.Player) playerTableModel {
	return playerTableModel{
		PlayerID:     p.ID,
		FullName:     p.FullName,
		TeamName:     p.TeamName,
		BattingStyle: p.BattingStyle,
		BowlingStyle: p.BowlingStyle,
		Country:      p.Country,
	}
}
