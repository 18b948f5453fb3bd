package postgres

import (
	"time"

	"github.com/cricstats/cricket-dashboard/internal/domain/match"
)

type matchDetailTableModel struct {
	MatchID    int64     `db:"match_id"`
	SeriesID   int64     `db:"series_id"`
	SeriesName string    `db:"series_name"`
	MatchDescr string    `db:"match_descr"`
	Format     string    `db:"match_format"`
	Venue      string    `db:"venue"`
	City       string    `db:"city"`
	Status     string    `db:"status"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type matchDetailInsertModel struct {
	MatchID    int64  `db:"match_id"`
	SeriesID   int64  `db:"series_id"`
	SeriesName string `db:"series_name"`
	MatchDescr string `db:"match_descr"`
	Format     string `db:"match_format"`
	Venue      string `db:"venue"`
	City       string `db:"city"`
	Status     string `db:"status"`
}

type teamTableModel struct {
	TeamID   int64  `db:"team_id"`
	MatchID  int64  `db:"match_id"`
	TeamName string `db:"team_name"`
}

type inningsScoreTableModel struct {
	MatchID       int64   `db:"match_id"`
	TeamID        int64   `db:"team_id"`
	InningsNumber int     `db:"innings_number"`
	Runs          int     `db:"runs"`
	Wickets       int     `db:"wickets"`
	Overs         float64 `db:"overs"`
}

func matchDetailFromRow(row matchDetailTableModel) match.Match {
	return match.Match{
		ID:         row.MatchID,
		SeriesID:   row.SeriesID,
		SeriesName: row.SeriesName,
		Descr:      row.MatchDescr,
		Format:     row.Format,
		Venue:      row.Venue,
		City:       row.City,
		Status:     row.Status,
	}
}

func matchDetailToRow(m match.Match) matchDetailInsertModel {
	return matchDetailInsertModel{
		MatchID:    m.ID,
		SeriesID:   m.SeriesID,
		SeriesName: m.SeriesName,
		MatchDescr: m.Descr,
		Format:     m.Format,
		Venue:      m.Venue,
		City:       m.City,
		Status:     m.Status,
	}
}
