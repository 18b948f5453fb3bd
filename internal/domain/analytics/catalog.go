package analytics

// Catalog returns the built-in practice questions in display order. The
// statements target the full cricket warehouse schema; tables beyond the
// live-ingest core (players, match_details, teams, innings_scores) may be
// absent on a fresh install, which is what Requires is for.
func Catalog() []Question {
	return catalog
}

// Lookup finds a catalog question by key.
func Lookup(key string) (Question, bool) {
	for _, q := range catalog {
		if q.Key == key {
			return q, true
		}
	}
	return Question{}, false
}

var catalog = []Question{
	{
		Key:   "q1",
		Label: "Q1 • Players representing India",
		SQL: `SELECT full_name, playing_role, batting_style, bowling_style
FROM players
WHERE country = 'India'
ORDER BY full_name;`,
		Requires: []string{"players"},
	},
	{
		Key:   "q2",
		Label: "Q2 • Matches in last 30 days (desc)",
		SQL: `SELECT m.match_desc AS match_description,
       t1.team_name AS team1, t2.team_name AS team2,
       v.venue_name || ' (' || v.city || ')' AS venue,
       m.match_date
FROM matches m
JOIN teams_dim t1 ON t1.team_id = m.team1_id
JOIN teams_dim t2 ON t2.team_id = m.team2_id
JOIN venues v ON v.venue_id = m.venue_id
WHERE m.match_date >= CURRENT_DATE - INTERVAL '30 days'
ORDER BY m.match_date DESC;`,
		Requires: []string{"matches", "teams_dim", "venues"},
	},
	{
		Key:   "q3",
		Label: "Q3 • Top 10 ODI run scorers",
		SQL: `SELECT p.full_name AS player,
       s.runs AS total_runs,
       s.batting_average,
       s.hundreds AS centuries
FROM player_stats_format s
JOIN players p ON p.player_id = s.player_id
WHERE s.format = 'ODI'
ORDER BY s.runs DESC
LIMIT 10;`,
		Requires: []string{"player_stats_format", "players"},
	},
	{
		Key:   "q4",
		Label: "Q4 • Venues capacity > 50,000",
		SQL: `SELECT venue_name, city, country, capacity
FROM venues
WHERE capacity > 50000
ORDER BY capacity DESC;`,
		Requires: []string{"venues"},
	},
	{
		Key:   "q5",
		Label: "Q5 • Matches won by each team",
		SQL: `SELECT t.team_name,
       COUNT(*) AS total_wins
FROM matches m
JOIN teams_dim t ON t.team_id = m.winner_team_id
WHERE m.status = 'Completed'
GROUP BY t.team_name
ORDER BY total_wins DESC;`,
		Requires: []string{"matches", "teams_dim"},
	},
	{
		Key:   "q6",
		Label: "Q6 • Players per playing role",
		SQL: `SELECT playing_role, COUNT(*) AS player_count
FROM players
GROUP BY playing_role
ORDER BY player_count DESC;`,
		Requires: []string{"players"},
	},
	{
		Key:   "q7",
		Label: "Q7 • Highest individual score per format",
		SQL: `SELECT ib.format, MAX(ib.runs) AS highest_score
FROM innings_batting ib
GROUP BY ib.format
ORDER BY array_position(ARRAY['Test','ODI','T20I'], ib.format), ib.format;`,
		Requires: []string{"innings_batting"},
	},
	{
		Key:   "q8",
		Label: "Q8 • Series started in 2024",
		SQL: `SELECT series_name, host_country, match_type, start_date, total_matches
FROM series
WHERE EXTRACT(YEAR FROM start_date) = 2024
ORDER BY start_date;`,
		Requires: []string{"series"},
	},
	{
		Key:   "q9",
		Label: "Q9 • All-rounders >1000 runs & >50 wickets",
		SQL: `SELECT p.full_name, f.format, f.runs AS total_runs, b.wickets AS total_wickets
FROM players p
JOIN player_stats_format f ON f.player_id = p.player_id
JOIN bowling_stats_format b ON b.player_id = p.player_id AND b.format = f.format
WHERE f.runs > 1000 AND b.wickets > 50
  AND p.playing_role = 'All-rounder'
ORDER BY f.runs DESC, b.wickets DESC;`,
		Requires: []string{"players", "player_stats_format", "bowling_stats_format"},
	},
	{
		Key:   "q10",
		Label: "Q10 • Last 20 completed matches (details)",
		SQL: `SELECT m.match_desc,
       t1.team_name AS team1, t2.team_name AS team2,
       tw.team_name AS winner,
       m.victory_margin, m.victory_type,
       v.venue_name
FROM matches m
JOIN teams_dim t1 ON t1.team_id = m.team1_id
JOIN teams_dim t2 ON t2.team_id = m.team2_id
LEFT JOIN teams_dim tw ON tw.team_id = m.winner_team_id
JOIN venues v ON v.venue_id = m.venue_id
WHERE m.status = 'Completed'
ORDER BY m.match_date DESC
LIMIT 20;`,
		Requires: []string{"matches", "teams_dim", "venues"},
	},
	{
		Key:   "q11",
		Label: "Q11 • Player performance across formats",
		SQL: `SELECT p.full_name,
       SUM(CASE WHEN f.format='Test' THEN f.runs ELSE 0 END) AS test_runs,
       SUM(CASE WHEN f.format='ODI'  THEN f.runs ELSE 0 END) AS odi_runs,
       SUM(CASE WHEN f.format='T20I' THEN f.runs ELSE 0 END) AS t20i_runs,
       ROUND(AVG(f.batting_average)::numeric, 2) AS overall_batting_avg
FROM players p
JOIN player_stats_format f ON f.player_id = p.player_id
GROUP BY p.full_name
HAVING COUNT(*) FILTER (WHERE f.format IN ('Test','ODI','T20I')) >= 2
ORDER BY p.full_name;`,
		Requires: []string{"players", "player_stats_format"},
	},
	{
		Key:   "q12",
		Label: "Q12 • Home vs away team wins",
		SQL: `SELECT t.team_name,
       SUM(CASE WHEN v.country = t.country AND m.winner_team_id = t.team_id THEN 1 ELSE 0 END) AS home_wins,
       SUM(CASE WHEN v.country <> t.country AND m.winner_team_id = t.team_id THEN 1 ELSE 0 END) AS away_wins
FROM matches m
JOIN venues v ON v.venue_id = m.venue_id
JOIN teams_dim t ON t.team_id IN (m.team1_id, m.team2_id)
WHERE m.status = 'Completed'
GROUP BY t.team_name
ORDER BY SUM(CASE WHEN m.winner_team_id = t.team_id THEN 1 ELSE 0 END) DESC;`,
		Requires: []string{"matches", "venues", "teams_dim"},
	},
	{
		Key:   "q13",
		Label: "Q13 • Partnerships of 100+ (consecutive batters)",
		SQL: `SELECT p1.full_name || ' & ' || p2.full_name AS partnership,
       pr.runs AS partnership_runs,
       pr.innings_number
FROM partnerships pr
JOIN players p1 ON p1.player_id = pr.striker_id
JOIN players p2 ON p2.player_id = pr.non_striker_id
WHERE ABS(p1.batting_position - p2.batting_position) = 1
  AND pr.runs >= 100
ORDER BY pr.runs DESC;`,
		Requires: []string{"partnerships", "players"},
	},
	{
		Key:   "q14",
		Label: "Q14 • Bowling at venues (3+ matches, 4+ overs)",
		SQL: `SELECT p.full_name, v.venue_name,
       ROUND((SUM(b.runs_conceded) / NULLIF(SUM(b.overs), 0))::numeric, 2) AS avg_economy,
       SUM(b.wickets) AS total_wickets,
       COUNT(DISTINCT b.match_id) AS matches_played
FROM innings_bowling b
JOIN players p ON p.player_id = b.player_id
JOIN matches m ON m.match_id = b.match_id
JOIN venues v ON v.venue_id = m.venue_id
WHERE b.overs >= 4
GROUP BY p.full_name, v.venue_name
HAVING COUNT(DISTINCT b.match_id) >= 3
ORDER BY avg_economy ASC, total_wickets DESC;`,
		Requires: []string{"innings_bowling", "players", "matches", "venues"},
	},
	{
		Key:   "q15",
		Label: "Q15 • Performers in close matches",
		SQL: `WITH close_matches AS (
  SELECT m.*
  FROM matches m
  WHERE m.status = 'Completed'
    AND ((m.victory_type='runs' AND m.victory_margin < 50)
      OR (m.victory_type='wickets' AND m.victory_margin < 5))
),
batting_in_close AS (
  SELECT ib.match_id, ib.player_id, ib.runs
  FROM innings_batting ib
  JOIN close_matches cm ON cm.match_id = ib.match_id
)
SELECT p.full_name,
       ROUND(AVG(bc.runs)::numeric, 2) AS avg_runs_close,
       COUNT(*) AS close_matches_played,
       SUM(CASE WHEN m.winner_team_id = it.team_id THEN 1 ELSE 0 END) AS team_wins_when_batted
FROM batting_in_close bc
JOIN players p ON p.player_id = bc.player_id
JOIN innings_teams it ON it.match_id = bc.match_id AND it.player_id = bc.player_id
JOIN matches m ON m.match_id = bc.match_id
GROUP BY p.full_name
ORDER BY avg_runs_close DESC, team_wins_when_batted DESC;`,
		Requires: []string{"matches", "innings_batting", "innings_teams", "players"},
	},
	{
		Key:   "q16",
		Label: "Q16 • Yearly batting since 2020 (5+ matches/yr)",
		SQL: `SELECT p.full_name,
       EXTRACT(YEAR FROM m.match_date) AS year,
       ROUND(AVG(ib.runs)::numeric, 2) AS avg_runs_per_match,
       ROUND(AVG(ib.strike_rate)::numeric, 2) AS avg_sr
FROM innings_batting ib
JOIN players p ON p.player_id = ib.player_id
JOIN matches m ON m.match_id = ib.match_id
WHERE m.match_date >= DATE '2020-01-01'
GROUP BY p.full_name, EXTRACT(YEAR FROM m.match_date)
HAVING COUNT(DISTINCT m.match_id) >= 5
ORDER BY p.full_name, year;`,
		Requires: []string{"innings_batting", "players", "matches"},
	},
	{
		Key:   "q17",
		Label: "Q17 • Toss win to match win % by decision",
		SQL: `SELECT toss_decision,
       ROUND(100.0 * SUM(CASE WHEN winner_team_id = toss_winner_team_id THEN 1 ELSE 0 END) / COUNT(*), 2)
         AS pct_won_after_winning_toss
FROM matches
WHERE status = 'Completed'
GROUP BY toss_decision
ORDER BY pct_won_after_winning_toss DESC;`,
		Requires: []string{"matches"},
	},
	{
		Key:   "q18",
		Label: "Q18 • Most economical bowlers (ODI/T20I, min 10 matches)",
		SQL: `WITH bowl_counts AS (
  SELECT b.player_id, b.format,
         COUNT(DISTINCT b.match_id) AS matches_bowled,
         SUM(b.overs) AS overs_total,
         SUM(b.runs_conceded) AS runs_total,
         SUM(b.wickets) AS wickets_total
  FROM innings_bowling b
  WHERE b.format IN ('ODI','T20I')
  GROUP BY b.player_id, b.format
)
SELECT p.full_name, bc.format,
       ROUND((bc.runs_total / NULLIF(bc.overs_total, 0))::numeric, 2) AS economy_rate,
       bc.wickets_total AS total_wickets,
       bc.matches_bowled
FROM bowl_counts bc
JOIN players p ON p.player_id = bc.player_id
WHERE bc.matches_bowled >= 10
  AND (bc.overs_total / bc.matches_bowled) >= 2
ORDER BY economy_rate ASC, total_wickets DESC;`,
		Requires: []string{"innings_bowling", "players"},
	},
	{
		Key:   "q19",
		Label: "Q19 • Consistency: mean & stddev of runs (since 2022)",
		SQL: `SELECT p.full_name,
       ROUND(AVG(ib.runs)::numeric, 2) AS avg_runs,
       ROUND(STDDEV_SAMP(ib.runs)::numeric, 2) AS stddev_runs,
       COUNT(*) AS inns_count
FROM innings_batting ib
JOIN players p ON p.player_id = ib.player_id
JOIN matches m ON m.match_id = ib.match_id
WHERE m.match_date >= DATE '2022-01-01'
  AND ib.balls_faced >= 10
GROUP BY p.full_name
HAVING COUNT(*) >= 1
ORDER BY stddev_runs ASC, avg_runs DESC;`,
		Requires: []string{"innings_batting", "players", "matches"},
	},
	{
		Key:   "q20",
		Label: "Q20 • Matches per format & batting avg (20+ total)",
		SQL: `SELECT p.full_name,
       SUM(CASE WHEN f.format='Test' THEN f.matches ELSE 0 END) AS test_matches,
       SUM(CASE WHEN f.format='ODI'  THEN f.matches ELSE 0 END) AS odi_matches,
       SUM(CASE WHEN f.format='T20I' THEN f.matches ELSE 0 END) AS t20i_matches,
       ROUND(AVG(CASE WHEN f.matches > 0 THEN f.batting_average END)::numeric, 2) AS avg_bat_avg
FROM players p
JOIN player_stats_format f ON f.player_id = p.player_id
GROUP BY p.full_name
HAVING SUM(f.matches) >= 20
ORDER BY SUM(f.matches) DESC;`,
		Requires: []string{"players", "player_stats_format"},
	},
	{
		Key:   "q21",
		Label: "Q21 • Composite player ranking (per format)",
		SQL: `WITH points AS (
  SELECT p.player_id, p.full_name, f.format,
         ((f.runs * 0.01) + (f.batting_average * 0.5) + (f.strike_rate * 0.3)) AS batting_pts,
         ((b.wickets * 2)
          + (50 - b.bowling_average) * 0.5
          + ((6 - b.economy_rate) * 2)) AS bowling_pts,
         (fd.catches + (fd.stumpings * 2)) AS fielding_pts
  FROM players p
  LEFT JOIN player_stats_format f ON f.player_id = p.player_id
  LEFT JOIN bowling_stats_format b ON b.player_id = p.player_id AND b.format = f.format
  LEFT JOIN fielding_stats_format fd ON fd.player_id = p.player_id AND fd.format = f.format
)
SELECT full_name, format,
       ROUND((COALESCE(batting_pts,0) + COALESCE(bowling_pts,0) + COALESCE(fielding_pts,0))::numeric, 2) AS total_points,
       ROUND(batting_pts::numeric, 2) AS batting_pts,
       ROUND(bowling_pts::numeric, 2) AS bowling_pts,
       ROUND(fielding_pts::numeric, 2) AS fielding_pts
FROM points
ORDER BY format, total_points DESC
LIMIT 100;`,
		Requires: []string{"players", "player_stats_format", "bowling_stats_format", "fielding_stats_format"},
	},
	{
		Key:   "q22",
		Label: "Q22 • Head-to-head analysis (last 3 years, 5+ matches)",
		SQL: `WITH recent AS (
  SELECT *
  FROM matches
  WHERE match_date >= CURRENT_DATE - INTERVAL '3 years'
),
pairs AS (
  SELECT LEAST(team1_id, team2_id) AS team_a,
         GREATEST(team1_id, team2_id) AS team_b,
         COUNT(*) AS games
  FROM recent
  GROUP BY LEAST(team1_id, team2_id), GREATEST(team1_id, team2_id)
  HAVING COUNT(*) >= 5
),
agg AS (
  SELECT p.team_a, p.team_b, p.games,
         SUM(CASE WHEN m.winner_team_id = p.team_a THEN 1 ELSE 0 END) AS wins_a,
         SUM(CASE WHEN m.winner_team_id = p.team_b THEN 1 ELSE 0 END) AS wins_b,
         AVG(CASE WHEN m.winner_team_id = p.team_a AND m.victory_type='runs' THEN m.victory_margin END) AS avg_margin_a_runs,
         AVG(CASE WHEN m.winner_team_id = p.team_b AND m.victory_type='runs' THEN m.victory_margin END) AS avg_margin_b_runs
  FROM pairs p
  JOIN recent m ON LEAST(m.team1_id, m.team2_id) = p.team_a
               AND GREATEST(m.team1_id, m.team2_id) = p.team_b
  GROUP BY p.team_a, p.team_b, p.games
)
SELECT ta.team_name AS team_a, tb.team_name AS team_b,
       games, wins_a, wins_b,
       ROUND(100.0 * wins_a / games, 2) AS win_pct_a,
       ROUND(100.0 * wins_b / games, 2) AS win_pct_b,
       avg_margin_a_runs, avg_margin_b_runs
FROM agg
JOIN teams_dim ta ON ta.team_id = agg.team_a
JOIN teams_dim tb ON tb.team_id = agg.team_b
ORDER BY games DESC, win_pct_a DESC;`,
		Requires: []string{"matches", "teams_dim"},
	},
	{
		Key:   "q23",
		Label: "Q23 • Recent form (last 10 innings)",
		SQL: `WITH last10 AS (
  SELECT ib.player_id, ib.runs, ib.strike_rate,
         ROW_NUMBER() OVER (PARTITION BY ib.player_id ORDER BY m.match_date DESC) AS rn
  FROM innings_batting ib
  JOIN matches m ON m.match_id = ib.match_id
)
SELECT p.full_name,
       ROUND(AVG(CASE WHEN rn <= 5  THEN runs END)::numeric, 2) AS avg_last5,
       ROUND(AVG(CASE WHEN rn <= 10 THEN runs END)::numeric, 2) AS avg_last10,
       ROUND(AVG(CASE WHEN rn <= 10 THEN strike_rate END)::numeric, 2) AS sr_trend,
       SUM(CASE WHEN rn <= 10 AND runs >= 50 THEN 1 ELSE 0 END) AS fifties_last10,
       ROUND(STDDEV_SAMP(CASE WHEN rn <= 10 THEN runs END)::numeric, 2) AS consistency_stddev
FROM last10 l
JOIN players p ON p.player_id = l.player_id
GROUP BY p.full_name
ORDER BY avg_last10 DESC, consistency_stddev ASC;`,
		Requires: []string{"innings_batting", "matches", "players"},
	},
	{
		Key:   "q24",
		Label: "Q24 • Best batting partnerships (5+ together)",
		SQL: `WITH qualified AS (
  SELECT pr.striker_id, pr.non_striker_id,
         COUNT(*) AS partnerships,
         AVG(pr.runs) AS avg_runs,
         SUM(CASE WHEN pr.runs >= 50 THEN 1 ELSE 0 END) AS over_50_count,
         MAX(pr.runs) AS highest
  FROM partnerships pr
  WHERE ABS(pr.striker_pos - pr.non_striker_pos) = 1
  GROUP BY pr.striker_id, pr.non_striker_id
  HAVING COUNT(*) >= 5
)
SELECT p1.full_name || ' & ' || p2.full_name AS pair,
       partnerships, ROUND(avg_runs::numeric, 2) AS avg_runs,
       over_50_count, highest,
       ROUND(100.0 * over_50_count / partnerships, 2) AS success_rate_pct
FROM qualified q
JOIN players p1 ON p1.player_id = q.striker_id
JOIN players p2 ON p2.player_id = q.non_striker_id
ORDER BY success_rate_pct DESC, avg_runs DESC, partnerships DESC
LIMIT 50;`,
		Requires: []string{"partnerships", "players"},
	},
	{
		Key:   "q25",
		Label: "Q25 • Quarterly performance & trajectory (6+ quarters)",
		SQL: `WITH qb AS (
  SELECT ib.player_id,
         to_char(m.match_date, 'YYYY-"Q"Q') AS yr_qtr,
         AVG(ib.runs) AS avg_runs_qtr,
         AVG(ib.strike_rate) AS avg_sr_qtr,
         COUNT(DISTINCT m.match_id) AS matches_qtr
  FROM innings_batting ib
  JOIN matches m ON m.match_id = ib.match_id
  GROUP BY ib.player_id, to_char(m.match_date, 'YYYY-"Q"Q')
  HAVING COUNT(DISTINCT m.match_id) >= 3
),
changes AS (
  SELECT qb.*,
         LAG(avg_runs_qtr) OVER (PARTITION BY player_id ORDER BY yr_qtr) AS prev_runs,
         LAG(avg_sr_qtr)   OVER (PARTITION BY player_id ORDER BY yr_qtr) AS prev_sr
  FROM qb
),
qualified AS (
  SELECT player_id
  FROM qb
  GROUP BY player_id
  HAVING COUNT(*) >= 6
)
SELECT p.full_name, c.yr_qtr,
       ROUND(c.avg_runs_qtr::numeric, 2) AS avg_runs_qtr,
       ROUND(c.avg_sr_qtr::numeric, 2)   AS avg_sr_qtr,
       CASE
         WHEN c.prev_runs IS NULL THEN 'N/A'
         WHEN c.avg_runs_qtr > c.prev_runs AND c.avg_sr_qtr > c.prev_sr THEN 'Improving'
         WHEN c.avg_runs_qtr < c.prev_runs AND c.avg_sr_qtr < c.prev_sr THEN 'Declining'
         ELSE 'Stable'
       END AS trajectory
FROM changes c
JOIN qualified q ON q.player_id = c.player_id
JOIN players p ON p.player_id = c.player_id
ORDER BY p.full_name, c.yr_qtr;`,
		Requires: []string{"innings_batting", "matches", "players"},
	},
	{
		Key:      "dump-match-details",
		Label:    "(Simple) All match details",
		SQL:      `SELECT * FROM match_details ORDER BY match_id DESC LIMIT 100;`,
		Requires: []string{"match_details"},
	},
	{
		Key:      "dump-teams",
		Label:    "(Simple) Teams by match",
		SQL:      `SELECT * FROM teams ORDER BY match_id DESC LIMIT 100;`,
		Requires: []string{"teams"},
	},
	{
		Key:      "dump-innings-scores",
		Label:    "(Simple) Innings scores",
		SQL:      `SELECT * FROM innings_scores ORDER BY match_id DESC, team_id, innings_number;`,
		Requires: []string{"innings_scores"},
	},
	{
		Key:      "dump-players",
		Label:    "(Simple) All players",
		SQL:      `SELECT * FROM players ORDER BY player_id LIMIT 100;`,
		Requires: []string{"players"},
	},
}
