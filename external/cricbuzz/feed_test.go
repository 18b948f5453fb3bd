package cricbuzz

import (
	"testing"

	sonic "github.com/bytedance/sonic"
)

const sampleLiveFeed = `{
  "typeMatches": [
    {
      "matchType": "International",
      "seriesMatches": [
        {
          "seriesAdWrapper": {
            "seriesId": 10,
            "seriesName": "Test Series",
            "matches": [
              {
                "matchInfo": {
                  "matchId": 555,
                  "matchDesc": "1st Test",
                  "matchFormat": "TEST",
                  "status": "Day 2: India lead by 120 runs",
                  "team1": {"teamId": 2, "teamName": "India"},
                  "team2": {"teamId": 4, "teamName": "Australia"},
                  "venueInfo": {"ground": "Eden Gardens", "city": "Kolkata"}
                },
                "matchScore": {
                  "team1Score": {
                    "inngs1": {"runs": 250, "wickets": 6, "overs": 50.0}
                  },
                  "team2Score": {
                    "inngs1": {"runs": 180, "wickets": 10, "overs": 44.3},
                    "inngs2": {"runs": 30, "wickets": 1, "overs": 8.2}
                  }
                }
              },
              {
                "matchInfo": {
                  "matchDesc": "placeholder without id"
                }
              }
            ]
          }
        },
        {}
      ]
    }
  ]
}`

func TestFlattenLiveFeed(t *testing.T) {
	t.Parallel()

	var envelope liveFeedEnvelope
	if err := sonic.Unmarshal([]byte(sampleLiveFeed), &envelope); err != nil {
		t.Fatalf("decode sample feed: %v", err)
	}

	matches := flattenLiveFeed(envelope)
	if len(matches) != 1 {
		t.Fatalf("expected one match (ads and id-less nodes skipped), got=%d", len(matches))
	}

	m := matches[0]
	if m.MatchID != 555 {
		t.Fatalf("expected match_id=555, got=%d", m.MatchID)
	}
	if m.SeriesID != 10 || m.SeriesName != "Test Series" {
		t.Fatalf("series identity must come from the wrapper, got id=%d name=%q", m.SeriesID, m.SeriesName)
	}
	if m.MatchFormat != "TEST" || m.Venue != "Eden Gardens" || m.City != "Kolkata" {
		t.Fatalf("unexpected match metadata: %+v", m)
	}
	if len(m.Teams) != 2 || m.Teams[0].TeamID != 2 || m.Teams[1].TeamID != 4 {
		t.Fatalf("unexpected teams: %+v", m.Teams)
	}
	if len(m.Innings) != 3 {
		t.Fatalf("expected 3 innings rows, got=%d", len(m.Innings))
	}

	byKey := map[[2]int64]int{}
	for _, inngs := range m.Innings {
		byKey[[2]int64{inngs.TeamID, int64(inngs.InningsNumber)}] = inngs.Runs
	}
	if byKey[[2]int64{2, 1}] != 250 {
		t.Fatalf("expected India inngs1=250, got=%d", byKey[[2]int64{2, 1}])
	}
	if byKey[[2]int64{4, 2}] != 30 {
		t.Fatalf("expected Australia inngs2=30, got=%d", byKey[[2]int64{4, 2}])
	}
}

func TestParseInningsNumber(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"inngs1":   1,
		"inngs2":   2,
		"inngs12":  2,
		"inngs":    1,
		"score":    1,
		"":         1,
		"inngs0":   1,
		"2ndInngs": 1,
	}
	for key, want := range cases {
		if got := parseInningsNumber(key); got != want {
			t.Errorf("parseInningsNumber(%q)=%d, want %d", key, got, want)
		}
	}
}

func TestParsePlayerSearchSkipsNonNumericIDs(t *testing.T) {
	t.Parallel()

	env := playerSearchEnvelope{Players: []playerSearchItem{
		{ID: "1413", Name: "Virat Kohli", TeamName: "India"},
		{ID: "abc", Name: "Broken Row"},
		{ID: " 576 ", Name: "Rohit Sharma", TeamName: "India"},
	}}

	players := parsePlayerSearch(env)
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got=%d", len(players))
	}
	if players[0].PlayerID != 1413 || players[0].FullName != "Virat Kohli" {
		t.Fatalf("unexpected first player: %+v", players[0])
	}
	if players[1].PlayerID != 576 {
		t.Fatalf("expected trimmed id 576, got=%d", players[1].PlayerID)
	}
}
