package storage

import "testing"

type finished struct {
	mode  string
	score int
	level int
}

func seedScores(t *testing.T, store *Store, games []finished) {
	t.Helper()
	for _, g := range games {
		if _, err := store.SaveScore(g.mode, g.score, g.level); err != nil {
			t.Fatalf("SaveScore(%+v) failed: %v", g, err)
		}
	}
}

var sampleGames = []finished{
	{"matchem", 1200, 4},
	{"matchem", 300, 1},
	{"matchem", 4800, 9},
	{"matchem", 1200, 5},
	{"matchem_kids", 700, 3},
}

func TestTopScores(t *testing.T) {
	store := openTestStore(t)
	seedScores(t, store, sampleGames)

	tests := []struct {
		name   string
		mode   string
		limit  int
		scores []int
		levels []int
	}{
		{"all of a mode", "matchem", 10, []int{4800, 1200, 1200, 300}, []int{9, 4, 5, 1}},
		{"limited", "matchem", 2, []int{4800, 1200}, []int{9, 4}},
		{"zero limit means ten", "matchem", 0, []int{4800, 1200, 1200, 300}, []int{9, 4, 5, 1}},
		{"other mode", "matchem_kids", 10, []int{700}, []int{3}},
		{"never played", "solitaire", 10, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.TopScores(tt.mode, tt.limit)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(got) != len(tt.scores) {
				t.Fatalf("got %d scores, expected %d", len(got), len(tt.scores))
			}
			for i, e := range got {
				if e.Score != tt.scores[i] || e.Level != tt.levels[i] || e.GameID != tt.mode {
					t.Errorf("row %d = %+v, expected score %d level %d", i, e, tt.scores[i], tt.levels[i])
				}
			}
		})
	}
}

func TestAllScoresHasNoLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 25; i++ {
		seedScores(t, store, []finished{{"matchem", i * 10, 1}})
	}

	all, err := store.AllScores("matchem")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 25 || all[0].Score != 240 || all[24].Score != 0 {
		t.Errorf("AllScores() = %d rows from %d to %d", len(all), all[0].Score, all[len(all)-1].Score)
	}
}

func TestHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	if best, err := store.HighScore("matchem"); err != nil || best != 0 {
		t.Fatalf("empty HighScore() = %d, %v", best, err)
	}

	seedScores(t, store, sampleGames)
	if best, _ := store.HighScore("matchem"); best != 4800 {
		t.Errorf("HighScore() = %d, expected 4800", best)
	}

	if err := store.ClearScores("matchem"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if best, _ := store.HighScore("matchem"); best != 0 {
		t.Errorf("HighScore() after clear = %d", best)
	}
	if kids, _ := store.TopScores("matchem_kids", 10); len(kids) != 1 {
		t.Errorf("clearing one mode touched another: %d kids scores left", len(kids))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)
	seedScores(t, store, sampleGames)

	st, err := store.Stats("matchem")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.GamesCount != 4 || st.HighScore != 4800 || st.BestLevel != 9 || st.TotalScore != 7500 {
		t.Errorf("Stats() = %+v", st)
	}
	if st.AvgScore != 1875 {
		t.Errorf("average = %v, expected 1875", st.AvgScore)
	}
	if st.LastPlayed.IsZero() {
		t.Error("last played not set")
	}

	none, err := store.Stats("solitaire")
	if err != nil {
		t.Fatal(err)
	}
	if none.GameID != "solitaire" || none.GamesCount != 0 || !none.LastPlayed.IsZero() {
		t.Errorf("unplayed Stats() = %+v", none)
	}

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}
	if len(all) != 2 || all["matchem_kids"].BestLevel != 3 || all["matchem"].GamesCount != 4 {
		t.Errorf("AllStats() = %+v", all)
	}
}
