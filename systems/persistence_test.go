package systems

import (
	"testing"

	"github.com/automoto/dune-runner/components"
)

func TestBeats(t *testing.T) {
	best := &HighScore{Level: "desert", Score: 500, Completed: false}

	tests := []struct {
		name      string
		score     int
		completed bool
		best      *HighScore
		want      bool
	}{
		{"first run", 0, false, nil, true},
		{"higher score", 600, false, best, true},
		{"lower score", 400, true, best, false},
		{"tie, completed", 500, true, best, true},
		{"tie, not completed", 500, false, best, false},
		{"tie against completed", 500, true, &HighScore{Score: 500, Completed: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := beats(tt.score, tt.completed, tt.best); got != tt.want {
				t.Errorf("beats(%d, %v, %+v) = %v, want %v", tt.score, tt.completed, tt.best, got, tt.want)
			}
		})
	}
}

func TestHighScoreWithoutStore(t *testing.T) {
	saved := gdataManager
	gdataManager = nil
	t.Cleanup(func() { gdataManager = saved })

	hs, err := LoadHighScore("desert")
	if hs != nil || err != nil {
		t.Errorf("LoadHighScore = %+v, %v; want nil, nil", hs, err)
	}
	ok, err := SaveHighScore("desert", components.ScoreData{Score: 100}, true)
	if ok || err != nil {
		t.Errorf("SaveHighScore = %v, %v; want false, nil", ok, err)
	}
}
