package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/dune-runner/components"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// HighScore is the best run recorded for a level.
type HighScore struct {
	Level           string `json:"level"`
	Score           int    `json:"score"`
	EnemiesDefeated int    `json:"enemiesDefeated"`
	Completed       bool   `json:"completed"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the save-data store. Runs still work without it;
// high scores are simply not kept.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "dune-runner",
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return fmt.Errorf("open save data: %w", err)
	}
	gdataManager = m
	return nil
}

func highScoreKey(level string) string {
	return "highscore-" + level
}

// LoadHighScore returns the stored best run for level, or nil if there is none.
func LoadHighScore(level string) (*HighScore, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(highScoreKey(level))
	if err != nil {
		return nil, fmt.Errorf("load high score: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var hs HighScore
	if err := json.Unmarshal(data, &hs); err != nil {
		return nil, fmt.Errorf("parse high score: %w", err)
	}
	return &hs, nil
}

// SaveHighScore stores the run if it beats the recorded one and reports
// whether it did.
func SaveHighScore(level string, score components.ScoreData, completed bool) (bool, error) {
	if gdataManager == nil {
		return false, nil
	}

	best, err := LoadHighScore(level)
	if err != nil {
		log.Warn("ignoring unreadable high score", "level", level, "err", err)
		best = nil
	}
	if !beats(score.Score, completed, best) {
		return false, nil
	}

	data, err := json.Marshal(HighScore{
		Level:           level,
		Score:           score.Score,
		EnemiesDefeated: score.EnemiesDefeated,
		Completed:       completed,
	})
	if err != nil {
		return false, fmt.Errorf("serialize high score: %w", err)
	}
	if err := gdataManager.SaveItem(highScoreKey(level), data); err != nil {
		return false, fmt.Errorf("save high score: %w", err)
	}
	return true, nil
}

// beats orders runs by score, with a completed run winning a tie.
func beats(score int, completed bool, best *HighScore) bool {
	if best == nil {
		return true
	}
	if score != best.Score {
		return score > best.Score
	}
	return completed && !best.Completed
}
