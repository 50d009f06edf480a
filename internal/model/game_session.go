package model

import "time"

type GameType string

const (
	GameRecyclingRush GameType = "recycling-rush"
	GameCarbonQuiz    GameType = "carbon-quiz"
	GameEcoTrivia     GameType = "eco-trivia"
	GameHabitatHero   GameType = "habitat-hero"
	GameEnergySaver   GameType = "energy-saver"
)

// KnownGameTypes is the closed set of playable mini-games.
var KnownGameTypes = map[GameType]bool{
	GameRecyclingRush: true,
	GameCarbonQuiz:    true,
	GameEcoTrivia:     true,
	GameHabitatHero:   true,
	GameEnergySaver:   true,
}

type Achievement string

const (
	AchFirstGame    Achievement = "first-game"
	AchPerfectScore Achievement = "perfect-score"
	AchSpeedDemon   Achievement = "speed-demon"
	AchEcoWarrior   Achievement = "eco-warrior"
	AchStreakMaster Achievement = "streak-master"
)

// KnownAchievements is the closed set of achievement tags.
var KnownAchievements = map[Achievement]bool{
	AchFirstGame:    true,
	AchPerfectScore: true,
	AchSpeedDemon:   true,
	AchEcoWarrior:   true,
	AchStreakMaster: true,
}

// GameSession records one completed play of a mini-game. Sessions are
// append-only: written once when the play finishes, never mutated.
type GameSession struct {
	ID           string                 `json:"id" bson:"_id,omitempty"`
	UserID       string                 `json:"userId" bson:"userId"`
	GameType     GameType               `json:"gameType" bson:"gameType"`
	Score        int                    `json:"score" bson:"score"`
	XPEarned     int                    `json:"xpEarned" bson:"xpEarned"`
	DurationSec  int                    `json:"durationSec" bson:"durationSec"`
	Level        int                    `json:"level" bson:"level"`
	Completed    bool                   `json:"completed" bson:"completed"`
	Achievements []Achievement          `json:"achievements,omitempty" bson:"achievements,omitempty"`
	Payload      map[string]interface{} `json:"payload,omitempty" bson:"payload,omitempty"`
	PlayedAt     time.Time              `json:"playedAt" bson:"playedAt"`
}
