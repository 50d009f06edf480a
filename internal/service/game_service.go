package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ecolearn/internal/cache"
	"ecolearn/internal/model"
	"ecolearn/internal/repository"
)

var (
	ErrUnknownGameType    = errors.New("unknown game type")
	ErrUnknownAchievement = errors.New("unknown achievement")
	ErrNegativeScore      = errors.New("score and xp must not be negative")
)

// RecordGameInput is one completed mini-game play as reported by the client.
type RecordGameInput struct {
	GameType     model.GameType         `json:"gameType"`
	Score        int                    `json:"score"`
	XPEarned     int                    `json:"xpEarned"`
	DurationSec  int                    `json:"durationSec"`
	Level        int                    `json:"level"`
	Completed    bool                   `json:"completed"`
	Achievements []model.Achievement    `json:"achievements,omitempty"`
	Payload      map[string]interface{} `json:"payload,omitempty"`
}

// GameService records completed plays and keeps the XP leaderboard current.
type GameService struct {
	sessions    repository.GameSessionRepo
	users       repository.UserRepo
	leaderboard cache.LeaderboardCache
	now         func() time.Time
}

// NewGameService creates a new game service
func NewGameService(sessions repository.GameSessionRepo, users repository.UserRepo, leaderboard cache.LeaderboardCache) *GameService {
	return &GameService{
		sessions:    sessions,
		users:       users,
		leaderboard: leaderboard,
		now:         time.Now,
	}
}

// Record appends one play to the user's history and credits the earned XP.
// Sessions are never mutated after this point.
func (s *GameService) Record(ctx context.Context, userID string, input *RecordGameInput) (*model.GameSession, error) {
	if !model.KnownGameTypes[input.GameType] {
		return nil, ErrUnknownGameType
	}
	if input.Score < 0 || input.XPEarned < 0 {
		return nil, ErrNegativeScore
	}
	for _, a := range input.Achievements {
		if !model.KnownAchievements[a] {
			return nil, ErrUnknownAchievement
		}
	}

	achievements := input.Achievements
	count, err := s.sessions.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}
	if count == 0 && !hasAchievement(achievements, model.AchFirstGame) {
		achievements = append(achievements, model.AchFirstGame)
	}

	session := &model.GameSession{
		ID:           "gs_" + uuid.New().String()[:8],
		UserID:       userID,
		GameType:     input.GameType,
		Score:        input.Score,
		XPEarned:     input.XPEarned,
		DurationSec:  input.DurationSec,
		Level:        input.Level,
		Completed:    input.Completed,
		Achievements: achievements,
		Payload:      input.Payload,
		PlayedAt:     s.now().UTC(),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	if session.XPEarned > 0 {
		if err := s.users.IncrementXP(ctx, userID, session.XPEarned); err != nil {
			return nil, fmt.Errorf("failed to credit xp: %w", err)
		}
		if err := s.leaderboard.AddXP(ctx, userID, session.XPEarned); err != nil {
			return nil, fmt.Errorf("failed to update leaderboard: %w", err)
		}
	}

	return session, nil
}

// History returns the user's most recent plays, newest first.
func (s *GameService) History(ctx context.Context, userID string, limit int) ([]*model.GameSession, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.sessions.ListByUser(ctx, userID, limit)
}

// Leaderboard returns the top-N users by XP with display names attached.
func (s *GameService) Leaderboard(ctx context.Context, top int) ([]cache.LeaderboardEntry, error) {
	entries, err := s.leaderboard.GetTop(ctx, top)
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	return entries, nil
}

func hasAchievement(list []model.Achievement, a model.Achievement) bool {
	for _, x := range list {
		if x == a {
			return true
		}
	}
	return false
}
