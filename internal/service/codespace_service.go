package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"ecolearn/internal/cache"
	"ecolearn/internal/model"
	"ecolearn/internal/repository"
)

var (
	ErrInvalidFormat       = errors.New("join code is too short")
	ErrCodespaceNotFound   = errors.New("codespace not found")
	ErrCodespaceInactive   = errors.New("codespace is not accepting joins")
	ErrCodespaceExpired    = errors.New("codespace has expired")
	ErrGenerationExhausted = errors.New("could not generate a unique join code")
	ErrNotOwner            = errors.New("only the owning admin can modify a codespace")
)

const (
	// codeAlphabet omits 0/O/1/I to keep codes unambiguous when read aloud.
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 6
	minCodeLen   = 4
	maxCodeTries = 10
)

// Notifier fans out codespace lifecycle events to connected participants.
type Notifier interface {
	QuizAttached(code, quizID string)
	ActiveChanged(code string, active bool)
}

// CodespaceService owns codespace lifecycle: code generation, creation,
// admin mutations and the participant join flow.
type CodespaceService struct {
	repo     repository.CodespaceRepo
	cache    cache.CodespaceCache
	notifier Notifier
	now      func() time.Time
}

// NewCodespaceService creates a new codespace service
func NewCodespaceService(repo repository.CodespaceRepo, csCache cache.CodespaceCache) *CodespaceService {
	return &CodespaceService{
		repo:  repo,
		cache: csCache,
		now:   time.Now,
	}
}

// SetNotifier sets the event fanout for codespace mutations.
func (s *CodespaceService) SetNotifier(n Notifier) {
	s.notifier = n
}

// Create makes a new codespace owned by the given admin. The join code is
// generated here and is immutable afterwards.
func (s *CodespaceService) Create(ctx context.Context, adminUserID, adminDisplayName, name string, ttl time.Duration) (*model.Codespace, error) {
	code, err := s.generateCode(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	cs := &model.Codespace{
		Code:             code,
		AdminUserID:      adminUserID,
		AdminDisplayName: adminDisplayName,
		Name:             name,
		Active:           true,
		ExpiresAt:        now.Add(ttl),
		CreatedAt:        now,
	}

	if err := s.repo.Create(ctx, cs); err != nil {
		return nil, fmt.Errorf("failed to create codespace: %w", err)
	}

	if err := s.cache.SetView(ctx, code, cs.View()); err != nil {
		return nil, fmt.Errorf("failed to cache codespace: %w", err)
	}

	return cs, nil
}

// Join validates a submitted code and returns the participant-facing
// projection. It mutates nothing and is safe to call repeatedly for refresh.
func (s *CodespaceService) Join(ctx context.Context, submittedCode string) (*model.CodespaceView, error) {
	code := strings.ToUpper(strings.TrimSpace(submittedCode))
	if len(code) < minCodeLen {
		return nil, ErrInvalidFormat
	}

	view, err := s.lookupView(ctx, code)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, ErrCodespaceNotFound
	}
	if !view.Active {
		return nil, ErrCodespaceInactive
	}
	if s.now().After(view.ExpiresAt) {
		return nil, ErrCodespaceExpired
	}

	return view, nil
}

// Get returns the full codespace record for its owning admin.
func (s *CodespaceService) Get(ctx context.Context, code, adminUserID string) (*model.Codespace, error) {
	cs, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get codespace: %w", err)
	}
	if cs == nil {
		return nil, ErrCodespaceNotFound
	}
	if cs.AdminUserID != adminUserID {
		return nil, ErrNotOwner
	}
	return cs, nil
}

// Update applies the allowed post-creation mutations (active, quizId, name)
// on behalf of the owning admin and refreshes the cached projection.
func (s *CodespaceService) Update(ctx context.Context, code, adminUserID string, upd *model.CodespaceUpdate) (*model.Codespace, error) {
	cs, err := s.Get(ctx, code, adminUserID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, code, upd); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCodespaceNotFound
		}
		return nil, fmt.Errorf("failed to update codespace: %w", err)
	}

	if upd.Active != nil {
		cs.Active = *upd.Active
	}
	if upd.QuizID != nil {
		cs.QuizID = upd.QuizID
	}
	if upd.Name != nil {
		cs.Name = *upd.Name
	}

	if err := s.cache.SetView(ctx, code, cs.View()); err != nil {
		return nil, fmt.Errorf("failed to refresh cached codespace: %w", err)
	}

	if s.notifier != nil {
		if upd.QuizID != nil {
			s.notifier.QuizAttached(code, *upd.QuizID)
		}
		if upd.Active != nil {
			s.notifier.ActiveChanged(code, *upd.Active)
		}
	}

	return cs, nil
}

// lookupView reads the cached projection, falling back to the store and
// backfilling the cache on a miss.
func (s *CodespaceService) lookupView(ctx context.Context, code string) (*model.CodespaceView, error) {
	view, err := s.cache.GetView(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to read codespace cache: %w", err)
	}
	if view != nil {
		return view, nil
	}

	cs, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get codespace: %w", err)
	}
	if cs == nil {
		return nil, nil
	}

	view = cs.View()
	if err := s.cache.SetView(ctx, code, view); err != nil {
		return nil, fmt.Errorf("failed to backfill codespace cache: %w", err)
	}
	return view, nil
}

// generateCode draws fixed-length codes until one is unused, bounded by
// maxCodeTries. The store's unique index remains the final arbiter against
// racing creations; a lost race surfaces from Create as ErrDuplicateCode.
func (s *CodespaceService) generateCode(ctx context.Context) (string, error) {
	for attempts := 0; attempts < maxCodeTries; attempts++ {
		b := make([]byte, codeLength)
		if _, err := rand.Read(b); err != nil {
			return "", err
		}

		code := make([]byte, codeLength)
		for i := range code {
			code[i] = codeAlphabet[int(b[i])%len(codeAlphabet)]
		}
		codeStr := string(code)

		existing, err := s.repo.GetByCode(ctx, codeStr)
		if err != nil {
			return "", fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if existing == nil {
			return codeStr, nil
		}
	}

	return "", ErrGenerationExhausted
}
