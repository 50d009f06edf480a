package service

import (
	"context"
	"errors"
	"sync"

	"ecolearn/internal/cache"
	"ecolearn/internal/model"
	"ecolearn/internal/repository"
)

// --- In-memory repositories ---

type mockCodespaceRepo struct {
	mu         sync.Mutex
	codespaces map[string]*model.Codespace
	GetError   error
}

func newMockCodespaceRepo() *mockCodespaceRepo {
	return &mockCodespaceRepo{codespaces: make(map[string]*model.Codespace)}
}

func (m *mockCodespaceRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (m *mockCodespaceRepo) Create(ctx context.Context, cs *model.Codespace) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.codespaces[cs.Code]; ok {
		return repository.ErrDuplicateCode
	}
	cp := *cs
	m.codespaces[cs.Code] = &cp
	return nil
}

func (m *mockCodespaceRepo) GetByCode(ctx context.Context, code string) (*model.Codespace, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cs, ok := m.codespaces[code]
	if !ok {
		return nil, nil
	}
	cp := *cs
	return &cp, nil
}

func (m *mockCodespaceRepo) Update(ctx context.Context, code string, upd *model.CodespaceUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cs, ok := m.codespaces[code]
	if !ok {
		return repository.ErrNotFound
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
	return nil
}

type mockUserRepo struct {
	mu       sync.Mutex
	users    map[string]*model.User
	GetError error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id], nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) IncrementXP(ctx context.Context, id string, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		u.XP += delta
	}
	return nil
}

type mockGameSessionRepo struct {
	mu       sync.Mutex
	sessions []*model.GameSession
}

func (m *mockGameSessionRepo) Create(ctx context.Context, session *model.GameSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = append(m.sessions, session)
	return nil
}

func (m *mockGameSessionRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*model.GameSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.GameSession
	for i := len(m.sessions) - 1; i >= 0 && len(out) < limit; i-- {
		if m.sessions[i].UserID == userID {
			out = append(out, m.sessions[i])
		}
	}
	return out, nil
}

func (m *mockGameSessionRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, s := range m.sessions {
		if s.UserID == userID {
			n++
		}
	}
	return n, nil
}

type mockPostRepo struct {
	mu    sync.Mutex
	posts []*model.Post
}

func (m *mockPostRepo) Create(ctx context.Context, post *model.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append(m.posts, post)
	return nil
}

func (m *mockPostRepo) List(ctx context.Context, limit int) ([]*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Post
	for i := len(m.posts) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.posts[i])
	}
	return out, nil
}

func (m *mockPostRepo) Like(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.posts {
		if p.ID == id {
			p.Likes++
			return nil
		}
	}
	return repository.ErrNotFound
}

// --- In-memory caches ---

type mockCodespaceCache struct {
	mu    sync.Mutex
	views map[string]*model.CodespaceView
}

func newMockCodespaceCache() *mockCodespaceCache {
	return &mockCodespaceCache{views: make(map[string]*model.CodespaceView)}
}

func (m *mockCodespaceCache) SetView(ctx context.Context, code string, view *model.CodespaceView) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *view
	m.views[code] = &cp
	return nil
}

func (m *mockCodespaceCache) GetView(ctx context.Context, code string) (*model.CodespaceView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	view, ok := m.views[code]
	if !ok {
		return nil, nil
	}
	cp := *view
	return &cp, nil
}

func (m *mockCodespaceCache) Exists(ctx context.Context, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.views[code]
	return ok, nil
}

func (m *mockCodespaceCache) Delete(ctx context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.views, code)
	return nil
}

type mockLeaderboardCache struct {
	mu     sync.Mutex
	scores map[string]int
}

func newMockLeaderboardCache() *mockLeaderboardCache {
	return &mockLeaderboardCache{scores: make(map[string]int)}
}

func (m *mockLeaderboardCache) AddXP(ctx context.Context, userID string, xp int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores[userID] += xp
	return nil
}

func (m *mockLeaderboardCache) GetTop(ctx context.Context, limit int) ([]cache.LeaderboardEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var entries []cache.LeaderboardEntry
	for id, xp := range m.scores {
		entries = append(entries, cache.LeaderboardEntry{UserID: id, XP: xp})
	}
	return entries, nil
}

func (m *mockLeaderboardCache) GetRank(ctx context.Context, userID string) (int64, error) {
	return -1, nil
}

type mockAdminSessionCache struct {
	mu       sync.Mutex
	sessions map[string]*cache.AdminSession
	GetError error
}

func newMockAdminSessionCache() *mockAdminSessionCache {
	return &mockAdminSessionCache{sessions: make(map[string]*cache.AdminSession)}
}

func (m *mockAdminSessionCache) Set(ctx context.Context, session *cache.AdminSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.UserID] = session
	return nil
}

func (m *mockAdminSessionCache) Get(ctx context.Context, userID string) (*cache.AdminSession, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[userID], nil
}

func (m *mockAdminSessionCache) Delete(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
	return nil
}

var errBackend = errors.New("backend unavailable")
