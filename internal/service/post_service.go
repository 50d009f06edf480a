package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ecolearn/internal/model"
	"ecolearn/internal/repository"
)

var (
	ErrEmptyPost    = errors.New("post body must not be empty")
	ErrPostTooLong  = errors.New("post body is too long")
	ErrPostNotFound = errors.New("post not found")
)

const maxPostLen = 2000

// PostService manages the community feed.
type PostService struct {
	posts repository.PostRepo
	now   func() time.Time
}

// NewPostService creates a new post service
func NewPostService(posts repository.PostRepo) *PostService {
	return &PostService{
		posts: posts,
		now:   time.Now,
	}
}

// Create publishes a post to the feed.
func (s *PostService) Create(ctx context.Context, userID, displayName, body string) (*model.Post, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyPost
	}
	if len(body) > maxPostLen {
		return nil, ErrPostTooLong
	}

	post := &model.Post{
		ID:          "post_" + uuid.New().String()[:8],
		UserID:      userID,
		DisplayName: displayName,
		Body:        body,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// List returns the newest posts first.
func (s *PostService) List(ctx context.Context, limit int) ([]*model.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.posts.List(ctx, limit)
}

// Like increments a post's like counter.
func (s *PostService) Like(ctx context.Context, id string) error {
	err := s.posts.Like(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPostNotFound
	}
	return err
}
