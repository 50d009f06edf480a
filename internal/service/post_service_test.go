package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListPosts(t *testing.T) {
	svc := NewPostService(&mockPostRepo{})
	ctx := context.Background()

	first, err := svc.Create(ctx, "u_1", "Kai", "Planted three trees today!")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	_, err = svc.Create(ctx, "u_2", "Ana", "Beach cleanup this weekend")
	require.NoError(t, err)

	posts, err := svc.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "Ana", posts[0].DisplayName) // newest first
}

func TestCreatePostValidation(t *testing.T) {
	svc := NewPostService(&mockPostRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, "u_1", "Kai", "   ")
	assert.ErrorIs(t, err, ErrEmptyPost)

	_, err = svc.Create(ctx, "u_1", "Kai", strings.Repeat("x", maxPostLen+1))
	assert.ErrorIs(t, err, ErrPostTooLong)
}

func TestLikePost(t *testing.T) {
	repo := &mockPostRepo{}
	svc := NewPostService(repo)
	ctx := context.Background()

	post, err := svc.Create(ctx, "u_1", "Kai", "Planted three trees today!")
	require.NoError(t, err)

	require.NoError(t, svc.Like(ctx, post.ID))
	require.NoError(t, svc.Like(ctx, post.ID))
	assert.Equal(t, 2, repo.posts[0].Likes)

	err = svc.Like(ctx, "post_missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}
