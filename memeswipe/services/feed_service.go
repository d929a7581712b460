package services

import (
	"context"
	"fmt"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/repositories"
)

// FeedService serves posts to swipe on.
type FeedService struct {
	store repositories.Store
}

func NewFeedService(store repositories.Store) *FeedService {
	return &FeedService{store: store}
}

// NextPost returns a random post by someone else that the user has not voted on, or
// nil when none is left.
func (s *FeedService) NextPost(ctx context.Context, userID int64) (*models.Post, error) {
	post, err := s.store.Read().Posts.RandomUnvoted(ctx, userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pick next post: %w", err)
	}
	return post, nil
}

func (s *FeedService) UserPosts(ctx context.Context, userID int64) ([]*models.Post, error) {
	posts, err := s.store.Read().Posts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}
