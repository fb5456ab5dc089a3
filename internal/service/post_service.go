// Package service contains business logic for posts and comments.
package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
)

// PostService implements post operations on top of the repository layer.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput holds validated fields for post creation.
type CreatePostInput struct {
	Title   string
	Content string
}

// UpdatePostInput holds validated fields for a partial post update. Nil
// fields retain their previous values.
type UpdatePostInput struct {
	PostID  uint
	Title   *string
	Content *string
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost persists a new post with an empty comment collection.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	post := &models.Post{
		Title:   in.Title,
		Content: in.Content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns all live posts in ascending ID order with nested comments.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetPost returns the post with nested comments.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// UpdatePost applies supplied fields to an existing post; omitted fields
// retain their previous values.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Content != nil {
		post.Content = *in.Content
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes the post together with all its comments.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}
