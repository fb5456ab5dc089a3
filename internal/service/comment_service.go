package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
)

// CommentService implements comment operations on top of the repository layer.
type CommentService struct {
	commentRepo repository.CommentRepository
}

// CreateCommentInput holds validated fields for comment creation.
type CreateCommentInput struct {
	PostID  uint
	Content string
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// CreateComment persists a comment attached to the given post. The contract
// accepts any numeric post_id without checking that the post exists.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:  in.PostID,
		Content: in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes the comment from its post's collection.
func (s *CommentService) DeleteComment(ctx context.Context, id uint) error {
	if _, err := s.commentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, id)
}
