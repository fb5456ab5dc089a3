package seed

import (
	"fmt"

	"quill/internal/models"

	"gorm.io/gorm"
)

// Options controls how much demo data Run generates.
type Options struct {
	Users           int
	Posts           int
	CommentsPerPost int
}

// DefaultOptions returns a sensible demo dataset size.
func DefaultOptions() Options {
	return Options{
		Users:           5,
		Posts:           20,
		CommentsPerPost: 3,
	}
}

// Run populates the database with fake users, posts, and comments.
func Run(db *gorm.DB, opts Options) error {
	factory := NewFactory(db)

	for i := 0; i < opts.Users; i++ {
		if _, err := factory.CreateUser(); err != nil {
			return fmt.Errorf("seeding users: %w", err)
		}
	}

	for i := 0; i < opts.Posts; i++ {
		post, err := factory.CreatePost()
		if err != nil {
			return fmt.Errorf("seeding posts: %w", err)
		}
		for j := 0; j < opts.CommentsPerPost; j++ {
			if _, err := factory.CreateComment(post.ID); err != nil {
				return fmt.Errorf("seeding comments: %w", err)
			}
		}
	}

	return nil
}

// Reset wipes all resource tables, including soft-deleted rows. Sequences are
// not reset, so previously assigned IDs stay retired.
func Reset(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{&models.Comment{}, &models.Post{}, &models.User{}} {
			if err := tx.Unscoped().Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
