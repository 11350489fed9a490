package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postRepository implements the repository.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository instance.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("post author does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.DatePosted = postM.DatePosted

	return nil
}

// List pages posts newest first with the author preloaded for the byline.
func (repo *postRepository) List(ctx context.Context, offset, limit int) ([]*entity.Post, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.PostModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count posts")
	}
	if total == 0 {
		return []*entity.Post{}, 0, nil
	}

	var postsM []*model.PostModel
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Order("date_posted DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&postsM).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list posts")
	}

	posts := make([]*entity.Post, 0, len(postsM))
	for _, postM := range postsM {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, total, nil
}

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	post := &entity.Post{
		ID:         data.ID,
		AuthorID:   data.AuthorID,
		Title:      data.Title,
		Content:    data.Content,
		DatePosted: data.DatePosted,
	}
	if data.Author != nil {
		post.AuthorName = data.Author.Username
	}

	return post
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:         data.ID,
		AuthorID:   data.AuthorID,
		Title:      data.Title,
		Content:    data.Content,
		DatePosted: data.DatePosted,
	}
}
