package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/validation"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	shopRepo     repository.ShopRepository
	postRepo     repository.PostRepository
	userRepo     repository.UserRepository
	validator    *validation.Validator
	shopPageSize int
	blogPageSize int
	mapsAPIKey   string
	logger       *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	ShopRepo  repository.ShopRepository
	PostRepo  repository.PostRepository
	UserRepo  repository.UserRepository
	Validator *validation.Validator
	Config    *config.Config
	Logger    *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	srv := &directoryService{
		shopRepo:     params.ShopRepo,
		postRepo:     params.PostRepo,
		userRepo:     params.UserRepo,
		validator:    params.Validator,
		shopPageSize: 10,
		blogPageSize: 5,
		logger:       params.Logger,
	}
	if params.Config != nil {
		if dir := params.Config.Directory; dir != nil {
			if dir.ShopPageSize > 0 {
				srv.shopPageSize = dir.ShopPageSize
			}
			if dir.BlogPageSize > 0 {
				srv.blogPageSize = dir.BlogPageSize
			}
		}
		if params.Config.Maps != nil {
			srv.mapsAPIKey = params.Config.Maps.APIKey
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListShops returns one page of the shop directory ordered by name.
func (srv *directoryService) ListShops(ctx context.Context, page int) (*entity.Page[*entity.Shop], error) {
	page = clampPage(page)

	shops, total, err := srv.shopRepo.List(ctx, entity.Offset(page, srv.shopPageSize), srv.shopPageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return entity.NewPage(shops, page, srv.shopPageSize, total), nil
}

// ListPosts returns one page of blog posts, newest first.
func (srv *directoryService) ListPosts(ctx context.Context, page int) (*entity.Page[*entity.Post], error) {
	page = clampPage(page)

	posts, total, err := srv.postRepo.List(ctx, entity.Offset(page, srv.blogPageSize), srv.blogPageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return entity.NewPage(posts, page, srv.blogPageSize, total), nil
}

// CreatePost publishes a blog entry for the author.
func (srv *directoryService) CreatePost(ctx context.Context, authorID uuid.UUID, input *usecase.CreatePostInput) (*entity.Post, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	author, err := srv.userRepo.FindByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("post author does not exist")
		}

		return nil, errors.Wrap(err, "failed to find post author")
	}

	post := &entity.Post{
		ID:         uuid.New(),
		AuthorID:   author.ID,
		AuthorName: author.Username,
		Title:      input.Title,
		Content:    input.Content,
		DatePosted: time.Now().UTC(),
	}
	if err := srv.postRepo.Create(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Info("Post created", slog.Any("postID", post.ID), slog.Any("authorID", author.ID))

	return post, nil
}

// MapData returns the pins of every geocoded shop and the browser map key.
func (srv *directoryService) MapData(ctx context.Context) (*usecase.MapOutput, error) {
	pins, err := srv.shopRepo.ListMapPins(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list map pins")
	}
	if pins == nil {
		pins = []*entity.MapPin{}
	}

	return &usecase.MapOutput{Pins: pins, APIKey: srv.mapsAPIKey}, nil
}
