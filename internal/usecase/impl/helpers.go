package impl

import (
	"context"
	"log/slog"
	"strings"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
)

// clampPage treats missing and negative page numbers as the first page.
func clampPage(page int) int {
	if page < 1 {
		return 1
	}

	return page
}

// findShopByName resolves a case-insensitive shop name. Several matches indicate data that predates
// the case-insensitive unique index; the oldest shop wins and the anomaly is logged.
func findShopByName(ctx context.Context, repo repository.ShopRepository, logger *slog.Logger, name string) (*entity.Shop, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrShopNotFound.WrapMessage("empty shop name")
	}

	shops, err := repo.FindAllByName(ctx, name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop by name")
	}
	if len(shops) == 0 {
		return nil, domainerrors.ErrShopNotFound.WrapMessage("no shop named " + name)
	}
	if len(shops) > 1 {
		logger.Error("Multiple shops match name ignoring case",
			slog.String("name", name),
			slog.Int("matches", len(shops)),
			slog.String("selectedShopID", shops[0].ID.String()),
		)
	}

	return shops[0], nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
