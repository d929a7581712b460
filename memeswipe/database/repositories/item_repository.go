package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
)

type itemRepository struct {
	db bun.IDB
}

func NewItemRepository(db bun.IDB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) List(ctx context.Context) ([]*models.Item, error) {
	var items []*models.Item
	err := r.db.NewSelect().
		Model(&items).
		Order("i.cost ASC", "i.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, wrap("list", "items", err)
	}
	return items, nil
}

func (r *itemRepository) GetByID(ctx context.Context, itemID int64) (*models.Item, error) {
	item := new(models.Item)
	err := r.db.NewSelect().
		Model(item).
		Where("i.id = ?", itemID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Entity: "item", ID: itemID}
		}
		return nil, wrap("get", "items", err)
	}
	return item, nil
}

func (r *itemRepository) ListOwned(ctx context.Context, userID int64) ([]*models.Item, error) {
	var items []*models.Item
	err := r.db.NewSelect().
		Model(&items).
		Join("JOIN user_items AS ui ON ui.item_id = i.id").
		Where("ui.user_id = ?", userID).
		Order("i.cost ASC", "i.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, wrap("list owned", "items", err)
	}
	return items, nil
}

func (r *itemRepository) Grant(ctx context.Context, userID, itemID int64, now time.Time) (bool, error) {
	res, err := r.db.NewInsert().
		Model(&models.UserItem{UserID: userID, ItemID: itemID, CreatedAt: now}).
		On("CONFLICT (user_id, item_id) DO NOTHING").
		Returning("NULL").
		Exec(ctx)
	if err != nil {
		return false, wrap("grant", "user_items", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, wrap("grant", "user_items", err)
	}
	return affected == 1, nil
}

func (r *itemRepository) OwnsByName(ctx context.Context, userID int64, name string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.UserItem)(nil)).
		Join("JOIN items AS i ON i.id = ui.item_id").
		Where("ui.user_id = ?", userID).
		Where("i.name = ?", name).
		Exists(ctx)
	if err != nil {
		return false, wrap("owns", "user_items", err)
	}
	return exists, nil
}
