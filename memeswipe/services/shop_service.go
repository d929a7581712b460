package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/models"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/database/repositories"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/logger"
	"github.com/SzerokiGeralt/MemeSwipe/memeswipe/metrics"
)

type ShopItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int64  `json:"cost"`
	Owned       bool   `json:"owned"`
}

type PurchaseOutcome struct {
	Item     ShopItem `json:"item"`
	Diamonds int64    `json:"diamonds"`
}

// VIPStatus lists the cosmetic and gameplay items a user owns.
type VIPStatus struct {
	HasVIPBadge        bool `json:"has_vip_badge"`
	HasGoldenProfile   bool `json:"has_golden_profile"`
	HasAvatarFrame     bool `json:"has_avatar_frame"`
	HasCooldownReducer bool `json:"has_cooldown_reducer"`
}

type ShopService struct {
	store   repositories.Store
	metrics metrics.Recorder
}

func NewShopService(store repositories.Store, rec metrics.Recorder) *ShopService {
	if rec == nil {
		rec = metrics.Noop()
	}
	return &ShopService{store: store, metrics: rec}
}

func ownedIDs(owned []*models.Item) []int64 {
	ids := make([]int64, 0, len(owned))
	for _, it := range owned {
		ids = append(ids, it.ID)
	}
	return ids
}

func (s *ShopService) ListItems(ctx context.Context, userID int64) ([]ShopItem, error) {
	repos := s.store.Read()

	items, err := repos.Items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	owned, err := repos.Items.ListOwned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned items: %w", err)
	}
	ids := ownedIDs(owned)

	out := make([]ShopItem, 0, len(items))
	for _, it := range items {
		out = append(out, ShopItem{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Cost:        it.Cost,
			Owned:       slices.Contains(ids, it.ID),
		})
	}
	return out, nil
}

// Purchase grants the item and debits its cost in one transaction.
func (s *ShopService) Purchase(ctx context.Context, userID, itemID int64, now time.Time) (*PurchaseOutcome, error) {
	var out PurchaseOutcome
	err := s.store.RunInTx(ctx, func(ctx context.Context, repos *repositories.Repositories) error {
		if _, err := ensureStats(ctx, repos, userID, now); err != nil {
			return err
		}

		item, err := repos.Items.GetByID(ctx, itemID)
		if err != nil {
			if repositories.IsNotFound(err) {
				return ErrItemNotFound
			}
			return fmt.Errorf("failed to load item: %w", err)
		}

		granted, err := repos.Items.Grant(ctx, userID, itemID, now)
		if err != nil {
			return fmt.Errorf("failed to grant item: %w", err)
		}
		if !granted {
			return ErrAlreadyOwned
		}

		spent, err := repos.Stats.SpendDiamonds(ctx, userID, item.Cost, now)
		if err != nil {
			return fmt.Errorf("failed to spend diamonds: %w", err)
		}
		if !spent {
			return ErrInsufficientDiamonds
		}

		st, err := repos.Stats.GetByUserID(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to reload stats: %w", err)
		}

		out = PurchaseOutcome{
			Item: ShopItem{
				ID:          item.ID,
				Name:        item.Name,
				Description: item.Description,
				Cost:        item.Cost,
				Owned:       true,
			},
			Diamonds: st.Diamonds,
		}
		return nil
	})
	if err != nil {
		if pe, ok := AsPrecondition(err); ok {
			s.metrics.IncActions("purchase", string(pe.Kind))
		} else {
			s.metrics.IncActions("purchase", "error")
		}
		return nil, err
	}

	s.metrics.IncActions("purchase", "ok")
	logger.LogAction("purchase", userID,
		slog.String("item", out.Item.Name),
		slog.Int64("cost", out.Item.Cost),
		slog.Int64("diamonds", out.Diamonds))
	return &out, nil
}

func (s *ShopService) VIPStatus(ctx context.Context, userID int64) (*VIPStatus, error) {
	owned, err := s.store.Read().Items.ListOwned(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned items: %w", err)
	}

	var status VIPStatus
	for _, it := range owned {
		switch it.Name {
		case models.ItemVIPBadge:
			status.HasVIPBadge = true
		case models.ItemGoldenPage:
			status.HasGoldenProfile = true
		case models.ItemAvatarFrame:
			status.HasAvatarFrame = true
		case models.ItemCooldownReducer:
			status.HasCooldownReducer = true
		}
	}
	return &status, nil
}
