package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	validatorx "github.com/muhammadheryan/storefront/utils/validator"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartApp keeps a customer's staging cart in Redis. Nothing here touches
// inventory or orders.
type CartApp interface {
	Get(ctx context.Context, cartID string) (*model.Cart, error)
	AddItem(ctx context.Context, cartID string, req *model.AddCartItemRequest) (*model.Cart, error)
	UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) (*model.Cart, error)
	RemoveItem(ctx context.Context, cartID, itemID string) (*model.Cart, error)
	Clear(ctx context.Context, cartID string) error
}

type cartAppImpl struct {
	redisRepo redisrepo.Repository
	ttl       time.Duration
}

func NewCartApp(redisRepo redisrepo.Repository, ttl time.Duration) CartApp {
	return &cartAppImpl{redisRepo: redisRepo, ttl: ttl}
}

type storedCart struct {
	Items     []model.CartItem `json:"items"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func cartKey(cartID string) string {
	return "cart:" + cartID
}

func validCartID(cartID string) error {
	if _, err := uuid.Parse(cartID); err != nil {
		return errors.SetCustomError(constant.ErrInvalidCartID)
	}
	return nil
}

func (s *cartAppImpl) Get(ctx context.Context, cartID string) (*model.Cart, error) {
	if err := validCartID(cartID); err != nil {
		return nil, err
	}
	stored, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return summarize(cartID, stored), nil
}

// AddItem merges into an existing line for the same item id.
func (s *cartAppImpl) AddItem(ctx context.Context, cartID string, req *model.AddCartItemRequest) (*model.Cart, error) {
	if err := validCartID(cartID); err != nil {
		return nil, err
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}

	stored, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range stored.Items {
		if stored.Items[i].ID == req.Item.ID {
			stored.Items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		line := req.Item
		line.Quantity = qty
		stored.Items = append(stored.Items, line)
	}

	return s.save(ctx, cartID, stored)
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *cartAppImpl) UpdateQuantity(ctx context.Context, cartID, itemID string, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, cartID, itemID)
	}
	if err := validCartID(cartID); err != nil {
		return nil, err
	}

	stored, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range stored.Items {
		if stored.Items[i].ID == itemID {
			stored.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return s.save(ctx, cartID, stored)
}

func (s *cartAppImpl) RemoveItem(ctx context.Context, cartID, itemID string) (*model.Cart, error) {
	if err := validCartID(cartID); err != nil {
		return nil, err
	}
	stored, err := s.load(ctx, cartID)
	if err != nil {
		return nil, err
	}

	kept := stored.Items[:0]
	for _, it := range stored.Items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	stored.Items = kept
	return s.save(ctx, cartID, stored)
}

func (s *cartAppImpl) Clear(ctx context.Context, cartID string) error {
	if err := validCartID(cartID); err != nil {
		return err
	}
	if err := s.redisRepo.Delete(ctx, cartKey(cartID)); err != nil {
		logger.Error("[Clear] delete cart", zap.String("cart_id", cartID), zap.String("error", err.Error()))
		return errors.Wrap(constant.ErrInternal, err)
	}
	return nil
}

// load returns an empty cart for a missing key. A corrupt payload is
// discarded rather than failing the shopper.
func (s *cartAppImpl) load(ctx context.Context, cartID string) (*storedCart, error) {
	raw, err := s.redisRepo.Get(ctx, cartKey(cartID))
	if err != nil {
		logger.Error("[Cart] load cart", zap.String("cart_id", cartID), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	stored := &storedCart{Items: []model.CartItem{}}
	if raw == "" {
		return stored, nil
	}
	if err := json.Unmarshal([]byte(raw), stored); err != nil {
		logger.Warn("[Cart] discard unreadable cart", zap.String("cart_id", cartID), zap.String("error", err.Error()))
		return &storedCart{Items: []model.CartItem{}}, nil
	}
	return stored, nil
}

func (s *cartAppImpl) save(ctx context.Context, cartID string, stored *storedCart) (*model.Cart, error) {
	stored.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(stored)
	if err != nil {
		logger.Error("[Cart] encode cart", zap.String("cart_id", cartID), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	if err := s.redisRepo.SetWithTTL(ctx, cartKey(cartID), string(raw), s.ttl); err != nil {
		logger.Error("[Cart] save cart", zap.String("cart_id", cartID), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	return summarize(cartID, stored), nil
}

func summarize(cartID string, stored *storedCart) *model.Cart {
	c := &model.Cart{ID: cartID, Items: stored.Items, Subtotal: decimal.Zero, UpdatedAt: stored.UpdatedAt}
	if c.Items == nil {
		c.Items = []model.CartItem{}
	}
	for _, it := range c.Items {
		c.ItemCount += it.Quantity
		if it.Price.Valid {
			c.Subtotal = c.Subtotal.Add(it.Price.Decimal.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}
	return c
}
