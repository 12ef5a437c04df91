package catalog

import (
	"context"
	"strings"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	itemrepo "github.com/muhammadheryan/storefront/repository/item"
	"github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/logger"
	"go.uber.org/zap"
)

// CatalogApp serves the public storefront reads.
type CatalogApp interface {
	GetItem(ctx context.Context, itemID string) (*model.ItemResponse, error)
	Home(ctx context.Context) (*model.HomeResponse, error)
	Search(ctx context.Context, req model.SearchRequest) (*model.SearchResponse, error)
}

type catalogAppImpl struct {
	itemRepo itemrepo.ItemRepository
}

func NewCatalogApp(itemRepo itemrepo.ItemRepository) CatalogApp {
	return &catalogAppImpl{itemRepo: itemRepo}
}

// GetItem hides drafts and private items behind NotFound.
func (s *catalogAppImpl) GetItem(ctx context.Context, itemID string) (*model.ItemResponse, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		logger.Error("[GetItem] get item", zap.String("item_id", itemID), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	if item == nil || item.Status == constant.ItemStatusDraft || item.Visibility == constant.VisibilityPrivate {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	item.Derive()
	return &model.ItemResponse{Item: item}, nil
}

type homeSection struct {
	itemType    constant.ItemType
	statuses    []constant.ItemStatus
	inStockOnly bool
}

var homeSections = [3]homeSection{
	{itemType: constant.ItemTypeUsedUnit, statuses: []constant.ItemStatus{constant.ItemStatusAvailable}},
	{itemType: constant.ItemTypePart, statuses: []constant.ItemStatus{constant.ItemStatusAvailable}, inStockOnly: true},
	{itemType: constant.ItemTypeNewModel, statuses: []constant.ItemStatus{
		constant.ItemStatusAvailable, constant.ItemStatusReserved, constant.ItemStatusInRepair,
	}},
}

func (s *catalogAppImpl) Home(ctx context.Context) (*model.HomeResponse, error) {
	var sections [3][]model.Item
	for i, sec := range homeSections {
		items, err := s.itemRepo.ListHomeSection(ctx, sec.itemType, sec.statuses, sec.inStockOnly, constant.HomeSectionSize)
		if err != nil {
			logger.Error("[Home] list section", zap.String("item_type", string(sec.itemType)), zap.String("error", err.Error()))
			return nil, errors.Wrap(constant.ErrInternal, err)
		}
		for j := range items {
			items[j].Derive()
		}
		sections[i] = items
	}
	return &model.HomeResponse{Used: sections[0], Parts: sections[1], New: sections[2]}, nil
}

// Search normalizes the query; a blank term returns no results without a store call.
func (s *catalogAppImpl) Search(ctx context.Context, req model.SearchRequest) (*model.SearchResponse, error) {
	req.Q = strings.TrimSpace(req.Q)
	if req.Q == "" {
		return &model.SearchResponse{Results: []model.SearchResult{}}, nil
	}

	req.Type = strings.ToUpper(strings.TrimSpace(req.Type))
	if !constant.ItemType(req.Type).Valid() {
		req.Type = constant.SearchTypeAll
	}
	switch {
	case req.Limit <= 0:
		req.Limit = constant.DefaultSearchLimit
	case req.Limit > constant.MaxSearchLimit:
		req.Limit = constant.MaxSearchLimit
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	results, err := s.itemRepo.Search(ctx, req)
	if err != nil {
		logger.Error("[Search] search items", zap.String("q", req.Q), zap.String("error", err.Error()))
		return nil, errors.Wrap(constant.ErrInternal, err)
	}
	for i := range results {
		results[i].Derive()
	}
	return &model.SearchResponse{Results: results}, nil
}
