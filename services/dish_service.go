package services

import (
	"context"
	"errors"

	"comboapi/entity"
	"comboapi/pkg/cache"
	"comboapi/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DishService struct {
	DB       *gorm.DB
	Repo     *repository.DishRepository
	LinkRepo *repository.ComboDishRepository
	Cache    cache.Invalidator
	Log      *zap.SugaredLogger
}

func NewDishService(
	db *gorm.DB,
	repo *repository.DishRepository,
	linkRepo *repository.ComboDishRepository,
	inv cache.Invalidator,
	log *zap.SugaredLogger,
) *DishService {
	return &DishService{DB: db, Repo: repo, LinkRepo: linkRepo, Cache: inv, Log: log}
}

type SaveDishReq struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	CategoryID  uint   `json:"categoryId"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (s *DishService) Create(req *SaveDishReq) (uint, error) {
	dish := entity.Dish{
		Name:        req.Name,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Image:       req.Image,
		Status:      entity.StatusDisabled,
	}
	if err := s.Repo.Insert(s.DB, &dish); err != nil {
		return 0, err
	}
	s.invalidate(comboCacheKey(dish.CategoryID))
	return dish.ID, nil
}

func (s *DishService) PageQuery(f repository.DishPageFilter) (*PageResult, error) {
	items, total, err := s.Repo.Page(f)
	if err != nil {
		return nil, err
	}
	return &PageResult{Items: items, Total: total}, nil
}

func (s *DishService) ListByCategory(categoryID uint) ([]entity.Dish, error) {
	return s.Repo.FindByCategory(categoryID)
}

// StartOrStop flips a dish's sale status. Taking a dish off sale does not
// cascade to combos that contain it; those are caught when someone tries to
// put the combo on sale.
func (s *DishService) StartOrStop(status int, id uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Repo.FindByID(tx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDishNotFound
			}
			return err
		}
		return s.Repo.UpdateFields(tx, id, map[string]any{"status": status})
	})
	if err != nil {
		return err
	}
	s.invalidate(comboSweepPattern)
	return nil
}

// DeleteBatch removes dishes, all or nothing. A dish still on sale or still
// referenced by any combo blocks the whole batch.
func (s *DishService) DeleteBatch(ids []uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			dish, err := s.Repo.FindByID(tx, id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			if dish.Status == entity.StatusEnabled {
				return &DeletionNotAllowedError{ID: id, Reason: ReasonOnSale}
			}
			n, err := s.LinkRepo.CountByDishIDs(tx, []uint{id})
			if err != nil {
				return err
			}
			if n > 0 {
				return &DeletionNotAllowedError{ID: id, Reason: ReasonLinkedToCombo}
			}
		}
		return s.Repo.DeleteByIDs(tx, ids)
	})
	if err != nil {
		return err
	}
	s.invalidate(comboSweepPattern)
	return nil
}

func (s *DishService) invalidate(pattern string) {
	if err := s.Cache.Invalidate(context.Background(), pattern); err != nil {
		s.Log.Warnw("cache invalidation failed", "pattern", pattern, "error", err)
	}
}
