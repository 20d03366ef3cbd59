package services

import (
	"context"
	"errors"
	"fmt"

	"comboapi/entity"
	"comboapi/pkg/cache"
	"comboapi/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ComboService struct {
	DB       *gorm.DB
	Repo     *repository.ComboRepository
	LinkRepo *repository.ComboDishRepository
	Cache    cache.Invalidator
	Log      *zap.SugaredLogger
}

func NewComboService(
	db *gorm.DB,
	repo *repository.ComboRepository,
	linkRepo *repository.ComboDishRepository,
	inv cache.Invalidator,
	log *zap.SugaredLogger,
) *ComboService {
	return &ComboService{DB: db, Repo: repo, LinkRepo: linkRepo, Cache: inv, Log: log}
}

// ----- DTOs from Controller -----
type ComboDishIn struct {
	DishID uint   `json:"dishId" binding:"required"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
	Copies int    `json:"copies"`
}

type SaveComboReq struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	CategoryID  uint          `json:"categoryId"`
	Price       int64         `json:"price"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	ComboDishes []ComboDishIn `json:"comboDishes"`
}

type ComboDetail struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	CategoryID  uint               `json:"categoryId"`
	Price       int64              `json:"price"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	Status      int                `json:"status"`
	ComboDishes []entity.ComboDish `json:"comboDishes"`
}

type PageResult struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
}

func stampLinks(comboID uint, in []ComboDishIn) []entity.ComboDish {
	links := make([]entity.ComboDish, 0, len(in))
	for _, l := range in {
		copies := l.Copies
		if copies <= 0 {
			copies = 1
		}
		links = append(links, entity.ComboDish{
			ComboID: comboID,
			DishID:  l.DishID,
			Name:    l.Name,
			Price:   l.Price,
			Copies:  copies,
		})
	}
	return links
}

// ----- Create -----

// Create inserts the header and its composition in one transaction. Status is
// forced off sale; a combo is never born already sellable.
func (s *ComboService) Create(req *SaveComboReq) (uint, error) {
	combo := entity.Combo{
		Name:        req.Name,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Image:       req.Image,
		Status:      entity.StatusDisabled,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Insert(tx, &combo); err != nil {
			return err
		}
		return s.LinkRepo.InsertBatch(tx, stampLinks(combo.ID, req.ComboDishes))
	})
	if err != nil {
		return 0, err
	}
	s.invalidate(comboCacheKey(combo.CategoryID))
	return combo.ID, nil
}

// ----- Queries -----

func (s *ComboService) PageQuery(f repository.ComboPageFilter) (*PageResult, error) {
	items, total, err := s.Repo.Page(f)
	if err != nil {
		return nil, err
	}
	return &PageResult{Items: items, Total: total}, nil
}

func (s *ComboService) GetByID(id uint) (*ComboDetail, error) {
	combo, err := s.Repo.FindByID(s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComboNotFound
		}
		return nil, err
	}
	links, err := s.LinkRepo.FindByComboID(s.DB, id)
	if err != nil {
		return nil, err
	}
	return &ComboDetail{
		ID:          combo.ID,
		Name:        combo.Name,
		CategoryID:  combo.CategoryID,
		Price:       combo.Price,
		Description: combo.Description,
		Image:       combo.Image,
		Status:      combo.Status,
		ComboDishes: links,
	}, nil
}

// ----- Update -----

// Update patches the supplied header fields and replaces the composition
// whole: old links are dropped and the new set inserted, never merged.
func (s *ComboService) Update(req *SaveComboReq) error {
	categoryID := req.CategoryID
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		combo, err := s.Repo.FindByID(tx, req.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrComboNotFound
			}
			return err
		}
		if categoryID == 0 {
			categoryID = combo.CategoryID
		}

		// header: only supplied fields; status has its own path
		fields := map[string]any{}
		if req.Name != "" {
			fields["name"] = req.Name
		}
		if req.Price != 0 {
			fields["price"] = req.Price
		}
		if req.CategoryID != 0 {
			fields["category_id"] = req.CategoryID
		}
		if req.Description != "" {
			fields["description"] = req.Description
		}
		if req.Image != "" {
			fields["image"] = req.Image
		}
		if len(fields) > 0 {
			if err := s.Repo.UpdateFields(tx, req.ID, fields); err != nil {
				return err
			}
		}

		if err := s.LinkRepo.DeleteByComboID(tx, req.ID); err != nil {
			return err
		}
		return s.LinkRepo.InsertBatch(tx, stampLinks(req.ID, req.ComboDishes))
	})
	if err != nil {
		return err
	}
	s.invalidate(comboCacheKey(categoryID))
	return nil
}

// ----- Delete -----

// DeleteBatch removes headers and their links, all or nothing. An on-sale
// combo anywhere in the batch aborts the lot; ids that no longer exist are
// skipped so a retry after success stays a no-op. The guard reads each header
// inside the same transaction as the delete.
func (s *ComboService) DeleteBatch(ids []uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			combo, err := s.Repo.FindByID(tx, id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			if combo.Status == entity.StatusEnabled {
				return &DeletionNotAllowedError{ID: id, Reason: ReasonOnSale}
			}
		}
		if err := s.LinkRepo.DeleteByComboIDs(tx, ids); err != nil {
			return err
		}
		return s.Repo.DeleteByIDs(tx, ids)
	})
	if err != nil {
		return err
	}
	// category is gone with the rows, sweep everything
	s.invalidate(comboSweepPattern)
	return nil
}

// ----- Status toggle -----

// StartOrStop flips the sale status. Going on sale is gated on every linked
// dish being on sale, checked against current rows inside the transaction;
// enabling an already-enabled combo is a no-op. Going off sale is
// unconditional. Composition links are never touched here.
func (s *ComboService) StartOrStop(status int, id uint) error {
	if status != entity.StatusEnabled && status != entity.StatusDisabled {
		return fmt.Errorf("unknown status %d", status)
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		combo, err := s.Repo.FindByID(tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrComboNotFound
			}
			return err
		}

		if status == entity.StatusEnabled {
			if combo.Status == entity.StatusEnabled {
				return nil
			}
			dishes, err := s.LinkRepo.DishStatuses(tx, id)
			if err != nil {
				return err
			}
			for _, d := range dishes {
				if d.Status == entity.StatusDisabled {
					return &EnableNotAllowedError{ID: id, Reason: ReasonContainsDisabledDish}
				}
			}
			// CAS so a writer that slipped past the read cannot be clobbered
			_, err = s.Repo.UpdateStatusGuard(tx, id, entity.StatusDisabled, entity.StatusEnabled)
			return err
		}

		return s.Repo.UpdateFields(tx, id, map[string]any{"status": entity.StatusDisabled})
	})
	if err != nil {
		return err
	}
	s.invalidate(comboSweepPattern)
	return nil
}

// ----- cache hook -----

const comboSweepPattern = "combo_*"

func comboCacheKey(categoryID uint) string {
	return fmt.Sprintf("combo_%d", categoryID)
}

// invalidate is best effort: a failed invalidation never fails the operation
// that already committed.
func (s *ComboService) invalidate(pattern string) {
	if err := s.Cache.Invalidate(context.Background(), pattern); err != nil {
		s.Log.Warnw("cache invalidation failed", "pattern", pattern, "error", err)
	}
}
