package repository

import (
	"context"

	"dapurstok/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecipeRepository interface {
	Create(ctx context.Context, rec *model.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Recipe, error)
	// FindByNameAndRequest is the extraction dedupe lookup.
	FindByNameAndRequest(ctx context.Context, name, requestID string) (*model.Recipe, error)
	// List returns batches oldest purchase date first (FIFO display order).
	List(ctx context.Context) ([]model.Recipe, error)
	// DeleteTx removes a batch and reports how many rows went away. Zero rows
	// means another transaction consumed the batch first.
	DeleteTx(tx *gorm.DB, id uuid.UUID) (int64, error)
	DB() *gorm.DB
}

type recipeRepo struct{ db *gorm.DB }

func NewRecipeRepository(db *gorm.DB) RecipeRepository { return &recipeRepo{db: db} }

func (r *recipeRepo) Create(ctx context.Context, rec *model.Recipe) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recipeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var rec model.Recipe
	err := r.db.WithContext(ctx).Preload("Ingredients.Product").First(&rec, id).Error
	return &rec, err
}

func (r *recipeRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Recipe, error) {
	var rec model.Recipe
	err := tx.Preload("Ingredients").First(&rec, id).Error
	return &rec, err
}

func (r *recipeRepo) FindByNameAndRequest(ctx context.Context, name, requestID string) (*model.Recipe, error) {
	var rec model.Recipe
	err := r.db.WithContext(ctx).
		Where("name = ? AND request_id = ?", name, requestID).
		First(&rec).Error
	return &rec, err
}

func (r *recipeRepo) List(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := r.db.WithContext(ctx).
		Preload("Ingredients.Product").
		Order("purchase_date ASC").
		Find(&recipes).Error
	return recipes, err
}

func (r *recipeRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) (int64, error) {
	if err := tx.Where("recipe_id = ?", id).Delete(&model.RecipeItem{}).Error; err != nil {
		return 0, err
	}
	res := tx.Where("id = ?", id).Delete(&model.Recipe{})
	return res.RowsAffected, res.Error
}

func (r *recipeRepo) DB() *gorm.DB { return r.db }
