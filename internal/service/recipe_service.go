package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dapurstok/internal/classify"
	"dapurstok/internal/dto"
	"dapurstok/internal/model"
	"dapurstok/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RecipeService turns material-request lines into single-use cook batches and
// consumes them. A batch is extracted once per (menu, request), listed oldest
// purchase date first, and destroyed by cooking: the cook transaction deducts
// every ingredient, deletes the batch and queues the output for QC.
type RecipeService interface {
	ExtractAndSave(ctx context.Context, req dto.ExtractRecipesRequest) (*dto.ExtractRecipesResponse, error)
	List(ctx context.Context) ([]dto.RecipeResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error)
	// Cook consumes the batch for the requested portion count. All ingredient
	// availability is verified inside the transaction before any deduction;
	// one shortage aborts the whole cook with every shortfall reported.
	Cook(ctx context.Context, recipeID uuid.UUID, req dto.CookMenuRequest) error
}

type recipeService struct {
	recipeRepo   repository.RecipeRepository
	productRepo  repository.ProductRepository
	deliveryRepo repository.DeliveryRepository
	inventory    InventoryService
	classifier   *classify.Classifier
}

func NewRecipeService(
	recipeRepo repository.RecipeRepository,
	productRepo repository.ProductRepository,
	deliveryRepo repository.DeliveryRepository,
	inventory InventoryService,
	classifier *classify.Classifier,
) RecipeService {
	return &recipeService{
		recipeRepo:   recipeRepo,
		productRepo:  productRepo,
		deliveryRepo: deliveryRepo,
		inventory:    inventory,
		classifier:   classifier,
	}
}

// menuLabelRe captures the portion annotation, e.g. "(200 porsi)".
var menuLabelRe = regexp.MustCompile(`\((\d+)\s*porsi\)`)

// ordinalPrefixRe matches a leading list ordinal such as "A. " or "B. ".
var ordinalPrefixRe = regexp.MustCompile(`^[A-Za-z]\.\s*`)

// parseMenuLabel splits a raw menu label into its clean name and portion
// count. "A. Nasi Goreng Spesial (200 porsi)" yields ("Nasi Goreng Spesial",
// 200); a label without the annotation defaults to 1 portion.
func parseMenuLabel(label string) (string, int) {
	name := ordinalPrefixRe.ReplaceAllString(strings.TrimSpace(label), "")
	portions := 1
	if m := menuLabelRe.FindStringSubmatch(name); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			portions = n
		}
		name = menuLabelRe.ReplaceAllString(name, "")
	}
	return strings.TrimSpace(name), portions
}

func (s *recipeService) ExtractAndSave(ctx context.Context, req dto.ExtractRecipesRequest) (*dto.ExtractRecipesResponse, error) {
	purchaseDate := time.Now()
	if req.Date != nil && *req.Date != "" {
		d, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("tanggal tidak valid: %w", err)
		}
		purchaseDate = d
	}

	// Group lines per menu label, keeping first-seen order.
	type menuGroup struct {
		label string
		lines []int
	}
	var groups []*menuGroup
	byLabel := make(map[string]*menuGroup)
	for i, item := range req.Items {
		g, ok := byLabel[item.Category]
		if !ok {
			g = &menuGroup{label: item.Category}
			byLabel[item.Category] = g
			groups = append(groups, g)
		}
		g.lines = append(g.lines, i)
	}

	resp := &dto.ExtractRecipesResponse{}
	for _, g := range groups {
		name, portions := parseMenuLabel(g.label)
		if name == "" {
			resp.Skipped++
			continue
		}

		if req.RequestID != nil {
			if _, err := s.recipeRepo.FindByNameAndRequest(ctx, name, *req.RequestID); err == nil {
				resp.Skipped++
				continue
			}
		}

		recipe := &model.Recipe{
			Name:           name,
			DefaultPortion: portions,
			PurchaseDate:   purchaseDate,
			RequestID:      req.RequestID,
		}
		portionDec := decimal.NewFromInt(int64(portions))
		for _, idx := range g.lines {
			line := req.Items[idx]
			product, err := s.resolveIngredient(ctx, line.Name, line.Unit)
			if err != nil {
				return nil, err
			}
			recipe.Ingredients = append(recipe.Ingredients, model.RecipeItem{
				ProductID: product.ID,
				Quantity:  line.Quantity.DivRound(portionDec, 4),
				Unit:      line.Unit,
				Notes:     line.Notes,
			})
		}

		if err := s.recipeRepo.Create(ctx, recipe); err != nil {
			return nil, err
		}
		resp.Created++
		resp.Names = append(resp.Names, name)
	}
	return resp, nil
}

func (s *recipeService) List(ctx context.Context) ([]dto.RecipeResponse, error) {
	recipes, err := s.recipeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, *recipeToResponse(&recipes[i]))
	}
	return out, nil
}

func (s *recipeService) GetByID(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error) {
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return recipeToResponse(recipe), nil
}

func (s *recipeService) Cook(ctx context.Context, recipeID uuid.UUID, req dto.CookMenuRequest) error {
	portions := decimal.NewFromInt(int64(req.Portions))

	return runTx(ctx, s.recipeRepo.DB(), func(tx *gorm.DB) error {
		recipe, err := s.recipeRepo.FindByIDTx(tx, recipeID)
		if err != nil {
			return notFound(err)
		}

		// Validate everything before touching stock so the error names every
		// shortfall at once, not just the first.
		type need struct {
			productID uuid.UUID
			name      string
			required  decimal.Decimal
		}
		needs := make([]need, 0, len(recipe.Ingredients))
		var shortages []string
		for _, ing := range recipe.Ingredients {
			required := ing.Quantity.Mul(portions)
			product, err := s.productRepo.FindByIDTx(tx, ing.ProductID)
			if err != nil {
				return notFound(err)
			}
			if product.Quantity.LessThan(required) {
				shortages = append(shortages, fmt.Sprintf("%s (butuh %s, tersedia %s)",
					product.Name, required, product.Quantity))
				continue
			}
			needs = append(needs, need{productID: product.ID, name: product.Name, required: required})
		}
		if len(shortages) > 0 {
			return fmt.Errorf("stok tidak mencukupi: %s", strings.Join(shortages, "; "))
		}

		reference := "COOK-" + recipe.Name
		for _, n := range needs {
			if err := s.inventory.RecordMovementTx(tx, &model.StockMovement{
				ProductID: n.productID,
				Type:      model.MovementOut,
				Quantity:  n.required,
				Reference: reference,
			}); err != nil {
				return err
			}
		}

		// Zero rows deleted means a concurrent cook consumed the batch after
		// our read; abort so the deductions above roll back.
		affected, err := s.recipeRepo.DeleteTx(tx, recipe.ID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return fmt.Errorf("%w: resep %s sudah dimasak", ErrConflict, recipe.Name)
		}

		return s.deliveryRepo.CreateTx(tx, &model.DeliveryQueue{
			MenuName: recipe.Name,
			Quantity: req.Portions,
			Status:   model.DeliveryPendingQC,
			CookDate: time.Now(),
		})
	})
}

// resolveIngredient finds an existing product by SKU, then by folded name,
// creating a zero-stock entry when the ingredient is new to the catalog.
func (s *recipeService) resolveIngredient(ctx context.Context, name, unit string) (*model.Product, error) {
	sku := NormalizeSKU(name)
	if product, err := s.productRepo.FindBySKU(ctx, sku); err == nil {
		return product, nil
	}
	if product, err := s.productRepo.FindByNameFold(ctx, name); err == nil {
		return product, nil
	}

	category := s.classifier.Category(name)
	product := &model.Product{
		SKU:      sku,
		Name:     name,
		Category: &category,
		Unit:     unit,
		Price:    decimal.Zero,
		Quantity: decimal.Zero,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func recipeToResponse(r *model.Recipe) *dto.RecipeResponse {
	resp := &dto.RecipeResponse{
		ID:             r.ID.String(),
		Name:           r.Name,
		DefaultPortion: r.DefaultPortion,
		PurchaseDate:   r.PurchaseDate.Format("2006-01-02"),
		RequestID:      r.RequestID,
	}
	for _, ing := range r.Ingredients {
		item := dto.RecipeItemResponse{
			ProductID: ing.ProductID.String(),
			Quantity:  ing.Quantity,
			Unit:      ing.Unit,
		}
		if ing.Product != nil {
			item.Product = ing.Product.Name
			item.Available = ing.Product.Quantity
		}
		resp.Ingredients = append(resp.Ingredients, item)
	}
	return resp
}
