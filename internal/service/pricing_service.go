package service

import (
	"context"
	"strings"

	"github.com/sitedeck/internal/store"
	"go.uber.org/zap"
)

// 价格方案默认值
const (
	DefaultCurrency       = "$"
	DefaultPricingPeriod  = "per project"
	DefaultPlanBackground = "#f9eadb"
)

// PricingPlan 是价格页中的一个套餐
type PricingPlan struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	Period          string   `json:"period"`
	Features        []string `json:"features"`
	IsPopular       bool     `json:"isPopular"`
	BackgroundColor string   `json:"backgroundColor"`
}

// PricingPlanInput 描述创建或更新套餐时的字段
// Features 非空时优先使用，否则按行拆分 FeaturesText
type PricingPlanInput struct {
	Title           string
	Price           float64
	Currency        string
	Period          string
	Features        []string
	FeaturesText    string
	IsPopular       bool
	BackgroundColor string
}

// ValidatePricingPlan 是套餐的保存门槛：标题不能为空且价格必须大于 0
func ValidatePricingPlan(input PricingPlanInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return invalidInput("title is required")
	}
	if !(input.Price > 0) {
		return invalidInput("price must be greater than 0")
	}
	return nil
}

// PricingService 管理 pricingPlans 集合
type PricingService struct {
	*manager[PricingPlan]
}

// NewPricingService 构造 PricingService
func NewPricingService(st store.Store, log *zap.Logger) *PricingService {
	return &PricingService{manager: newManager(CollectionPricingPlans, st, log, decodePricingPlan, false)}
}

// Create 新建套餐
func (s *PricingService) Create(ctx context.Context, input PricingPlanInput) (PricingPlan, error) {
	if err := ValidatePricingPlan(input); err != nil {
		return PricingPlan{}, err
	}
	return s.create(ctx, pricingPlanFields(input))
}

// Update 整体替换套餐字段
func (s *PricingService) Update(ctx context.Context, id string, input PricingPlanInput) (PricingPlan, error) {
	if err := ValidatePricingPlan(input); err != nil {
		return PricingPlan{}, err
	}
	return s.update(ctx, id, pricingPlanFields(input))
}

// NormalizeFeatures 去除每项首尾空白并丢弃空项，保持原有顺序
func NormalizeFeatures(features []string, text string) []string {
	if len(features) == 0 {
		return store.SplitLines(text)
	}
	out := make([]string, 0, len(features))
	for _, feature := range features {
		if trimmed := strings.TrimSpace(feature); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func pricingPlanFields(input PricingPlanInput) store.Fields {
	features := NormalizeFeatures(input.Features, input.FeaturesText)
	list := make([]any, 0, len(features))
	for _, feature := range features {
		list = append(list, feature)
	}

	return store.Fields{
		"title":           strings.TrimSpace(input.Title),
		"price":           input.Price,
		"currency":        valueOr(input.Currency, DefaultCurrency),
		"period":          valueOr(input.Period, DefaultPricingPeriod),
		"features":        list,
		"isPopular":       input.IsPopular,
		"backgroundColor": valueOr(input.BackgroundColor, DefaultPlanBackground),
	}
}

func decodePricingPlan(doc store.Document) PricingPlan {
	return PricingPlan{
		ID:              doc.ID,
		Title:           doc.Fields.String("title", ""),
		Price:           doc.Fields.Float("price", 0),
		Currency:        doc.Fields.String("currency", DefaultCurrency),
		Period:          doc.Fields.String("period", DefaultPricingPeriod),
		Features:        doc.Fields.Strings("features"),
		IsPopular:       doc.Fields.Bool("isPopular", false),
		BackgroundColor: doc.Fields.String("backgroundColor", DefaultPlanBackground),
	}
}

func valueOr(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
