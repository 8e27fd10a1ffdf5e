package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/sitedeck/internal/store"
	"go.uber.org/zap"
)

var backgroundCategories = []string{"landscape", "places", "ai"}

// ParallaxSection 是首页视差横幅的内容
type ParallaxSection struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Description   string `json:"description"`
	BackgroundURL string `json:"backgroundUrl"`
	ButtonText    string `json:"buttonText"`
	ButtonURL     string `json:"buttonUrl"`
}

// ParallaxSectionInput 描述创建或更新横幅时的字段
// ImageURL 是 BackgroundURL 的旧字段名，两者都传时以 BackgroundURL 为准
type ParallaxSectionInput struct {
	Title         string
	Subtitle      string
	Description   string
	BackgroundURL string
	ImageURL      string
	ButtonText    string
	ButtonURL     string
}

// ParallaxService 管理 parallaxSections 集合
type ParallaxService struct {
	*manager[ParallaxSection]
}

// NewParallaxService 构造 ParallaxService
func NewParallaxService(st store.Store, log *zap.Logger) *ParallaxService {
	return &ParallaxService{manager: newManager(CollectionParallaxSections, st, log, decodeParallaxSection, false)}
}

// Create 新建横幅
func (s *ParallaxService) Create(ctx context.Context, input ParallaxSectionInput) (ParallaxSection, error) {
	fields, err := parallaxFields(input)
	if err != nil {
		return ParallaxSection{}, err
	}
	return s.create(ctx, fields)
}

// Update 整体替换横幅字段
func (s *ParallaxService) Update(ctx context.Context, id string, input ParallaxSectionInput) (ParallaxSection, error) {
	fields, err := parallaxFields(input)
	if err != nil {
		return ParallaxSection{}, err
	}
	return s.update(ctx, id, fields)
}

// RandomBackgroundURL 随机生成一张 1920x1080 的占位背景图地址
func RandomBackgroundURL() string {
	return randomBackgroundURL(rand.IntN)
}

func randomBackgroundURL(intn func(int) int) string {
	category := backgroundCategories[intn(len(backgroundCategories))]
	return fmt.Sprintf("https://img.heroui.chat/image/%s?w=1920&h=1080&u=%d", category, intn(100))
}

func parallaxFields(input ParallaxSectionInput) (store.Fields, error) {
	title := strings.TrimSpace(input.Title)
	background := valueOr(input.BackgroundURL, strings.TrimSpace(input.ImageURL))
	if title == "" || background == "" {
		return nil, invalidInput("title and background image are required")
	}

	return store.Fields{
		"title":         title,
		"subtitle":      strings.TrimSpace(input.Subtitle),
		"description":   strings.TrimSpace(input.Description),
		"backgroundUrl": background,
		"buttonText":    strings.TrimSpace(input.ButtonText),
		"buttonUrl":     strings.TrimSpace(input.ButtonURL),
	}, nil
}

func decodeParallaxSection(doc store.Document) ParallaxSection {
	return ParallaxSection{
		ID:            doc.ID,
		Title:         doc.Fields.String("title", ""),
		Subtitle:      doc.Fields.String("subtitle", ""),
		Description:   doc.Fields.String("description", ""),
		BackgroundURL: doc.Fields.String("backgroundUrl", doc.Fields.String("imageUrl", "")),
		ButtonText:    doc.Fields.String("buttonText", ""),
		ButtonURL:     doc.Fields.String("buttonUrl", ""),
	}
}
