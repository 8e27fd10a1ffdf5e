package service

import (
	"context"
	"strings"

	"github.com/sitedeck/internal/platform"
	"github.com/sitedeck/internal/store"
	"go.uber.org/zap"
)

// 项目分类
const (
	CategoryVideo = "Video"
	CategoryReal  = "Real"
)

// Project 是作品集中的一条视频内容
// EmbedURL 与 ThumbnailURL 由 VideoURL 推导并随记录一起保存
type Project struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Category     string            `json:"category"`
	Platform     platform.Platform `json:"platform"`
	VideoURL     string            `json:"videoUrl"`
	EmbedURL     string            `json:"embedUrl"`
	ThumbnailURL string            `json:"thumbnailUrl,omitempty"`
}

// ProjectInput 描述创建或更新项目时的字段
// Platform 为空时从 VideoURL 推断，推断失败则默认为 YouTube
type ProjectInput struct {
	Title       string
	Description string
	Category    string
	Platform    string
	VideoURL    string
}

// ProjectService 管理 Projects 集合，写入后重新拉取列表
type ProjectService struct {
	*manager[Project]
}

// NewProjectService 构造 ProjectService
func NewProjectService(st store.Store, log *zap.Logger) *ProjectService {
	return &ProjectService{manager: newManager(CollectionProjects, st, log, decodeProject, true)}
}

// Create 校验视频链接并保存项目
func (s *ProjectService) Create(ctx context.Context, input ProjectInput) (Project, error) {
	fields, err := projectFields(input)
	if err != nil {
		return Project{}, err
	}
	return s.create(ctx, fields)
}

// Update 整体替换项目字段，并重新计算嵌入地址与缩略图
func (s *ProjectService) Update(ctx context.Context, id string, input ProjectInput) (Project, error) {
	fields, err := projectFields(input)
	if err != nil {
		return Project{}, err
	}
	return s.update(ctx, id, fields)
}

// ResolvePlatform 决定项目最终使用的平台：显式指定时以指定平台为准，
// 未指定时从链接识别，识别失败则默认为 YouTube
func ResolvePlatform(videoURL, declared string) (platform.Platform, error) {
	if strings.TrimSpace(declared) == "" {
		if detected, ok := platform.DetectPlatform(videoURL); ok {
			return detected, nil
		}
		return platform.YouTube, nil
	}
	p, ok := platform.ParsePlatform(declared)
	if !ok {
		return "", invalidInput("unsupported platform %q", declared)
	}
	return p, nil
}

func projectFields(input ProjectInput) (store.Fields, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	videoURL := strings.TrimSpace(input.VideoURL)
	if title == "" || description == "" || videoURL == "" {
		return nil, invalidInput("title, description and videoUrl are required")
	}

	category := strings.TrimSpace(input.Category)
	switch {
	case category == "":
		category = CategoryVideo
	case strings.EqualFold(category, CategoryVideo):
		category = CategoryVideo
	case strings.EqualFold(category, CategoryReal):
		category = CategoryReal
	default:
		return nil, invalidInput("category must be %s or %s", CategoryVideo, CategoryReal)
	}

	p, err := ResolvePlatform(videoURL, input.Platform)
	if err != nil {
		return nil, err
	}
	if !platform.ValidateURL(videoURL, p) {
		return nil, invalidInput("This URL doesn't appear to be a valid %s URL", p)
	}

	thumbnail, _ := platform.ThumbnailURL(videoURL, p)
	return store.Fields{
		"title":        title,
		"description":  description,
		"category":     category,
		"platform":     string(p),
		"videoUrl":     videoURL,
		"embedUrl":     platform.EmbedURL(videoURL, p),
		"thumbnailUrl": thumbnail,
	}, nil
}

func decodeProject(doc store.Document) Project {
	p, ok := platform.ParsePlatform(doc.Fields.String("platform", ""))
	if !ok {
		p = platform.YouTube
	}

	videoURL := doc.Fields.String("videoUrl", "")
	embed := doc.Fields.String("embedUrl", "")
	if embed == "" {
		embed = platform.EmbedURL(videoURL, p)
	}
	thumbnail := doc.Fields.String("thumbnailUrl", "")
	if thumbnail == "" {
		thumbnail, _ = platform.ThumbnailURL(videoURL, p)
	}

	return Project{
		ID:           doc.ID,
		Title:        doc.Fields.String("title", ""),
		Description:  doc.Fields.String("description", ""),
		Category:     doc.Fields.String("category", CategoryVideo),
		Platform:     p,
		VideoURL:     videoURL,
		EmbedURL:     embed,
		ThumbnailURL: thumbnail,
	}
}
