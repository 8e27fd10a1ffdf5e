package service

import (
	"context"
	"strings"

	"github.com/sitedeck/internal/store"
	"go.uber.org/zap"
)

const defaultSocialIcon = "lucide:link"

// SocialIcon 是社交平台与图标引用的对应关系
type SocialIcon struct {
	Platform string `json:"platform"`
	Icon     string `json:"icon"`
}

var socialIcons = []SocialIcon{
	{Platform: "Instagram", Icon: "logos:instagram-icon"},
	{Platform: "Facebook", Icon: "logos:facebook"},
	{Platform: "Twitter", Icon: "logos:twitter"},
	{Platform: "YouTube", Icon: "logos:youtube-icon"},
	{Platform: "LinkedIn", Icon: "logos:linkedin-icon"},
	{Platform: "Pinterest", Icon: "logos:pinterest"},
	{Platform: "TikTok", Icon: "logos:tiktok-icon"},
	{Platform: "Behance", Icon: "logos:behance"},
	{Platform: "Dribbble", Icon: "logos:dribbble-icon"},
}

// IconCatalog 返回可选的社交图标列表
func IconCatalog() []SocialIcon {
	out := make([]SocialIcon, len(socialIcons))
	copy(out, socialIcons)
	return out
}

// IconForPlatform 按平台名称（忽略大小写）查找默认图标
func IconForPlatform(platform string) (string, bool) {
	for _, item := range socialIcons {
		if strings.EqualFold(item.Platform, strings.TrimSpace(platform)) {
			return item.Icon, true
		}
	}
	return "", false
}

// SocialLink 对应站点页脚的社交链接
type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// SocialLinkInput 描述创建或更新社交链接时的字段
type SocialLinkInput struct {
	Platform string
	URL      string
	Icon     string
}

// SocialLinkService 管理 socialLinks 集合
type SocialLinkService struct {
	*manager[SocialLink]
}

// NewSocialLinkService 构造 SocialLinkService
func NewSocialLinkService(st store.Store, log *zap.Logger) *SocialLinkService {
	return &SocialLinkService{manager: newManager(CollectionSocialLinks, st, log, decodeSocialLink, false)}
}

// Create 新建社交链接，未指定图标时按平台名称补全
func (s *SocialLinkService) Create(ctx context.Context, input SocialLinkInput) (SocialLink, error) {
	fields, err := socialLinkFields(input)
	if err != nil {
		return SocialLink{}, err
	}
	return s.create(ctx, fields)
}

// Update 整体替换社交链接字段
func (s *SocialLinkService) Update(ctx context.Context, id string, input SocialLinkInput) (SocialLink, error) {
	fields, err := socialLinkFields(input)
	if err != nil {
		return SocialLink{}, err
	}
	return s.update(ctx, id, fields)
}

func socialLinkFields(input SocialLinkInput) (store.Fields, error) {
	platform := strings.TrimSpace(input.Platform)
	url := strings.TrimSpace(input.URL)
	if platform == "" || url == "" {
		return nil, invalidInput("platform and url are required")
	}

	icon := strings.TrimSpace(input.Icon)
	if icon == "" {
		if known, ok := IconForPlatform(platform); ok {
			icon = known
		} else {
			icon = defaultSocialIcon
		}
	}

	return store.Fields{"platform": platform, "url": url, "icon": icon}, nil
}

func decodeSocialLink(doc store.Document) SocialLink {
	return SocialLink{
		ID:       doc.ID,
		Platform: doc.Fields.String("platform", ""),
		URL:      doc.Fields.String("url", ""),
		Icon:     doc.Fields.String("icon", defaultSocialIcon),
	}
}
