package platform

import (
	"fmt"
	"regexp"
	"strings"
)

// Platform identifies a video hosting platform a project can point at.
type Platform string

const (
	YouTube   Platform = "youtube"
	Facebook  Platform = "facebook"
	Instagram Platform = "instagram"
	TikTok    Platform = "tiktok"
)

// ContentKind is the subtype of shared content; it selects the embed variant.
type ContentKind string

const (
	KindVideo ContentKind = "video"
	KindShort ContentKind = "short"
	KindReel  ContentKind = "reel"
	KindPost  ContentKind = "post"
	KindStory ContentKind = "story"
)

// ContentInfo is the normalized reference extracted from a raw content URL.
type ContentInfo struct {
	ID        string      `json:"id"`
	Kind      ContentKind `json:"type"`
	ChannelID string      `json:"channelId,omitempty"`
}

// extractRule captures one content id out of a URL. Rules are tried in slice order.
type extractRule struct {
	pattern      *regexp.Regexp
	kind         ContentKind
	idGroup      int
	channelGroup int // 0 means the rule has no channel
}

// Spec is the capability record of one platform.
type Spec struct {
	Name       string
	Icon       string
	BrandColor string

	// Patterns decide whether a URL belongs to the platform at all.
	Patterns []*regexp.Regexp
	// rules resolve a URL into ContentInfo, first match wins.
	rules []extractRule

	Embed func(ContentInfo) string
	// Thumbnail is nil for platforms without a public preview image.
	Thumbnail func(ContentInfo) (string, bool)
}

// HasThumbnail reports whether the platform publishes preview images.
func (s Spec) HasThumbnail() bool {
	return s.Thumbnail != nil
}

// DetectionOrder is the precedence used when guessing a platform from a bare URL.
var DetectionOrder = []Platform{Facebook, Instagram, TikTok, YouTube}

var displayOrder = []Platform{YouTube, Facebook, Instagram, TikTok}

var registry = map[Platform]Spec{
	YouTube: {
		Name:       "YouTube",
		Icon:       "logos:youtube-icon",
		BrandColor: "#FF0000",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`^(?:https?://)?(?:www\.)?(?:youtube\.com/(?:watch\?v=|embed/|v/)|youtu\.be/)([a-zA-Z0-9_-]{11})`),
			regexp.MustCompile(`^(?:https?://)?(?:www\.)?youtube\.com/shorts/([a-zA-Z0-9_-]{11})`),
		},
		// shorts before the generic video form
		rules: []extractRule{
			{pattern: regexp.MustCompile(`youtube\.com/shorts/([a-zA-Z0-9_-]{11})`), kind: KindShort, idGroup: 1},
			{pattern: regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|embed/|v/)|youtu\.be/)([a-zA-Z0-9_-]{11})`), kind: KindVideo, idGroup: 1},
		},
		Embed: func(info ContentInfo) string {
			if info.Kind == KindShort {
				return fmt.Sprintf("https://www.youtube.com/embed/%s?loop=1&playlist=%s", info.ID, info.ID)
			}
			return fmt.Sprintf("https://www.youtube.com/embed/%s", info.ID)
		},
		Thumbnail: func(info ContentInfo) (string, bool) {
			return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", info.ID), true
		},
	},
	Facebook: {
		Name:       "Facebook",
		Icon:       "logos:facebook",
		BrandColor: "#1877F2",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:web\.|m\.)?facebook\.com/reel/(\d+)`),
			regexp.MustCompile(`(?:web\.|m\.)?facebook\.com/watch/?\?v=(\d+)`),
			regexp.MustCompile(`(?:web\.|m\.)?facebook\.com/([^/]+)/videos/(\d+)`),
			regexp.MustCompile(`(?:web\.|m\.)?facebook\.com/share/v/([a-zA-Z0-9]+)`),
			regexp.MustCompile(`(?:web\.|m\.)?facebook\.com/share/r/([a-zA-Z0-9]+)`),
		},
		// reel -> watch -> user video -> share video -> share reel
		rules: []extractRule{
			{pattern: regexp.MustCompile(`facebook\.com/reel/(\d+)`), kind: KindReel, idGroup: 1},
			{pattern: regexp.MustCompile(`facebook\.com/watch/?\?v=(\d+)`), kind: KindVideo, idGroup: 1},
			{pattern: regexp.MustCompile(`facebook\.com/([^/]+)/videos/(\d+)`), kind: KindVideo, idGroup: 2, channelGroup: 1},
			{pattern: regexp.MustCompile(`facebook\.com/share/v/([a-zA-Z0-9]+)`), kind: KindVideo, idGroup: 1},
			{pattern: regexp.MustCompile(`facebook\.com/share/r/([a-zA-Z0-9]+)`), kind: KindReel, idGroup: 1},
		},
		Embed: func(info ContentInfo) string {
			if info.Kind == KindReel {
				return "https://www.facebook.com/plugins/video.php?href=https://www.facebook.com/reel/" + info.ID
			}
			return "https://www.facebook.com/plugins/video.php?href=https://www.facebook.com/watch/?v=" + info.ID
		},
	},
	Instagram: {
		Name:       "Instagram",
		Icon:       "skill-icons:instagram",
		BrandColor: "#E4405F",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`instagram\.com/p/([a-zA-Z0-9_-]+)`),
			regexp.MustCompile(`instagram\.com/reels?/([a-zA-Z0-9_-]+)`),
		},
		rules: []extractRule{
			{pattern: regexp.MustCompile(`instagram\.com/reels?/([a-zA-Z0-9_-]+)`), kind: KindReel, idGroup: 1},
			{pattern: regexp.MustCompile(`instagram\.com/p/([a-zA-Z0-9_-]+)`), kind: KindPost, idGroup: 1},
		},
		Embed: func(info ContentInfo) string {
			if info.Kind == KindReel {
				return fmt.Sprintf("https://www.instagram.com/reel/%s/embed/", info.ID)
			}
			return fmt.Sprintf("https://www.instagram.com/p/%s/embed/", info.ID)
		},
	},
	TikTok: {
		Name:       "TikTok",
		Icon:       "logos:tiktok-icon",
		BrandColor: "#000000",
		Patterns: []*regexp.Regexp{
			regexp.MustCompile(`tiktok\.com/@([^/]+)/video/(\d+)`),
			regexp.MustCompile(`vm\.tiktok\.com/([a-zA-Z0-9]+)`),
		},
		// vm.tiktok.com short codes are redirects, not video ids, so only the
		// canonical form resolves.
		rules: []extractRule{
			{pattern: regexp.MustCompile(`tiktok\.com/@([^/]+)/video/(\d+)`), kind: KindVideo, idGroup: 2, channelGroup: 1},
		},
		Embed: func(info ContentInfo) string {
			return "https://www.tiktok.com/embed/v2/" + info.ID
		},
	},
}

// Lookup returns the capability record of p.
func Lookup(p Platform) (Spec, bool) {
	spec, ok := registry[p]
	return spec, ok
}

// Platforms lists the supported platforms in display order.
func Platforms() []Platform {
	out := make([]Platform, len(displayOrder))
	copy(out, displayOrder)
	return out
}

// ParsePlatform maps a user supplied value onto a known platform.
func ParsePlatform(value string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := registry[p]; !ok {
		return "", false
	}
	return p, true
}

// String returns the platform's display name, or the raw value when unknown.
func (p Platform) String() string {
	if spec, ok := registry[p]; ok {
		return spec.Name
	}
	return string(p)
}

func (s Spec) extract(url string) (ContentInfo, bool) {
	for _, rule := range s.rules {
		match := rule.pattern.FindStringSubmatch(url)
		if match == nil || match[rule.idGroup] == "" {
			continue
		}
		info := ContentInfo{ID: match[rule.idGroup], Kind: rule.kind}
		if rule.channelGroup > 0 {
			info.ChannelID = match[rule.channelGroup]
		}
		return info, true
	}
	return ContentInfo{}, false
}

func (s Spec) matches(url string) bool {
	for _, pattern := range s.Patterns {
		if pattern.MatchString(url) {
			return true
		}
	}
	return false
}
