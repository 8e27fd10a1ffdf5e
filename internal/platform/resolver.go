package platform

import (
	"regexp"
	"strings"
)

var embedAllowlist = regexp.MustCompile(
	`^https://www\.(?:youtube\.com/embed/|facebook\.com/plugins/video\.php\?href=|instagram\.com/(?:p|reel)/[a-zA-Z0-9_-]+/embed/|tiktok\.com/embed/v2/)`,
)

// Resolution bundles everything the project form needs to preview a URL.
type Resolution struct {
	Platform     Platform     `json:"platform"`
	Detected     bool         `json:"detected"`
	Valid        bool         `json:"valid"`
	Content      *ContentInfo `json:"content,omitempty"`
	EmbedURL     string       `json:"embedUrl"`
	ThumbnailURL string       `json:"thumbnailUrl,omitempty"`
}

// ExtractContentInfo resolves url with p's extraction rules in priority order.
func ExtractContentInfo(url string, p Platform) (ContentInfo, bool) {
	if url == "" {
		return ContentInfo{}, false
	}
	spec, ok := registry[p]
	if !ok {
		return ContentInfo{}, false
	}
	return spec.extract(url)
}

// EmbedURL converts url into a playable embed URL. URLs that already look like
// embeds, player URLs this package emits, and URLs that cannot be resolved are
// returned unchanged.
func EmbedURL(url string, p Platform) string {
	if url == "" {
		return ""
	}
	if strings.Contains(url, "embed") || embedAllowlist.MatchString(url) {
		return url
	}
	spec, ok := registry[p]
	if !ok {
		return url
	}
	info, ok := spec.extract(url)
	if !ok {
		return url
	}
	return spec.Embed(info)
}

// ThumbnailURL returns a preview image for url when the platform publishes one.
func ThumbnailURL(url string, p Platform) (string, bool) {
	if url == "" {
		return "", false
	}
	spec, ok := registry[p]
	if !ok {
		return "", false
	}
	if !spec.HasThumbnail() {
		return "", false
	}
	info, ok := spec.extract(url)
	if !ok {
		return "", false
	}
	return spec.Thumbnail(info)
}

// ValidateURL reports whether url matches at least one of p's patterns.
func ValidateURL(url string, p Platform) bool {
	if url == "" {
		return false
	}
	spec, ok := registry[p]
	if !ok {
		return false
	}
	return spec.matches(url)
}

// DetectPlatform guesses the platform of url following DetectionOrder.
// If a URL matched more than one platform the earlier one would win; no such
// collision is known for the current patterns.
func DetectPlatform(url string) (Platform, bool) {
	if url == "" {
		return "", false
	}
	for _, p := range DetectionOrder {
		if registry[p].matches(url) {
			return p, true
		}
	}
	return "", false
}

// Resolve runs detection, validation and conversion in one pass. hint is used
// when the platform cannot be detected from url.
func Resolve(url string, hint Platform) Resolution {
	url = strings.TrimSpace(url)
	res := Resolution{Platform: hint}
	if detected, ok := DetectPlatform(url); ok {
		res.Platform = detected
		res.Detected = true
	}

	res.Valid = ValidateURL(url, res.Platform)
	if info, ok := ExtractContentInfo(url, res.Platform); ok {
		res.Content = &info
	}
	res.EmbedURL = EmbedURL(url, res.Platform)
	if thumb, ok := ThumbnailURL(url, res.Platform); ok {
		res.ThumbnailURL = thumb
	}
	return res
}

// EmbedAllowlist matches every embed URL the registry produces.
func EmbedAllowlist() *regexp.Regexp {
	return embedAllowlist
}
