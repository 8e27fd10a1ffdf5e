package handler

import (
	"bytes"
	"fmt"
	htmlstd "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sitedeck/internal/platform"
	"github.com/sitedeck/internal/service"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const (
	videoAspectLandscape = "16:9"
	videoAspectPortrait  = "9:16"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	previewSanitizer = buildPreviewSanitizer()
)

// buildPreviewSanitizer 只放行指向已知播放器地址的 iframe
func buildPreviewSanitizer() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("iframe")
	policy.AllowAttrs("class", "data-video-embed", "data-video-platform", "data-video-aspect").OnElements("div")
	policy.AllowAttrs("src").Matching(platform.EmbedAllowlist()).OnElements("iframe")
	policy.AllowAttrs("title", "allow", "allowfullscreen", "frameborder", "loading", "referrerpolicy").OnElements("iframe")
	return policy
}

// videoAspect 短视频类内容使用竖屏比例
func videoAspect(p platform.Platform, videoURL string) string {
	info, ok := platform.ExtractContentInfo(videoURL, p)
	if !ok {
		if p == platform.TikTok {
			return videoAspectPortrait
		}
		return videoAspectLandscape
	}
	switch info.Kind {
	case platform.KindShort, platform.KindReel, platform.KindStory:
		return videoAspectPortrait
	}
	if p == platform.TikTok {
		return videoAspectPortrait
	}
	return videoAspectLandscape
}

func renderProjectPreview(project service.Project) (string, error) {
	var buf strings.Builder

	fmt.Fprintf(&buf, `<div class="project-preview" data-video-platform="%s">`, htmlstd.EscapeString(string(project.Platform)))
	if platform.EmbedAllowlist().MatchString(project.EmbedURL) {
		fmt.Fprintf(&buf,
			`<div class="video-embed" data-video-embed="true" data-video-aspect="%s"><iframe src="%s" title="%s" frameborder="0" loading="lazy" allow="autoplay; encrypted-media; picture-in-picture" allowfullscreen></iframe></div>`,
			videoAspect(project.Platform, project.VideoURL),
			htmlstd.EscapeString(project.EmbedURL),
			htmlstd.EscapeString(project.Title),
		)
	} else if project.VideoURL != "" {
		fmt.Fprintf(&buf, `<p><a href="%s">%s</a></p>`,
			htmlstd.EscapeString(project.VideoURL),
			htmlstd.EscapeString(project.Platform.String()),
		)
	}
	if project.ThumbnailURL != "" {
		fmt.Fprintf(&buf, `<img src="%s" alt="%s">`, htmlstd.EscapeString(project.ThumbnailURL), htmlstd.EscapeString(project.Title))
	}
	fmt.Fprintf(&buf, `<h3>%s</h3>`, htmlstd.EscapeString(project.Title))

	var description bytes.Buffer
	if err := markdownEngine.Convert([]byte(project.Description), &description); err != nil {
		return "", fmt.Errorf("render description: %w", err)
	}
	buf.WriteString(`<div class="project-description">`)
	buf.Write(description.Bytes())
	buf.WriteString(`</div></div>`)

	return previewSanitizer.Sanitize(buf.String()), nil
}
