package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sitedeck/internal/platform"
)

type platformPayload struct {
	ID           platform.Platform `json:"id"`
	Name         string            `json:"name"`
	Icon         string            `json:"icon"`
	BrandColor   string            `json:"brandColor"`
	HasThumbnail bool              `json:"hasThumbnail"`
}

// ListPlatforms 返回支持的视频平台，按展示顺序排列
func (a *API) ListPlatforms(c *gin.Context) {
	items := make([]platformPayload, 0, 4)
	for _, p := range platform.Platforms() {
		spec, ok := platform.Lookup(p)
		if !ok {
			continue
		}
		items = append(items, platformPayload{
			ID:           p,
			Name:         spec.Name,
			Icon:         spec.Icon,
			BrandColor:   spec.BrandColor,
			HasThumbnail: spec.HasThumbnail(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"platforms": items, "detectionOrder": platform.DetectionOrder})
}

// ResolveVideoURL 为项目表单实时解析视频链接
// 识别失败时使用 platform 参数，参数缺失则按 YouTube 处理
func (a *API) ResolveVideoURL(c *gin.Context) {
	raw := strings.TrimSpace(c.Query("url"))
	if raw == "" {
		respondError(c, http.StatusBadRequest, "缺少视频链接")
		return
	}

	hint := platform.YouTube
	if value := c.Query("platform"); value != "" {
		parsed, ok := platform.ParsePlatform(value)
		if !ok {
			respondError(c, http.StatusBadRequest, "不支持的平台")
			return
		}
		hint = parsed
	}

	res := platform.Resolve(raw, hint)
	if res.Content == nil {
		a.log.Debug("video url not resolvable")
	}
	c.JSON(http.StatusOK, res)
}
