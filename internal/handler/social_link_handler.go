package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitedeck/internal/service"
)

type socialLinkRequest struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

func (r socialLinkRequest) toInput() service.SocialLinkInput {
	return service.SocialLinkInput{Platform: r.Platform, URL: r.URL, Icon: r.Icon}
}

// ListSocialLinks 返回社交链接列表
func (a *API) ListSocialLinks(c *gin.Context) {
	c.JSON(http.StatusOK, a.social.List(c.Request.Context()))
}

// GetSocialLink 返回单条社交链接
func (a *API) GetSocialLink(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	link, err := a.social.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "社交链接不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"link": link})
}

// CreateSocialLink 新增社交链接
func (a *API) CreateSocialLink(c *gin.Context) {
	var payload socialLinkRequest
	if !bindJSON(c, &payload, "请填写完整的社交链接") {
		return
	}
	link, err := a.social.Create(c.Request.Context(), payload.toInput())
	if err != nil {
		handleServiceError(c, err, "社交链接不存在")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "已新增社交链接", "link": link})
}

// UpdateSocialLink 更新社交链接
func (a *API) UpdateSocialLink(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload socialLinkRequest
	if !bindJSON(c, &payload, "请填写完整的社交链接") {
		return
	}
	link, err := a.social.Update(c.Request.Context(), id, payload.toInput())
	if err != nil {
		handleServiceError(c, err, "社交链接不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "社交链接已更新", "link": link})
}

// DeleteSocialLink 删除社交链接
func (a *API) DeleteSocialLink(c *gin.Context) {
	id, ok := idParam(c)
	if !ok || !confirmDelete(c) {
		return
	}
	if err := a.social.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "社交链接不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "社交链接已删除"})
}

// ListSocialIcons 返回可选图标
func (a *API) ListSocialIcons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"icons": service.IconCatalog()})
}
