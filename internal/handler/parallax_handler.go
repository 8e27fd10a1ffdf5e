package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitedeck/internal/service"
)

type parallaxSectionRequest struct {
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Description   string `json:"description"`
	BackgroundURL string `json:"backgroundUrl"`
	ImageURL      string `json:"imageUrl"`
	ButtonText    string `json:"buttonText"`
	ButtonURL     string `json:"buttonUrl"`
}

func (r parallaxSectionRequest) toInput() service.ParallaxSectionInput {
	return service.ParallaxSectionInput{
		Title:         r.Title,
		Subtitle:      r.Subtitle,
		Description:   r.Description,
		BackgroundURL: r.BackgroundURL,
		ImageURL:      r.ImageURL,
		ButtonText:    r.ButtonText,
		ButtonURL:     r.ButtonURL,
	}
}

// ListParallaxSections 返回视差横幅列表
func (a *API) ListParallaxSections(c *gin.Context) {
	c.JSON(http.StatusOK, a.parallax.List(c.Request.Context()))
}

// GetParallaxSection 返回单个横幅
func (a *API) GetParallaxSection(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	section, err := a.parallax.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "横幅不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": section})
}

// CreateParallaxSection 新增横幅
func (a *API) CreateParallaxSection(c *gin.Context) {
	var payload parallaxSectionRequest
	if !bindJSON(c, &payload, "请填写完整的横幅信息") {
		return
	}
	section, err := a.parallax.Create(c.Request.Context(), payload.toInput())
	if err != nil {
		handleServiceError(c, err, "横幅不存在")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "已新增横幅", "section": section})
}

// UpdateParallaxSection 更新横幅
func (a *API) UpdateParallaxSection(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload parallaxSectionRequest
	if !bindJSON(c, &payload, "请填写完整的横幅信息") {
		return
	}
	section, err := a.parallax.Update(c.Request.Context(), id, payload.toInput())
	if err != nil {
		handleServiceError(c, err, "横幅不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "横幅已更新", "section": section})
}

// DeleteParallaxSection 删除横幅
func (a *API) DeleteParallaxSection(c *gin.Context) {
	id, ok := idParam(c)
	if !ok || !confirmDelete(c) {
		return
	}
	if err := a.parallax.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "横幅不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "横幅已删除"})
}

// RandomParallaxBackground 生成一张随机背景图地址
func (a *API) RandomParallaxBackground(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"backgroundUrl": service.RandomBackgroundURL()})
}
