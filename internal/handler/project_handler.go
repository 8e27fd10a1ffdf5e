package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitedeck/internal/service"
)

type projectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Platform    string `json:"platform"`
	VideoURL    string `json:"videoUrl"`
}

func (r projectRequest) toInput() service.ProjectInput {
	return service.ProjectInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Platform:    r.Platform,
		VideoURL:    r.VideoURL,
	}
}

// ListProjects 返回项目列表
func (a *API) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, a.projects.List(c.Request.Context()))
}

// GetProject 返回单个项目
func (a *API) GetProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	project, err := a.projects.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "项目不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"project": project})
}

// CreateProject 新增项目，视频链接需通过平台校验
func (a *API) CreateProject(c *gin.Context) {
	var payload projectRequest
	if !bindJSON(c, &payload, "请填写完整的项目信息") {
		return
	}
	project, err := a.projects.Create(c.Request.Context(), payload.toInput())
	if err != nil {
		handleServiceError(c, err, "项目不存在")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "已新增项目", "project": project})
}

// UpdateProject 更新项目
func (a *API) UpdateProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload projectRequest
	if !bindJSON(c, &payload, "请填写完整的项目信息") {
		return
	}
	project, err := a.projects.Update(c.Request.Context(), id, payload.toInput())
	if err != nil {
		handleServiceError(c, err, "项目不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "项目已更新", "project": project})
}

// DeleteProject 删除项目
func (a *API) DeleteProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok || !confirmDelete(c) {
		return
	}
	if err := a.projects.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "项目不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "项目已删除"})
}

// PreviewProject 渲染项目的播放器与描述片段
func (a *API) PreviewProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	project, err := a.projects.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "项目不存在")
		return
	}

	fragment, err := renderProjectPreview(project)
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "渲染预览失败")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(fragment))
}
