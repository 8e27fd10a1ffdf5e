package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitedeck/internal/service"
)

type contactRequest struct {
	ContactType string `json:"contactType"`
	Label       string `json:"label"`
	Content     string `json:"content"`
	IsMain      bool   `json:"isMain"`
}

func (r contactRequest) toInput() service.ContactInput {
	return service.ContactInput{
		ContactType: r.ContactType,
		Label:       r.Label,
		Content:     r.Content,
		IsMain:      r.IsMain,
	}
}

// ListContacts 返回联系方式列表
func (a *API) ListContacts(c *gin.Context) {
	c.JSON(http.StatusOK, a.contacts.List(c.Request.Context()))
}

// GetContact 返回单条联系方式
func (a *API) GetContact(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	contact, err := a.contacts.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "联系信息不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"contact": contact})
}

// CreateContact 创建新的联系方式
func (a *API) CreateContact(c *gin.Context) {
	var payload contactRequest
	if !bindJSON(c, &payload, "请填写完整的联系信息") {
		return
	}
	contact, err := a.contacts.Create(c.Request.Context(), payload.toInput())
	if err != nil {
		handleServiceError(c, err, "联系信息不存在")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "已新增联系信息", "contact": contact})
}

// UpdateContact 更新联系方式
func (a *API) UpdateContact(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload contactRequest
	if !bindJSON(c, &payload, "请填写完整的联系信息") {
		return
	}
	contact, err := a.contacts.Update(c.Request.Context(), id, payload.toInput())
	if err != nil {
		handleServiceError(c, err, "联系信息不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "联系信息已更新", "contact": contact})
}

// DeleteContact 删除联系方式
func (a *API) DeleteContact(c *gin.Context) {
	id, ok := idParam(c)
	if !ok || !confirmDelete(c) {
		return
	}
	if err := a.contacts.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "联系信息不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "联系信息已删除"})
}
