package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sitedeck/internal/service"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// idParam 读取路径中的文档 ID，ID 由存储生成，这里只做非空检查
func idParam(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, http.StatusBadRequest, "缺少记录ID")
		return "", false
	}
	return id, true
}

// confirmDelete 要求删除请求显式携带 confirm=true
func confirmDelete(c *gin.Context) bool {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	if !confirmed {
		respondError(c, http.StatusPreconditionRequired, "请确认删除操作")
		return false
	}
	return true
}

// handleServiceError 将 service 层错误映射为 HTTP 状态码
// 校验失败时返回具体原因，便于表单内联提示
func handleServiceError(c *gin.Context, err error, notFound string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, notFound)
	case errors.Is(err, service.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, validationMessage(err))
	default:
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "操作失败，请稍后重试")
	}
}

func validationMessage(err error) string {
	prefix := service.ErrInvalidInput.Error() + ": "
	return strings.TrimPrefix(err.Error(), prefix)
}
