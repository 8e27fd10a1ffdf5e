package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitedeck/internal/media"
	"go.uber.org/zap"
)

// UploadImage 处理图片上传请求
func (a *API) UploadImage(c *gin.Context) {
	if a.uploader == nil {
		respondError(c, http.StatusServiceUnavailable, "未配置图片存储")
		return
	}

	// 获取上传的文件
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传的图片", "success": 0})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "读取上传文件失败", "success": 0})
		return
	}
	defer src.Close()

	img, err := a.uploader.SaveImage(c.Request.Context(), src)
	if err != nil {
		switch {
		case errors.Is(err, media.ErrNotImage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "只允许上传图片文件", "success": 0})
		case errors.Is(err, media.ErrTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "图片过大", "success": 0})
		default:
			a.log.Error("save upload failed", zap.String("filename", file.Filename), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "保存文件失败", "success": 0})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": 1,
		"message": "上传成功",
		"data":    img,
	})
}
