package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitedeck/internal/service"
)

// pricingPlanRequest 同时接受 features 数组与多行文本 featuresText
type pricingPlanRequest struct {
	Title           string   `json:"title"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	Period          string   `json:"period"`
	Features        []string `json:"features"`
	FeaturesText    string   `json:"featuresText"`
	IsPopular       bool     `json:"isPopular"`
	BackgroundColor string   `json:"backgroundColor"`
}

func (r pricingPlanRequest) toInput() service.PricingPlanInput {
	return service.PricingPlanInput{
		Title:           r.Title,
		Price:           r.Price,
		Currency:        r.Currency,
		Period:          r.Period,
		Features:        r.Features,
		FeaturesText:    r.FeaturesText,
		IsPopular:       r.IsPopular,
		BackgroundColor: r.BackgroundColor,
	}
}

// ListPricingPlans 返回价格套餐列表
func (a *API) ListPricingPlans(c *gin.Context) {
	c.JSON(http.StatusOK, a.pricing.List(c.Request.Context()))
}

// GetPricingPlan 返回单个套餐
func (a *API) GetPricingPlan(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	plan, err := a.pricing.Get(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "套餐不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// CreatePricingPlan 新增套餐
func (a *API) CreatePricingPlan(c *gin.Context) {
	var payload pricingPlanRequest
	if !bindJSON(c, &payload, "套餐数据格式不正确") {
		return
	}
	plan, err := a.pricing.Create(c.Request.Context(), payload.toInput())
	if err != nil {
		handleServiceError(c, err, "套餐不存在")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "已新增套餐", "plan": plan})
}

// UpdatePricingPlan 更新套餐
func (a *API) UpdatePricingPlan(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var payload pricingPlanRequest
	if !bindJSON(c, &payload, "套餐数据格式不正确") {
		return
	}
	plan, err := a.pricing.Update(c.Request.Context(), id, payload.toInput())
	if err != nil {
		handleServiceError(c, err, "套餐不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "套餐已更新", "plan": plan})
}

// DeletePricingPlan 删除套餐
func (a *API) DeletePricingPlan(c *gin.Context) {
	id, ok := idParam(c)
	if !ok || !confirmDelete(c) {
		return
	}
	if err := a.pricing.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "套餐不存在")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "套餐已删除"})
}
