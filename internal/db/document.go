package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Document 是文档存储在关系库中的落地形式
// 每条记录属于一个集合，字段以 JSON 保存，不做结构约束
// Key 是对外暴露的文档 ID，自增 ID 只用于保持插入顺序
type Document struct {
	ID         uint   `gorm:"primaryKey"`
	Key        string `gorm:"column:doc_key;size:36;uniqueIndex;not null"`
	Collection string `gorm:"size:64;index;not null"`
	Fields     datatypes.JSONMap
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName 返回自定义表名
func (Document) TableName() string {
	return "documents"
}

// BeforeCreate 在写入前分配文档 ID
func (d *Document) BeforeCreate(*gorm.DB) error {
	if d.Key == "" {
		d.Key = uuid.NewString()
	}
	return nil
}
