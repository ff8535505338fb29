package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                              // 主键
	Name        string         `gorm:"not null" json:"name"`                              // 商品名称
	PriceAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价
	Image       string         `json:"image"`                                             // 图片地址
	Category    string         `gorm:"index" json:"category"`                             // 分类
	Description string         `json:"description"`                                       // 描述
	// 是否上架。不设列默认值：gorm 对带 default 标签的零值字段不生成
	// 插入列，false 会被列默认值覆盖写成 true。
	IsActive bool `gorm:"index" json:"-"`
	SortOrder   int            `gorm:"default:0;index" json:"-"`                          // 排序权重
	CreatedAt   time.Time      `json:"-"`                                                 // 创建时间
	UpdatedAt   time.Time      `json:"-"`                                                 // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                    // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
