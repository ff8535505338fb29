package models

import (
	"sync"

	"github.com/shopspring/decimal"
)

// CartLineItem 购物车行项。
// 行项是加入时刻商品字段的值拷贝：目录后续改价不影响已在车内的行项。
type CartLineItem struct {
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Price     Money  `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// CartSnapshot 购物车只读视图
type CartSnapshot struct {
	Items     []CartLineItem `json:"items"`
	Total     string         `json:"total"`
	ItemCount int            `json:"itemCount"`
}

// EmptyCartSnapshot 空购物车视图（无会话时的响应）
func EmptyCartSnapshot() CartSnapshot {
	return CartSnapshot{
		Items:     []CartLineItem{},
		Total:     decimal.Zero.StringFixed(2),
		ItemCount: 0,
	}
}

// Cart 会话购物车。
// 内部互斥锁串行化同一会话上的全部读写，跨会话互不影响。
// 不变式：total == Σ price*quantity，productId 在行项中唯一。
type Cart struct {
	mu    sync.Mutex
	items []CartLineItem
	total decimal.Decimal
}

// NewCart 创建空购物车
func NewCart() *Cart {
	return &Cart{}
}

// AddItem 添加商品。quantity 为带符号增量：
// 已有行项累加数量，累加后 ≤0 时移除该行；新行项数量 ≤0 时不创建。
func (c *Cart) AddItem(product *Product, quantity int) []CartLineItem {
	if product == nil {
		return c.Items()
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID != product.ID {
			continue
		}
		c.items[i].Quantity += quantity
		if c.items[i].Quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
		c.recalcTotal()
		return c.copyItems()
	}

	if quantity <= 0 {
		return c.copyItems()
	}
	c.items = append(c.items, CartLineItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.PriceAmount,
		Image:     product.Image,
		Quantity:  quantity,
	})
	c.recalcTotal()
	return c.copyItems()
}

// RemoveItem 移除行项，不存在时为空操作
func (c *Cart) RemoveItem(productID uint) []CartLineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.recalcTotal()
	return c.copyItems()
}

// UpdateQuantity 设置行项数量，≤0 时等同移除；行项不存在为空操作
func (c *Cart) UpdateQuantity(productID uint, quantity int) []CartLineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		} else {
			c.items[i].Quantity = quantity
		}
		c.recalcTotal()
		break
	}
	return c.copyItems()
}

// CalculateTotal 按当前行项重算并返回总价。幂等，除 total 外无副作用。
func (c *Cart) CalculateTotal() Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recalcTotal()
	return NewMoneyFromDecimal(c.total)
}

// Clear 清空购物车
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.total = decimal.Zero
}

// Items 返回行项拷贝
func (c *Cart) Items() []CartLineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyItems()
}

// Total 返回当前总价
func (c *Cart) Total() Money {
	c.mu.Lock()
	defer c.mu.Unlock()
	return NewMoneyFromDecimal(c.total)
}

// IsEmpty 是否为空
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

// Snapshot 生成只读视图：行项为防御性拷贝，总价格式化为 2 位小数
func (c *Cart) Snapshot() CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return CartSnapshot{
		Items:     c.copyItems(),
		Total:     c.total.StringFixed(2),
		ItemCount: count,
	}
}

// Settle 结算提取：购物车非空时原子地拷贝行项与总价并清空，
// 返回 ok=false 表示购物车为空且未被改动。
func (c *Cart) Settle() ([]CartLineItem, Money, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return nil, Money{}, false
	}
	items := c.copyItems()
	total := NewMoneyFromDecimal(c.total)
	c.items = nil
	c.total = decimal.Zero
	return items, total, true
}

// recalcTotal 重算总价，调用方需持有锁。
// 任何变更操作都以此为最后一步，保证 total 与行项一致。
func (c *Cart) recalcTotal() {
	sum := decimal.Zero
	for _, item := range c.items {
		sum = sum.Add(item.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	c.total = sum
}

func (c *Cart) copyItems() []CartLineItem {
	items := make([]CartLineItem, len(c.items))
	copy(items, c.items)
	return items
}
