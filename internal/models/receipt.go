package models

// ReceiptCustomer 收据上的顾客信息
type ReceiptCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Receipt 结算收据。结算完成时生成的不可变快照，
// 与购物车完全脱钩：后续购物车变更不影响已出具的收据。
// total 与 grandTotal 均为 subtotal+tax（兼容旧版前端同时读取两个字段）。
type Receipt struct {
	OrderID    string          `json:"orderId"`
	Customer   ReceiptCustomer `json:"customer"`
	Items      []CartLineItem  `json:"items"`
	Subtotal   Money           `json:"subtotal"`
	Tax        Money           `json:"tax"`
	Total      Money           `json:"total"`
	GrandTotal Money           `json:"grandTotal"`
	Timestamp  string          `json:"timestamp"`
	Status     string          `json:"status"`
}
