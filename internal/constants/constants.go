package constants

// 收据状态
const (
	ReceiptStatusConfirmed = "confirmed"
)

// 顾客信息缺省值（与旧版前端约定保持一致）
const (
	DefaultCustomerName  = "Guest"
	DefaultCustomerEmail = "No email provided"
)

// DefaultTaxRate 默认税率（8%）
const DefaultTaxRate = "0.08"

// OrderIDLength 订单号长度（8 位大写字母数字）
const OrderIDLength = 8

// 队列相关
const (
	QueueDefault       = "default"
	TaskOrderConfirmed = "checkout:order_confirmed"
)
