package service

import "errors"

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrProductNotAvailable 商品已下架
	ErrProductNotAvailable = errors.New("product not available")
	// ErrCartEmpty 购物车为空
	ErrCartEmpty = errors.New("cart is empty")
	// ErrInvalidQuantity 数量非法
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrSessionRequired 缺少会话标识
	ErrSessionRequired = errors.New("session id required")
)
