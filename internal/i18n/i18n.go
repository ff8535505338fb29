package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// DefaultLocale 默认语言
const DefaultLocale = "en-US"

var supportedLocales = []string{"en-US", "zh-CN"}

var messages = map[string]map[string]string{
	"en-US": {
		"error.bad_request":            "invalid request payload",
		"error.not_found":              "resource not found",
		"error.product_not_found":      "product not found",
		"error.product_not_available":  "product is not available",
		"error.product_fetch_failed":   "failed to fetch products",
		"error.cart_fetch_failed":      "failed to fetch cart",
		"error.cart_update_failed":     "failed to update cart",
		"error.cart_empty":             "cart is empty",
		"error.quantity_invalid":       "quantity must be at least 1",
		"error.session_required":       "session id is required",
		"error.checkout_failed":        "checkout failed",
		"error.rate_limited":           "too many requests, retry in %d seconds",
		"error.rate_limit_unavailable": "rate limiter unavailable",
	},
	"zh-CN": {
		"error.bad_request":            "请求参数无效",
		"error.not_found":              "资源不存在",
		"error.product_not_found":      "商品不存在",
		"error.product_not_available":  "商品已下架",
		"error.product_fetch_failed":   "获取商品失败",
		"error.cart_fetch_failed":      "获取购物车失败",
		"error.cart_update_failed":     "更新购物车失败",
		"error.cart_empty":             "购物车为空",
		"error.quantity_invalid":       "数量至少为 1",
		"error.session_required":       "缺少会话标识",
		"error.checkout_failed":        "结算失败",
		"error.rate_limited":           "请求过于频繁，请 %d 秒后重试",
		"error.rate_limit_unavailable": "限流服务不可用",
	},
}

// ResolveLocale 解析请求语言：优先 query 参数，其次 Accept-Language
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := normalizeLocale(c.Query("lang")); lang != "" {
		return lang
	}
	accept := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(accept, ",") {
		if lang := normalizeLocale(strings.SplitN(part, ";", 2)[0]); lang != "" {
			return lang
		}
	}
	return DefaultLocale
}

// T 返回指定语言的文案，找不到时回退默认语言，再回退 key 本身
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 返回带格式化参数的文案
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

func normalizeLocale(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	for _, locale := range supportedLocales {
		if strings.EqualFold(trimmed, locale) {
			return locale
		}
	}
	// 仅语言前缀匹配（如 zh → zh-CN）
	prefix := strings.SplitN(trimmed, "-", 2)[0]
	for _, locale := range supportedLocales {
		if strings.EqualFold(prefix, strings.SplitN(locale, "-", 2)[0]) {
			return locale
		}
	}
	return ""
}
