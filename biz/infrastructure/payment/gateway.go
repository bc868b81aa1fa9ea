package payment

import (
	"context"
)

// Session 支付网关签发的结账会话, ClientSecret 交给前端支付组件使用
type Session struct {
	ID           string
	ClientSecret string
}

type Gateway interface {
	// CreateCheckoutSession amount 以最小货币单位计, 只接受银行卡
	CreateCheckoutSession(ctx context.Context, amount int64, currency string) (*Session, error)
}
