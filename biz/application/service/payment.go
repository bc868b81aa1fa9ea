package service

import (
	"context"
	"math"

	"e-learning-server/biz/application/dto/show"
	"e-learning-server/biz/infrastructure/config"
	"e-learning-server/biz/infrastructure/consts"
	"e-learning-server/biz/infrastructure/payment"
	"e-learning-server/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/spf13/cast"
)

type IPaymentService interface {
	CreateCheckoutSession(ctx context.Context, req *show.CreateCheckoutSessionReq) (*show.CreateCheckoutSessionResp, error)
}

type PaymentService struct {
	Config  *config.Config
	Gateway payment.Gateway
}

var PaymentServiceSet = wire.NewSet(
	wire.Struct(new(PaymentService), "*"),
	wire.Bind(new(IPaymentService), new(*PaymentService)),
)

// CreateCheckoutSession 金额直接取自客户端, 服务端不根据购物车重算
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, req *show.CreateCheckoutSessionReq) (*show.CreateCheckoutSessionResp, error) {
	amount, err := ToMinorUnits(req.Price)
	if err != nil {
		return nil, consts.ErrInvalidPrice
	}

	session, err := s.Gateway.CreateCheckoutSession(ctx, amount, s.Config.Stripe.Currency)
	if err != nil {
		log.CtxError(ctx, "创建支付会话失败, amount=%d: %v", amount, err)
		return nil, err
	}
	log.CtxInfo(ctx, "创建支付会话成功, id=%s, amount=%d", session.ID, amount)
	return &show.CreateCheckoutSessionResp{
		ClientSecret: session.ClientSecret,
	}, nil
}

// ToMinorUnits 主货币单位转成分, 四舍五入消除浮点误差
func ToMinorUnits(price any) (int64, error) {
	if price == nil {
		return 0, consts.ErrInvalidPrice
	}
	f, err := cast.ToFloat64E(price)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, consts.ErrInvalidPrice
	}
	return int64(math.Round(f * consts.CentsPerUnit)), nil
}
