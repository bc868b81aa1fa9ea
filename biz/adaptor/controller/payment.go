package controller

import (
	"context"

	"e-learning-server/biz/adaptor"
	"e-learning-server/biz/application/dto/show"
	"e-learning-server/biz/application/service"
	"e-learning-server/biz/infrastructure/consts"
	"e-learning-server/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
)

type PaymentController struct {
	svc service.IPaymentService
}

func NewPaymentController(svc service.IPaymentService) *PaymentController {
	return &PaymentController{svc: svc}
}

// CreateCheckoutSession .
// @router /create-checkout-session [POST]
func (h *PaymentController) CreateCheckoutSession(ctx context.Context, c *app.RequestContext) {
	var req show.CreateCheckoutSessionReq
	if err := c.BindAndValidate(&req); err != nil {
		log.CtxError(ctx, "绑定参数失败: %v", err)
		adaptor.PostProcess(ctx, c, nil, nil, consts.ErrInvalidParams)
		return
	}
	resp, err := h.svc.CreateCheckoutSession(ctx, &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}
