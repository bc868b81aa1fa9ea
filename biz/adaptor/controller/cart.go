package controller

import (
	"context"

	"e-learning-server/biz/adaptor"
	"e-learning-server/biz/application/service"
	"e-learning-server/biz/infrastructure/repository/cart"

	"github.com/cloudwego/hertz/pkg/app"
)

type CartController struct {
	svc service.ICartService
}

func NewCartController(svc service.ICartService) *CartController {
	return &CartController{svc: svc}
}

// AddToCart .
// @router /add-to-cart [POST]
func (h *CartController) AddToCart(ctx context.Context, c *app.RequestContext) {
	req := cart.Item{}
	if err := adaptor.ExtractJSON(c, &req); err != nil {
		adaptor.PostProcess(ctx, c, nil, nil, err)
		return
	}
	resp, err := h.svc.AddToCart(ctx, req)
	adaptor.PostProcess(ctx, c, req, resp, err)
}

// GetCartItem id 为班级id, 用户邮箱取自请求体
// @router /cartItem/:id [GET]
func (h *CartController) GetCartItem(ctx context.Context, c *app.RequestContext) {
	email, err := adaptor.ExtractEmail(c)
	if err != nil {
		adaptor.PostProcess(ctx, c, nil, nil, err)
		return
	}
	id := c.Param("id")
	resp, err := h.svc.GetCartItem(ctx, id, email)
	adaptor.PostProcess(ctx, c, map[string]string{"classId": id, "email": email}, resp, err)
}

// ListCart .
// @router /cart/:email [GET]
func (h *CartController) ListCart(ctx context.Context, c *app.RequestContext) {
	email := c.Param("email")
	resp, err := h.svc.ListCart(ctx, email)
	adaptor.PostProcess(ctx, c, email, resp, err)
}

// DeleteCartItem .
// @router /delete-cartitem/:id [DELETE]
func (h *CartController) DeleteCartItem(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	resp, err := h.svc.DeleteCartItem(ctx, id)
	adaptor.PostProcess(ctx, c, id, resp, err)
}
