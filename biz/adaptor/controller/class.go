package controller

import (
	"context"

	"e-learning-server/biz/adaptor"
	"e-learning-server/biz/application/dto/show"
	"e-learning-server/biz/application/service"
	"e-learning-server/biz/infrastructure/consts"
	"e-learning-server/biz/infrastructure/repository/class"
	"e-learning-server/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
)

type ClassController struct {
	svc service.IClassService
}

func NewClassController(svc service.IClassService) *ClassController {
	return &ClassController{svc: svc}
}

// CreateClass .
// @router /new-classes [POST]
func (h *ClassController) CreateClass(ctx context.Context, c *app.RequestContext) {
	req := class.Class{}
	if err := adaptor.ExtractJSON(c, &req); err != nil {
		adaptor.PostProcess(ctx, c, nil, nil, err)
		return
	}
	resp, err := h.svc.CreateClass(ctx, req)
	adaptor.PostProcess(ctx, c, req, resp, err)
}

// ListApprovedClasses .
// @router /classes [GET]
// @router /approved-class [GET]
func (h *ClassController) ListApprovedClasses(ctx context.Context, c *app.RequestContext) {
	resp, err := h.svc.ListApprovedClasses(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

// ListClassesByInstructor .
// @router /classes/:email [GET]
func (h *ClassController) ListClassesByInstructor(ctx context.Context, c *app.RequestContext) {
	email := c.Param("email")
	resp, err := h.svc.ListClassesByInstructor(ctx, email)
	adaptor.PostProcess(ctx, c, email, resp, err)
}

// ListClasses .
// @router /manage-class [GET]
func (h *ClassController) ListClasses(ctx context.Context, c *app.RequestContext) {
	resp, err := h.svc.ListClasses(ctx)
	adaptor.PostProcess(ctx, c, nil, resp, err)
}

// GetClass 不存在时返回 null
// @router /class/:id [GET]
func (h *ClassController) GetClass(ctx context.Context, c *app.RequestContext) {
	id := c.Param("id")
	resp, err := h.svc.GetClass(ctx, id)
	adaptor.PostProcess(ctx, c, id, resp, err)
}

// ChangeStatus .
// @router /change-status/:id [PATCH]
func (h *ClassController) ChangeStatus(ctx context.Context, c *app.RequestContext) {
	var req show.ChangeStatusReq
	if err := c.BindAndValidate(&req); err != nil {
		log.CtxError(ctx, "绑定参数失败: %v", err)
		adaptor.PostProcess(ctx, c, nil, nil, consts.ErrInvalidParams)
		return
	}
	resp, err := h.svc.ChangeStatus(ctx, c.Param("id"), &req)
	adaptor.PostProcess(ctx, c, &req, resp, err)
}

// UpdateClass .
// @router /update-class/:id [PUT]
func (h *ClassController) UpdateClass(ctx context.Context, c *app.RequestContext) {
	req := map[string]any{}
	if err := adaptor.ExtractJSON(c, &req); err != nil {
		adaptor.PostProcess(ctx, c, nil, nil, err)
		return
	}
	resp, err := h.svc.UpdateClass(ctx, c.Param("id"), req)
	adaptor.PostProcess(ctx, c, req, resp, err)
}
