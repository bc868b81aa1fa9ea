package controller

import (
	"context"

	"e-learning-server/biz/infrastructure/consts"

	"github.com/cloudwego/hertz/pkg/app"
	hconsts "github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Home 存活检查
func Home(ctx context.Context, c *app.RequestContext) {
	c.String(hconsts.StatusOK, consts.LivenessMessage)
}

func Ping(ctx context.Context, c *app.RequestContext) {
	c.String(hconsts.StatusOK, "pong")
}
