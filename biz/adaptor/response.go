package adaptor

import (
	"context"
	"errors"
	"net/http"

	"e-learning-server/biz/application/dto/basic"
	"e-learning-server/biz/infrastructure/consts"
	"e-learning-server/biz/infrastructure/util"
	"e-learning-server/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"google.golang.org/grpc/codes"
)

// PostProcess 记录请求日志并输出结果, resp 为 nil 时输出 null
func PostProcess(ctx context.Context, c *app.RequestContext, req, resp any, err error) {
	log.CtxInfo(ctx, "[%s] req=%s, resp=%s, err=%v", c.Path(), util.JSONF(req), util.JSONF(resp), err)

	if err != nil {
		code, msg := Status(err)
		c.JSON(code, &basic.ErrorResp{Error: msg})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Status 把错误映射为 http 状态码和对外消息
func Status(err error) (int, string) {
	var errno *consts.Errno
	if !errors.As(err, &errno) {
		return http.StatusInternalServerError, err.Error()
	}
	switch errno.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest, errno.Error()
	case codes.NotFound:
		return http.StatusNotFound, errno.Error()
	default:
		return http.StatusInternalServerError, errno.Error()
	}
}
