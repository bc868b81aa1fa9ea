package adaptor

import (
	"context"
	"time"

	"e-learning-server/biz/infrastructure/consts"
	"e-learning-server/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/trace"
)

// AccessLog 记录每个请求的耗时与状态码, noLogPaths 中的路径不记录
func AccessLog(noLogPaths []string) app.HandlerFunc {
	skip := lo.SliceToMap(noLogPaths, func(p string) (string, struct{}) {
		return p, struct{}{}
	})
	return func(ctx context.Context, c *app.RequestContext) {
		requestID := string(c.GetHeader(consts.HeaderRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Response.Header.Set(consts.HeaderRequestID, requestID)
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			c.Response.Header.Set(consts.HeaderTraceID, sc.TraceID().String())
		}

		start := time.Now()
		c.Next(ctx)

		if _, ok := skip[string(c.Path())]; ok {
			return
		}
		log.CtxInfo(ctx, "[access] %s %s status=%d cost=%s request_id=%s",
			c.Method(), c.Path(), c.Response.StatusCode(), time.Since(start), requestID)
	}
}
