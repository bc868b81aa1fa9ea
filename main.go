package main

import (
	"e-learning-server/biz/infrastructure/config"
	"e-learning-server/biz/infrastructure/util/log"
	"e-learning-server/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	"github.com/hertz-contrib/obs-opentelemetry/tracing"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

func main() {
	c, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	// 数据库不可用时仍然启动, 只提供存活检查
	p, err := provider.NewProvider(c)
	if err != nil {
		log.Error("初始化依赖失败: %v", err)
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		b3.New(), propagation.TraceContext{}, propagation.Baggage{},
	))
	tracer, tracerCfg := tracing.NewServerTracer()
	opts := []hertzconfig.Option{
		server.WithHostPorts(c.ListenOn()),
		tracer,
	}
	if c.Monitor.Addr != "" {
		opts = append(opts, server.WithTracer(prometheus.NewServerTracer(c.Monitor.Addr, c.Monitor.Path)))
	}

	h := server.New(opts...)
	h.Use(tracing.ServerMiddleware(tracerCfg))
	customizedMiddleware(h, c)
	customizedRegister(h, p)

	log.Info("e-learning server listening on %s", c.ListenOn())
	h.Spin()
}
