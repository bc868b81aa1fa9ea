package main

import (
	"e-learning-server/biz/adaptor"
	handler "e-learning-server/biz/adaptor/controller"
	"e-learning-server/biz/infrastructure/config"
	"e-learning-server/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/cors"
)

// customizedMiddleware 允许任意来源跨域, 并记录访问日志
func customizedMiddleware(r *server.Hertz, c *config.Config) {
	r.Use(
		cors.Default(),
		adaptor.AccessLog(c.Log.NoLogPaths),
	)
}

// customizeRegister registers customize routers.
// p 为 nil 时(数据库初始化失败)只注册存活检查
func customizedRegister(r *server.Hertz, p *provider.Provider) {
	r.GET("/", handler.Home)
	r.GET("/ping", handler.Ping)
	if p == nil {
		return
	}

	// 班级
	classes := handler.NewClassController(p.ClassService)
	r.POST("/new-classes", classes.CreateClass)
	r.GET("/classes", classes.ListApprovedClasses)
	r.GET("/classes/:email", classes.ListClassesByInstructor)
	r.GET("/manage-class", classes.ListClasses)
	r.PATCH("/change-status/:id", classes.ChangeStatus)
	r.GET("/approved-class", classes.ListApprovedClasses)
	r.GET("/class/:id", classes.GetClass)
	r.PUT("/update-class/:id", classes.UpdateClass)

	// 购物车
	carts := handler.NewCartController(p.CartService)
	r.POST("/add-to-cart", carts.AddToCart)
	r.GET("/cartItem/:id", carts.GetCartItem)
	r.GET("/cart/:email", carts.ListCart)
	r.DELETE("/delete-cartitem/:id", carts.DeleteCartItem)

	// 支付
	payments := handler.NewPaymentController(p.PaymentService)
	r.POST("/create-checkout-session", payments.CreateCheckoutSession)
}
