package provider

import (
	"e-learning-server/biz/application/service"
	"e-learning-server/biz/infrastructure/config"
	"e-learning-server/biz/infrastructure/payment"
	"e-learning-server/biz/infrastructure/repository/cart"
	"e-learning-server/biz/infrastructure/repository/class"
	"e-learning-server/biz/infrastructure/store"

	"github.com/google/wire"
)

// Provider 提供controller依赖的对象
type Provider struct {
	Config         *config.Config
	Database       *store.Database
	ClassService   service.IClassService
	CartService    service.ICartService
	PaymentService service.IPaymentService
}

var ApplicationSet = wire.NewSet(
	service.ClassServiceSet,
	service.CartServiceSet,
	service.PaymentServiceSet,
)

var InfrastructureSet = wire.NewSet(
	store.NewDatabase,
	class.NewMongoMapper,
	cart.NewMongoMapper,
	payment.NewStripeGateway,
	wire.Bind(new(payment.Gateway), new(*payment.StripeGateway)),
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
