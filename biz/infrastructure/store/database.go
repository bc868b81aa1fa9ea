package store

import (
	"context"
	"time"

	"e-learning-server/biz/infrastructure/config"
	"e-learning-server/biz/infrastructure/consts"
	"e-learning-server/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const pingTimeout = 10 * time.Second

// Database 进程内唯一的数据库连接及全部集合
type Database struct {
	Client       *mongo.Client
	Users        Collection
	Classes      Collection
	Carts        Collection
	Payments     Collection
	Enrollments  Collection
	Applications Collection
}

// NewDatabase 建立连接并打开所有集合, 连接在进程生命周期内保持
func NewDatabase(c *config.Config) (*Database, error) {
	uri := c.Mongo.URI()
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).
			SetStrict(true).
			SetDeprecationErrors(true))

	cli, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		return nil, err
	}
	// 让 mon 的各个集合复用同一个客户端
	mon.Inject(uri, cli)
	Ping(context.Background(), cli)

	open := func(name string) Collection {
		log.Info("NewDatabase open collection: %s.%s", c.Mongo.DB, name)
		return mon.MustNewModel(uri, c.Mongo.DB, name)
	}
	return &Database{
		Client:       cli,
		Users:        open(consts.UsersCollection),
		Classes:      open(consts.ClassesCollection),
		Carts:        open(consts.CartsCollection),
		Payments:     open(consts.PaymentCollection),
		Enrollments:  open(consts.EnrollCollection),
		Applications: open(consts.AppliedCollection),
	}, nil
}

// Ping 探测部署是否可达, 失败只记录日志
func Ping(ctx context.Context, cli *mongo.Client) bool {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := cli.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
	if err != nil {
		log.Error("Ping mongo failed: %v", err)
		return false
	}
	log.Info("Pinged your deployment. You successfully connected to MongoDB!")
	return true
}
