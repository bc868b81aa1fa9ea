package cart

import (
	"context"
	"errors"

	"e-learning-server/biz/infrastructure/consts"
	"e-learning-server/biz/infrastructure/store"
	"e-learning-server/biz/infrastructure/util/log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoMapper struct {
	conn store.Collection
}

func NewMongoMapper(db *store.Database) *MongoMapper {
	log.Info("NewCartMongoMapper collection: %s", consts.CartsCollection)
	return &MongoMapper{
		conn: db.Carts,
	}
}

// Insert 不做去重, 同一用户同一班级可以有多条记录
func (m *MongoMapper) Insert(ctx context.Context, item Item) (*mongo.InsertOneResult, error) {
	return m.conn.InsertOne(ctx, item)
}

// FindOne 只返回 classId 投影
func (m *MongoMapper) FindOne(ctx context.Context, classID, email string) (Item, error) {
	var item Item
	err := m.conn.FindOne(ctx, &item, bson.M{
		consts.ClassID:  classID,
		consts.UserMail: email,
	}, options.FindOne().SetProjection(bson.M{consts.ClassID: 1}))
	switch {
	case err == nil:
		return item, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) FindByUser(ctx context.Context, email string) ([]Item, error) {
	items := make([]Item, 0)
	err := m.conn.Find(ctx, &items, bson.M{consts.UserMail: email},
		options.Find().SetProjection(bson.M{consts.ClassID: 1}))
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteByClassID 删除第一条引用该班级的记录, 不区分用户
func (m *MongoMapper) DeleteByClassID(ctx context.Context, classID string) (int64, error) {
	return m.conn.DeleteOne(ctx, bson.M{consts.ClassID: classID})
}
