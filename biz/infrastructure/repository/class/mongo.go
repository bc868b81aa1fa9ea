package class

import (
	"context"
	"errors"

	"e-learning-server/biz/infrastructure/consts"
	"e-learning-server/biz/infrastructure/store"
	"e-learning-server/biz/infrastructure/util/log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoMapper struct {
	conn store.Collection
}

func NewMongoMapper(db *store.Database) *MongoMapper {
	log.Info("NewClassMongoMapper collection: %s", consts.ClassesCollection)
	return &MongoMapper{
		conn: db.Classes,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, class Class) (*mongo.InsertOneResult, error) {
	return m.conn.InsertOne(ctx, class)
}

// FindAll filter 为空时返回全部班级
func (m *MongoMapper) FindAll(ctx context.Context, filter bson.M) ([]Class, error) {
	if filter == nil {
		filter = bson.M{}
	}
	classes := make([]Class, 0)
	err := m.conn.Find(ctx, &classes, filter)
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (m *MongoMapper) FindByStatus(ctx context.Context, status string) ([]Class, error) {
	return m.FindAll(ctx, bson.M{consts.Status: status})
}

func (m *MongoMapper) FindByInstructor(ctx context.Context, email string) ([]Class, error) {
	return m.FindAll(ctx, bson.M{consts.InstructorEmail: email})
}

// FindByIDs 一次查询取回 ids 对应的班级, 不存在的 id 直接忽略
func (m *MongoMapper) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Class, error) {
	if len(ids) == 0 {
		return make([]Class, 0), nil
	}
	return m.FindAll(ctx, bson.M{consts.ID: bson.M{consts.In: ids}})
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var c Class
	err = m.conn.FindOne(ctx, &c, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return c, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// UpdateOrCreate 按 id 执行 $set, 未命中时以 upsert 新建只含 patch 字段的文档
func (m *MongoMapper) UpdateOrCreate(ctx context.Context, id string, patch any) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	return m.conn.UpdateOne(ctx, bson.M{consts.ID: oid}, bson.M{consts.Set: patch}, options.Update().SetUpsert(true))
}
