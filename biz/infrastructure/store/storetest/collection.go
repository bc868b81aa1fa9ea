// Package storetest 提供内存版集合, 覆盖路由层用到的查询子集:
// 等值匹配、$in、$set、upsert 与投影
package storetest

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collection struct {
	mu   sync.Mutex
	docs []bson.M
	// Err 非空时所有操作都返回该错误
	Err error
}

func New() *Collection {
	return &Collection{}
}

// Docs 返回当前全部文档的副本
func (c *Collection) Docs() []bson.M {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]bson.M, 0, len(c.docs))
	for _, d := range c.docs {
		out = append(out, copyDoc(d))
	}
	return out
}

func (c *Collection) InsertOne(_ context.Context, document any, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	doc, err := toM(document)
	if err != nil {
		return nil, err
	}
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, doc)
	return &mongo.InsertOneResult{InsertedID: doc["_id"]}, nil
}

func (c *Collection) Find(_ context.Context, v, filter any, opts ...*options.FindOptions) error {
	if c.Err != nil {
		return c.Err
	}
	f, err := toM(filter)
	if err != nil {
		return err
	}
	var projection any
	for _, o := range opts {
		if o != nil && o.Projection != nil {
			projection = o.Projection
		}
	}

	c.mu.Lock()
	var matched []bson.M
	for _, d := range c.docs {
		if match(d, f) {
			matched = append(matched, copyDoc(d))
		}
	}
	c.mu.Unlock()

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("storetest: Find expects a pointer to a slice, got %T", v)
	}
	sliceType := rv.Elem().Type()
	out := reflect.MakeSlice(sliceType, 0, len(matched))
	for _, d := range matched {
		d, err = project(d, projection)
		if err != nil {
			return err
		}
		elem := reflect.New(sliceType.Elem())
		if err = decode(d, elem.Interface()); err != nil {
			return err
		}
		out = reflect.Append(out, elem.Elem())
	}
	rv.Elem().Set(out)
	return nil
}

func (c *Collection) FindOne(_ context.Context, v, filter any, opts ...*options.FindOneOptions) error {
	if c.Err != nil {
		return c.Err
	}
	f, err := toM(filter)
	if err != nil {
		return err
	}
	var projection any
	for _, o := range opts {
		if o != nil && o.Projection != nil {
			projection = o.Projection
		}
	}

	c.mu.Lock()
	var found bson.M
	for _, d := range c.docs {
		if match(d, f) {
			found = copyDoc(d)
			break
		}
	}
	c.mu.Unlock()

	if found == nil {
		return mongo.ErrNoDocuments
	}
	found, err = project(found, projection)
	if err != nil {
		return err
	}
	return decode(found, v)
}

func (c *Collection) UpdateOne(_ context.Context, filter, update any, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	f, err := toM(filter)
	if err != nil {
		return nil, err
	}
	u, err := toM(update)
	if err != nil {
		return nil, err
	}
	set, _ := u["$set"].(bson.M)
	upsert := false
	for _, o := range opts {
		if o != nil && o.Upsert != nil {
			upsert = *o.Upsert
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.docs {
		if !match(d, f) {
			continue
		}
		modified := int64(0)
		for k, val := range set {
			if old, ok := d[k]; !ok || !reflect.DeepEqual(old, val) {
				modified = 1
			}
			d[k] = val
		}
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
	}
	if !upsert {
		return &mongo.UpdateResult{}, nil
	}

	doc := bson.M{}
	for k, val := range f {
		if _, isOp := val.(bson.M); !isOp {
			doc[k] = val
		}
	}
	for k, val := range set {
		doc[k] = val
	}
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}
	c.docs = append(c.docs, doc)
	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: doc["_id"]}, nil
}

func (c *Collection) DeleteOne(_ context.Context, filter any, _ ...*options.DeleteOptions) (int64, error) {
	if c.Err != nil {
		return 0, c.Err
	}
	f, err := toM(filter)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, d := range c.docs {
		if match(d, f) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func match(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if op, isOp := want.(bson.M); isOp {
			in, _ := op["$in"].(bson.A)
			if !ok || !contains(in, got) {
				return false
			}
			continue
		}
		if !ok {
			if want != nil {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func contains(values bson.A, v any) bool {
	for _, candidate := range values {
		if reflect.DeepEqual(candidate, v) {
			return true
		}
	}
	return false
}

func project(doc bson.M, projection any) (bson.M, error) {
	if projection == nil {
		return doc, nil
	}
	p, err := toM(projection)
	if err != nil {
		return nil, err
	}
	out := bson.M{"_id": doc["_id"]}
	for k, v := range p {
		if include, _ := v.(int32); include == 0 {
			if k == "_id" {
				delete(out, "_id")
			}
			continue
		}
		if val, ok := doc[k]; ok {
			out[k] = val
		}
	}
	return out, nil
}

// toM 经一次 bson 编解码得到与数据库一致的值类型
func toM(v any) (bson.M, error) {
	if v == nil {
		return bson.M{}, nil
	}
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := bson.M{}
	if err = bson.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func decode(doc bson.M, v any) error {
	data, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(data, v)
}

func copyDoc(d bson.M) bson.M {
	out := make(bson.M, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
