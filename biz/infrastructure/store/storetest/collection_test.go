package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestCollection_UpdateOneWithoutUpsert(t *testing.T) {
	ctx := context.Background()
	c := New()

	res, err := c.UpdateOne(ctx, bson.M{"_id": primitive.NewObjectID()}, bson.M{"$set": bson.M{"status": "approved"}})
	require.NoError(t, err)
	assert.Zero(t, res.MatchedCount)
	assert.Zero(t, res.UpsertedCount)
	assert.Empty(t, c.Docs())
}

func TestCollection_UpdateOneUnchanged(t *testing.T) {
	ctx := context.Background()
	c := New()
	ins, err := c.InsertOne(ctx, bson.M{"status": "approved"})
	require.NoError(t, err)

	res, err := c.UpdateOne(ctx, bson.M{"_id": ins.InsertedID}, bson.M{"$set": bson.M{"status": "approved"}})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.MatchedCount)
	assert.EqualValues(t, 0, res.ModifiedCount)
}

func TestCollection_FindWithInAndProjection(t *testing.T) {
	ctx := context.Background()
	c := New()
	var ids []any
	for _, name := range []string{"a", "b", "c"} {
		ins, err := c.InsertOne(ctx, bson.M{"name": name, "seats": 3})
		require.NoError(t, err)
		ids = append(ids, ins.InsertedID)
	}

	var out []bson.M
	err := c.Find(ctx, &out, bson.M{"_id": bson.M{"$in": ids[:2]}}, options.Find().SetProjection(bson.M{"name": 1}))
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, d := range out {
		assert.Len(t, d, 2)
		assert.Contains(t, d, "name")
	}
}

func TestCollection_FindOneNotFound(t *testing.T) {
	var out bson.M
	err := New().FindOne(context.Background(), &out, bson.M{"name": "x"})
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}
