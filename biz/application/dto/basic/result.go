package basic

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// InsertResp 写入结果, 字段名与 mongo shell 一致
type InsertResp struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedId   any  `json:"insertedId"`
}

type UpdateResp struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedId    any   `json:"upsertedId"`
}

type DeleteResp struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func NewInsertResp(r *mongo.InsertOneResult) *InsertResp {
	return &InsertResp{
		Acknowledged: true,
		InsertedId:   r.InsertedID,
	}
}

func NewUpdateResp(r *mongo.UpdateResult) *UpdateResp {
	return &UpdateResp{
		Acknowledged:  true,
		MatchedCount:  r.MatchedCount,
		ModifiedCount: r.ModifiedCount,
		UpsertedCount: r.UpsertedCount,
		UpsertedId:    r.UpsertedID,
	}
}

func NewDeleteResp(deleted int64) *DeleteResp {
	return &DeleteResp{
		Acknowledged: true,
		DeletedCount: deleted,
	}
}

type ErrorResp struct {
	Error string `json:"error"`
}
