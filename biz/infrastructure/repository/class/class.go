package class

import (
	"encoding/json"

	"e-learning-server/biz/infrastructure/util"

	"go.mongodb.org/mongo-driver/bson"
)

// Class 班级文档, 原样存储客户端提交的字段
type Class bson.M

func (c Class) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	return json.Marshal(util.JSONSafe(map[string]any(c)))
}

// Patch 编辑班级时整体覆盖的字段
type Patch struct {
	Name           any    `bson:"name"`
	Description    any    `bson:"description"`
	Price          any    `bson:"price"`
	AvailableSeats any    `bson:"availableSeats"`
	VideoLink      any    `bson:"videoLink"`
	Status         string `bson:"status"`
}

// StatusPatch 审核状态变更, reason 缺省时写入 null
type StatusPatch struct {
	Status any `bson:"status"`
	Reason any `bson:"reason"`
}
