package cart

import (
	"go.mongodb.org/mongo-driver/bson"
)

// Item 购物车记录, 通过 classId 弱引用班级, 通过 userMail 关联用户
type Item bson.M

// ClassID 返回记录引用的班级 id, 字段缺失或类型不符时返回空串
func (i Item) ClassID() string {
	id, _ := i["classId"].(string)
	return id
}
