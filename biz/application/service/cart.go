package service

import (
	"context"
	"errors"

	"e-learning-server/biz/application/dto/basic"
	"e-learning-server/biz/infrastructure/consts"
	"e-learning-server/biz/infrastructure/repository/cart"
	"e-learning-server/biz/infrastructure/repository/class"
	"e-learning-server/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ICartService interface {
	AddToCart(ctx context.Context, item cart.Item) (*basic.InsertResp, error)
	GetCartItem(ctx context.Context, classID, email string) (cart.Item, error)
	ListCart(ctx context.Context, email string) ([]class.Class, error)
	DeleteCartItem(ctx context.Context, classID string) (*basic.DeleteResp, error)
}

type CartService struct {
	CartMapper  *cart.MongoMapper
	ClassMapper *class.MongoMapper
}

var CartServiceSet = wire.NewSet(
	wire.Struct(new(CartService), "*"),
	wire.Bind(new(ICartService), new(*CartService)),
)

// AddToCart 原样写入, 重复加入会产生多条记录
func (s *CartService) AddToCart(ctx context.Context, item cart.Item) (*basic.InsertResp, error) {
	res, err := s.CartMapper.Insert(ctx, item)
	if err != nil {
		log.CtxError(ctx, "加入购物车失败: %v", err)
		return nil, err
	}
	return basic.NewInsertResp(res), nil
}

// GetCartItem 未找到时返回 nil, nil
func (s *CartService) GetCartItem(ctx context.Context, classID, email string) (cart.Item, error) {
	item, err := s.CartMapper.FindOne(ctx, classID, email)
	switch {
	case err == nil:
		return item, nil
	case errors.Is(err, consts.ErrNotFound):
		return nil, nil
	default:
		return nil, err
	}
}

// ListCart 先查购物车再查班级, 两次查询之间没有事务,
// 期间被删除的班级不会出现在结果里
func (s *CartService) ListCart(ctx context.Context, email string) ([]class.Class, error) {
	items, err := s.CartMapper.FindByUser(ctx, email)
	if err != nil {
		return nil, err
	}

	ids := lo.FilterMap(items, func(item cart.Item, _ int) (primitive.ObjectID, bool) {
		oid, err := primitive.ObjectIDFromHex(item.ClassID())
		if err != nil {
			log.CtxInfo(ctx, "购物车记录引用了无效的班级id: %v", item["classId"])
			return primitive.NilObjectID, false
		}
		return oid, true
	})
	return s.ClassMapper.FindByIDs(ctx, lo.Uniq(ids))
}

// DeleteCartItem 删除第一条引用该班级的记录, 未命中时 deletedCount 为 0
func (s *CartService) DeleteCartItem(ctx context.Context, classID string) (*basic.DeleteResp, error) {
	deleted, err := s.CartMapper.DeleteByClassID(ctx, classID)
	if err != nil {
		return nil, err
	}
	return basic.NewDeleteResp(deleted), nil
}
