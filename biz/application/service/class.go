package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"e-learning-server/biz/application/dto/basic"
	"e-learning-server/biz/application/dto/show"
	"e-learning-server/biz/infrastructure/consts"
	"e-learning-server/biz/infrastructure/repository/class"
	"e-learning-server/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

type IClassService interface {
	CreateClass(ctx context.Context, c class.Class) (*basic.InsertResp, error)
	ListApprovedClasses(ctx context.Context) ([]class.Class, error)
	ListClasses(ctx context.Context) ([]class.Class, error)
	ListClassesByInstructor(ctx context.Context, email string) ([]class.Class, error)
	GetClass(ctx context.Context, id string) (class.Class, error)
	ChangeStatus(ctx context.Context, id string, req *show.ChangeStatusReq) (*basic.UpdateResp, error)
	UpdateClass(ctx context.Context, id string, body map[string]any) (*basic.UpdateResp, error)
}

type ClassService struct {
	ClassMapper *class.MongoMapper
}

var ClassServiceSet = wire.NewSet(
	wire.Struct(new(ClassService), "*"),
	wire.Bind(new(IClassService), new(*ClassService)),
)

// CreateClass 原样写入, 不校验字段
func (s *ClassService) CreateClass(ctx context.Context, c class.Class) (*basic.InsertResp, error) {
	res, err := s.ClassMapper.Insert(ctx, c)
	if err != nil {
		log.CtxError(ctx, "创建班级失败: %v", err)
		return nil, err
	}
	return basic.NewInsertResp(res), nil
}

func (s *ClassService) ListApprovedClasses(ctx context.Context) ([]class.Class, error) {
	return s.ClassMapper.FindByStatus(ctx, consts.StatusApproved)
}

// ListClasses 管理端使用, 不区分审核状态
func (s *ClassService) ListClasses(ctx context.Context) ([]class.Class, error) {
	return s.ClassMapper.FindAll(ctx, nil)
}

func (s *ClassService) ListClassesByInstructor(ctx context.Context, email string) ([]class.Class, error) {
	return s.ClassMapper.FindByInstructor(ctx, email)
}

// GetClass 班级不存在时返回 nil, nil
func (s *ClassService) GetClass(ctx context.Context, id string) (class.Class, error) {
	c, err := s.ClassMapper.FindOne(ctx, id)
	switch {
	case err == nil:
		return c, nil
	case errors.Is(err, consts.ErrNotFound):
		return nil, nil
	default:
		return nil, err
	}
}

// ChangeStatus id 不存在时会新建一条只含 status/reason 的记录
func (s *ClassService) ChangeStatus(ctx context.Context, id string, req *show.ChangeStatusReq) (*basic.UpdateResp, error) {
	res, err := s.ClassMapper.UpdateOrCreate(ctx, id, &class.StatusPatch{
		Status: req.Status,
		Reason: req.Reason,
	})
	if err != nil {
		return nil, err
	}
	return basic.NewUpdateResp(res), nil
}

// UpdateClass 覆盖可编辑字段并把状态重置为 pending
func (s *ClassService) UpdateClass(ctx context.Context, id string, body map[string]any) (*basic.UpdateResp, error) {
	var req show.UpdateClassReq
	if err := mapstructure.Decode(body, &req); err != nil {
		log.CtxError(ctx, "解析班级更新参数失败: %v", err)
		return nil, consts.ErrInvalidParams
	}

	patch := new(class.Patch)
	if err := copier.Copy(patch, &req); err != nil {
		return nil, consts.ErrUpdate
	}
	patch.AvailableSeats = ParseSeats(req.AvailableSeats)
	patch.Status = consts.StatusPending

	res, err := s.ClassMapper.UpdateOrCreate(ctx, id, patch)
	if err != nil {
		if errors.Is(err, consts.ErrInvalidObjectId) {
			return nil, err
		}
		log.CtxError(ctx, "Error updating class: %v", err)
		return nil, consts.ErrUpdate
	}
	return basic.NewUpdateResp(res), nil
}

// ParseSeats 取字符串形式开头的整数部分(可带正负号), 没有数字时返回 NaN 并照常写入;
// 超出 int64 的值以 float64 保存
func ParseSeats(v any) any {
	switch v.(type) {
	case nil, bool:
		return math.NaN()
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return math.NaN()
	}
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	digits := sign + s[:n]
	if i, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return int(i)
	}
	f, _ := strconv.ParseFloat(digits, 64)
	return f
}
