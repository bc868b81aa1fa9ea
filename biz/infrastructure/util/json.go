package util

import (
	"encoding/json"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JSONF 序列化用于日志输出, 失败时返回空串
func JSONF(v any) string {
	data, err := json.Marshal(JSONSafe(v))
	if err != nil {
		return ""
	}
	return string(data)
}

// JSONSafe 把文档里的 NaN/Inf 替换成 nil, 与浏览器端 JSON 的表现一致
func JSONSafe(v any) any {
	switch t := v.(type) {
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil
		}
		return t
	case float32:
		if math.IsNaN(float64(t)) || math.IsInf(float64(t), 0) {
			return nil
		}
		return t
	case bson.M:
		return jsonSafeMap(t)
	case map[string]any:
		return jsonSafeMap(t)
	case primitive.A:
		return jsonSafeSlice(t)
	case []any:
		return jsonSafeSlice(t)
	default:
		return v
	}
}

func jsonSafeMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = JSONSafe(v)
	}
	return out
}

func jsonSafeSlice(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = JSONSafe(v)
	}
	return out
}
