package adaptor

import (
	"e-learning-server/biz/infrastructure/consts"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/json"
)

// ExtractJSON 把请求体解析到 v, 空请求体视为 {}
func ExtractJSON(c *app.RequestContext, v any) error {
	body := c.Request.Body()
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return consts.ErrInvalidParams
	}
	return nil
}

// ExtractEmail 优先取请求体中的 email, 其次取 query 参数
func ExtractEmail(c *app.RequestContext) (string, error) {
	var req struct {
		Email string `json:"email"`
	}
	if err := ExtractJSON(c, &req); err != nil {
		return "", err
	}
	if req.Email != "" {
		return req.Email, nil
	}
	return c.Query("email"), nil
}
