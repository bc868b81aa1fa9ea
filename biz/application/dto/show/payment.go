package show

type CreateCheckoutSessionReq struct {
	// Price 以主货币单位计, 接受数字或数字字符串
	Price any `json:"price"`
}

type CreateCheckoutSessionResp struct {
	ClientSecret string `json:"clientSecret"`
}
