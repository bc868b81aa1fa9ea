package show

// ChangeStatusReq 不限定类型, 按提交内容写入; 缺省字段写入 null
type ChangeStatusReq struct {
	Status any `json:"status"`
	Reason any `json:"reason"`
}

// UpdateClassReq 字段类型不做约束, 原样写入
type UpdateClassReq struct {
	Name           any `mapstructure:"name"`
	Description    any `mapstructure:"description"`
	Price          any `mapstructure:"price"`
	AvailableSeats any `mapstructure:"availableSeats"`
	VideoLink      any `mapstructure:"videoLink"`
}
