package consts

// 数据库相关
const (
	ID              = "_id"
	Status          = "status"
	InstructorEmail = "instructorEmail"
	ClassID         = "classId"
	UserMail        = "userMail"
	Set             = "$set"
	In              = "$in"
)

// 集合
const (
	UsersCollection   = "users"
	ClassesCollection = "classes"
	CartsCollection   = "carts"
	PaymentCollection = "payment"
	EnrollCollection  = "enroll"
	AppliedCollection = "applied"
)

// 班级审核状态
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// http
const (
	HeaderRequestID = "X-Request-Id"
	HeaderTraceID   = "X-Trace-Id"
)

// 默认值
const (
	CentsPerUnit       = 100
	CardPaymentMethod  = "card"
	LivenessMessage    = "e-learning server!"
	UpdateClassFailMsg = "Failed to update class"
)
