package domain

import (
	"time"
)

// Employee 的 ID 序列化为 _id，与已有前端约定的字段名保持一致
type Employee struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Designation string    `json:"designation"`
	Gender      string    `json:"gender"`
	Courses     []string  `json:"courses"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}
