package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// LoginHistoryLimit 登录历史最多保留的条数
const LoginHistoryLimit = 8

type User struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"-"`

	UserName string `bson:"userName" json:"userName"` // 用户名，全局唯一
	Password string `bson:"password" json:"-"`        // 密码，使用 argon2id 储存
	Email    string `bson:"email" json:"email"`

	LoginHistory []LoginEntry `bson:"loginHistory" json:"loginHistory"` // 最新的在前
}

type LoginEntry struct {
	DateTime  time.Time `bson:"dateTime" json:"dateTime"`
	UserAgent string    `bson:"userAgent" json:"userAgent"`
}
