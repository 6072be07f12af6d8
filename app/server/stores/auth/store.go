// Package auth 负责用户注册与登录校验，用户数据保存在 MongoDB 中
package auth

import (
	"climate-solutions/app/server/models"
	"context"
	"errors"
	"fmt"
	"github.com/alexedwards/argon2id"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"time"
)

type RegisterInput struct {
	UserName  string `form:"userName"`
	Password  string `form:"password"`
	Password2 string `form:"password2"`
	Email     string `form:"email"`
}

type LoginInput struct {
	UserName  string `form:"userName"`
	Password  string `form:"password"`
	UserAgent string `form:"-"`
}

type Store struct {
	users  *mongo.Collection
	params *argon2id.Params
	now    func() time.Time
}

func New(users *mongo.Collection) *Store {
	return &Store{
		users:  users,
		params: argon2id.DefaultParams,
		now:    time.Now,
	}
}

func (s *Store) Register(ctx context.Context, in RegisterInput) error {
	if in.Password != in.Password2 {
		return ErrPasswordMismatch
	}

	hash, err := argon2id.CreateHash(in.Password, s.params)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrHashPassword, err)
	}

	user := models.User{
		UserName:     in.UserName,
		Password:     hash,
		Email:        in.Email,
		LoginHistory: []models.LoginEntry{},
	}
	if _, err = s.users.InsertOne(ctx, &user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserNameTaken
		}
		return fmt.Errorf("%w: %w", ErrCreateUser, err)
	}

	return nil
}

// Authenticate 校验密码并记录本次登录。
// 密码校验与历史写入是两次独立操作，中途失败时本次登录不会留下记录。
func (s *Store) Authenticate(ctx context.Context, in LoginInput) (*models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, bson.D{{Key: "userName", Value: in.UserName}}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}

	match, err := argon2id.ComparePasswordAndHash(in.Password, user.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVerifyUser, err)
	}
	if !match {
		return nil, ErrIncorrectPassword
	}

	user.LoginHistory = PrependLogin(user.LoginHistory, models.LoginEntry{
		DateTime:  s.now().UTC(),
		UserAgent: in.UserAgent,
	})

	if _, err = s.users.UpdateOne(ctx,
		bson.D{{Key: "userName", Value: user.UserName}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "loginHistory", Value: user.LoginHistory}}}},
	); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVerifyUser, err)
	}

	return &user, nil
}

// PrependLogin 把 entry 放到最前，超出 models.LoginHistoryLimit 的旧记录被丢弃
func PrependLogin(history []models.LoginEntry, entry models.LoginEntry) []models.LoginEntry {
	n := len(history) + 1
	if n > models.LoginHistoryLimit {
		n = models.LoginHistoryLimit
	}

	next := make([]models.LoginEntry, 0, n)
	next = append(next, entry)
	return append(next, history[:n-1]...)
}

// Ping 检查用户库连接是否可用
func (s *Store) Ping(ctx context.Context) error {
	return s.users.Database().Client().Ping(ctx, nil)
}
