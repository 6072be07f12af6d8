package jwt

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
)

type JWT struct {
	key []byte
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key)}, nil
}

// Parse 校验签名与有效期，并把声明写入 claims
func (j *JWT) Parse(tokenString string, claims jwt.Claims, opts ...jwt.ParserOption) error {
	// 检查是否有效
	if len(tokenString) == 0 {
		return errors.New("token string is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	}, append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))...)
	if err != nil {
		return fmt.Errorf("parse jwt failed: %w", err)
	}

	if !token.Valid {
		return fmt.Errorf("invalid token")
	}

	return nil
}

func (j *JWT) Sign(claims jwt.Claims) (string, error) {
	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// 签名并返回
	return token.SignedString(j.key)
}
