package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// 与原有系统保持一致的 bcrypt cost
const PasswordCost = 10

// bcrypt 只使用前 72 字节，超出部分截断而不是报错
const MaxPasswordBytes = 72

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		b = b[:MaxPasswordBytes]
	}
	return b
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(passwordBytes(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ComparePassword 在密码不匹配时返回 false, nil；其余错误原样返回
func ComparePassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), passwordBytes(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
