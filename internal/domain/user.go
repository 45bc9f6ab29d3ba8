package domain

import "fmt"

// User описывает синтетическую запись пользователя.
// Хранилища пользователей нет, запись детерминированно строится по ID.
type User struct {
	ID       int64
	Username string
	Email    string
	IsActive bool
}

func NewUser(id int64) *User {
	return &User{
		ID:       id,
		Username: fmt.Sprintf("user_%d", id),
		Email:    fmt.Sprintf("user_%d@example.com", id),
		IsActive: id%7 != 0, // каждый седьмой пользователь деактивирован
	}
}
