package model

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type User struct {
	Id        int64     `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type UsersModel struct {
	conn sqlx.SqlConn
}

func NewUsersModel(conn sqlx.SqlConn) *UsersModel {
	return &UsersModel{conn: conn}
}

func (m *UsersModel) Insert(ctx context.Context, data *User) (int64, error) {
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}
	result, err := m.conn.ExecCtx(ctx,
		`INSERT INTO users (username, email, password, created_at) VALUES (?, ?, ?, ?)`,
		data.Username, data.Email, data.Password, data.CreatedAt)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (m *UsersModel) FindOne(ctx context.Context, id int64) (*User, error) {
	var u User
	err := m.conn.QueryRowCtx(ctx, &u,
		`SELECT id, username, email, password, created_at FROM users WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (m *UsersModel) FindOneByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := m.conn.QueryRowCtx(ctx, &u,
		`SELECT id, username, email, password, created_at FROM users WHERE username = ?`, username)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (m *UsersModel) FindOneByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := m.conn.QueryRowCtx(ctx, &u,
		`SELECT id, username, email, password, created_at FROM users WHERE email = ?`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
