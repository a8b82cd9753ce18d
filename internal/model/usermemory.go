package model

import (
	"context"
	"errors"
	"time"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// 用户记忆键
const (
	MemoryKeyFavoriteTopic      = "favorite_topic"
	MemoryKeyLastMood           = "last_mood"
	MemoryKeyCompanionshipScore = "companionship_score"
)

type UserMemory struct {
	Id        int64     `db:"id" json:"id"`
	UserId    string    `db:"user_id" json:"userId"`
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type UserMemoryModel struct {
	conn sqlx.SqlConn
}

func NewUserMemoryModel(conn sqlx.SqlConn) *UserMemoryModel {
	return &UserMemoryModel{conn: conn}
}

// Upsert writes a memory entry, replacing any previous value for the key.
func (m *UserMemoryModel) Upsert(ctx context.Context, userId, key, value string) error {
	_, err := m.conn.ExecCtx(ctx,
		`INSERT INTO user_memory (user_id, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (user_id, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		userId, key, value, time.Now())
	return err
}

// Read returns the stored value or "" when the key was never written.
func (m *UserMemoryModel) Read(ctx context.Context, userId, key string) (string, error) {
	var value string
	err := m.conn.QueryRowCtx(ctx, &value,
		`SELECT value FROM user_memory WHERE user_id = ? AND key = ?`, userId, key)
	if errors.Is(err, sqlx.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// ReadAll returns every memory entry of a user as a map.
func (m *UserMemoryModel) ReadAll(ctx context.Context, userId string) (map[string]string, error) {
	var rows []*UserMemory
	err := m.conn.QueryRowsCtx(ctx, &rows,
		`SELECT id, user_id, key, value, updated_at FROM user_memory WHERE user_id = ?`, userId)
	if err != nil {
		return nil, err
	}

	all := make(map[string]string, len(rows))
	for _, row := range rows {
		all[row.Key] = row.Value
	}
	return all, nil
}
