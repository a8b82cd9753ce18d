package model

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

type ChatMessage struct {
	Id            int64     `db:"id" json:"id"`
	UserId        string    `db:"user_id" json:"userId"`
	CharacterId   int64     `db:"character_id" json:"characterId"`
	Message       string    `db:"message" json:"message"`
	IsUserMessage bool      `db:"is_user_message" json:"isUserMessage"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

type ChatMessagesModel struct {
	conn sqlx.SqlConn
}

func NewChatMessagesModel(conn sqlx.SqlConn) *ChatMessagesModel {
	return &ChatMessagesModel{conn: conn}
}

func (m *ChatMessagesModel) Insert(ctx context.Context, data *ChatMessage) (*ChatMessage, error) {
	if data.CreatedAt.IsZero() {
		data.CreatedAt = time.Now()
	}

	result, err := m.conn.ExecCtx(ctx,
		`INSERT INTO chat_messages (user_id, character_id, message, is_user_message, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		data.UserId, data.CharacterId, data.Message, data.IsUserMessage, data.CreatedAt)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.Id = id
	return data, nil
}

// FindByUserAndCharacter returns the conversation between a user and a
// character, oldest first.
func (m *ChatMessagesModel) FindByUserAndCharacter(ctx context.Context, userId string, characterId int64) ([]*ChatMessage, error) {
	var list []*ChatMessage
	err := m.conn.QueryRowsCtx(ctx, &list,
		`SELECT id, user_id, character_id, message, is_user_message, created_at
		 FROM chat_messages
		 WHERE user_id = ? AND character_id = ?
		 ORDER BY created_at ASC, id ASC`,
		userId, characterId)
	if err != nil {
		return nil, err
	}
	return list, nil
}
