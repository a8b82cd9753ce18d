package model

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = sqlx.ErrNotFound

type Character struct {
	Id                int64     `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Description       string    `db:"description" json:"description"`
	PersonalityTraits string    `db:"personality_traits" json:"personalityTraits"`
	BackgroundStory   string    `db:"background_story" json:"backgroundStory"`
	VoiceType         string    `db:"voice_type" json:"voiceType"`
	IsDeletable       bool      `db:"is_deletable" json:"isDeletable"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}

type CharactersModel struct {
	conn sqlx.SqlConn
}

func NewCharactersModel(conn sqlx.SqlConn) *CharactersModel {
	return &CharactersModel{conn: conn}
}

func (m *CharactersModel) Insert(ctx context.Context, data *Character) (int64, error) {
	now := time.Now()
	if data.CreatedAt.IsZero() {
		data.CreatedAt = now
	}
	data.UpdatedAt = now

	result, err := m.conn.ExecCtx(ctx,
		`INSERT INTO characters (name, description, personality_traits, background_story, voice_type, is_deletable, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Name, data.Description, data.PersonalityTraits, data.BackgroundStory,
		data.VoiceType, data.IsDeletable, data.CreatedAt, data.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (m *CharactersModel) FindOne(ctx context.Context, id int64) (*Character, error) {
	var c Character
	err := m.conn.QueryRowCtx(ctx, &c,
		`SELECT id, name, description, personality_traits, background_story, voice_type, is_deletable, created_at, updated_at
		 FROM characters WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (m *CharactersModel) FindAll(ctx context.Context) ([]*Character, error) {
	var list []*Character
	err := m.conn.QueryRowsCtx(ctx, &list,
		`SELECT id, name, description, personality_traits, background_story, voice_type, is_deletable, created_at, updated_at
		 FROM characters ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (m *CharactersModel) Delete(ctx context.Context, id int64) error {
	_, err := m.conn.ExecCtx(ctx, `DELETE FROM characters WHERE id = ?`, id)
	return err
}

func (m *CharactersModel) Count(ctx context.Context) (int64, error) {
	var count int64
	err := m.conn.QueryRowCtx(ctx, &count, `SELECT COUNT(*) FROM characters`)
	return count, err
}
