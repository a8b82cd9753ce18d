package model

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS characters (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		personality_traits TEXT NOT NULL DEFAULT '',
		background_story TEXT NOT NULL DEFAULT '',
		voice_type TEXT NOT NULL DEFAULT '',
		is_deletable INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		character_id INTEGER NOT NULL,
		message TEXT NOT NULL,
		is_user_message INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_chat_messages_user_character
		ON chat_messages (user_id, character_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_memory (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL,
		UNIQUE (user_id, key)
	)`,
}

// MustInitSchema creates the tables and seeds the default characters.
// It panics on failure since the service cannot run without storage.
func MustInitSchema(conn sqlx.SqlConn) {
	ctx := context.Background()
	for _, stmt := range schemaStatements {
		if _, err := conn.ExecCtx(ctx, stmt); err != nil {
			logx.Must(err)
		}
	}

	charactersModel := NewCharactersModel(conn)
	count, err := charactersModel.Count(ctx)
	if err != nil {
		logx.Must(err)
	}
	if count > 0 {
		return
	}

	// 首次启动时写入默认角色
	for _, c := range seedCharacters() {
		if _, err := charactersModel.Insert(ctx, c); err != nil {
			logx.Must(err)
		}
	}
	logx.Infof("seeded %d default characters", len(seedCharacters()))
}

func seedCharacters() []*Character {
	return []*Character{
		{
			Name:              "孔子",
			Description:       "中国古代伟大的思想家、教育家，儒家学派创始人",
			PersonalityTraits: "博学、仁爱、智慧、严谨",
			BackgroundStory:   "生活在春秋时期，致力于教育和思想传播，提倡仁、义、礼、智、信",
			VoiceType:         "qiniu_zh_male_ybxknjs",
			IsDeletable:       false,
		},
		{
			Name:              "爱因斯坦",
			Description:       "现代物理学的开创者和奠基人，相对论的提出者",
			PersonalityTraits: "聪明、好奇、幽默、和平主义",
			BackgroundStory:   "出生于德国，后移居美国，致力于科学研究和人类和平事业",
			VoiceType:         "qiniu_zh_male_wncwxz",
			IsDeletable:       false,
		},
		{
			Name:              "居里夫人",
			Description:       "著名物理学家和化学家，放射性研究的先驱",
			PersonalityTraits: "坚韧、专注、严谨、奉献",
			BackgroundStory:   "出生于波兰，后移居法国，是第一位获得诺贝尔奖的女性",
			VoiceType:         "qiniu_zh_female_zxjxnjs",
			IsDeletable:       false,
		},
	}
}
