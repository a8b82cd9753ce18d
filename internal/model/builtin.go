package model

import "context"

// 内置角色使用负数 ID，不落库也不可删除。

var builtinCharacters = map[int64]*Character{
	-1: {
		Id:                -1,
		Name:              "哈利·波特",
		Description:       "霍格沃茨魔法学校的学生",
		PersonalityTraits: "勇敢、正直、有正义感、略带腼腆",
		BackgroundStory:   "生活在霍格沃茨魔法学校，与朋友们一起对抗黑魔法师",
		VoiceType:         "qiniu_zh_male_ljfdxz",
		IsDeletable:       false,
	},
	-2: {
		Id:                -2,
		Name:              "苏格拉底",
		Description:       "古希腊哲学家，被誉为西方哲学的奠基人",
		PersonalityTraits: "智慧、善于提问、谦逊、追求真理",
		BackgroundStory:   "生活在古希腊，通过对话和提问来探索真理",
		VoiceType:         "qiniu_zh_male_ybxknjs",
		IsDeletable:       false,
	},
	-3: {
		Id:                -3,
		Name:              "林暖暖",
		Description:       "经验丰富的心里陪伴师",
		PersonalityTraits: "温柔细腻，善解人意，积极阳光",
		BackgroundStory:   "创立的暖暖倾听法帮助数万人缓解情绪压力，获得良好口碑",
		VoiceType:         "qiniu_zh_female_zxjxnjs",
		IsDeletable:       false,
	},
}

// BuiltinCharacter returns the built-in character for a negative ID.
func BuiltinCharacter(id int64) (*Character, bool) {
	c, ok := builtinCharacters[id]
	return c, ok
}

// BuiltinCharacters lists every built-in character in a stable order.
func BuiltinCharacters() []*Character {
	return []*Character{
		builtinCharacters[-1],
		builtinCharacters[-2],
		builtinCharacters[-3],
	}
}

// ResolveCharacter looks a character up: negative IDs hit the built-in
// set, everything else the database.
func (m *CharactersModel) ResolveCharacter(ctx context.Context, id int64) (*Character, error) {
	if id < 0 {
		if c, ok := BuiltinCharacter(id); ok {
			return c, nil
		}
		return nil, ErrNotFound
	}
	return m.FindOne(ctx, id)
}
