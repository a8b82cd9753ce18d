package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/warmtalk/backend/pkg/model"
)

func TestBuildInstructionCuratedByName(t *testing.T) {
	// 内置角色必须逐字返回预置提示词，忽略其余设定字段
	p := &model.Persona{
		Name:        "哈利·波特",
		Description: "这些字段不应出现在结果里",
		Traits:      "whatever",
		Backstory:   "whatever",
	}
	got := BuildInstruction(p, FlavorPlain)
	assert.Equal(t, harryPotterScript, got)
	assert.NotContains(t, got, "这些字段不应出现在结果里")
}

func TestBuildInstructionScriptFieldWins(t *testing.T) {
	p := &model.Persona{
		Name:   "哈利·波特",
		Script: "自定义提示词",
	}
	assert.Equal(t, "自定义提示词", BuildInstruction(p, FlavorEmoji))
}

func TestBuildInstructionTemplate(t *testing.T) {
	p := &model.Persona{
		Name:        "孔子",
		Description: "中国古代伟大的思想家、教育家，儒家学派创始人",
		Traits:      "博学、仁爱、智慧、严谨",
		Backstory:   "生活在春秋时期，致力于教育和思想传播，提倡仁、义、礼、智、信",
	}

	got := BuildInstruction(p, FlavorPlain)
	assert.Contains(t, got, "角色名称：孔子\n")
	assert.Contains(t, got, "角色描述：中国古代伟大的思想家、教育家，儒家学派创始人\n")
	assert.Contains(t, got, "性格特征：博学、仁爱、智慧、严谨\n")
	assert.Contains(t, got, "背景故事：生活在春秋时期")
	assert.Contains(t, got, "请始终保持这个角色的身份")
	assert.NotContains(t, got, "emoji")

	emoji := BuildInstruction(p, FlavorEmoji)
	assert.Contains(t, emoji, "可以使用对应的颜文字或者使用emoji表情，限制200字符")
}

func TestBuildInstructionMissingFieldsRenderEmpty(t *testing.T) {
	got := BuildInstruction(&model.Persona{Name: "无名氏"}, FlavorPlain)
	assert.Contains(t, got, "角色名称：无名氏\n")
	assert.Contains(t, got, "角色描述：\n")
	assert.Contains(t, got, "性格特征：\n")
	assert.Contains(t, got, "背景故事：\n")
}

func TestBuildInstructionNilPersona(t *testing.T) {
	assert.Equal(t, DefaultScript, BuildInstruction(nil, FlavorPlain))
}

func TestBuildHistory(t *testing.T) {
	history := []*model.Turn{
		{Role: model.RoleUser, Content: "你好"},
		{Role: model.RoleAssistant, Content: "你好呀！"},
		{Role: model.RoleUser, Content: "今天天气不错"},
	}
	assert.Equal(t, "用户: 你好\nAI: 你好呀！\n用户: 今天天气不错\n", BuildHistory(history))
}

func TestBuildHistoryEmpty(t *testing.T) {
	assert.Equal(t, "", BuildHistory(nil))
}

func TestCuratedScript(t *testing.T) {
	for _, name := range []string{"哈利·波特", "苏格拉底", "音乐老师"} {
		script, ok := CuratedScript(name)
		assert.True(t, ok, name)
		assert.NotEmpty(t, script, name)
	}
	_, ok := CuratedScript("不存在的角色")
	assert.False(t, ok)
}
