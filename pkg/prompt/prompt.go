package prompt

import (
	"fmt"
	"strings"

	"github.com/warmtalk/backend/pkg/model"
)

// Flavor selects the tail of the generated role-play template.
type Flavor int

const (
	// FlavorPlain keeps the instruction strictly in character.
	FlavorPlain Flavor = iota
	// FlavorEmoji additionally invites kaomoji/emoji and a short reply.
	FlavorEmoji
)

const (
	templateHead = "你是一个角色扮演AI，严格根据以下设定进行回复：\n" +
		"角色名称：%s\n" +
		"角色描述：%s\n" +
		"性格特征：%s\n" +
		"背景故事：%s\n"

	plainTail = "请始终保持这个角色的身份，用符合角色性格和背景的方式进行回复。"
	emojiTail = "请始终保持这个角色的身份，用符合角色性格和背景的方式进行回复，可以使用对应的颜文字或者使用emoji表情，限制200字符"
)

// BuildInstruction renders the system instruction for a persona.
// A curated script (either carried on the persona or registered for its
// name) is returned verbatim; otherwise the role-play template is filled
// in, leaving missing fields empty.
func BuildInstruction(p *model.Persona, flavor Flavor) string {
	if p == nil {
		return DefaultScript
	}
	if p.Script != "" {
		return p.Script
	}
	if script, ok := CuratedScript(p.Name); ok {
		return script
	}

	tail := plainTail
	if flavor == FlavorEmoji {
		tail = emojiTail
	}
	return fmt.Sprintf(templateHead, p.Name, p.Description, p.Traits, p.Backstory) + tail
}

// BuildHistory renders a conversation transcript for the completion
// request, one line per turn.
func BuildHistory(history []*model.Turn) string {
	var b strings.Builder
	for _, turn := range history {
		if turn.Role == model.RoleUser {
			b.WriteString("用户: ")
		} else {
			b.WriteString("AI: ")
		}
		b.WriteString(turn.Content)
		b.WriteString("\n")
	}
	return b.String()
}
