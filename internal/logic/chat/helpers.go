package chat

import (
	"github.com/warmtalk/backend/internal/model"
	"github.com/warmtalk/backend/internal/types"
	pkgmodel "github.com/warmtalk/backend/pkg/model"
	"github.com/warmtalk/backend/pkg/prompt"
)

// 角色不存在时的提示
const characterNotFoundText = "角色不存在"

// 上游失败时的兜底回复
const apologyText = "抱歉，我暂时无法回复您的消息。"

// 命中敏感词时的固定回复
const flaggedText = "我发现你的表述可能有些危险，请立即联系身边的人或求助热线。若需要，我可以帮你查找附近的求助资源。"

// personaFromCharacter builds the completion persona, resolving a
// curated script at lookup time.
func personaFromCharacter(c *model.Character) *pkgmodel.Persona {
	p := &pkgmodel.Persona{
		Name:        c.Name,
		Description: c.Description,
		Traits:      c.PersonalityTraits,
		Backstory:   c.BackgroundStory,
	}
	if script, ok := prompt.CuratedScript(c.Name); ok {
		p.Script = script
	}
	return p
}

func turnsFromMessages(messages []*model.ChatMessage) []*pkgmodel.Turn {
	turns := make([]*pkgmodel.Turn, 0, len(messages))
	for _, msg := range messages {
		role := pkgmodel.RoleAssistant
		if msg.IsUserMessage {
			role = pkgmodel.RoleUser
		}
		turns = append(turns, &pkgmodel.Turn{Role: role, Content: msg.Message})
	}
	return turns
}

func messageInfo(msg *model.ChatMessage) *types.MessageInfo {
	return &types.MessageInfo{
		Id:            msg.Id,
		UserId:        msg.UserId,
		CharacterId:   msg.CharacterId,
		Message:       msg.Message,
		IsUserMessage: msg.IsUserMessage,
		CreatedAt:     msg.CreatedAt,
	}
}
