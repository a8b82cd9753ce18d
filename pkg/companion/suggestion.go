package companion

// MaxCompanionshipScore caps the accumulated score.
const MaxCompanionshipScore = 100

var suggestions = map[string]string{
	EmotionSad:     "要不要聊聊让你感到难过的事情？或者我们可以一起听首歌放松一下。",
	EmotionTired:   "你看起来很累呢，要不要休息一下？我可以给你讲个轻松的小故事。",
	EmotionAnxious: "感觉你有些焦虑呢，要不要试试深呼吸？或者我们可以聊些让你开心的话题。",
	EmotionHappy:   "很高兴看到你开心！要不要分享一下是什么让你这么高兴？",
	EmotionAngry:   "看起来你有些生气呢，要不要先冷静一下？我可以陪你聊聊。",
}

const defaultSuggestion = "我们聊聊其他话题吧，你最近有什么有趣的经历吗？"

// SuggestionFor maps a detected emotion to a canned follow-up prompt.
func SuggestionFor(emotion string) string {
	if s, ok := suggestions[emotion]; ok {
		return s
	}
	return defaultSuggestion
}

// BumpScore advances the companionship score by one interaction.
func BumpScore(current int) int {
	if current < 0 {
		current = 0
	}
	next := current + 1
	if next > MaxCompanionshipScore {
		return MaxCompanionshipScore
	}
	return next
}
