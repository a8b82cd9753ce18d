package companion

import "strings"

// 情绪标签
const (
	EmotionSad     = "sad"
	EmotionTired   = "tired"
	EmotionAnxious = "anxious"
	EmotionHappy   = "happy"
	EmotionAngry   = "angry"
	EmotionNeutral = "neutral"
)

// 关键词 → 情绪（可扩充）
var emotionKeywords = map[string]string{
	// sad
	"难过":  EmotionSad,
	"伤心":  EmotionSad,
	"不开心": EmotionSad,
	"孤单":  EmotionSad,
	"沮丧":  EmotionSad,
	"失落":  EmotionSad,
	"郁闷":  EmotionSad,
	"忧伤":  EmotionSad,
	// tired
	"累":  EmotionTired,
	"疲惫": EmotionTired,
	"疲劳": EmotionTired,
	"困倦": EmotionTired,
	"乏力": EmotionTired,
	// anxious
	"焦虑": EmotionAnxious,
	"担心": EmotionAnxious,
	"紧张": EmotionAnxious,
	"不安": EmotionAnxious,
	"忧虑": EmotionAnxious,
	"恐慌": EmotionAnxious,
	// happy
	"开心": EmotionHappy,
	"高兴": EmotionHappy,
	"愉快": EmotionHappy,
	"喜悦": EmotionHappy,
	"兴奋": EmotionHappy,
	"欢乐": EmotionHappy,
	"欣喜": EmotionHappy,
	// angry
	"气":  EmotionAngry,
	"生气": EmotionAngry,
	"愤怒": EmotionAngry,
	"恼火": EmotionAngry,
	"暴怒": EmotionAngry,
}

var emotionWeights = map[string]int{
	EmotionSad:     3,
	EmotionTired:   2,
	EmotionAnxious: 3,
	EmotionHappy:   1,
	EmotionAngry:   4,
	EmotionNeutral: 0,
}

// 固定的比较顺序，保证同分时结果稳定
var emotionOrder = []string{
	EmotionSad,
	EmotionTired,
	EmotionAnxious,
	EmotionHappy,
	EmotionAngry,
}

// DetectEmotion classifies a message into one of the emotion labels by
// weighted keyword hits. Ties break in a fixed label order, and a text
// without any hit is neutral.
func DetectEmotion(text string) string {
	if text == "" {
		return EmotionNeutral
	}
	lower := strings.ToLower(text)

	score := make(map[string]int)
	for keyword, emotion := range emotionKeywords {
		if strings.Contains(lower, keyword) {
			score[emotion] += emotionWeights[emotion]
		}
	}

	best := EmotionNeutral
	bestScore := 0
	for _, emotion := range emotionOrder {
		if score[emotion] > bestScore {
			best = emotion
			bestScore = score[emotion]
		}
	}
	return best
}
