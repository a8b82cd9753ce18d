package companion

import "strings"

// 兴趣话题关键词
var topicKeywords = []struct {
	topic    string
	keywords []string
}{
	{"宠物", []string{"猫", "狗", "宠物"}},
	{"音乐", []string{"音乐", "歌曲", "唱歌"}},
	{"影视", []string{"电影", "电视剧", "视频"}},
}

// ExtractTopic picks the first interest topic mentioned in the text,
// or "" when none matches.
func ExtractTopic(text string) string {
	if text == "" {
		return ""
	}
	for _, t := range topicKeywords {
		for _, kw := range t.keywords {
			if strings.Contains(text, kw) {
				return t.topic
			}
		}
	}
	return ""
}
