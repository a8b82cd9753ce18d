package provider

import (
	"encoding/json"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"
)

// DashScope 流式响应的单行数据
type streamChunk struct {
	Output *streamOutput `json:"output"`
}

type streamOutput struct {
	// Text 用指针区分「字段缺失」和「空文本」
	Text         *string `json:"text"`
	FinishReason string  `json:"finish_reason"`
}

// ExtractFinalText reduces an SSE response body to the final generated
// text. Output text is cumulative, so each data line overwrites the
// previous value; a finish_reason of "stop" is terminal. Malformed data
// lines are logged and skipped. When no usable text was found at all the
// raw body is returned so the caller still sees what the vendor sent.
func ExtractFinalText(streamResponse string) string {
	lines := strings.Split(streamResponse, "\n")
	finalText := ""
	finished := false

	for _, line := range lines {
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(line[len("data:"):])

		var chunk streamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			logx.Errorf("skipping malformed stream line: %v", err)
			continue
		}
		if chunk.Output == nil {
			continue
		}
		if chunk.Output.Text != nil {
			finalText = strings.TrimSpace(*chunk.Output.Text)
		}
		if chunk.Output.FinishReason == "stop" {
			finished = true
			break
		}
	}

	if finished {
		return finalText
	}
	if finalText != "" {
		return finalText
	}
	return streamResponse
}
