package textseg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \n\t ",
			want: nil,
		},
		{
			name: "no terminator stays whole",
			text: "Hello world",
			want: []string{"Hello world"},
		},
		{
			name: "two sentences",
			text: "你好呀！很高兴认识你。",
			want: []string{"你好呀！", "很高兴认识你。"},
		},
		{
			name: "mixed ascii terminators",
			text: "really? yes! 好的。",
			want: []string{"really?", "yes!", "好的。"},
		},
		{
			name: "terminator inside quotes does not split",
			text: "他说“你好！吃了吗？”然后走了。",
			want: []string{"他说“你好！吃了吗？”然后走了。"},
		},
		{
			name: "split resumes after closing quote",
			text: "他说“走吧！”。我跟上了。",
			want: []string{"他说“走吧！”。", "我跟上了。"},
		},
		{
			name: "straight double quotes",
			text: `"stop! now" ok。`,
			want: []string{`"stop! now" ok。`},
		},
		{
			name: "escaped quote does not open quotation",
			text: `a\"b！c`,
			want: []string{`a\"b！`, "c"},
		},
		{
			name: "unterminated quote keeps remainder unsplit",
			text: "他说：“今天！明天？后天",
			want: []string{"他说：“今天！明天？后天"},
		},
		{
			name: "trailing text without terminator",
			text: "第一句。还有后续",
			want: []string{"第一句。", "还有后续"},
		},
		{
			name: "surrounding whitespace trimmed",
			text: "  你好。  再见。  ",
			want: []string{"你好。", "再见。"},
		},
		{
			name: "only punctuation",
			text: "。。。",
			want: []string{"。", "。", "。"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.text))
		})
	}
}

func TestSplitNeverReturnsEmptySegments(t *testing.T) {
	inputs := []string{
		"。 。 。",
		"！！！",
		"  a。  ",
		"“……”",
	}
	for _, in := range inputs {
		for _, seg := range Split(in) {
			assert.NotEmpty(t, strings.TrimSpace(seg), "input %q", in)
		}
	}
}

func TestSplitReconstruction(t *testing.T) {
	// 去掉空白后各段拼接应还原原文
	text := "你好呀！ 很高兴认识你。今天过得怎么样？"
	segs := Split(text)

	strip := func(s string) string {
		return strings.Join(strings.Fields(s), "")
	}
	assert.Equal(t, strip(text), strip(strings.Join(segs, "")))
}

func TestSplitIdempotent(t *testing.T) {
	text := "第一句。第二句！他说“别走？”好吧。"
	for _, seg := range Split(text) {
		assert.Equal(t, []string{seg}, Split(seg))
	}
}
