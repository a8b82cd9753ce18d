package types

import "time"

// 认证

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserInfo struct {
	UserId   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthResponse struct {
	Code    int       `json:"code"`
	Message string    `json:"message"`
	Data    *UserInfo `json:"data,omitempty"`
}

// 聊天

type ChatMessageRequest struct {
	UserId      string `json:"userId"`
	Text        string `json:"text"`
	CharacterId int64  `json:"characterId"`
}

type ChatMessageResponse struct {
	Text               string `json:"text"`
	Emotion            string `json:"emotion"`
	Suggestion         string `json:"suggestion,omitempty"`
	CompanionshipScore int    `json:"companionshipScore,omitempty"`
	Flagged            bool   `json:"flagged"`
}

type SendMessageRequest struct {
	UserId      string `json:"userId"`
	CharacterId int64  `json:"characterId"`
	Message     string `json:"message"`
}

type MessageInfo struct {
	Id            int64     `json:"id"`
	UserId        string    `json:"userId"`
	CharacterId   int64     `json:"characterId"`
	Message       string    `json:"message"`
	IsUserMessage bool      `json:"isUserMessage"`
	CreatedAt     time.Time `json:"createdAt"`
}

type SendMessageResponse struct {
	Success     bool          `json:"success"`
	Error       string        `json:"error,omitempty"`
	UserMessage *MessageInfo  `json:"userMessage,omitempty"`
	AiMessages  []*MessageInfo `json:"aiMessages"`
}

type ChatHistoryRequest struct {
	CharacterId int64  `path:"characterId"`
	UserId      string `form:"userId"`
}

type ChatHistoryResponse struct {
	Messages []*MessageInfo `json:"messages"`
}

// 角色

type CharacterInfo struct {
	Id                int64  `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	PersonalityTraits string `json:"personalityTraits"`
	BackgroundStory   string `json:"backgroundStory"`
	VoiceType         string `json:"voiceType"`
	IsDeletable       bool   `json:"isDeletable"`
}

type CharacterListResponse struct {
	Characters []*CharacterInfo `json:"characters"`
}

type CreateCharacterRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description,optional"`
	PersonalityTraits string `json:"personalityTraits,optional"`
	BackgroundStory   string `json:"backgroundStory,optional"`
	VoiceType         string `json:"voiceType,optional"`
}

type DeleteCharacterRequest struct {
	Id int64 `path:"id"`
}

type DeleteCharacterResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// 语音

type TtsRequest struct {
	Text   string `json:"text"`
	Voice  string `json:"voice,optional"`
	Format string `json:"format,optional"`
}

type AsrResponse struct {
	Text string `json:"text"`
}

type UploadResponse struct {
	Url string `json:"url"`
}

type VoiceChatResponse struct {
	Transcript  string         `json:"transcript"`
	UserMessage *MessageInfo   `json:"userMessage,omitempty"`
	AiMessages  []*MessageInfo `json:"aiMessages"`
}

// 服务发现

type ProviderInfo struct {
	Name         string            `json:"name"`
	Type         string            `json:"type"`
	Status       string            `json:"status"`
	Capabilities []string          `json:"capabilities,omitempty"`
	Config       map[string]string `json:"config,omitempty"`
}

type ServiceListResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    []ProviderInfo `json:"data"`
}

type ServicesByTypeRequest struct {
	Type string `path:"type"`
}

type ServiceStatusRequest struct {
	Type string `path:"type"`
	Name string `path:"name"`
}

type ServiceStatusResponse struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Data    *ProviderInfo `json:"data,omitempty"`
}

// 健康检查

type HealthResponse struct {
	Status string `json:"status"`
	Vendor string `json:"vendor"`
}
