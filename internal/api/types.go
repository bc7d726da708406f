// File path: internal/api/types.go
package api

import "github.com/wellnessgarden/guide/internal/respond"

type respondRequest struct {
	Prompt  string `json:"prompt"`
	Purpose string `json:"purpose"`
	Mood    string `json:"mood,omitempty"`
}

type respondResponse struct {
	respond.Result
	Provider string `json:"provider"`
}

type storyCheckRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type storyCheckResponse struct {
	Safe        bool `json:"safe"`
	TitleSafe   bool `json:"title_safe"`
	ContentSafe bool `json:"content_safe"`
}
