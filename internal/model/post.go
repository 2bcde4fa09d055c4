package model

// GeneratedPost is the post idea returned for a date and tone.
type GeneratedPost struct {
	Topic       string   `json:"post_idea"`
	Caption     string   `json:"caption"`
	Hashtags    []string `json:"hashtags"`
	ImagePrompt string   `json:"image_prompt"`
}
