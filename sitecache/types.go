package sitecache

// Tool is the cached projection of a reviewed tool.
type Tool struct {
	ID           int64    `json:"id"`
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	CategorySlug string   `json:"category_slug"`
	Description  string   `json:"description,omitempty"`
	Website      string   `json:"website,omitempty"`
	GitHubStars  int      `json:"github_stars,omitempty"`
	Rating       float64  `json:"rating,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// Category is the cached projection of a tool category.
type Category struct {
	ID       int64  `json:"id"`
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Featured bool   `json:"featured,omitempty"`
}

// Template is the cached projection of an AI content template.
type Template struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Kind   string `json:"kind,omitempty"`
	Active bool   `json:"active"`
}

// Model is the cached projection of a configured AI model.
type Model struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
	Active   bool   `json:"active"`
}

// Generation is the cached payload of one AI content generation.
type Generation struct {
	ID         int64  `json:"id"`
	ToolSlug   string `json:"tool_slug"`
	TemplateID int64  `json:"template_id"`
	ModelName  string `json:"model_name"`
	Content    string `json:"content"`
	TokensUsed int    `json:"tokens_used,omitempty"`
}

// SearchResults is the cached outcome of one search query.
type SearchResults struct {
	Query string `json:"query"`
	Hits  []Tool `json:"hits"`
	Total int    `json:"total"`
}
