package domain

import "context"

// StatTile is a dashboard statistic
type StatTile struct {
	Title       string `yaml:"title" json:"title"`
	Value       string `yaml:"value" json:"value"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	Color       string `yaml:"color" json:"color"`
}

// ToolCard links the dashboard to one of the three flows
type ToolCard struct {
	Icon        string   `yaml:"icon" json:"icon"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	ButtonText  string   `yaml:"button_text" json:"button_text"`
	Route       string   `yaml:"route" json:"route"`
	Gradient    string   `yaml:"gradient" json:"gradient"`
	Features    []string `yaml:"features" json:"features"`
}

type Activity struct {
	Title string `yaml:"title" json:"title"`
	When  string `yaml:"when" json:"when"`
	Icon  string `yaml:"icon" json:"icon"`
}

type DashboardContent struct {
	Greeting       string     `yaml:"greeting" json:"greeting"`
	Subtitle       string     `yaml:"subtitle" json:"subtitle"`
	LastActive     string     `yaml:"last_active" json:"last_active"`
	Stats          []StatTile `yaml:"stats" json:"stats"`
	ToolsTitle     string     `yaml:"tools_title" json:"tools_title"`
	ToolsText      string     `yaml:"tools_text" json:"tools_text"`
	Tools          []ToolCard `yaml:"tools" json:"tools"`
	RecentActivity []Activity `yaml:"recent_activity" json:"recent_activity"`
}

// FeatureCard is the home page card: icon, title, description, bullets
type FeatureCard struct {
	Icon        string   `yaml:"icon" json:"icon"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Features    []string `yaml:"features" json:"features"`
}

type HeroStat struct {
	Icon  string `yaml:"icon" json:"icon"`
	Label string `yaml:"label" json:"label"`
}

type HomeContent struct {
	HeroTitle         string        `yaml:"hero_title" json:"hero_title"`
	HeroHighlight     string        `yaml:"hero_highlight" json:"hero_highlight"`
	HeroText          string        `yaml:"hero_text" json:"hero_text"`
	HeroStats         []HeroStat    `yaml:"hero_stats" json:"hero_stats"`
	FeaturesTitle     string        `yaml:"features_title" json:"features_title"`
	FeaturesHighlight string        `yaml:"features_highlight" json:"features_highlight"`
	FeaturesText      string        `yaml:"features_text" json:"features_text"`
	Features          []FeatureCard `yaml:"features" json:"features"`
	CTATitle          string        `yaml:"cta_title" json:"cta_title"`
	CTAText           string        `yaml:"cta_text" json:"cta_text"`
	Brand             string        `yaml:"brand" json:"brand"`
	Footer            string        `yaml:"footer" json:"footer"`
}

type ContentUsecase interface {
	Home(ctx context.Context) (*HomeContent, error)
	Dashboard(ctx context.Context) (*DashboardContent, error)
}
