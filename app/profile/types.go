package profile

// Profile represents a complete business profile configuration
type Profile struct {
	Business  BusinessInfo     `yaml:"profile"`
	Settings  ProfileSettings  `yaml:"settings"`
	Sentiment SentimentConfig  `yaml:"sentiment"`
	Report    ReportConfig     `yaml:"report"`
}

// BusinessInfo contains basic business profile information
type BusinessInfo struct {
	ID   string `yaml:"id"`
	URL  string `yaml:"url"`
	Name string `yaml:"name"`
}

// ProfileSettings contains scraping settings for a single profile
type ProfileSettings struct {
	Enabled  bool `yaml:"enabled"`
	Weeks    int  `yaml:"weeks"`
	MaxPages int  `yaml:"max_pages"`
}

// SentimentConfig optionally overrides the keyword lists used for
// context attribution
type SentimentConfig struct {
	StaffKeywords []string `yaml:"staff_keywords"`
	StoreKeywords []string `yaml:"store_keywords"`
}

// ReportConfig contains per-profile report branding
type ReportConfig struct {
	Title string `yaml:"title"`
	Logo  string `yaml:"logo"`
}
