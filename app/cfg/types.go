package cfg

type Cfg struct {
	// Browser configuration
	DebugAddress string
	ReviewsURL   string

	// Scraping configuration
	Weeks         int
	MaxPages      int
	PageLoadDelay int
	NextPageDelay int

	// Sentiment configuration
	PositiveThreshold float64
	NegativeThreshold float64
	StarWeight        float64

	// File paths
	ProfilesDir string
	NamesFile   string
	LogoFile    string
	OutputDir   string
	DBPath      string

	// Application metadata
	Timezone string
	Debug    bool
	Version  string
}
