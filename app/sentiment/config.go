package sentiment

// Sentiment labels
const (
	LabelPositive  = "positive"
	LabelNegative  = "negative"
	LabelNeutral   = "neutral"
	LabelNoContext = "No Context"
)

// Config is passed explicitly into the analyzer; there is no hidden
// module-level keyword state.
type Config struct {
	PositiveThreshold float64
	NegativeThreshold float64
	StarWeight        float64
	StaffKeywords     []string
	StoreKeywords     []string
}

// DefaultStaffKeywords identify sentences about staff and service
// quality
func DefaultStaffKeywords() []string {
	return []string{
		"salesman", "sales", "staff", "employee", "service", "representative",
		"helped", "assist", "friendly", "professional", "rude", "polite",
		"customer service", "agent", "worker", "team member", "seller",
	}
}

// DefaultStoreKeywords identify sentences about the store and location
func DefaultStoreKeywords() []string {
	return []string{
		"store", "shop", "location", "place", "branch", "showroom", "facility",
		"clean", "organized", "parking", "atmosphere", "environment", "products",
		"inventory", "selection", "variety", "quality", "price", "pricing",
		"building", "area", "space", "display",
	}
}

func DefaultConfig() Config {
	return Config{
		PositiveThreshold: 0.05,
		NegativeThreshold: -0.05,
		StarWeight:        0.1,
		StaffKeywords:     DefaultStaffKeywords(),
		StoreKeywords:     DefaultStoreKeywords(),
	}
}

// setDefaults fills unset fields so a partial config (e.g. a profile
// that only overrides keywords) still scores sensibly
func (c *Config) setDefaults() {
	defaults := DefaultConfig()

	if c.PositiveThreshold == 0 {
		c.PositiveThreshold = defaults.PositiveThreshold
	}
	if c.NegativeThreshold == 0 {
		c.NegativeThreshold = defaults.NegativeThreshold
	}
	if c.StarWeight == 0 {
		c.StarWeight = defaults.StarWeight
	}
	if len(c.StaffKeywords) == 0 {
		c.StaffKeywords = defaults.StaffKeywords
	}
	if len(c.StoreKeywords) == 0 {
		c.StoreKeywords = defaults.StoreKeywords
	}
}
