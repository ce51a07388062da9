package review

// CSS selectors for the Google Business profile reviews page
const (
	// One container per review
	ContainerSelector = ".DsOcnf"

	// Field selectors within a container
	TextSelector          = ".oiQd1c"
	StoreCodeSelector     = ".mjZtse.wjs4p"
	DateSelector          = ".Wxf3Bf.wUfJz"
	StarContainerSelector = ".YMWsEc.dv8URd"
	FilledStarSelector    = ".DPvwYc.L12a3c.z3FsAc"
	ReviewerSelector      = ".z2S9Hc"

	// Pagination control
	NextButtonSelector = ".VfPpkd-Bz112c-LgbsSe.yHy1rc.eT1oJ.QDwDD.mN1ivc.vX5N7b"
)

// Markers Google inserts around machine-translated review text
const (
	TranslatedMarker = "(Translated by Google)"
	OriginalMarker   = "(Original)"
)
