package pipeline

// Options bundles the tunables of the aggregate views.
type Options struct {
	Classifier    *Classifier
	EngineerLimit int
	Trend         TrendOptions
}

// DefaultOptions mirrors the dashboard's stock behaviour.
func DefaultOptions() Options {
	return Options{
		Classifier:    DefaultClassifier(),
		EngineerLimit: DefaultEngineerLimit,
		Trend:         TrendOptions{FallbackYear: DefaultFallbackYear},
	}
}

// Settings is the textual form of Options, as found in config files and flags.
type Settings struct {
	IssuePolicy   string
	FaultCodes    string
	EngineerLimit int
	FallbackYear  int
	DayFirst      bool
}

func NewOptions(s Settings) (Options, error) {
	policy, err := ParseIssuePolicy(s.IssuePolicy)
	if err != nil {
		return Options{}, err
	}
	mode, err := ParseFaultCodeMode(s.FaultCodes)
	if err != nil {
		return Options{}, err
	}

	opts := Options{
		Classifier:    NewClassifier(DefaultRules(mode), policy),
		EngineerLimit: s.EngineerLimit,
		Trend:         TrendOptions{FallbackYear: s.FallbackYear, DayFirst: s.DayFirst},
	}
	if opts.Trend.FallbackYear == 0 {
		opts.Trend.FallbackYear = DefaultFallbackYear
	}
	return opts, nil
}
