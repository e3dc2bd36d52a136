package xcode

// config collects record construction overrides. Each constructor reads
// only the settings that apply to its record kind.
type config struct {
	uuid        string
	fileType    string
	pattern     string
	ruleType    string
	outputFiles []string
	script      string
}

// Option configures record construction.
type Option func(*config)

// WithUUID overrides the content-derived identifier. Identifiers must stay
// stable across regeneration, so overrides should themselves be
// deterministic.
func WithUUID(uuid string) Option {
	return func(c *config) { c.uuid = uuid }
}

// WithFileType overrides the classified Xcode file type of a file
// reference, e.g. "compiled.mach-o.executable" for a linked output that
// has no extension to classify.
func WithFileType(fileType string) Option {
	return func(c *config) { c.fileType = fileType }
}

// WithPattern sets the file pattern a build rule matches, e.g. "*.glsl".
func WithPattern(pattern string) Option {
	return func(c *config) { c.pattern = pattern }
}

// WithRuleType sets the Xcode file type a build rule matches. When a
// pattern is given without a type, the rule defaults to the pattern proxy
// type.
func WithRuleType(ruleType string) Option {
	return func(c *config) { c.ruleType = ruleType }
}

// WithOutputFiles declares the files a build rule generates.
func WithOutputFiles(files ...string) Option {
	return func(c *config) { c.outputFiles = append(c.outputFiles, files...) }
}

// WithScript sets the shell script a build rule executes.
func WithScript(script string) Option {
	return func(c *config) { c.script = script }
}

func applyOptions(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
