package source

const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Config holds configuration for the content served by the application.
type Config struct {
	// Driver selects where fixtures are read from (local, s3).
	Driver string `mapstructure:"driver" default:"local"`
	// TestDir is the fixture root directory for the local driver.
	TestDir string `mapstructure:"test_dir" default:"app/static/test"`
	// StaticDir holds the page scripts and styles served under /static.
	StaticDir string `mapstructure:"static_dir" default:"app/static"`
	// TemplatesDir holds index.html.
	TemplatesDir string `mapstructure:"templates_dir" default:"app/templates"`
	// Prefix is the key prefix of fixtures in the bucket for the s3 driver.
	Prefix string `mapstructure:"prefix" default:"static/test"`
}

// IsValidDriver checks if the configured driver is known.
func (c Config) IsValidDriver() bool {
	switch c.Driver {
	case DriverLocal, DriverS3:
		return true
	default:
		return false
	}
}
