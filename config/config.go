package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	// DatabaseDriverPostgres selects the Postgres store.
	DatabaseDriverPostgres = "postgres"
	// DatabaseDriverSQLite selects the local SQLite store.
	DatabaseDriverSQLite = "sqlite"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Database DatabaseConfig `json:"database" yaml:"database"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// OTP configuration for the external one-time password service
	OTP *OTPConfig `json:"otp" yaml:"otp"`

	// Geocoding configuration for free-text search and map-link parsing
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// Listing configuration for proximity queries
	Listing *ListingConfig `json:"listing" yaml:"listing"`

	// Pricing defaults suggested to owners while creating a listing
	Pricing *PricingConfig `json:"pricing" yaml:"pricing"`

	// QRCode configuration for listing share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Client configuration for the map client
	Client *ClientConfig `json:"client" yaml:"client"`
}

// DatabaseConfig selects the persistence backend
type DatabaseConfig struct {
	Driver             string        `json:"driver" yaml:"driver"`
	SQLitePath         string        `json:"sqlitePath" yaml:"sqlitePath"`
	FallbackToSQLite   bool          `json:"fallbackToSQLite" yaml:"fallbackToSQLite"`
	// SlowQueryThreshold marks queries logged as slow. Zero uses 200ms.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	TokenTTL time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// OTPConfig defines the external OTP service
type OTPConfig struct {
	BaseURL      string        `json:"baseUrl" yaml:"baseUrl"`
	Organization string        `json:"organization" yaml:"organization"`
	Subject      string        `json:"subject" yaml:"subject"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

// GeocodingConfig defines the Nominatim client and the map-link resolver
type GeocodingConfig struct {
	BaseURL           string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent         string        `json:"userAgent" yaml:"userAgent"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	MapLinkTimeout    time.Duration `json:"mapLinkTimeout" yaml:"mapLinkTimeout"`
}

// ListingConfig defines the default reference point and radius limits, in kilometers
type ListingConfig struct {
	DefaultLat      float64 `json:"defaultLat" yaml:"defaultLat"`
	DefaultLng      float64 `json:"defaultLng" yaml:"defaultLng"`
	DefaultRadiusKm float64 `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`
	MaxRadiusKm     float64 `json:"maxRadiusKm" yaml:"maxRadiusKm"`
}

// PricingConfig defines the create-form price suggestions.
// Monthly is suggested as area * MonthlyRatePerSqm.
type PricingConfig struct {
	Hourly            float64 `json:"hourly" yaml:"hourly"`
	Daily             float64 `json:"daily" yaml:"daily"`
	MonthlyRatePerSqm float64 `json:"monthlyRatePerSqm" yaml:"monthlyRatePerSqm"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// ClientConfig defines the map client behaviour
type ClientConfig struct {
	BaseURL        string        `json:"baseUrl" yaml:"baseUrl"`
	RadiusDebounce time.Duration `json:"radiusDebounce" yaml:"radiusDebounce"`
	LocateZoom     int           `json:"locateZoom" yaml:"locateZoom"`
	FocusZoom      int           `json:"focusZoom" yaml:"focusZoom"`
	JitterDegrees  float64       `json:"jitterDegrees" yaml:"jitterDegrees"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// DefaultListingConfig returns the listing defaults (Bangalore, 5 km).
func DefaultListingConfig() *ListingConfig {
	return &ListingConfig{
		DefaultLat:      12.9716,
		DefaultLng:      77.5946,
		DefaultRadiusKm: 5,
		MaxRadiusKm:     50,
	}
}

// DefaultPricingConfig returns the create-form price suggestions.
func DefaultPricingConfig() *PricingConfig {
	return &PricingConfig{
		Hourly:            50,
		Daily:             300,
		MonthlyRatePerSqm: 100,
	}
}

// DefaultClientConfig returns the map client defaults.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:        "http://localhost:5000",
		RadiusDebounce: 500 * time.Millisecond,
		LocateZoom:     14,
		FocusZoom:      16,
		JitterDegrees:  0.005,
		RequestTimeout: 15 * time.Second,
	}
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: GEOCODING_USERAGENT -> geocoding.userAgent
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// Default returns a config holding only the built-in defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Database.Driver) == "" {
		c.Database.Driver = DatabaseDriverSQLite
	}
	if strings.TrimSpace(c.Database.SQLitePath) == "" {
		c.Database.SQLitePath = "parkospace.db"
	}
	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 7 * 24 * time.Hour
	}
	if c.Listing == nil {
		c.Listing = DefaultListingConfig()
	}
	if c.Pricing == nil {
		c.Pricing = DefaultPricingConfig()
	}
	if c.Client == nil {
		c.Client = DefaultClientConfig()
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
