package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

// ErrInvalidConfig marks configuration that cannot produce a valid generator.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Env struct {
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Generator GeneratorConfig `json:"generator" yaml:"generator"`

	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`

	SaleDate SaleDateConfig `json:"saleDate" yaml:"saleDate"`

	Weights WeightsConfig `json:"weights" yaml:"weights"`

	// Coupons maps a coupon code to its discount rate (fraction of the
	// order total, e.g. 0.05 for five percent off).
	Coupons map[string]float64 `json:"coupons" yaml:"coupons"`

	Output OutputConfig `json:"output" yaml:"output"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// GeneratorConfig bounds the synthetic order stream.
type GeneratorConfig struct {
	// Total number of orders one full stream consumption produces.
	TotalOrders int `json:"totalOrders" yaml:"totalOrders" validate:"gte=1"`

	// Upper bound on distinct user identifiers (user ids are 1..MaxUsers).
	MaxUsers int `json:"maxUsers" yaml:"maxUsers" validate:"gte=1"`

	// Upper bound on item lines per order.
	MaxItemsPerOrder int `json:"maxItemsPerOrder" yaml:"maxItemsPerOrder" validate:"gte=1"`

	// Upper bound on the quantity of a single item line.
	MaxQuantity int `json:"maxQuantity" yaml:"maxQuantity" validate:"gte=1"`

	// Seed for the random source. Zero picks a time-based seed, which
	// makes runs non-reproducible.
	Seed int64 `json:"seed" yaml:"seed"`

	// Order timestamps land within ±JitterDays of the sale anchor date.
	JitterDays int `json:"jitterDays" yaml:"jitterDays" validate:"gte=0"`
}

// CatalogConfig locates the product catalog resource.
type CatalogConfig struct {
	Path string `json:"path" yaml:"path" validate:"required"`
}

// SaleDateConfig parameterizes the sale anchor date: the Week-th Weekday
// of Month. Defaults describe Black Friday (4th Friday of November).
type SaleDateConfig struct {
	Month   int    `json:"month" yaml:"month" validate:"gte=1,lte=12"`
	Week    int    `json:"week" yaml:"week" validate:"gte=1,lte=4"`
	Weekday string `json:"weekday" yaml:"weekday"`
}

// WeightsConfig holds the relative selection weights for the sampled
// order fields. Payment and shipping map variant name to weight; the
// percent fields are chances out of 100.
type WeightsConfig struct {
	Payment  map[string]int `json:"payment" yaml:"payment"`
	Shipping map[string]int `json:"shipping" yaml:"shipping"`

	SubscriberPercent    int `json:"subscriberPercent" yaml:"subscriberPercent" validate:"gte=0,lte=100"`
	CouponAppliedPercent int `json:"couponAppliedPercent" yaml:"couponAppliedPercent" validate:"gte=0,lte=100"`
}

// OutputConfig controls where and how fast the CLI emits records.
type OutputConfig struct {
	// Target is "stdout" or a file path.
	Target string `json:"target" yaml:"target"`

	// Optional uniform delay between emitted records.
	MinDelay time.Duration `json:"minDelay" yaml:"minDelay" validate:"gte=0"`
	MaxDelay time.Duration `json:"maxDelay" yaml:"maxDelay" validate:"gte=0"`
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: GENERATOR_TOTALORDERS -> generator.totalOrders
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.FillDefaults()

	return cfg, nil
}

// FillDefaults populates every unset option with the documented default.
func (c *Config) FillDefaults() {
	if strings.TrimSpace(c.Env.ServiceName) == "" {
		c.Env.ServiceName = "ordergen"
	}
	if strings.TrimSpace(c.Env.Log.Level) == "" {
		c.Env.Log.Level = "info"
	}

	if c.Generator.TotalOrders == 0 {
		c.Generator.TotalOrders = 1000
	}
	if c.Generator.MaxUsers == 0 {
		c.Generator.MaxUsers = 50
	}
	if c.Generator.MaxItemsPerOrder == 0 {
		c.Generator.MaxItemsPerOrder = 10
	}
	if c.Generator.MaxQuantity == 0 {
		c.Generator.MaxQuantity = 10
	}
	if c.Generator.JitterDays == 0 {
		c.Generator.JitterDays = 7
	}

	if c.SaleDate.Month == 0 {
		c.SaleDate.Month = 11
	}
	if c.SaleDate.Week == 0 {
		c.SaleDate.Week = 4
	}
	if strings.TrimSpace(c.SaleDate.Weekday) == "" {
		c.SaleDate.Weekday = time.Friday.String()
	}

	if len(c.Weights.Payment) == 0 {
		c.Weights.Payment = map[string]int{
			"Credit Card":    75,
			"Debit Card":     5,
			"PayPal":         5,
			"Digital Wallet": 5,
			"BNPL":           5,
			"COD":            5,
		}
	}
	if len(c.Weights.Shipping) == 0 {
		c.Weights.Shipping = map[string]int{
			"Standard":  70,
			"Expedited": 20,
			"Next Day":  10,
		}
	}
	if c.Weights.SubscriberPercent == 0 {
		c.Weights.SubscriberPercent = 50
	}
	if c.Weights.CouponAppliedPercent == 0 {
		c.Weights.CouponAppliedPercent = 30
	}

	if len(c.Coupons) == 0 {
		c.Coupons = map[string]float64{
			"FRIDAYFIVEOFF":  0.05,
			"BLACK10%":       0.10,
			"BF15DISCOUNT":   0.15,
			"20OFFFOURYOUBF": 0.20,
		}
	}

	if strings.TrimSpace(c.Output.Target) == "" {
		c.Output.Target = "stdout"
	}
}

// Validate checks every configured bound. Any violation wraps
// ErrInvalidConfig so callers can test for the condition.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "validate config: %v", err)
	}

	if _, err := ParseWeekday(c.SaleDate.Weekday); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "saleDate.weekday: %v", err)
	}

	if err := validateWeights(c.Weights.Payment, "weights.payment"); err != nil {
		return err
	}
	if err := validateWeights(c.Weights.Shipping, "weights.shipping"); err != nil {
		return err
	}

	for code, rate := range c.Coupons {
		if rate < 0 || rate >= 1 {
			return errors.Wrapf(ErrInvalidConfig, "coupon %q rate %v outside [0, 1)", code, rate)
		}
	}

	if c.Output.MaxDelay < c.Output.MinDelay {
		return errors.Wrapf(ErrInvalidConfig, "output.maxDelay %s below output.minDelay %s", c.Output.MaxDelay, c.Output.MinDelay)
	}

	return nil
}

func validateWeights(weights map[string]int, key string) error {
	total := 0
	for variant, weight := range weights {
		if weight < 0 {
			return errors.Wrapf(ErrInvalidConfig, "%s[%q] is negative", key, variant)
		}
		total += weight
	}
	if total <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "%s has no positive weight", key)
	}

	return nil
}

// ParseWeekday converts a weekday name ("Friday", case-insensitive) to
// its time.Weekday value.
func ParseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), name) {
			return d, nil
		}
	}

	return 0, errors.Errorf("unknown weekday: %s", name)
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
