package config

import (
	"encoding/json"
	"os"
	"path/filepath"
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
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10M"
	defaultUnitPriceCents     = 2500
	defaultCurrency           = "usd"
	defaultSessionIdleTimeout = 2 * time.Hour
	defaultSessionTokenTTL    = 24 * time.Hour
	defaultPollInterval       = 1500 * time.Millisecond
	defaultPollTimeout        = 60 * time.Second
	defaultShippingMethod     = 1
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		// TestMode swaps every paid vendor for a deterministic fixture and keeps orders out of production.
		TestMode bool `json:"testMode" yaml:"testMode"`
		Log      Log  `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		CORSOrigin         string `json:"corsOrigin" yaml:"corsOrigin"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Pricing *PricingConfig `json:"pricing" yaml:"pricing"`

	// Catalog maps garment groups onto Printify blueprint and variant ids.
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	Gemini *GeminiConfig `json:"gemini" yaml:"gemini"`

	Replicate *ReplicateConfig `json:"replicate" yaml:"replicate"`

	Printify *PrintifyConfig `json:"printify" yaml:"printify"`

	Stripe *StripeConfig `json:"stripe" yaml:"stripe"`

	// QRCode configuration for share-link QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Outbound *OutboundConfig `json:"outbound" yaml:"outbound"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SessionConfig defines wizard session storage and token settings
type SessionConfig struct {
	Secret      string        `json:"secret" yaml:"secret"`
	TokenTTL    time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
	IdleTimeout time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
}

type PricingConfig struct {
	UnitPriceCents int64  `json:"unitPriceCents" yaml:"unitPriceCents"`
	Currency       string `json:"currency" yaml:"currency"`
}

// CatalogConfig holds one product line per garment group.
// The *VariantsJSON fields accept the same JSON documents as the tables and win when set.
type CatalogConfig struct {
	Men   AdultLine `json:"men" yaml:"men"`
	Women AdultLine `json:"women" yaml:"women"`
	Kids  KidsLine  `json:"kids" yaml:"kids"`
}

// AdultLine maps color -> size -> variant id.
type AdultLine struct {
	BlueprintID  int                       `json:"blueprintId" yaml:"blueprintId"`
	Variants     map[string]map[string]int `json:"variants" yaml:"variants"`
	VariantsJSON string                    `json:"variantsJson" yaml:"variantsJson"`
}

// KidsLine maps size -> variant id; kids garments are not split by color.
type KidsLine struct {
	BlueprintID  int            `json:"blueprintId" yaml:"blueprintId"`
	Variants     map[string]int `json:"variants" yaml:"variants"`
	VariantsJSON string         `json:"variantsJson" yaml:"variantsJson"`
}

type GeminiConfig struct {
	APIKey        string        `json:"apiKey" yaml:"apiKey"`
	BaseURL       string        `json:"baseUrl" yaml:"baseUrl"`
	APIVersion    string        `json:"apiVersion" yaml:"apiVersion"`
	AnalysisModel string        `json:"analysisModel" yaml:"analysisModel"`
	ImageModel    string        `json:"imageModel" yaml:"imageModel"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
}

// ReplicateConfig configures the rembg background removal model
type ReplicateConfig struct {
	APIToken     string        `json:"apiToken" yaml:"apiToken"`
	BaseURL      string        `json:"baseUrl" yaml:"baseUrl"`
	ModelVersion string        `json:"modelVersion" yaml:"modelVersion"`
	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
}

type PrintifyConfig struct {
	APIToken        string `json:"apiToken" yaml:"apiToken"`
	BaseURL         string `json:"baseUrl" yaml:"baseUrl"`
	ShopID          string `json:"shopId" yaml:"shopId"`
	PrintProviderID int    `json:"printProviderId" yaml:"printProviderId"`
	ShippingMethod  int    `json:"shippingMethod" yaml:"shippingMethod"`
	// PlaceholderImageURL replaces any artwork that is missing or fails to upload.
	PlaceholderImageURL string `json:"placeholderImageUrl" yaml:"placeholderImageUrl"`
}

type StripeConfig struct {
	SecretKey     string `json:"secretKey" yaml:"secretKey"`
	WebhookSecret string `json:"webhookSecret" yaml:"webhookSecret"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// OutboundConfig tunes the shared HTTP client used for vendor calls
type OutboundConfig struct {
	PreferIPv4 bool          `json:"preferIpv4" yaml:"preferIpv4"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
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
			// PRINTIFY_SHOPID -> printify.shopId, aligned with the keys already in the YAML.
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

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.IdleTimeout <= 0 {
		cfg.Session.IdleTimeout = defaultSessionIdleTimeout
	}
	if cfg.Session.TokenTTL <= 0 {
		cfg.Session.TokenTTL = defaultSessionTokenTTL
	}

	if cfg.Pricing == nil {
		cfg.Pricing = &PricingConfig{}
	}
	if cfg.Pricing.UnitPriceCents <= 0 {
		cfg.Pricing.UnitPriceCents = defaultUnitPriceCents
	}
	if cfg.Pricing.Currency == "" {
		cfg.Pricing.Currency = defaultCurrency
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if err := cfg.Catalog.expandJSON(); err != nil {
		return err
	}

	if cfg.Gemini == nil {
		cfg.Gemini = &GeminiConfig{}
	}
	if cfg.Replicate == nil {
		cfg.Replicate = &ReplicateConfig{}
	}
	if cfg.Replicate.PollInterval <= 0 {
		cfg.Replicate.PollInterval = defaultPollInterval
	}
	if cfg.Replicate.Timeout <= 0 {
		cfg.Replicate.Timeout = defaultPollTimeout
	}

	if cfg.Printify == nil {
		cfg.Printify = &PrintifyConfig{}
	}
	if cfg.Printify.ShippingMethod <= 0 {
		cfg.Printify.ShippingMethod = defaultShippingMethod
	}

	if cfg.Stripe == nil {
		cfg.Stripe = &StripeConfig{}
	}
	if cfg.Outbound == nil {
		cfg.Outbound = &OutboundConfig{}
	}

	return nil
}

// expandJSON decodes the JSON-string forms of the variant tables, which is how
// they are usually supplied through the environment.
func (c *CatalogConfig) expandJSON() error {
	if raw := strings.TrimSpace(c.Men.VariantsJSON); raw != "" {
		if err := json.Unmarshal([]byte(raw), &c.Men.Variants); err != nil {
			return errors.Wrap(err, "parse catalog.men.variantsJson")
		}
	}
	if raw := strings.TrimSpace(c.Women.VariantsJSON); raw != "" {
		if err := json.Unmarshal([]byte(raw), &c.Women.Variants); err != nil {
			return errors.Wrap(err, "parse catalog.women.variantsJson")
		}
	}
	if raw := strings.TrimSpace(c.Kids.VariantsJSON); raw != "" {
		if err := json.Unmarshal([]byte(raw), &c.Kids.Variants); err != nil {
			return errors.Wrap(err, "parse catalog.kids.variantsJson")
		}
	}

	return nil
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
