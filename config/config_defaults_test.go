package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, int64(2500), cfg.Pricing.UnitPriceCents)
	assert.Equal(t, "usd", cfg.Pricing.Currency)
	assert.Equal(t, defaultPollInterval, cfg.Replicate.PollInterval)
	assert.Equal(t, defaultPollTimeout, cfg.Replicate.Timeout)
	assert.Equal(t, 1, cfg.Printify.ShippingMethod)
	assert.NotNil(t, cfg.Catalog)
	assert.NotNil(t, cfg.Stripe)
	assert.NotNil(t, cfg.Gemini)
	assert.NotNil(t, cfg.Outbound)
}

func TestApplyDefaults_ExpandsVariantJSON(t *testing.T) {
	cfg := &Config{
		Catalog: &CatalogConfig{
			Men:  AdultLine{VariantsJSON: `{"Black":{"M":101,"L":102}}`},
			Kids: KidsLine{VariantsJSON: `{"M":301}`},
		},
	}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, 101, cfg.Catalog.Men.Variants["Black"]["M"])
	assert.Equal(t, 102, cfg.Catalog.Men.Variants["Black"]["L"])
	assert.Equal(t, 301, cfg.Catalog.Kids.Variants["M"])
}

func TestApplyDefaults_RejectsMalformedVariantJSON(t *testing.T) {
	cfg := &Config{
		Catalog: &CatalogConfig{
			Women: AdultLine{VariantsJSON: `{"Black":`},
		},
	}

	err := cfg.applyDefaults()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog.women.variantsJson")
}
