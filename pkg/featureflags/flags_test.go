package featureflags

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvManager_DefaultsEnabled(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	// Shipped defaults are all on
	assert.True(t, manager.IsEnabled(ctx, TagExtraction))
	assert.True(t, manager.IsEnabled(ctx, RateLimitEnabled))
	assert.True(t, manager.IsEnabled(ctx, SummaryEnabled))
}

func TestEnvManager_DisabledViaEnv(t *testing.T) {
	os.Setenv("TEST_FEATURE_TAG_EXTRACTION", "false")
	defer os.Unsetenv("TEST_FEATURE_TAG_EXTRACTION")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.False(t, manager.IsEnabled(ctx, TagExtraction))
}

func TestEnvManager_MultipleValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true lowercase", "true", true},
		{"TRUE uppercase", "TRUE", true},
		{"1 numeric", "1", true},
		{"enabled", "enabled", true},
		{"ENABLED", "ENABLED", true},
		{"false", "false", false},
		{"0", "0", false},
		{"empty", "", false},
		{"other", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_FLAG", tt.value)
			defer os.Unsetenv("TEST_FLAG")

			manager := NewEnvManager("TEST_")
			ctx := context.Background()

			assert.Equal(t, tt.expected, manager.IsEnabled(ctx, "FLAG"))
		})
	}
}

func TestEnvManager_OverrideTakesPrecedence(t *testing.T) {
	os.Setenv("TEST_FEATURE_SUMMARY_ENABLED", "true")
	defer os.Unsetenv("TEST_FEATURE_SUMMARY_ENABLED")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	// Should be true from env
	assert.True(t, manager.IsEnabled(ctx, SummaryEnabled))

	// Override to false
	manager.SetEnabled(SummaryEnabled, false)

	// Override should take precedence
	assert.False(t, manager.IsEnabled(ctx, SummaryEnabled))
}

func TestStaticManager(t *testing.T) {
	flags := map[FeatureFlag]bool{
		TagExtraction:    false,
		RateLimitEnabled: false,
	}

	manager := NewStaticManager(flags)
	ctx := context.Background()

	assert.False(t, manager.IsEnabled(ctx, TagExtraction))
	assert.False(t, manager.IsEnabled(ctx, RateLimitEnabled))
	assert.True(t, manager.IsEnabled(ctx, SummaryEnabled)) // Not in map, default on
}

func TestStaticManager_SetEnabled(t *testing.T) {
	manager := NewStaticManager(nil)
	ctx := context.Background()

	manager.SetEnabled(RateLimitEnabled, false)
	assert.False(t, manager.IsEnabled(ctx, RateLimitEnabled))

	manager.SetEnabled(RateLimitEnabled, true)
	assert.True(t, manager.IsEnabled(ctx, RateLimitEnabled))
}

func TestGetAllFlags(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{
		TagExtraction: false,
	})

	allFlags := manager.GetAllFlags()

	assert.False(t, allFlags[TagExtraction])
	assert.True(t, allFlags[RateLimitEnabled])
	assert.True(t, allFlags[SummaryEnabled])
	assert.Len(t, allFlags, 3)
}

func TestConcurrentAccess(t *testing.T) {
	manager := NewStaticManager(nil)
	ctx := context.Background()

	done := make(chan bool)

	// Writers
	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				manager.SetEnabled(TagExtraction, j%2 == 0)
			}
			done <- true
		}()
	}

	// Readers
	for i := 0; i < 5; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				_ = manager.IsEnabled(ctx, TagExtraction)
			}
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestFeatureFlagNames(t *testing.T) {
	assert.Equal(t, FeatureFlag("tag_extraction"), TagExtraction)
	assert.Equal(t, FeatureFlag("rate_limit_enabled"), RateLimitEnabled)
	assert.Equal(t, FeatureFlag("summary_enabled"), SummaryEnabled)
}
