package main

import (
	"testing"

	"stash-app-api/core/interfaces"
	"stash-app-api/pkg/config"
	"stash-app-api/pkg/featureflags"
)

func TestNewSummaryService_MissingAPIKeySkipsService(t *testing.T) {
	flags := featureflags.NewStaticManager(nil)

	svc := newSummaryService(config.AIConfig{Provider: "openai"}, interfaces.Dependencies{}, nil, flags)

	if svc != nil {
		t.Error("summary service should not be created without an API key")
	}
}

func TestNewSummaryService_UnknownProviderSkipsService(t *testing.T) {
	flags := featureflags.NewStaticManager(nil)

	svc := newSummaryService(config.AIConfig{Provider: "watson", APIKey: "key"}, interfaces.Dependencies{}, nil, flags)

	if svc != nil {
		t.Error("summary service should not be created for an unknown provider")
	}
}

func TestNewSummaryService_FlagDisabled(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.SummaryEnabled: false,
	})

	svc := newSummaryService(config.AIConfig{Provider: "openai", APIKey: "key"}, interfaces.Dependencies{}, nil, flags)

	if svc != nil {
		t.Error("summary service should not be created when the flag is off")
	}
}

func TestNewSummaryService_Configured(t *testing.T) {
	flags := featureflags.NewStaticManager(nil)

	svc := newSummaryService(config.AIConfig{Provider: "openai", APIKey: "key"}, interfaces.Dependencies{}, nil, flags)

	if svc == nil {
		t.Error("summary service should be created when AI is configured")
	}
}
