package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"ledger": map[string]any{
			"safetyMargin": "24h",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "LEDGER_SAFETYMARGIN", want: "ledger.safetyMargin"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsDispatchAndSweep(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Ledger.Window != defaultLedgerWindow {
		t.Fatalf("ledger window = %v, want %v", cfg.Ledger.Window, defaultLedgerWindow)
	}
	if cfg.Dispatch.FanoutLimit != defaultFanoutLimit {
		t.Fatalf("fanout limit = %d, want %d", cfg.Dispatch.FanoutLimit, defaultFanoutLimit)
	}
	if cfg.Sweep.BatchSize != defaultSweepBatchSize {
		t.Fatalf("sweep batch size = %d, want %d", cfg.Sweep.BatchSize, defaultSweepBatchSize)
	}
	if cfg.Sweep.RetentionDays != defaultRetentionDays {
		t.Fatalf("retention days = %d, want %d", cfg.Sweep.RetentionDays, defaultRetentionDays)
	}
}
