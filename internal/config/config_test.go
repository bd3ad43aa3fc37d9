package config

import (
	"strings"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid json backend config",
			config: Config{
				Backend:     "json",
				LedgerPath:  "/tmp/.pfr_data",
				SnapshotDir: "/tmp/snapshots",
				LogLevel:    "info",
			},
			wantErr: false,
		},
		{
			name: "valid sqlite backend config",
			config: Config{
				Backend:      "sqlite",
				SQLiteDBPath: "./test.db",
				SnapshotDir:  "/tmp/snapshots",
				LogLevel:     "debug",
			},
			wantErr: false,
		},
		{
			name: "invalid backend",
			config: Config{
				Backend:     "redis",
				LedgerPath:  "/tmp/.pfr_data",
				SnapshotDir: "/tmp/snapshots",
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "invalid backend 'redis': must be one of [json sqlite]",
		},
		{
			name: "json backend missing ledger path",
			config: Config{
				Backend:     "json",
				LedgerPath:  "",
				SnapshotDir: "/tmp/snapshots",
				LogLevel:    "info",
			},
			wantErr:     true,
			errorString: "ledger path cannot be empty when using json backend",
		},
		{
			name: "sqlite backend missing database path",
			config: Config{
				Backend:      "sqlite",
				SQLiteDBPath: "",
				SnapshotDir:  "/tmp/snapshots",
				LogLevel:     "info",
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name: "missing snapshot directory",
			config: Config{
				Backend:    "json",
				LedgerPath: "/tmp/.pfr_data",
				LogLevel:   "info",
			},
			wantErr:     true,
			errorString: "snapshot directory cannot be empty",
		},
		{
			name: "invalid log level",
			config: Config{
				Backend:     "json",
				LedgerPath:  "/tmp/.pfr_data",
				SnapshotDir: "/tmp/snapshots",
				LogLevel:    "loud",
			},
			wantErr:     true,
			errorString: "invalid log level 'loud': must be one of [debug info warn error]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else {
				if err != nil {
					t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	for _, key := range []string{"PFR_BACKEND", "PFR_LEDGER_PATH", "PFR_DB_PATH", "PFR_SNAPSHOT_DIR", "PFR_LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.Backend != "json" {
			t.Errorf("Load() Backend = %v, want json", cfg.Backend)
		}
		if !strings.HasSuffix(cfg.LedgerPath, ".pfr_data") {
			t.Errorf("Load() LedgerPath = %v, want .pfr_data in home", cfg.LedgerPath)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("Load() LogLevel = %v, want info", cfg.LogLevel)
		}
		if cfg.DataPath() != cfg.LedgerPath {
			t.Errorf("DataPath() = %v, want ledger path for json backend", cfg.DataPath())
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("PFR_BACKEND", "sqlite")
		t.Setenv("PFR_DB_PATH", "/tmp/test.db")
		t.Setenv("PFR_SNAPSHOT_DIR", "/tmp/snaps")
		t.Setenv("PFR_LOG_LEVEL", "debug")

		cfg := Load()

		if cfg.Backend != "sqlite" {
			t.Errorf("Load() Backend = %v, want sqlite", cfg.Backend)
		}
		if cfg.SQLiteDBPath != "/tmp/test.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want /tmp/test.db", cfg.SQLiteDBPath)
		}
		if cfg.SnapshotDir != "/tmp/snaps" {
			t.Errorf("Load() SnapshotDir = %v, want /tmp/snaps", cfg.SnapshotDir)
		}
		if cfg.DataPath() != "/tmp/test.db" {
			t.Errorf("DataPath() = %v, want db path for sqlite backend", cfg.DataPath())
		}
	})
}
