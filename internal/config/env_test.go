package config

import "testing"

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestLoadServerConfig(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantPort string
		wantSeed bool
	}{
		{name: "defaults", env: map[string]string{}, wantPort: "8080", wantSeed: true},
		{name: "custom port", env: map[string]string{"PORT": "9090"}, wantPort: "9090", wantSeed: true},
		{name: "seeding disabled", env: map[string]string{"SEED_USERS": "false"}, wantPort: "8080", wantSeed: false},
		{name: "garbage seed value keeps default", env: map[string]string{"SEED_USERS": "maybe"}, wantPort: "8080", wantSeed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadServerConfig(envMap(tt.env))
			if cfg.Port != tt.wantPort {
				t.Errorf("expected port %s, got %s", tt.wantPort, cfg.Port)
			}
			if cfg.SeedUsers != tt.wantSeed {
				t.Errorf("expected SeedUsers %v, got %v", tt.wantSeed, cfg.SeedUsers)
			}
		})
	}
}

func TestLoadPostgresConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
		wantDSN string
	}{
		{
			name: "complete config",
			env: map[string]string{
				"POSTGRES_HOSTNAME": "db",
				"POSTGRES_USER":     "raptor",
				"POSTGRES_PASSWORD": "secret",
				"POSTGRES_DB":       "raptortest",
			},
			wantDSN: "host=db user=raptor password=secret dbname=raptortest sslmode=disable",
		},
		{
			name:    "missing host",
			env:     map[string]string{"POSTGRES_USER": "raptor", "POSTGRES_DB": "raptortest"},
			wantErr: true,
		},
		{
			name:    "missing user",
			env:     map[string]string{"POSTGRES_HOSTNAME": "db", "POSTGRES_DB": "raptortest"},
			wantErr: true,
		},
		{
			name:    "missing database",
			env:     map[string]string{"POSTGRES_HOSTNAME": "db", "POSTGRES_USER": "raptor"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadPostgresConfig(envMap(tt.env))
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := cfg.ConnectionString(); got != tt.wantDSN {
				t.Errorf("expected DSN %q, got %q", tt.wantDSN, got)
			}
		})
	}
}

func TestPostgresEnabled(t *testing.T) {
	if PostgresEnabled(envMap(map[string]string{})) {
		t.Error("expected postgres disabled without POSTGRES_HOSTNAME")
	}
	if !PostgresEnabled(envMap(map[string]string{"POSTGRES_HOSTNAME": "db"})) {
		t.Error("expected postgres enabled with POSTGRES_HOSTNAME")
	}
}
