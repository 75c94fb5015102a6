package config

import (
	"os"
	"reflect"
	"testing"
	"time"

	structValidator "github.com/go-playground/validator/v10"
)

func TestMain(m *testing.M) {
	invalidYamlPath := "./invalid_config.yaml"
	invalidContent := []byte("invalid: [unclosed_list\nanother: value")

	// Create invalid YAML file
	if err := os.WriteFile(invalidYamlPath, invalidContent, 0600); err != nil {
		panic("failed to create invalid YAML file: " + err.Error())
	}

	minimalYamlPath := "./minimal_config.yaml"
	minimalContent := []byte("service_name: signupgate\nloglevel: info\nhost: 0.0.0.0\nport: \"80\"\ndownstream:\n  base_url: http://api:3000\n")
	if err := os.WriteFile(minimalYamlPath, minimalContent, 0600); err != nil {
		panic("failed to create minimal YAML file: " + err.Error())
	}

	code := m.Run()

	os.Remove(invalidYamlPath)
	os.Remove(minimalYamlPath)

	os.Exit(code)
}

func TestReadLocalConfig(t *testing.T) {
	type args struct {
		configPath string
	}
	tests := []struct {
		name    string
		args    args
		want    *ServiceConfig
		wantErr bool
	}{
		{
			name: "successful",
			args: args{
				configPath: "../res/config.yaml",
			},
			want: &ServiceConfig{
				ServiceName:     "signupgate",
				LogLevel:        "DEBUG",
				Host:            "localhost",
				Port:            "8080",
				ShutdownTimeout: 15 * time.Second,
				Downstream: DownstreamConfig{
					BaseURL: "http://localhost:3000",
					Timeout: 10 * time.Second,
				},
			},
			wantErr: false,
		},
		{
			name: "defaults applied",
			args: args{
				configPath: "./minimal_config.yaml",
			},
			want: &ServiceConfig{
				ServiceName:     "signupgate",
				LogLevel:        "info",
				Host:            "0.0.0.0",
				Port:            "80",
				ShutdownTimeout: DefaultShutdownTimeout,
				Downstream: DownstreamConfig{
					BaseURL: "http://api:3000",
				},
			},
			wantErr: false,
		},
		{
			name: "file does not exist",
			args: args{
				configPath: "",
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "invalid YAML file",
			args: args{
				configPath: "./invalid_config.yaml",
			},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadLocalConfig(tt.args.configPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadLocalConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadLocalConfig() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *ServiceConfig {
		return &ServiceConfig{
			ServiceName: "signupgate",
			LogLevel:    "info",
			Host:        "localhost",
			Port:        "8080",
			Downstream: DownstreamConfig{
				BaseURL: "http://localhost:3000",
				Timeout: 5 * time.Second,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ServiceConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(cfg *ServiceConfig) {}},
		{name: "missing service name", mutate: func(cfg *ServiceConfig) { cfg.ServiceName = "" }, wantErr: true},
		{name: "missing downstream section", mutate: func(cfg *ServiceConfig) { cfg.Downstream = DownstreamConfig{} }, wantErr: true},
		{name: "missing base url", mutate: func(cfg *ServiceConfig) { cfg.Downstream.BaseURL = "" }, wantErr: true},
		{name: "base url not a url", mutate: func(cfg *ServiceConfig) { cfg.Downstream.BaseURL = "localhost 3000" }, wantErr: true},
		{name: "negative timeout", mutate: func(cfg *ServiceConfig) { cfg.Downstream.Timeout = -time.Second }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := Validate(structValidator.New(), cfg); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
