/*
 * Copyright (c) 2026, Vendra Labs Pvt Ltd. (https://www.vendra.io).
 *
 * Vendra Labs licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// AddrConfig holds the listen address of the HTTP server.
type AddrConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// LogConfig holds logging options.
type LogConfig struct {
	DebugEnabled bool `yaml:"debug_enabled"`
}

// MongoConfig holds the document store connection settings.
type MongoConfig struct {
	URI      string `yaml:"uri"`
	Database string `yaml:"database"`
}

// RedisConfig holds the optional rule cache backend. An empty address keeps
// the in-process cache.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// AuthConfig holds authentication settings for the management API.
type AuthConfig struct {
	JWTSecret          string   `yaml:"jwt_secret"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// StorefrontConfig holds tunables of the composition engine.
type StorefrontConfig struct {
	RuleCacheTTLSeconds int `yaml:"rule_cache_ttl_seconds"`
}

// Config is the full deployment configuration.
type Config struct {
	Addr       AddrConfig       `yaml:"addr"`
	Log        LogConfig        `yaml:"log"`
	MongoDB    MongoConfig      `yaml:"mongodb"`
	Redis      RedisConfig      `yaml:"redis"`
	Auth       AuthConfig       `yaml:"auth"`
	Storefront StorefrontConfig `yaml:"storefront"`
}

var appConfig *Config

// LoadConfig reads the deployment file, expands ${ENV_VAR} references and
// sets the global configuration.
func LoadConfig(filePath string) (*Config, error) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(file))

	var config Config
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	appConfig = &config
	return appConfig, nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *Config {
	return appConfig
}

// SetConfig overrides the global configuration. Intended for tests.
func SetConfig(cfg *Config) {
	appConfig = cfg
}
