// Package config handles configuration for the server, including defaults,
// JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the public HTTP endpoint.
//   - MongoURI / MongoDatabase: document store connection settings.
//   - SecretKey: HMAC secret for signing session JWTs (HS256). Do not use
//     the test default in prod.
//   - TokenValidityDuration: session cookie / JWT lifetime.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend
//     holding progress pictures.
//   - S3Bucket / S3Region / S3BaseEndpoint: object storage settings.
type Config struct {
	EndpointAddrHTTP      string
	MongoURI              string
	MongoDatabase         string
	SecretKey             string
	TokenValidityDuration time.Duration
	S3RootUser            string
	S3RootPassword        string
	S3Bucket              string
	S3Region              string
	S3BaseEndpoint        string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5000"
	c.MongoURI = "mongodb://localhost:27017"
	c.MongoDatabase = "mygymbro"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 30 * 24 * time.Hour
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "progresspics"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
