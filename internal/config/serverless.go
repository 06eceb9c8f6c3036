package config

import "os"

// IsServerlessMode detects whether the process is running inside AWS Lambda.
func IsServerlessMode() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsServerlessMode() {
		return "serverless"
	}
	return "server"
}

// AdaptConfigForServerless modifies configuration for serverless deployment:
// the store is always DynamoDB, with the table name taken from the
// environment the provisioning stack sets.
func AdaptConfigForServerless(config *Config) *Config {
	if !IsServerlessMode() {
		return config
	}

	config.Store.Driver = StoreDriverDynamoDB
	config.Store.TableName = GetEnv("QUERIES_TABLE_NAME", "queries")
	config.Store.Region = os.Getenv("AWS_REGION")

	return config
}

// GetOptimizedConfig returns configuration adapted to the current
// deployment mode.
func GetOptimizedConfig() (*Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}

	return AdaptConfigForServerless(config), nil
}
