// Package config loads the read-only settings of the proxy once at start up.
//
// Values come from the environment through viper. Secrets may be given as
// "ssm:<parameter-name>" and are then read from the AWS SSM parameter store.
package config
