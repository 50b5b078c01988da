package config

import "os"

// FindConfigPath resolves the configuration path.
//
// Precedence:
//  1. explicit argument
//  2. UERR_CONFIG env var
//  3. default .uerr.yaml in the current working directory
func FindConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv("UERR_CONFIG"); v != "" {
		return v
	}
	return ".uerr.yaml"
}
