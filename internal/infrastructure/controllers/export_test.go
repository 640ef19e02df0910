package controllers

// ParseEnvPairs exports parseEnvPairs for testing.
var ParseEnvPairs = parseEnvPairs //nolint:gochecknoglobals // test export
