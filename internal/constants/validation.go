package constants

// ValidLogLevels is the set of log levels accepted in configuration
var ValidLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
	"fatal": true,
	"panic": true,
}

// IsValidLogLevel checks if a given level string is a known log level
func IsValidLogLevel(level string) bool {
	return ValidLogLevels[level]
}
