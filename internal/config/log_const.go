package config

const (
	LogErrorColor = "\033[31m"
	LogInfoColor  = "\033[32m"
	LogDebugColor = "\033[36m"
	LogColorReset = "\033[0m"
)
