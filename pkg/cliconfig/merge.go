package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Non-zero values are always applied; zero values are applied only when the
// key is recorded in source.SetFields.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.Length != 0 || isSet(source, "length") {
		target.Length = source.Length
		target.Sources["length"] = sourceType
	}
	if source.Count != 0 || isSet(source, "count") {
		target.Count = source.Count
		target.Sources["count"] = sourceType
	}
	if source.Parallel != 0 || isSet(source, "parallel") {
		target.Parallel = source.Parallel
		target.Sources["parallel"] = sourceType
	}
	if source.Fingerprint != "" {
		target.Fingerprint = source.Fingerprint
		target.Sources["fingerprint"] = sourceType
	}
	if source.Identity != "" {
		target.Identity = source.Identity
		target.Sources["identity"] = sourceType
	}
	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
	if source.JSON || isSet(source, "json") {
		target.JSON = source.JSON
		target.Sources["json"] = sourceType
	}
}

func isSet(cfg *CLIConfig, yamlKey string) bool {
	return cfg.SetFields != nil && cfg.SetFields[yamlKey]
}
