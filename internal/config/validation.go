package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Template token patterns that must not appear in any configuration value.
var dynamicTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\{[^}]+\}`),   // ${VAR}
	regexp.MustCompile(`\{\{[^}]+\}\}`), // {{VAR}}
}

// envTokenPattern matches a bare $VAR. It is only checked on paths: author
// names are printed verbatim and may legitimately contain "$".
var envTokenPattern = regexp.MustCompile(`\$[A-Z_][A-Z0-9_]*`)

// Validate checks the configuration for correctness and returns
// *ValidationErrors listing every problem found.
func Validate(cfg *Config) error {
	var errs []ValidationError

	errs = append(errs, validateLogLevel(cfg.System.LogLevel)...)
	errs = append(errs, validateOutput(&cfg.Output)...)
	errs = append(errs, validateDynamicTokens(cfg)...)

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateLogLevel(level string) []ValidationError {
	if level == "" || slices.Contains(validLogLevels, level) {
		return nil
	}
	return []ValidationError{{
		Field:   "system.log_level",
		Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
		Value:   level,
		Wrapped: ErrInvalidLogLevel,
	}}
}

func validateOutput(out *OutputConfig) []ValidationError {
	if strings.TrimSpace(out.Path) != "" {
		return nil
	}
	return []ValidationError{{
		Field:   "output.path",
		Message: "must not be blank",
		Value:   out.Path,
		Wrapped: ErrInvalidConfig,
	}}
}

// validateDynamicTokens rejects values that still carry template syntax,
// which usually means a config file was copied from a template unedited.
func validateDynamicTokens(cfg *Config) []ValidationError {
	var errs []ValidationError
	if ve, ok := checkTokens("author.name", cfg.Author.Name, dynamicTokenPatterns); ok {
		errs = append(errs, ve)
	}
	pathPatterns := append(slices.Clone(dynamicTokenPatterns), envTokenPattern)
	if ve, ok := checkTokens("output.path", cfg.Output.Path, pathPatterns); ok {
		errs = append(errs, ve)
	}
	return errs
}

func checkTokens(field, value string, patterns []*regexp.Regexp) (ValidationError, bool) {
	for _, pattern := range patterns {
		if pattern.MatchString(value) {
			return ValidationError{
				Field:   field,
				Message: "contains unexpanded dynamic token",
				Value:   value,
				Wrapped: ErrDynamicToken,
			}, true
		}
	}
	return ValidationError{}, false
}
