package utils

import "strings"

func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}

// SplitAndTrim splits value on sep, trims surrounding whitespace from each
// part and drops parts that end up empty.
func SplitAndTrim(value, sep string) []string {
	parts := strings.Split(value, sep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}

	return RemoveEmptyStrings(parts)
}
