package common

import "strings"

func IsImageFormat(path string) bool {
	path = strings.ToLower(path)
	return strings.HasSuffix(path, ".jpg") ||
		strings.HasSuffix(path, ".jpeg") ||
		strings.HasSuffix(path, ".png") ||
		strings.HasSuffix(path, ".gif")
}

func IsPDFFormat(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".pdf")
}
