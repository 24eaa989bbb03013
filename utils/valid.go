package utils

import (
	"errors"
	"html"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonPhoneRegex = regexp.MustCompile(`[^\d+]`)
	scriptRegex   = regexp.MustCompile(`<script[^>]*>.*?</script>`)
)

// SanitizeInput sanitizes free-form user input to prevent XSS and injection
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = html.EscapeString(input)

	input = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, input)

	return scriptRegex.ReplaceAllString(input, "")
}

// SanitizeEmail normalizes and validates an email address
func SanitizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return "", errors.New("invalid email format")
	}
	return email, nil
}

// SanitizePhone normalizes and validates a phone number. Phone is optional,
// so an empty input passes through unchanged.
func SanitizePhone(phone string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", nil
	}

	phone = nonPhoneRegex.ReplaceAllString(phone, "")
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}

	if len(phone) < 8 || len(phone) > 15 {
		return "", errors.New("invalid phone number length")
	}
	return phone, nil
}

// ValidateFile checks upload size and extension
func ValidateFile(filename string, size int64) error {
	if size > 5*1024*1024 {
		return errors.New("file too large")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	allowedExts := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".svg":  true,
	}
	if !allowedExts[ext] {
		return errors.New("invalid file type")
	}
	return nil
}
