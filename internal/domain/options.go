package domain

import "strings"

// SplitOptions breaks a raw option-list value into individual tokens.
// Quoted substrings stay atomic so an option with embedded spaces is not
// split; an unmatched trailing quote flushes whatever was buffered.
func SplitOptions(value string) []string {
	value = strings.Trim(strings.TrimSpace(value), `"'`)
	if value == "" {
		return nil
	}

	var (
		options  []string
		buffered []string
		inQuotes bool
	)

	for _, token := range strings.Fields(value) {
		switch {
		case !inQuotes && hasQuotePrefix(token):
			if hasQuoteSuffix(token) && len(token) > 1 {
				options = append(options, token)
				continue
			}

			inQuotes = true
			buffered = append(buffered, token)
		case inQuotes:
			buffered = append(buffered, token)

			if hasQuoteSuffix(token) {
				inQuotes = false
				options = append(options, strings.Join(buffered, " "))
				buffered = nil
			}
		default:
			options = append(options, token)
		}
	}

	if len(buffered) > 0 {
		options = append(options, strings.Join(buffered, " "))
	}

	cleaned := options[:0]
	for _, option := range options {
		option = strings.Trim(option, `"'`)
		if option != "" {
			cleaned = append(cleaned, option)
		}
	}

	return cleaned
}

func hasQuotePrefix(token string) bool {
	return strings.HasPrefix(token, `"`) || strings.HasPrefix(token, `'`)
}

func hasQuoteSuffix(token string) bool {
	return strings.HasSuffix(token, `"`) || strings.HasSuffix(token, `'`)
}
