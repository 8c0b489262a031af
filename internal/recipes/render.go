package recipes

import (
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_-]*)\s*\}\}`)

// placeholderNames lists each distinct placeholder referenced by the template in order of first appearance.
func placeholderNames(commandTemplate string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(commandTemplate, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		placeholderName := match[1]
		if _, alreadySeen := seen[placeholderName]; alreadySeen {
			continue
		}
		seen[placeholderName] = struct{}{}
		names = append(names, placeholderName)
	}
	return names
}

// renderTemplate substitutes bound values into the template using raw string replacement.
func renderTemplate(commandTemplate string, bindings Bindings) string {
	return placeholderPattern.ReplaceAllStringFunc(commandTemplate, func(placeholder string) string {
		submatches := placeholderPattern.FindStringSubmatch(placeholder)
		boundValue, bound := bindings[submatches[1]]
		if !bound {
			return placeholder
		}
		return boundValue
	})
}

// ContainsPlaceholder reports whether the rendered line still carries placeholder tokens.
func ContainsPlaceholder(commandLine string) bool {
	return strings.Contains(commandLine, "{{") && placeholderPattern.MatchString(commandLine)
}
