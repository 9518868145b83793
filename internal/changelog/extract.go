package changelog

import (
	"regexp"
	"strconv"
)

// PR reference patterns, applied in order. The first number discovered
// selects the PR metadata displayed for a commit.
var refPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)merge pull request #(\d+)`),
	regexp.MustCompile(`\(#(\d+)\)`),
	regexp.MustCompile(`(?i)\bPR #(\d+)`),
}

// ExtractPRNumbers scans a commit message for referenced pull request
// numbers. Each distinct number appears once, in pattern-then-scan order.
func ExtractPRNumbers(message string) []int {
	var numbers []int
	seen := make(map[int]bool)

	for _, pattern := range refPatterns {
		for _, match := range pattern.FindAllStringSubmatch(message, -1) {
			n, err := strconv.Atoi(match[1])
			if err != nil || seen[n] {
				continue
			}
			seen[n] = true
			numbers = append(numbers, n)
		}
	}
	return numbers
}
