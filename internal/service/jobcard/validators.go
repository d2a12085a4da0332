package jobcard

import "strings"

func isValidJobNumber(jobNumber string) bool {
	jobNumber = strings.TrimSpace(jobNumber)
	if jobNumber == "" || len(jobNumber) > 50 {
		return false
	}

	for _, char := range jobNumber {
		switch {
		case char >= '0' && char <= '9':
		case char >= 'a' && char <= 'z':
		case char >= 'A' && char <= 'Z':
		case char == '-' || char == '_':
		default:
			return false
		}
	}
	return true
}

func isValidPriority(priority string) bool {
	switch priority {
	case "low", "medium", "high", "urgent":
		return true
	default:
		return false
	}
}

func isValidLocation(location string) bool {
	return strings.TrimSpace(location) != ""
}
