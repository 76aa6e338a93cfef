package utils

func PtrString(s string) *string { return &s }

func PtrInt(n int) *int { return &n }

// StringOrNil maps an empty answer to "not provided".
func StringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
