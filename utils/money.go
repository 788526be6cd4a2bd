package utils

import "fmt"

// FormatRM renders an amount in sen as ringgit, e.g. 2750 -> "RM27.50".
func FormatRM(sen int64) string {
	return fmt.Sprintf("RM%.2f", float64(sen)/100)
}
