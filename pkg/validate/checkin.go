package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsCheckinCode reports whether s is a well-formed check-in code. Codes carry
// a Luhn check digit so staff clients can reject mistyped codes offline.
func IsCheckinCode(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
