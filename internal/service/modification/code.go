package modification

import (
	"strconv"
	"strings"
)

// DeriveCode builds the transmission__power__capacity classification code.
// The format is consumed downstream as a stable key and must not change.
func DeriveCode(power int, capacity string, transmissionCode string) string {
	formatted := capacity + "_0"
	if strings.Contains(capacity, ".") {
		formatted = strings.ReplaceAll(capacity, ".", "_")
	}
	return transmissionCode + "__" + strconv.Itoa(power) + "__" + formatted
}
