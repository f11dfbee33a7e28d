package id

import (
	"strings"

	"github.com/segmentio/ksuid"
)

// ProductPrefix marks identifiers minted for rows in the products table.
const ProductPrefix = "prod_"

// GenerateIDWithPrefix creates a new KSUID with the given prefix.
// KSUIDs are time-ordered, collision-resistant, and URL-safe.
//
// Format: <prefix><27-char-ksuid>
// Example: prod_2ArTLVPddDx8vZk7CqEbiYp1
func GenerateIDWithPrefix(prefix string) string {
	return prefix + ksuid.New().String()
}

func NewProductID() string {
	return GenerateIDWithPrefix(ProductPrefix)
}

// HasValidFormat reports whether s is prefix followed by a parseable KSUID.
func HasValidFormat(s, prefix string) bool {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return false
	}
	_, err := ksuid.Parse(rest)
	return err == nil
}
