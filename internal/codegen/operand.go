package codegen

import "strings"

// splitIndex decomposes an operand token into its name and, for an
// array-indexed operand of the form "name[index]", its index token.
func splitIndex(token string) (name, index string, isArray bool) {
	if i := strings.IndexByte(token, '['); i >= 0 && strings.HasSuffix(token, "]") {
		return token[:i], token[i+1 : len(token)-1], true
	}
	return token, "", false
}
