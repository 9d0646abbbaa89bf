package fields

import "strings"

// marketplaceHosts are reseller marketplaces whose listings carry
// size and pin lines in the reply.
var marketplaceHosts = []string{
	"meesho.com",
}

// IsMarketplace reports whether the canonical host belongs to a
// reseller marketplace.
func IsMarketplace(host string) bool {
	lowered := strings.ToLower(host)

	for _, marker := range marketplaceHosts {
		if strings.Contains(lowered, marker) {
			return true
		}
	}

	return false
}
