package assistant

import "strings"

// credentialKeywords are matched against the lower-cased user text before
// any retrieval or backend call. Order does not matter; any hit blocks.
var credentialKeywords = []string{
	"api key",
	"apikey",
	"api_key",
	"password",
	"secret key",
	"credentials",
	"access token",
	"private key",
}

// RefusalMessage is returned verbatim for credential-probing input. It is
// intentionally stable and reveals nothing about configuration.
const RefusalMessage = "I can't help with API keys, passwords, or other credentials. " +
	"If you need to configure the app, use the setup command. " +
	"Is there anything else I can help you with? 😊"

// isCredentialProbe reports whether text asks about keys, passwords, or
// other secrets.
func isCredentialProbe(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range credentialKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
