package mytelegram

import "errors"

// Credentials is the bundle scraped from the apps page. All four
// fields are always populated; a partial scrape is an error instead.
type Credentials struct {
	APIID            string
	APIHash          string
	PublicKey        string
	ProductionConfig string
}

var (
	// ErrAccountBlocked means the provider temporarily refused to
	// send a login code for this phone number.
	ErrAccountBlocked = errors.New("account temporarily blocked by provider")

	// ErrNoRandomHash means the send-code response carried no usable
	// random_hash token.
	ErrNoRandomHash = errors.New("no random_hash in send-code response")

	// ErrCredentialsNotFound means the apps page could not be scraped
	// into a complete credential bundle.
	ErrCredentialsNotFound = errors.New("credentials not found on apps page")

	// ErrInvalidPhone means the phone number did not match any
	// accepted format.
	ErrInvalidPhone = errors.New("invalid phone number format")
)

type sendPasswordResp struct {
	RandomHash string `json:"random_hash"`
}
