package mytelegram

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CredentialExtractor scrapes a credential bundle out of one apps page
// layout. Keeping the page coupling behind this interface means a
// layout change only needs a new implementation, testable against a
// saved fixture.
type CredentialExtractor interface {
	Extract(r io.Reader) (*Credentials, error)
}

// AppsPageExtractor handles the current my.telegram.org/apps layout:
// each value sits next to a <label> with a fixed text, inside the
// label's following sibling <div>.
type AppsPageExtractor struct{}

func (AppsPageExtractor) Extract(r io.Reader) (*Credentials, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, ErrCredentialsNotFound
	}

	type field struct {
		label string
		inner string
		dst   *string
	}
	creds := &Credentials{}
	fields := []field{
		{"App api_id:", "span", &creds.APIID},
		{"App api_hash:", "span", &creds.APIHash},
		{"Public keys:", "code", &creds.PublicKey},
		{"Production configuration:", "strong", &creds.ProductionConfig},
	}

	for _, f := range fields {
		val, ok := labeledValue(doc, f.label, f.inner)
		if !ok {
			return nil, ErrCredentialsNotFound
		}
		*f.dst = val
	}
	return creds, nil
}

// labeledValue finds the <label> whose text matches exactly, takes its
// next sibling <div> and returns the text of the first inner element.
func labeledValue(doc *goquery.Document, label, inner string) (string, bool) {
	var out string
	var ok bool
	doc.Find("label").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.TrimSpace(s.Text()) != label {
			return true
		}
		div := s.NextFiltered("div")
		if div.Length() == 0 {
			return false
		}
		el := div.Find(inner).First()
		if el.Length() == 0 {
			return false
		}
		out = strings.TrimSpace(el.Text())
		ok = true
		return false
	})
	return out, ok
}
