// Package mytelegram drives the my.telegram.org web login flow: it
// requests a login code for a phone number, submits the code, and
// scrapes the API credentials from the apps page.
package mytelegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

const blockedMarker = "Sorry, too many tries. Please try again later."

type Client struct {
	base      string
	timeout   time.Duration
	extractor CredentialExtractor
}

func NewClient(base string, timeout time.Duration) *Client {
	return &Client{
		base:      strings.TrimRight(base, "/"),
		timeout:   timeout,
		extractor: AppsPageExtractor{},
	}
}

// newSession builds an HTTP client with a fresh cookie jar. The login
// POST and the apps GET must share cookies, so each phase gets one
// session of its own.
func (c *Client) newSession() (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &http.Client{Jar: jar, Timeout: c.timeout}, nil
}

func (c *Client) postForm(ctx context.Context, cli *http.Client, path string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return cli.Do(req)
}

// RequestCode asks the provider to send a login code to the given
// phone number and returns the random_hash token needed to submit it.
func (c *Client) RequestCode(ctx context.Context, phone string) (string, error) {
	cli, err := c.newSession()
	if err != nil {
		return "", err
	}

	resp, err := c.postForm(ctx, cli, "/auth/send_password", url.Values{"phone": {phone}})
	if err != nil {
		return "", fmt.Errorf("send_password request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("send_password response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("send_password status: %s", resp.Status)
	}

	// The provider reports throttling as HTML inside a 200 response.
	if strings.Contains(string(body), blockedMarker) {
		return "", ErrAccountBlocked
	}

	var sp sendPasswordResp
	if err := json.Unmarshal(body, &sp); err != nil {
		return "", ErrNoRandomHash
	}
	if sp.RandomHash == "" {
		return "", ErrNoRandomHash
	}
	return sp.RandomHash, nil
}

// SubmitCode completes the login with the code the user received and
// scrapes the credential bundle from the apps page.
func (c *Client) SubmitCode(ctx context.Context, phone, randomHash, code string) (*Credentials, error) {
	cli, err := c.newSession()
	if err != nil {
		return nil, err
	}

	form := url.Values{
		"phone":       {phone},
		"random_hash": {randomHash},
		"password":    {code},
	}
	resp, err := c.postForm(ctx, cli, "/auth/login", form)
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("login status: %s", resp.Status)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/apps", nil)
	if err != nil {
		return nil, err
	}
	apps, err := cli.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apps request: %w", err)
	}
	defer apps.Body.Close()
	if apps.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("apps status: %s", apps.Status)
	}

	return c.extractor.Extract(apps.Body)
}
