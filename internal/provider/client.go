package provider

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// UserAgent sent on every outbound provider request. USAJobs additionally
// requires it as part of authentication.
const UserAgent = "jobboard-api/1.0"

// NewHTTPClient returns the client adapters use for outbound calls. No
// per-provider timeout is configured beyond this transport default; a slow
// provider stalls only its own branch.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: 20 * time.Second}
}

// GetJSON executes req and decodes the JSON body into v. Transport failures,
// non-2xx statuses, and undecodable bodies all come back as plain errors;
// callers treat them as one class of upstream failure.
func GetJSON(client *http.Client, req *http.Request, v any) error {
	req.Header.Set("User-Agent", UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
