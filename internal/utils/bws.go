package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	sdk "github.com/bitwarden/sdk-go"
)

// bwsOrgID is the UUID of the Bitwarden organization that owns the
// jobvip secret projects.
const bwsOrgID = "3f6c1a9e-8d42-4b7a-9c15-6e2f04a8d1b3"

const (
	bwsMaxRetries     = 5
	bwsInitialBackoff = 500 * time.Millisecond
)

// BWSSecretsClient wraps an authenticated Bitwarden Secrets Manager client.
type BWSSecretsClient struct {
	bw sdk.BitwardenClientInterface
}

// NewBWSSecretsClient logs in with BWS_ACCESS_TOKEN from the environment.
// Login attempts are retried with exponential backoff on rate-limit
// responses only.
func NewBWSSecretsClient() (*BWSSecretsClient, error) {
	accessToken := os.Getenv("BWS_ACCESS_TOKEN")
	if strings.TrimSpace(accessToken) == "" {
		return nil, errors.New("BWS_ACCESS_TOKEN env var is missing or empty")
	}

	bw, err := sdk.NewBitwardenClient(nil, nil)
	if err != nil {
		return nil, fmt.Errorf("initialising Bitwarden SDK client: %w", err)
	}

	backoff := bwsInitialBackoff
	for attempt := 1; attempt <= bwsMaxRetries; attempt++ {
		err = bw.AccessTokenLogin(accessToken, nil)
		if err == nil {
			return &BWSSecretsClient{bw: bw}, nil
		}

		// sdk-go exposes no typed error with a status code, so the 429
		// rate-limit case is detected from the message.
		if !strings.Contains(err.Error(), "429") &&
			!strings.Contains(err.Error(), "Too Many Requests") {
			return nil, fmt.Errorf("Bitwarden access-token login failed: %w", err)
		}

		if attempt == bwsMaxRetries {
			return nil, fmt.Errorf("Bitwarden access-token login failed after %d attempts: %w", bwsMaxRetries, err)
		}

		time.Sleep(backoff)
		backoff *= 2
	}

	return nil, errors.New("unexpected error in NewBWSSecretsClient")
}

// Close releases resources held by the underlying SDK client.
func (c *BWSSecretsClient) Close() {
	if c != nil && c.bw != nil {
		c.bw.Close()
	}
}

// GetBWSSecrets returns all key/value secrets of the named Bitwarden
// project as a map.
func (c *BWSSecretsClient) GetBWSSecrets(projectName string) (map[string]string, error) {
	if strings.TrimSpace(projectName) == "" {
		return nil, errors.New("projectName must not be empty")
	}

	projectsResp, err := c.bw.Projects().List(bwsOrgID)
	if err != nil {
		Logger.WithError(err).Error("Failed to list Bitwarden projects")
		return nil, fmt.Errorf("listing Bitwarden projects: %w", err)
	}

	var projectID string
	for _, p := range projectsResp.Data {
		if strings.EqualFold(p.Name, projectName) {
			projectID = p.ID
			break
		}
	}
	if projectID == "" {
		return nil, fmt.Errorf("project %q not found in organisation %s", projectName, bwsOrgID)
	}

	syncResp, err := c.bw.Secrets().Sync(bwsOrgID, nil)
	if err != nil {
		Logger.WithError(err).Error("Failed to sync Bitwarden secrets")
		return nil, fmt.Errorf("syncing Bitwarden secrets: %w", err)
	}

	out := make(map[string]string)
	for _, s := range syncResp.Secrets {
		if s.ProjectID != nil && *s.ProjectID == projectID {
			out[s.Key] = s.Value
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no secrets found for project %q", projectName)
	}
	return out, nil
}
