package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"consent_governance_system/internal/engine"
)

type Credential struct {
	Account   string     `json:"account"`
	Class     string     `json:"class"`
	IssuedAt  time.Time  `json:"issued_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Revoked   bool       `json:"revoked"`
}

// ValidAt reports whether the credential is issued, not revoked and not
// expired at the given instant.
func (c Credential) ValidAt(at time.Time) bool {
	if c.Revoked || at.Before(c.IssuedAt) {
		return false
	}
	return c.ExpiresAt == nil || at.Before(*c.ExpiresAt)
}

type holders struct {
	Count uint64 `json:"count"`
}

type CredentialService interface {
	engine.CredentialOracle
	engine.Census
	// GetCredential returns nil when the account holds no credential of the class.
	GetCredential(ctx context.Context, account, class string) (*Credential, error)
}

type credentialService struct {
	client  *http.Client
	baseURL string
}

func NewCredentialService(baseURL string) CredentialService {
	return &credentialService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *credentialService) IsValid(ctx context.Context, account, class string, at time.Time) (bool, error) {
	credential, err := s.GetCredential(ctx, account, class)
	if err != nil {
		return false, err
	}
	return credential != nil && credential.ValidAt(at), nil
}

func (s *credentialService) GetCredential(ctx context.Context, account, class string) (*Credential, error) {
	endpoint := fmt.Sprintf("%s/credentials/%s?class=%s", s.baseURL, url.PathEscape(account), url.QueryEscape(class))

	credential := new(Credential)
	found, err := s.get(ctx, endpoint, credential)
	if err != nil || !found {
		return nil, err
	}

	return credential, nil
}

func (s *credentialService) Holders(ctx context.Context, class string, at time.Time) (uint64, error) {
	endpoint := fmt.Sprintf("%s/classes/%s/holders?at=%s", s.baseURL, url.PathEscape(class), url.QueryEscape(at.UTC().Format(time.RFC3339)))

	response := new(holders)
	found, err := s.get(ctx, endpoint, response)
	if err != nil || !found {
		return 0, err
	}

	return response.Count, nil
}

func (s *credentialService) get(ctx context.Context, endpoint string, target interface{}) (bool, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	request.Header.Add("Accept", "application/json")

	response, err := s.client.Do(request)
	if err != nil {
		return false, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return false, nil
	}

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return false, err
	}

	if response.StatusCode != http.StatusOK {
		return false, fmt.Errorf("credential registry returned %d: %s", response.StatusCode, strings.TrimSpace(string(responseBody)))
	}

	if err := json.Unmarshal(responseBody, target); err != nil {
		return false, err
	}

	return true, nil
}
