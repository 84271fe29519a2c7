package forge

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
)

// SitesService manages the sites hosted on a server. Every operation
// addresses its record explicitly with (serverID, siteID); the service
// itself is stateless.
type SitesService struct {
	client *Client
}

// List retrieves all sites hosted on the given server.
func (s *SitesService) List(ctx context.Context, serverID int64) ([]Site, error) {
	var resp sitesResponse
	if err := s.client.do(ctx, http.MethodGet, sitesEndpoint(serverID), nil, &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to list sites on server %d", serverID)
	}

	return resp.Data, nil
}

// Get retrieves a single site.
func (s *SitesService) Get(ctx context.Context, serverID, siteID int64) (*Site, error) {
	var resp siteResponse
	if err := s.client.do(ctx, http.MethodGet, siteEndpoint(serverID, siteID), nil, &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get site %d on server %d", siteID, serverID)
	}

	if resp.Data == nil {
		return nil, errors.New("empty response from API")
	}

	return resp.Data, nil
}

// Create provisions a new site on the server. The request always targets
// the site collection endpoint. If the API rejects the root domain as
// already in use, the returned error is a *DomainTakenError; any other
// validation failure comes back as a *ValidationError.
func (s *SitesService) Create(ctx context.Context, serverID int64, req CreateSiteRequest) (*Site, error) {
	if req.Domain == "" {
		return nil, errors.New("root domain is required")
	}

	payload := createSitePayload{
		RootDomain:   req.Domain,
		WebDirectory: req.WebDirectory,
		ProjectRoot:  req.ProjectRoot,
	}
	if payload.WebDirectory == "" {
		payload.WebDirectory = DefaultWebDirectory
	}
	if payload.ProjectRoot == "" {
		payload.ProjectRoot = DefaultProjectRoot
	}

	var resp siteResponse
	err := s.client.do(ctx, http.MethodPost, sitesEndpoint(serverID), payload, &resp)
	if err != nil {
		var valErr *ValidationError
		if errors.As(err, &valErr) && domainTaken(valErr) {
			return nil, &DomainTakenError{Domain: req.Domain, cause: err}
		}
		return nil, errors.Wrapf(err, "failed to create site %q on server %d", req.Domain, serverID)
	}

	if resp.Data == nil {
		return nil, errors.New("empty response from API")
	}

	return resp.Data, nil
}

// Delete removes a site from the server. It returns nil only when the API
// answers 200; any other status, including 204, surfaces as an error.
func (s *SitesService) Delete(ctx context.Context, serverID, siteID int64) error {
	if err := s.client.do(ctx, http.MethodDelete, siteEndpoint(serverID, siteID), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to delete site %d on server %d", siteID, serverID)
	}

	return nil
}

// Deploy triggers a deployment of the site. It returns nil only when the
// API answers 200.
func (s *SitesService) Deploy(ctx context.Context, serverID, siteID int64) error {
	if err := s.client.do(ctx, http.MethodPost, deployEndpoint(serverID, siteID), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to deploy site %d on server %d", siteID, serverID)
	}

	return nil
}

// DeployScript retrieves the site's deployment script. A site without a
// script yields an empty string and no error.
func (s *SitesService) DeployScript(ctx context.Context, serverID, siteID int64) (string, error) {
	var body deployScriptBody
	if err := s.client.do(ctx, http.MethodGet, deployScriptEndpoint(serverID, siteID), nil, &body); err != nil {
		return "", errors.Wrapf(err, "failed to get deploy script for site %d on server %d", siteID, serverID)
	}

	return body.DeployScript, nil
}

// UpdateDeployScript replaces the site's deployment script. It returns nil
// only when the API answers 200.
func (s *SitesService) UpdateDeployScript(ctx context.Context, serverID, siteID int64, script string) error {
	body := deployScriptBody{DeployScript: script}
	if err := s.client.do(ctx, http.MethodPatch, deployScriptEndpoint(serverID, siteID), body, nil); err != nil {
		return errors.Wrapf(err, "failed to update deploy script for site %d on server %d", siteID, serverID)
	}

	return nil
}
