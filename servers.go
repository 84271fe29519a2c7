package forge

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
)

// ServersService manages server resources.
type ServersService struct {
	client *Client
}

// List retrieves all servers on the account.
func (s *ServersService) List(ctx context.Context) ([]Server, error) {
	var resp serversResponse
	if err := s.client.do(ctx, http.MethodGet, serversEndpoint(), nil, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to list servers")
	}

	return resp.Data, nil
}

// Get retrieves a single server.
func (s *ServersService) Get(ctx context.Context, serverID int64) (*Server, error) {
	var resp serverResponse
	if err := s.client.do(ctx, http.MethodGet, serverEndpoint(serverID), nil, &resp); err != nil {
		return nil, errors.Wrapf(err, "failed to get server %d", serverID)
	}

	if resp.Data == nil {
		return nil, errors.New("empty response from API")
	}

	return resp.Data, nil
}

// Reboot restarts the server. It returns nil only when the API answers 200.
func (s *ServersService) Reboot(ctx context.Context, serverID int64) error {
	if err := s.client.do(ctx, http.MethodPost, rebootEndpoint(serverID), nil, nil); err != nil {
		return errors.Wrapf(err, "failed to reboot server %d", serverID)
	}

	return nil
}
