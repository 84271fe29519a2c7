package forge

import "context"

// ServersAPI defines the interface for server operations.
// This interface enables consumers to create mock implementations for testing.
//
// All methods mirror the corresponding methods on ServersService.
type ServersAPI interface {
	// List retrieves all servers on the account.
	List(ctx context.Context) ([]Server, error)

	// Get retrieves a single server.
	Get(ctx context.Context, serverID int64) (*Server, error)

	// Reboot restarts the server.
	Reboot(ctx context.Context, serverID int64) error
}

// SitesAPI defines the interface for site operations.
// This interface enables consumers to create mock implementations for testing.
//
// All methods mirror the corresponding methods on SitesService.
//
// Example usage with testify/mock:
//
//	type MockSites struct {
//	    mock.Mock
//	}
//
//	func (m *MockSites) Get(ctx context.Context, serverID, siteID int64) (*forge.Site, error) {
//	    args := m.Called(ctx, serverID, siteID)
//	    return args.Get(0).(*forge.Site), args.Error(1)
//	}
type SitesAPI interface {
	// List retrieves all sites hosted on the given server.
	List(ctx context.Context, serverID int64) ([]Site, error)

	// Get retrieves a single site.
	Get(ctx context.Context, serverID, siteID int64) (*Site, error)

	// Create provisions a new site on the server.
	Create(ctx context.Context, serverID int64, req CreateSiteRequest) (*Site, error)

	// Delete removes a site from the server.
	Delete(ctx context.Context, serverID, siteID int64) error

	// Deploy triggers a deployment of the site.
	Deploy(ctx context.Context, serverID, siteID int64) error

	// DeployScript retrieves the site's deployment script.
	DeployScript(ctx context.Context, serverID, siteID int64) (string, error)

	// UpdateDeployScript replaces the site's deployment script.
	UpdateDeployScript(ctx context.Context, serverID, siteID int64, script string) error
}

// Compile-time checks that the services implement their interfaces.
var (
	_ ServersAPI = (*ServersService)(nil)
	_ SitesAPI   = (*SitesService)(nil)
)
