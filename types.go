package forge

// Server is a provisioned server managed by the panel. Servers own sites.
type Server struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IPAddress  string `json:"ip_address"`
	Region     string `json:"region"`
	Size       string `json:"size"`
	PHPVersion string `json:"php_version"`
	IsReady    bool   `json:"is_ready"`
	CreatedAt  string `json:"created_at"`
}

// Site is a hosted website under a server.
type Site struct {
	ID               int64  `json:"id"`
	ServerID         int64  `json:"server_id"`
	Name             string `json:"name"`
	Directory        string `json:"directory"`
	Repository       string `json:"repository,omitempty"`
	QuickDeploy      bool   `json:"quick_deploy"`
	DeploymentStatus string `json:"deployment_status,omitempty"`
	Status           string `json:"status"`
	CreatedAt        string `json:"created_at"`
}

// Defaults applied by CreateSiteRequest when the optional fields are empty.
const (
	DefaultWebDirectory = "/public"
	DefaultProjectRoot  = "/"
)

// CreateSiteRequest describes a site to create. Domain is required;
// WebDirectory defaults to "/public" and ProjectRoot to "/".
type CreateSiteRequest struct {
	Domain       string
	WebDirectory string
	ProjectRoot  string
}

// createSitePayload is the wire form of CreateSiteRequest.
type createSitePayload struct {
	RootDomain   string `json:"root_domain"`
	WebDirectory string `json:"web_directory"`
	ProjectRoot  string `json:"project_root"`
}

// Resource payloads ride a data envelope.
type serverResponse struct {
	Data *Server `json:"data"`
}

type serversResponse struct {
	Data []Server `json:"data"`
}

type siteResponse struct {
	Data *Site `json:"data"`
}

type sitesResponse struct {
	Data []Site `json:"data"`
}

// deployScriptBody is the flat body used by the deploy script endpoints,
// both when reading and writing the script.
type deployScriptBody struct {
	DeployScript string `json:"deploy_script"`
}
