package forge

import "fmt"

// Endpoint paths are pure functions of the full record address and are
// recomputed for every call; nothing is cached between requests.

func serversEndpoint() string {
	return "/servers"
}

func serverEndpoint(serverID int64) string {
	return fmt.Sprintf("/servers/%d", serverID)
}

func rebootEndpoint(serverID int64) string {
	return serverEndpoint(serverID) + "/reboot"
}

func sitesEndpoint(serverID int64) string {
	return serverEndpoint(serverID) + "/sites"
}

func siteEndpoint(serverID, siteID int64) string {
	return fmt.Sprintf("%s/%d", sitesEndpoint(serverID), siteID)
}

func deployEndpoint(serverID, siteID int64) string {
	return siteEndpoint(serverID, siteID) + "/deploy"
}

func deployScriptEndpoint(serverID, siteID int64) string {
	return siteEndpoint(serverID, siteID) + "/deploy/script"
}
