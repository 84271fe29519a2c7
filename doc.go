// Package forge provides a Go client for the Laravel Forge API v1.
//
// Forge is a server-hosting control panel: it provisions servers and
// manages the sites hosted on them. This client exposes the server and
// site resources as typed operations, handles authentication, rate
// limiting, and maps API failures onto a typed error taxonomy.
//
// # Usage
//
//	client, err := forge.New("your-api-token")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sites, err := client.Sites.List(context.Background(), serverID)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, site := range sites {
//	    fmt.Printf("Site: %s (%d)\n", site.Name, site.ID)
//	}
//
// # Rate Limiting
//
// The Forge API allows 60 requests per minute per token. The client
// throttles requests client-side with a token bucket so callers stay
// inside that budget; the limit is configurable via ClientConfig.
//
// # Error Handling
//
// Failures carry the HTTP status and server message and can be inspected
// with errors.Is / errors.As:
//
//	site, err := client.Sites.Get(ctx, serverID, siteID)
//	if errors.Is(err, forge.ErrNotFound) {
//	    // the site no longer exists
//	}
//
//	_, err = client.Sites.Create(ctx, serverID, forge.CreateSiteRequest{Domain: "example.com"})
//	var taken *forge.DomainTakenError
//	if errors.As(err, &taken) {
//	    fmt.Printf("domain %s is in use\n", taken.Domain)
//	}
//
// # Custom Configuration
//
// For custom rate limits, timeouts, or observability hooks:
//
//	client, err := forge.NewWithConfig(&forge.ClientConfig{
//	    APIToken:           "your-api-token",
//	    RateLimitPerMinute: 30,
//	    Logger:             myLogger,
//	    Metrics:            myMetrics,
//	})
package forge
