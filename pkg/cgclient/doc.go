// Package cgclient provides the primary entry point for constructing a
// cloud.gov API client that implements the cloudgov.Client interface.
//
// It layers configuration, HTTP transport, and OAuth2 client credentials
// authentication on top of the interfaces and types defined in the cloudgov
// package. Most applications should import cgclient to build a client, then
// use the returned cloudgov.Client to reach the resource clients Apps() and
// Datasets().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/datagov-metrics/cloudgov/pkg/cgclient"
//	  "github.com/datagov-metrics/cloudgov/pkg/cloudgov"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: the default endpoint (https://api.fr.cloud.gov), no auth.
//	  cli, err := cgclient.New(&cloudgov.Config{})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with service account credentials. The token exchange happens on
//	  // the first operation, or eagerly via cli.Authenticate(ctx).
//	  cli, err = cgclient.New(&cloudgov.Config{
//	    APIEndpoint: "https://api.fr.cloud.gov",
//	    APIKey:      "service-account-key",
//	    APISecret:   "service-account-secret",
//	    Org:         "gsa-datagov",
//	    Space:       "prod",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the cloudgov.Client interface
//	  apps, err := cli.Apps().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = apps
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithClientCredentials
// and NewFromEnv that wrap New with the appropriate configuration.
package cgclient
