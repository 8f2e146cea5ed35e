// Package cloudgov defines the public API surface for the cloud.gov data
// release client: the Client interface, its configuration, the resource and
// release payload types, the error taxonomy, and the release ledger.
//
// Construct clients with the cgclient package:
//
//	client, err := cgclient.New(&cloudgov.Config{
//		APIEndpoint: "https://api.fr.cloud.gov",
//		APIKey:      "service-account-id",
//		APISecret:   "service-account-secret",
//		Org:         "gsa-datagov",
//		Space:       "prod",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := client.Datasets().Release(ctx, "dataset-guid", nil); err != nil {
//		log.Fatal(err)
//	}
//
// Authentication uses the OAuth2 client_credentials grant against the API
// endpoint's /oauth/token path and happens lazily: the first operation that
// needs the API obtains a token, and later operations reuse it. Errors are
// typed; use IsAuthError, IsRequestError, and IsLocalResourceError (or
// errors.As directly) to tell authentication failures, API request failures,
// and local file problems apart.
package cloudgov
