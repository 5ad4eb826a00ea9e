// Package proxy implements the request router of the geodata lambda. A single
// api gateway v2 (http) integration receives every request, authenticates the
// shared secret, resolves the requested upstream variant from the apiKey
// query parameter and relays the upstream result as an
// events.APIGatewayProxyResponse.
//
// The router is designed to be as simplistic as possible and is not feature
// rich: there is exactly one upstream call per request and no state survives
// between invocations other than the immutable Registry.
package proxy
