// Package hub models regional sorting hubs and resolves the hub that serves a location.
//
// Directory.FindHubForLocation checks the fixed RoutingTable first, then each active
// hub's coverage keywords, then falls back to the default sorting hub.
package hub
