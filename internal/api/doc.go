// Package api defines the wire-level data model shared between the Blaze
// board server and this CLI: cards, plans, their enumerations, and the
// request payloads for each endpoint.
package api
