// Package domain holds the failure taxonomy shared by the service layers.
//
// Domain has no dependencies outside the standard library. Transports import it
// and translate a Kind into their own status codes; the HTTP adapter maps
// validation to 400, not found to 404 and so on.
package domain
