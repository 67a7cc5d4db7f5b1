// Package server implements the HTTP server using Echo framework.
//
// Routes: menu listing and evaluation (/api/menu), feedback submission,
// insight prompt assembly, health probes, and Prometheus metrics. Handlers
// route all operations through the domain.AppService contract.
package server
