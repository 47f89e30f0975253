package endpoints

import (
	"github.com/investlab/vollab/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterOptionsEndpoints(srv)
	RegisterRatesEndpoints(srv)
	RegisterSurfaceEndpoints(srv)
}
