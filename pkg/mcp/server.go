package mcp

import (
	"github.com/carlmjohnson/versioninfo"
	"github.com/mark3labs/mcp-go/server"
	"github.com/urmzd/smartapp/pkg/controller"
)

// Server wraps the MCP server with the smart appliance control tools
type Server struct {
	mcpServer  *server.MCPServer
	controller *controller.Controller
}

// NewServer creates a new MCP server over controller
func NewServer(controller *controller.Controller) *Server {
	s := &Server{
		controller: controller,
	}

	// Create MCP server
	s.mcpServer = server.NewMCPServer(
		"smartapp",
		versioninfo.Short(),
		server.WithToolCapabilities(true),
	)

	// Register all tools
	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
