package mcp

import "github.com/mark3labs/mcp-go/mcp"

// registerTools registers all MCP tools with the server
func (s *Server) registerTools() {
	// Health check
	s.mcpServer.AddTool(
		mcp.NewTool("get_health",
			mcp.WithDescription("Report how many registered devices answer their status endpoint"),
		),
		s.handleGetHealth,
	)

	// List devices
	s.mcpServer.AddTool(
		mcp.NewTool("list_devices",
			mcp.WithDescription("List the registered devices with their current status"),
		),
		s.handleListDevices,
	)

	// Get device status
	s.mcpServer.AddTool(
		mcp.NewTool("get_device_status",
			mcp.WithDescription("Get the status payload reported by one device"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Device ID (e.g. speaker_001)"),
			),
		),
		s.handleGetDeviceStatus,
	)

	// Get all statuses
	s.mcpServer.AddTool(
		mcp.NewTool("get_all_status",
			mcp.WithDescription("Get the status of every reachable device; unreachable devices are omitted"),
		),
		s.handleGetAllStatus,
	)

	// Perform action
	s.mcpServer.AddTool(
		mcp.NewTool("perform_action",
			mcp.WithDescription("Perform an action on a device. Parameters are validated against the action's schema."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Device ID"),
			),
			mcp.WithString("action",
				mcp.Required(),
				mcp.Description("Action name"),
				mcp.Enum("power", "set_volume", "set_brightness", "position"),
			),
			mcp.WithObject("params",
				mcp.Description("Action parameters (e.g. {\"state\": \"on\"}, {\"level\": 50}, {\"value\": 30})"),
			),
		),
		s.handlePerformAction,
	)

	// Toggle device
	s.mcpServer.AddTool(
		mcp.NewTool("toggle_device",
			mcp.WithDescription("Switch a device on or off (open or close for curtains) based on its current status"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("Device ID"),
			),
		),
		s.handleToggleDevice,
	)

	// Toggle speaker (convenience)
	s.mcpServer.AddTool(
		mcp.NewTool("toggle_speaker",
			mcp.WithDescription("Switch the speaker on or off"),
		),
		s.handleToggleSpeaker,
	)

	// Toggle light (convenience)
	s.mcpServer.AddTool(
		mcp.NewTool("toggle_light",
			mcp.WithDescription("Switch the light on or off"),
		),
		s.handleToggleLight,
	)

	// Toggle curtains (convenience)
	s.mcpServer.AddTool(
		mcp.NewTool("toggle_curtains",
			mcp.WithDescription("Open or close the curtains"),
		),
		s.handleToggleCurtains,
	)

	// Set speaker volume (convenience)
	s.mcpServer.AddTool(
		mcp.NewTool("set_speaker_volume",
			mcp.WithDescription("Set the speaker volume"),
			mcp.WithNumber("level",
				mcp.Required(),
				mcp.Description("Volume level"),
			),
		),
		s.handleSetSpeakerVolume,
	)

	// Set light brightness (convenience)
	s.mcpServer.AddTool(
		mcp.NewTool("set_light_brightness",
			mcp.WithDescription("Set the light brightness"),
			mcp.WithNumber("level",
				mcp.Required(),
				mcp.Description("Brightness level"),
			),
		),
		s.handleSetLightBrightness,
	)

	// Set curtains position (convenience)
	s.mcpServer.AddTool(
		mcp.NewTool("set_curtains_position",
			mcp.WithDescription("Move the curtains to a position"),
			mcp.WithNumber("value",
				mcp.Required(),
				mcp.Description("Curtain position"),
			),
		),
		s.handleSetCurtainsPosition,
	)
}
