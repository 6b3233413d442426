package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions and format. Caches the decoded frame for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Preprocessing
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region from an image and return it as base64-encoded PNG. Use this to isolate the calibration target before analysis.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "image_grayscale",
			Description: "Convert an image to grayscale and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_blur",
			Description: "Apply a Gaussian blur and return the result as base64-encoded PNG. Kernel size must be odd; 1 is a no-op.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"kernel_size": map[string]interface{}{
						"type":        "integer",
						"description": "Gaussian kernel size, odd and >= 1 (default 5)",
						"default":     5,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_edge_detect",
			Description: "Return a Canny edge-detected version of the image, showing only structural lines.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"threshold_low": map[string]interface{}{
						"type":        "integer",
						"description": "Low threshold for Canny edge detection (default 50)",
						"default":     50,
					},
					"threshold_high": map[string]interface{}{
						"type":        "integer",
						"description": "High threshold for Canny edge detection (default 150)",
						"default":     150,
					},
				},
				"required": []string{"path"},
			},
		},

		// Profile Operations
		{
			Name:        "projection_profile",
			Description: "Reduce an image to a 1-D projection profile: per-column sums for direction 'vertical', per-row sums for 'horizontal'. Profiles over the darkness source peak at dark grid lines.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"direction": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"vertical", "horizontal"},
						"description": "Axis of the lines the profile should expose (default vertical)",
						"default":     "vertical",
					},
					"source": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"darkness", "luminance", "edges"},
						"description": "What the profile measures (default darkness)",
						"default":     "darkness",
					},
					"smooth_kernel": map[string]interface{}{
						"type":        "integer",
						"description": "Moving-average kernel size, odd; 1 disables smoothing (default 1)",
						"default":     1,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "profile_smooth",
			Description: "Smooth a numeric sequence with a centered moving average. Boundary windows truncate instead of padding.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"values": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "number"},
						"description": "The sequence to smooth",
					},
					"kernel_size": map[string]interface{}{
						"type":        "integer",
						"description": "Kernel size, odd and >= 1",
					},
				},
				"required": []string{"values", "kernel_size"},
			},
		},
		{
			Name:        "profile_find_peaks",
			Description: "Find peaks in a numeric sequence, filtered by topographic prominence and thinned by a minimum index distance.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"values": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "number"},
						"description": "The sequence to scan",
					},
					"min_distance": map[string]interface{}{
						"type":        "integer",
						"description": "Minimum index distance between returned peaks (default 1)",
						"default":     1,
					},
					"min_prominence": map[string]interface{}{
						"type":        "number",
						"description": "Minimum peak prominence (default 0)",
						"default":     0,
					},
				},
				"required": []string{"values"},
			},
		},
		{
			Name:        "profile_render",
			Description: "Render a profile as a bar chart PNG with detected peaks marked, for visual inspection.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"values": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "number"},
						"description": "The profile to plot",
					},
					"peaks": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"description": "Peak indices to mark (optional)",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Plot width in pixels (default: profile length)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Plot height in pixels (default 160)",
					},
				},
				"required": []string{"values"},
			},
		},

		// Calibration
		{
			Name:        "grid_calibrate",
			Description: "Run the full calibration pipeline on a frame: blur, projection profile, smoothing, peak finding. Returns detected grid-line positions and spacing statistics.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"direction": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"vertical", "horizontal"},
						"description": "Direction of the grid lines to detect (default vertical)",
						"default":     "vertical",
					},
					"source": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"darkness", "edges"},
						"description": "Projection source (default darkness)",
						"default":     "darkness",
					},
					"blur_kernel": map[string]interface{}{
						"type":        "integer",
						"description": "Gaussian pre-blur kernel size, odd (default 5)",
						"default":     5,
					},
					"smooth_kernel": map[string]interface{}{
						"type":        "integer",
						"description": "Profile smoothing kernel size, odd (default 7)",
						"default":     7,
					},
					"min_distance": map[string]interface{}{
						"type":        "integer",
						"description": "Minimum line spacing in pixels (default 10)",
						"default":     10,
					},
					"min_prominence": map[string]interface{}{
						"type":        "number",
						"description": "Minimum peak prominence (default 10 for darkness, 0.05 for edges)",
					},
					"roi": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional region of interest. Positions stay relative to the ROI origin.",
					},
				},
				"required": []string{"path"},
			},
		},

		// Scale Labels
		{
			Name:        "scale_read_labels",
			Description: "OCR numeric scale labels from the calibration target and optionally fit a pixel-to-physical mapping along one axis. Requires Tesseract on the host.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"region": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"description": "Optional band containing the labels. If omitted, the whole image is scanned.",
					},
					"language": map[string]interface{}{
						"type":        "string",
						"description": "OCR language hint (default 'eng')",
						"default":     "eng",
					},
					"min_confidence": map[string]interface{}{
						"type":        "number",
						"description": "Minimum OCR confidence (0-1, default 0.5)",
						"default":     0.5,
					},
					"fit_axis": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"x", "y"},
						"description": "Fit a linear pixel-to-physical scale along this axis (optional)",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
