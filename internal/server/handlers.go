package server

import (
	"encoding/json"
	"fmt"

	"github.com/tidewatch/calib-tools-mcp/internal/calibration"
	"github.com/tidewatch/calib-tools-mcp/internal/imaging"
	"github.com/tidewatch/calib-tools-mcp/internal/ocr"
	"github.com/tidewatch/calib-tools-mcp/internal/profile"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "grid_calibrate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Preprocessing
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_grayscale":
		return s.handleImageGrayscale(args)
	case "image_blur":
		return s.handleImageBlur(args)
	case "image_edge_detect":
		return s.handleImageEdgeDetect(args)

	// Profile Operations
	case "projection_profile":
		return s.handleProjectionProfile(args)
	case "profile_smooth":
		return s.handleProfileSmooth(args)
	case "profile_find_peaks":
		return s.handleProfileFindPeaks(args)
	case "profile_render":
		return s.handleProfileRender(args)

	// Calibration
	case "grid_calibrate":
		return s.handleGridCalibrate(args)

	// Scale Labels
	case "scale_read_labels":
		return s.handleScaleReadLabels(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Preprocessing Handlers ===

type imageCropArgs struct {
	Path  string  `json:"path"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, imaging.Region{X1: a.X1, Y1: a.Y1, X2: a.X2, Y2: a.Y2}, a.Scale)
}

func (s *Server) handleImageGrayscale(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Grayscale(img)
}

type imageBlurArgs struct {
	Path       string `json:"path"`
	KernelSize int    `json:"kernel_size"`
}

func (s *Server) handleImageBlur(args json.RawMessage) (interface{}, error) {
	var a imageBlurArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.KernelSize == 0 {
		a.KernelSize = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.GaussianBlur(img, a.KernelSize)
}

type imageEdgeDetectArgs struct {
	Path          string `json:"path"`
	ThresholdLow  int    `json:"threshold_low"`
	ThresholdHigh int    `json:"threshold_high"`
}

func (s *Server) handleImageEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a imageEdgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.ThresholdLow == 0 {
		a.ThresholdLow = 50
	}
	if a.ThresholdHigh == 0 {
		a.ThresholdHigh = 150
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.EdgeDetect(img, a.ThresholdLow, a.ThresholdHigh)
}

// === Profile Operation Handlers ===

type projectionProfileArgs struct {
	Path         string `json:"path"`
	Direction    string `json:"direction"`
	Source       string `json:"source"`
	SmoothKernel int    `json:"smooth_kernel"`
}

func (s *Server) handleProjectionProfile(args json.RawMessage) (interface{}, error) {
	var a projectionProfileArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.SmoothKernel == 0 {
		a.SmoothKernel = 1
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return calibration.ProjectionProfile(img, calibration.Options{
		Direction:    calibration.Direction(a.Direction),
		Source:       calibration.Source(a.Source),
		SmoothKernel: a.SmoothKernel,
	})
}

type profileSmoothArgs struct {
	Values     []float64 `json:"values"`
	KernelSize int       `json:"kernel_size"`
}

type profileSmoothResult struct {
	Values     []float64 `json:"values"`
	KernelSize int       `json:"kernel_size"`
	Length     int       `json:"length"`
}

func (s *Server) handleProfileSmooth(args json.RawMessage) (interface{}, error) {
	var a profileSmoothArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	smoothed, err := profile.Smooth(a.Values, a.KernelSize)
	if err != nil {
		return nil, err
	}
	return &profileSmoothResult{
		Values:     smoothed,
		KernelSize: a.KernelSize,
		Length:     len(smoothed),
	}, nil
}

type profileFindPeaksArgs struct {
	Values        []float64 `json:"values"`
	MinDistance   int       `json:"min_distance"`
	MinProminence float64   `json:"min_prominence"`
}

type profileFindPeaksResult struct {
	Positions []int                     `json:"positions"`
	Heights   []float64                 `json:"heights"`
	Count     int                       `json:"count"`
	Spacing   *calibration.SpacingStats `json:"spacing,omitempty"`
}

func (s *Server) handleProfileFindPeaks(args json.RawMessage) (interface{}, error) {
	var a profileFindPeaksArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MinDistance == 0 {
		a.MinDistance = 1
	}
	peaks, err := profile.FindPeaks(a.Values, a.MinDistance, a.MinProminence)
	if err != nil {
		return nil, err
	}
	heights := make([]float64, len(peaks))
	for i, p := range peaks {
		heights[i] = a.Values[p]
	}
	return &profileFindPeaksResult{
		Positions: peaks,
		Heights:   heights,
		Count:     len(peaks),
		Spacing:   calibration.MeasureSpacing(peaks),
	}, nil
}

type profileRenderArgs struct {
	Values []float64 `json:"values"`
	Peaks  []int     `json:"peaks"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
}

func (s *Server) handleProfileRender(args json.RawMessage) (interface{}, error) {
	var a profileRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return calibration.RenderProfile(a.Values, a.Peaks, a.Width, a.Height)
}

// === Calibration Handlers ===

type gridCalibrateArgs struct {
	Path          string  `json:"path"`
	Direction     string  `json:"direction"`
	Source        string  `json:"source"`
	BlurKernel    int     `json:"blur_kernel"`
	SmoothKernel  int     `json:"smooth_kernel"`
	MinDistance   int     `json:"min_distance"`
	MinProminence float64 `json:"min_prominence"`
	ROI           *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"roi,omitempty"`
}

func (s *Server) handleGridCalibrate(args json.RawMessage) (interface{}, error) {
	var a gridCalibrateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	opts := calibration.Options{
		Direction:     calibration.Direction(a.Direction),
		Source:        calibration.Source(a.Source),
		BlurKernel:    a.BlurKernel,
		SmoothKernel:  a.SmoothKernel,
		MinDistance:   a.MinDistance,
		MinProminence: a.MinProminence,
	}
	if a.ROI != nil {
		opts.ROI = &imaging.Region{X1: a.ROI.X1, Y1: a.ROI.Y1, X2: a.ROI.X2, Y2: a.ROI.Y2}
	}
	return calibration.DetectGridLines(img, opts)
}

// === Scale Label Handlers ===

type scaleReadLabelsArgs struct {
	Path   string `json:"path"`
	Region *struct {
		X1 int `json:"x1"`
		Y1 int `json:"y1"`
		X2 int `json:"x2"`
		Y2 int `json:"y2"`
	} `json:"region,omitempty"`
	Language      string  `json:"language"`
	MinConfidence float64 `json:"min_confidence"`
	FitAxis       string  `json:"fit_axis"`
}

type scaleReadLabelsResult struct {
	Labels []ocr.ScaleLabel `json:"labels"`
	Count  int              `json:"count"`
	Scale  *ocr.ScaleResult `json:"scale,omitempty"`
}

func (s *Server) handleScaleReadLabels(args json.RawMessage) (interface{}, error) {
	var a scaleReadLabelsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = "eng"
	}
	if a.MinConfidence == 0 {
		a.MinConfidence = 0.5
	}

	var labels *ocr.LabelsResult
	if a.Region != nil {
		img, err := s.cache.Load(a.Path)
		if err != nil {
			return nil, err
		}
		labels, err = ocr.ReadScaleLabelsFromRegion(img, a.Region.X1, a.Region.Y1, a.Region.X2, a.Region.Y2, a.Language, a.MinConfidence)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		labels, err = ocr.ReadScaleLabels(a.Path, a.Language, a.MinConfidence)
		if err != nil {
			return nil, err
		}
	}

	result := &scaleReadLabelsResult{
		Labels: labels.Labels,
		Count:  labels.Count,
	}
	if a.FitAxis != "" {
		scale, err := ocr.ScaleFromLabels(labels.Labels, ocr.Axis(a.FitAxis))
		if err != nil {
			return nil, err
		}
		result.Scale = scale
	}
	return result, nil
}
