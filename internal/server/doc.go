// Package server implements the MCP (Model Context Protocol) stdio server
// that exposes the calibration toolset.
//
// The server speaks JSON-RPC 2.0 over stdin/stdout, one message per line.
// It handles the MCP lifecycle (initialize, tools/list, tools/call, ping)
// and dispatches tool calls to the imaging, profile, calibration and ocr
// packages. Tool results are returned as pretty-printed JSON inside MCP
// text content.
//
// A shared ImageCache keeps decoded frames across tool calls, so a client
// can load a frame once and run several analyses against it without
// repeated decoding.
//
// Logging goes to stderr; stdout carries only protocol messages.
package server
