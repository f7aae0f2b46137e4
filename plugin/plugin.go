// Package plugin is the SDK for out-of-process relint rules.
//
// A rule plugin is an executable named relint-rule-<name> placed in one
// of the configured rule directories. The host discovers and launches
// plugins with hashicorp/go-plugin and talks to them over net/rpc.
// Plugin rules are syntax-only: they receive the file path and raw text
// and re-parse on their side of the process boundary.
package plugin

import (
	"net/rpc"

	goplugin "github.com/hashicorp/go-plugin"
)

// Handshake is the shared handshake configuration. The cookie guards
// against executing unrelated binaries found in a rule directory.
var Handshake = goplugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "RELINT_RULE_PLUGIN",
	MagicCookieValue: "2f9d61fd-4aa1-4a37-9f0e-relint",
}

// RuleInfo describes a remote rule
type RuleInfo struct {
	// Name is the unique rule name
	Name string

	// Description explains what the rule detects
	Description string

	// Severity is the rule's default severity name ("error", "warning")
	Severity string
}

// CheckRequest carries one file to a remote rule
type CheckRequest struct {
	// Path is the file path being linted
	Path string

	// Text is the file's current text
	Text string

	// OptionsJSON holds the configured rule options, JSON-encoded
	OptionsJSON []byte
}

// Replacement is a wire-level text edit
type Replacement struct {
	Path  string
	Start int
	End   int
	Text  string
}

// Failure is a wire-level rule violation. Offsets address the request
// text; the host derives line and column information.
type Failure struct {
	Start        int
	End          int
	Message      string
	Replacements []Replacement
}

// RemoteRule is the interface a rule plugin implements
type RemoteRule interface {
	// Info returns the rule's metadata
	Info() (RuleInfo, error)

	// Check analyzes one file and returns its failures
	Check(req CheckRequest) ([]Failure, error)
}

// PluginName is the key rules are served and dispensed under
const PluginName = "rule"

// RulePlugin is the go-plugin adapter for RemoteRule
type RulePlugin struct {
	Impl RemoteRule
}

// Server returns the RPC server for this plugin
func (p *RulePlugin) Server(*goplugin.MuxBroker) (interface{}, error) {
	return &ruleServer{impl: p.Impl}, nil
}

// Client returns the RPC client for this plugin
func (p *RulePlugin) Client(b *goplugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &ruleClient{client: c}, nil
}
