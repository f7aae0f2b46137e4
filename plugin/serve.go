package plugin

import (
	goplugin "github.com/hashicorp/go-plugin"
)

// Serve is called from a rule plugin's main function to serve the rule
// to the relint host. It blocks until the host disconnects.
func Serve(rule RemoteRule) {
	goplugin.Serve(&goplugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]goplugin.Plugin{
			PluginName: &RulePlugin{Impl: rule},
		},
	})
}
