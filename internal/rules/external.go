package rules

import (
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"

	"github.com/danielsogl/relint/internal/source"
	"github.com/danielsogl/relint/internal/types"
	"github.com/danielsogl/relint/plugin"
)

// Manager owns the plugin processes backing external rules
type Manager struct {
	clients []*goplugin.Client
}

// Close terminates all plugin processes
func (m *Manager) Close() {
	for _, c := range m.clients {
		c.Kill()
	}
	m.clients = nil
}

// LoadExternal discovers rule plugins in the given directories,
// launches them, and registers an adapter for each in the default
// registry. The caller must Close the returned Manager when the
// session ends.
func LoadExternal(dirs []string, logger hclog.Logger) (*Manager, error) {
	if len(dirs) == 0 {
		return &Manager{}, nil
	}

	paths, err := plugin.Discover(dirs)
	if err != nil {
		return nil, err
	}

	m := &Manager{}
	for _, path := range paths {
		client := goplugin.NewClient(&goplugin.ClientConfig{
			HandshakeConfig: plugin.Handshake,
			Plugins: map[string]goplugin.Plugin{
				plugin.PluginName: &plugin.RulePlugin{},
			},
			Cmd:    exec.Command(path),
			Logger: logger.Named("plugin"),
		})

		remote, info, err := dispense(client)
		if err != nil {
			client.Kill()
			m.Close()
			return nil, fmt.Errorf("failed to load rule plugin %s: %w", path, err)
		}

		severity, err := types.ParseSeverity(info.Severity)
		if err != nil {
			client.Kill()
			m.Close()
			return nil, fmt.Errorf("rule plugin %s: %w", path, err)
		}

		m.clients = append(m.clients, client)
		Register(&externalRule{
			info:     info,
			severity: severity,
			remote:   remote,
		})
		logger.Debug("registered external rule", "name", info.Name, "path", path)
	}

	return m, nil
}

func dispense(client *goplugin.Client) (plugin.RemoteRule, plugin.RuleInfo, error) {
	rpcClient, err := client.Client()
	if err != nil {
		return nil, plugin.RuleInfo{}, err
	}
	raw, err := rpcClient.Dispense(plugin.PluginName)
	if err != nil {
		return nil, plugin.RuleInfo{}, err
	}
	remote, ok := raw.(plugin.RemoteRule)
	if !ok {
		return nil, plugin.RuleInfo{}, fmt.Errorf("plugin does not implement the rule interface")
	}
	info, err := remote.Info()
	if err != nil {
		return nil, plugin.RuleInfo{}, err
	}
	if info.Name == "" {
		return nil, plugin.RuleInfo{}, fmt.Errorf("plugin reported an empty rule name")
	}
	return remote, info, nil
}

// externalRule adapts a RemoteRule to the Rule interface. External
// rules are syntax-only: the plugin re-parses the text on its side.
type externalRule struct {
	info     plugin.RuleInfo
	severity types.Severity
	remote   plugin.RemoteRule
}

func (r *externalRule) Name() string {
	return r.info.Name
}

func (r *externalRule) Description() string {
	return r.info.Description
}

func (r *externalRule) DefaultSeverity() types.Severity {
	return r.severity
}

func (r *externalRule) Check(view *source.View, opts Options) ([]*types.Failure, error) {
	optsJSON, err := json.Marshal(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode options for rule %q: %w", r.info.Name, err)
	}

	wire, err := r.remote.Check(plugin.CheckRequest{
		Path:        view.Path,
		Text:        view.Text,
		OptionsJSON: optsJSON,
	})
	if err != nil {
		return nil, err
	}

	failures := make([]*types.Failure, 0, len(wire))
	for _, wf := range wire {
		failure := types.NewFailure(
			r.info.Name,
			view.Path,
			view.PositionAt(wf.Start),
			view.PositionAt(wf.End),
			wf.Message,
		)
		if len(wf.Replacements) > 0 {
			fix := &types.Fix{RuleName: r.info.Name}
			for _, rep := range wf.Replacements {
				path := rep.Path
				if path == "" {
					path = view.Path
				}
				fix.Replacements = append(fix.Replacements, types.Replacement{
					Path:  path,
					Start: rep.Start,
					End:   rep.End,
					Text:  rep.Text,
				})
			}
			failure = failure.WithFix(fix)
		}
		failures = append(failures, failure)
	}
	return failures, nil
}
