package plugin

import "net/rpc"

// ruleClient is the host-side RPC shim implementing RemoteRule
type ruleClient struct {
	client *rpc.Client
}

func (c *ruleClient) Info() (RuleInfo, error) {
	var resp RuleInfo
	err := c.client.Call("Plugin.Info", new(interface{}), &resp)
	return resp, err
}

func (c *ruleClient) Check(req CheckRequest) ([]Failure, error) {
	var resp []Failure
	err := c.client.Call("Plugin.Check", req, &resp)
	return resp, err
}

// ruleServer is the plugin-side RPC shim delegating to the rule
// author's implementation
type ruleServer struct {
	impl RemoteRule
}

func (s *ruleServer) Info(_ interface{}, resp *RuleInfo) error {
	info, err := s.impl.Info()
	if err != nil {
		return err
	}
	*resp = info
	return nil
}

func (s *ruleServer) Check(req CheckRequest, resp *[]Failure) error {
	failures, err := s.impl.Check(req)
	if err != nil {
		return err
	}
	*resp = failures
	return nil
}
