package fetch

import "fmt"

// Store-relative paths for the endpoints this tool fetches. The MCP
// server and the CLI both read these back from the same locations.
const (
	BootstrapPath   = "bootstrap/bootstrap-static.json"
	AllFixturesPath = "fixtures/all.json"
)

// /bootstrap-static/
func (c *Client) BootstrapStatic(force bool) ([]byte, error) {
	return c.FetchRaw("/bootstrap-static/", BootstrapPath, force)
}

// /fixtures/
func (c *Client) Fixtures(force bool) ([]byte, error) {
	return c.FetchRaw("/fixtures/", AllFixturesPath, force)
}

// /fixtures/?event={gw}
func (c *Client) FixturesForEvent(gw int, force bool) ([]byte, error) {
	return c.FetchRaw(
		fmt.Sprintf("/fixtures/?event=%d", gw),
		fmt.Sprintf("fixtures/gw/%d.json", gw),
		force,
	)
}
