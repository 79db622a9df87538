package gscclient

import (
	"context"
	"net/http"

	gscdomain "github.com/vfg2006/search-console-insights/infrastructure/integrator/searchconsole/domain"
)

func (c *SearchConsoleClient) ListSites(ctx context.Context) (*gscdomain.SitesResponse, error) {
	var response gscdomain.SitesResponse
	if err := c.do(ctx, http.MethodGet, c.Cfg.SearchConsole.BaseURL+"/sites", nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
