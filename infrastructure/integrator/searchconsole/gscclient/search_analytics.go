package gscclient

import (
	"context"
	"net/http"

	gscdomain "github.com/vfg2006/search-console-insights/infrastructure/integrator/searchconsole/domain"
)

func (c *SearchConsoleClient) QuerySearchAnalytics(ctx context.Context, siteURL string, request *gscdomain.SearchAnalyticsRequest) (*gscdomain.SearchAnalyticsResponse, error) {
	var response gscdomain.SearchAnalyticsResponse
	if err := c.do(ctx, http.MethodPost, c.siteEndpoint(siteURL, "searchAnalytics/query"), request, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
