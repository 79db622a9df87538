package gscclient

import (
	"context"
	"net/http"

	gscdomain "github.com/vfg2006/search-console-insights/infrastructure/integrator/searchconsole/domain"
)

func (c *SearchConsoleClient) InspectURL(ctx context.Context, request *gscdomain.InspectionRequest) (*gscdomain.InspectionResponse, error) {
	var response gscdomain.InspectionResponse
	if err := c.do(ctx, http.MethodPost, c.Cfg.SearchConsole.InspectionURL, request, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
