package apiclient

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/sechive-dev/sechive-web/internal/domain"
	internal_errors "github.com/sechive-dev/sechive-web/internal/errors"
	"github.com/sechive-dev/sechive-web/internal/utils"
)

// Search queries posts and users. The API does the ranking; the client only
// renders.
func (c *APIClient) Search(r *http.Request, query string, limit int) (domain.SearchResults, error) {
	var results domain.SearchResults

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", fmt.Sprint(limit))

	resp, err := c.do(r.Context(), "GET", "/v1/search?"+params.Encode(), nil, r.Cookies()...)
	if err != nil {
		return results, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return results, &internal_errors.ErrorWithStatusCode{
			Message: "search failed", StatusCode: resp.StatusCode,
		}
	}

	if err := utils.Decode(resp.Body, &results); err != nil {
		return results, fmt.Errorf("cannot decode search response: %w", err)
	}
	return results, nil
}
