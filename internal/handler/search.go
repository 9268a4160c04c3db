package handler

import (
	"net/http"
	"strings"

	"github.com/sechive-dev/sechive-web/internal/utils"
)

const searchResultsLimit = 50

// SearchHandler renders search results. An empty query just shows the form.
func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	data := SearchPageData{Query: query}

	if query != "" {
		results, err := h.APIClient.Search(r, query, searchResultsLimit)
		if err != nil {
			utils.WriteErrorAndStatusCode(w, err)
			return
		}
		data.Results = results
		data.Posts = h.renderPosts(results.Posts)
	}

	h.renderTemplate(w, r, "search.html", data)
}
