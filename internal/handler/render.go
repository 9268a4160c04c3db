package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/sechive-dev/sechive-web/internal/commenttree"
	"github.com/sechive-dev/sechive-web/internal/domain"
	"github.com/sechive-dev/sechive-web/internal/logger"
	mw "github.com/sechive-dev/sechive-web/internal/middleware"
)

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common CommonTemplateData
}

func (h *Handler) initCommonTemplateData(w http.ResponseWriter, r *http.Request) CommonTemplateData {
	common := CommonTemplateData{
		User:      mw.GetUserFromContext(r),
		CSRFToken: mw.GetCSRFToken(r),
		Validation: ValidationData{
			CommentMaxLen:   h.Public.CommentMaxLen,
			PostTitleMaxLen: h.Public.PostTitleMaxLen,
			PostBodyMaxLen:  h.Public.PostBodyMaxLen,
		},
	}
	common.Error, common.Success = parseMessagesFromQuery(r)
	if common.Error == "" {
		common.Error = mw.PopFlashError(w, r)
	}
	return common
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	h.renderTemplateWithError(w, r, name, data, "")
}

func (h *Handler) renderTemplateWithError(w http.ResponseWriter, r *http.Request, name string, data any, errMsg string) {
	tmpl, ok := h.getTemplate(name)
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	common := h.initCommonTemplateData(w, r)
	if errMsg != "" {
		common.Error = errMsg
	}

	wrapped := TemplateData{
		Data:   data,
		Common: common,
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	_, _ = buf.WriteTo(w)
}

// renderPartial executes one named template from a page's template set,
// without the surrounding page chrome. Used for fragment responses.
func (h *Handler) renderPartial(w http.ResponseWriter, page, name string, data any) {
	tmpl, ok := h.getTemplate(page)
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", page), http.StatusInternalServerError)
		return
	}

	buf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(buf, name, data); err != nil {
		logger.Log.Error("error executing partial", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}
	_, _ = buf.WriteTo(w)
}

// renderComment transforms one reply-tree node into its view model,
// recursively descending into children. depth only controls indentation;
// there is no maximum.
func (h *Handler) renderComment(node *commenttree.Node, depth int) *CommentView {
	bodyHTML, _ := h.processBody(node.Body)
	view := &CommentView{
		Comment:   node.Comment,
		BodyHTML:  bodyHTML,
		AvatarURL: h.Media.Resolve(node.Author.AvatarURL),
		Depth:     depth,
		Children:  make([]*CommentView, len(node.Children)),
	}
	for i, child := range node.Children {
		view.Children[i] = h.renderComment(child, depth+1)
	}
	return view
}

// renderThread transforms the whole forest, roots at depth 0.
func (h *Handler) renderThread(roots []*commenttree.Node) []*CommentView {
	views := make([]*CommentView, len(roots))
	for i, root := range roots {
		views[i] = h.renderComment(root, 0)
	}
	return views
}

func (h *Handler) renderPost(post domain.Post) *PostView {
	bodyHTML, _ := h.processBody(post.Body)
	return &PostView{
		Post:      post,
		BodyHTML:  bodyHTML,
		AvatarURL: h.Media.Resolve(post.Author.AvatarURL),
	}
}

func (h *Handler) renderPosts(posts []domain.Post) []*PostView {
	views := make([]*PostView, len(posts))
	for i, post := range posts {
		views[i] = h.renderPost(post)
	}
	return views
}

func (h *Handler) processBody(body string) (template.HTML, []string) {
	rendered, mentions := h.TextProcessor.ProcessBody(body)
	return template.HTML(rendered), mentions
}
