package handler

import (
	"html/template"

	"github.com/sechive-dev/sechive-web/internal/api"
	"github.com/sechive-dev/sechive-web/internal/domain"
)

// CommonTemplateData holds fields common to all page templates.
// Available in templates as .Common via the TemplateData wrapper.
type CommonTemplateData struct {
	Error      string
	Success    string
	User       *domain.User
	CSRFToken  string
	Validation ValidationData
}

// ValidationData holds validation constants needed by form templates.
type ValidationData struct {
	CommentMaxLen   int
	PostTitleMaxLen int
	PostBodyMaxLen  int
}

// CommentView is one node of the rendered reply tree. Depth counts levels
// from the root and drives indentation only.
type CommentView struct {
	domain.Comment
	BodyHTML  template.HTML
	AvatarURL string
	Depth     int
	Children  []*CommentView
}

// PostView wraps a post with its rendered body.
type PostView struct {
	domain.Post
	BodyHTML  template.HTML
	AvatarURL string
}

// Page data

type FeedPageData struct {
	Posts        []*PostView
	NextCursor   string
	Kind         domain.PostKind
	ScrollOffset int
}

type PostPageData struct {
	Post          *PostView
	Thread        []*CommentView
	CommentCount  int
	ThreadVersion string
	PollInterval  int // seconds, for the refresh driver
}

type ThreadFragmentData struct {
	PostId        domain.PostId
	Thread        []*CommentView
	ThreadVersion string
	Common        CommonTemplateData
}

type GroupsPageData struct {
	Groups []domain.Group
}

type GroupPageData struct {
	Group      domain.Group
	Posts      []*PostView
	NextCursor string
}

type ProfilePageData struct {
	Profile   domain.Profile
	AvatarURL string
	Posts     []*PostView
}

type SearchPageData struct {
	Query   string
	Results domain.SearchResults
	Posts   []*PostView
}

type AdminPageData struct {
	Reports []api.Report
}
