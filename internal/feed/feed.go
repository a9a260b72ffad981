// Package feed renders stored posts as the HTML fragments served by GET /api/posts.
package feed

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"blogfeed/internal/models"
)

const timeLayout = "2006-01-02 15:04:05"

var postTemplate = template.Must(template.New("post").Funcs(template.FuncMap{
	"timestamp": func(t time.Time) string { return t.UTC().Format(timeLayout) },
	"isotime":   func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
	"ago":       humanize.Time,
}).Parse(`
<div data-id="{{.ID}}" class="post" style="margin-bottom: 1.5rem">
	<div>
		{{- with .ThumbnailURL}}
		<img class="post__thumbnail" src="{{.}}" />
		{{- end}}
		<p>{{.Content}}</p>
	</div>
	<div>
		Created by {{with .AvatarURL}}<img class="post__avatar" src="{{.}}" alt="{{$.User}}" /> {{end}}<strong>{{.User}}</strong> on <time datetime="{{isotime .CreatedAt}}" title="{{ago .CreatedAt}}">{{timestamp .CreatedAt}}</time>
	</div>
	<hr/>
</div>
`))

// Render concatenates one fragment per post in the given order.
// Content and user names are HTML-escaped.
func Render(posts []models.Post) (string, error) {
	var b strings.Builder
	for i := range posts {
		if err := postTemplate.Execute(&b, &posts[i]); err != nil {
			return "", fmt.Errorf("failed to render post %d: %w", posts[i].ID, err)
		}
	}
	return b.String(), nil
}
