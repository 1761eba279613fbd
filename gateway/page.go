package gateway

import (
	"net/http"

	"github.com/0glabs/lunch-buddies/grouping"
	"github.com/0glabs/lunch-buddies/session"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// avatar colors, cycled by position
var colors = []string{"primary", "success", "danger", "warning", "info", "secondary", "dark"}

type personView struct {
	Index    int
	Name     string
	Initials string
	Color    string
}

type groupView struct {
	Number  int
	Members []personView
}

type pageView struct {
	People       []personView
	Groups       []groupView
	GroupSize    int
	MinGroupSize int
}

func newPersonView(name string, index int) personView {
	return personView{
		Index:    index,
		Name:     name,
		Initials: grouping.Initials(name),
		Color:    colors[index%len(colors)],
	}
}

func newPageView(state session.State) pageView {
	return pageView{
		People: lo.Map(state.Roster, func(name string, i int) personView {
			return newPersonView(name, i)
		}),
		Groups: lo.Map(state.Grouping, func(group grouping.Group, i int) groupView {
			return groupView{
				Number:  i + 1,
				Members: lo.Map(group, newPersonView),
			}
		}),
		GroupSize:    state.GroupSize,
		MinGroupSize: session.MinGroupSize,
	}
}

func (ctrl *RestController) renderPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", newPageView(currentSession(c).Snapshot()))
}

// formAction applies a session event from a browser form and redirects back to
// the page. Rejected events leave the session unchanged.
func formAction(controller func(c *gin.Context) (interface{}, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := controller(c); err != nil {
			logrus.WithError(err).WithField("path", c.FullPath()).Debug("Form action ignored")
		}

		c.Redirect(http.StatusSeeOther, "/")
	}
}
