package gateway

import (
	"strconv"

	"github.com/0glabs/lunch-buddies/common/api"
	"github.com/0glabs/lunch-buddies/common/util"
	"github.com/0glabs/lunch-buddies/grouping"
	"github.com/0glabs/lunch-buddies/session"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	sessionCookie   = "lunch_session"
	sessionKey      = "session"
	cookieMaxAgeSec = 7 * 24 * 3600
)

type RestController struct {
	store *session.Store
}

func NewRestController(store *session.Store) *RestController {
	return &RestController{store: store}
}

// withSession binds the request to the session named by cookie, creating one if needed.
func (ctrl *RestController) withSession(c *gin.Context) {
	id, _ := c.Cookie(sessionCookie)

	s, created := ctrl.store.GetOrCreate(id)
	if created {
		logrus.WithField("id", s.ID()).Debug("New session bound to client")
	}

	// refresh cookie lifetime on every request
	c.SetCookie(sessionCookie, s.ID(), cookieMaxAgeSec, "/", "", false, true)
	c.Set(sessionKey, s)
	c.Next()
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

// bind parses the request body, reporting malformed input as a validation error.
func bind(c *gin.Context, input interface{}) error {
	err := c.ShouldBind(input)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return err
	}

	return api.ErrValidation.WithData(err.Error())
}

func parseIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, api.ErrValidation.WithData("index must be an integer")
	}

	return index, nil
}

func (ctrl *RestController) getSession(c *gin.Context) (interface{}, error) {
	return currentSession(c).Snapshot(), nil
}

func (ctrl *RestController) addPerson(c *gin.Context) (interface{}, error) {
	var input struct {
		Name string `form:"name" json:"name"`
	}

	if err := bind(c, &input); err != nil {
		return nil, err
	}

	s := currentSession(c)
	if err := s.AddPerson(input.Name); err != nil {
		return nil, toBusinessError(err)
	}

	return s.Snapshot(), nil
}

func (ctrl *RestController) removePerson(c *gin.Context) (interface{}, error) {
	index, err := parseIndex(c)
	if err != nil {
		return nil, err
	}

	s := currentSession(c)
	if err := s.RemovePerson(index); err != nil {
		return nil, toBusinessError(err)
	}

	return s.Snapshot(), nil
}

func (ctrl *RestController) setGroupSize(c *gin.Context) (interface{}, error) {
	var input struct {
		Size int `form:"size" json:"size"`
	}

	if err := bind(c, &input); err != nil {
		return nil, err
	}

	s := currentSession(c)
	if err := s.SetGroupSize(input.Size); err != nil {
		return nil, toBusinessError(err)
	}

	return s.Snapshot(), nil
}

func (ctrl *RestController) createGroups(c *gin.Context) (interface{}, error) {
	s := currentSession(c)
	groups := s.CreateGroups()

	logrus.WithFields(logrus.Fields{
		"id":     s.ID(),
		"groups": groups.Count(),
		"people": groups.Members(),
	}).Debug("Groups created")

	return s.Snapshot(), nil
}

func (ctrl *RestController) reset(c *gin.Context) (interface{}, error) {
	s := currentSession(c)
	s.Reset()

	return s.Snapshot(), nil
}

// partition groups the posted names without touching any session.
func partition(c *gin.Context) (interface{}, error) {
	var input struct {
		Names []string `json:"names"`
		Size  int      `json:"size"`
		Seed  uint64   `json:"seed"`
	}

	if err := bind(c, &input); err != nil {
		return nil, err
	}

	names := grouping.NormalizeNames(input.Names)

	return grouping.Partition(names, input.Size, grouping.Option{Rand: util.NewRand(input.Seed)}), nil
}
