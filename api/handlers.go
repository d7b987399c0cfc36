package api

import (
	"io"
	"io/ioutil"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/shule/client"
	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/session"
	"github.com/trezcool/shule/core/user"
)

const maxStoryBytes = 10 << 20

type schoolAPI struct {
	dir *directory
}

func registerAPI(g *echo.Group, jwt echo.MiddlewareFunc, dir *directory) {
	api := schoolAPI{dir: dir}

	ug := g.Group("/users")
	ug.POST("/login", api.login)

	ag := g.Group("", jwt)
	ag.POST("/users/logout", api.logout)
	ag.GET("/users/me", api.me)
	ag.POST("/users/password-change", api.changePassword)

	ag.GET("/attendance", api.attendance)
	ag.GET("/fees", api.fees)
	ag.GET("/chats", api.chats)
	ag.GET("/chats/:id", api.chatMessages)

	ag.GET("/stories", api.stories)
	ag.POST("/stories", api.postStory, roleMiddleware(
		user.RoleAdmin, user.RoleFranchisee, user.RoleTeacher, user.RoleTuitionTeacher,
	))
}

// Handlers

type loginResponse struct {
	Token   string       `json:"token"`
	Profile user.Profile `json:"profile"`
	Role    string       `json:"role"`
}

func (api *schoolAPI) login(ctx echo.Context) error {
	var data session.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	claims, err := authenticate(data.Username, data.Password, api.dir)
	if err != nil {
		return err
	}
	token, err := generateToken(claims)
	if err != nil {
		return errors.Wrap(err, "generating token")
	}

	acct, err := api.dir.getByUsername(data.Username)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, loginResponse{
		Token:   token,
		Profile: acct.Profile,
		Role:    acct.Role.String(),
	})
}

func (api *schoolAPI) logout(ctx echo.Context) error {
	// tokens are stateless here; the real backend revokes server-side
	return respond(ctx, http.StatusOK, nil)
}

func (api *schoolAPI) me(ctx echo.Context) error {
	acct, err := getContextAccount(ctx, api.dir)
	if err != nil {
		return err
	}
	return respond(ctx, http.StatusOK, acct.Profile)
}

func (api *schoolAPI) changePassword(ctx echo.Context) error {
	acct, err := getContextAccount(ctx, api.dir)
	if err != nil {
		return err
	}

	var data user.ChangePassword
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ChangePassword")
	}
	data.Name = acct.Profile.Name
	data.Username = acct.Username
	data.Email = acct.Profile.Email.String
	if err := data.Validate(); err != nil {
		return err
	}
	if err := acct.checkPassword(data.OldPassword); err != nil {
		return core.NewValidationError(errors.New("old password is incorrect"))
	}

	api.dir.mutex.Lock()
	defer api.dir.mutex.Unlock()
	if stored, ok := api.dir.accounts[acct.Profile.ID]; ok {
		if err := stored.setPassword(data.Password); err != nil {
			return errors.Wrap(err, "setting password")
		}
	}
	return respond(ctx, http.StatusOK, nil)
}

func (api *schoolAPI) attendance(ctx echo.Context) error {
	acct, err := getContextAccount(ctx, api.dir)
	if err != nil {
		return err
	}
	month := ctx.QueryParam("month")
	if month == "" {
		month = time.Now().UTC().Format("2006-01")
	}

	api.dir.mutex.RLock()
	defer api.dir.mutex.RUnlock()
	days := make([]client.AttendanceDay, 0)
	for _, day := range api.dir.attendance[acct.Profile.ID] {
		if len(day.Date) >= len(month) && day.Date[:len(month)] == month {
			days = append(days, day)
		}
	}
	return respond(ctx, http.StatusOK, days)
}

func (api *schoolAPI) fees(ctx echo.Context) error {
	acct, err := getContextAccount(ctx, api.dir)
	if err != nil {
		return err
	}
	api.dir.mutex.RLock()
	defer api.dir.mutex.RUnlock()
	return respond(ctx, http.StatusOK, api.dir.fees[acct.Profile.ID])
}

func (api *schoolAPI) chats(ctx echo.Context) error {
	acct, err := getContextAccount(ctx, api.dir)
	if err != nil {
		return err
	}
	api.dir.mutex.RLock()
	defer api.dir.mutex.RUnlock()
	return respond(ctx, http.StatusOK, api.dir.chats[acct.Profile.ID])
}

func (api *schoolAPI) chatMessages(ctx echo.Context) error {
	if _, err := getContextAccount(ctx, api.dir); err != nil {
		return err
	}
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHTTPNotFound
	}

	api.dir.mutex.RLock()
	defer api.dir.mutex.RUnlock()
	msgs, ok := api.dir.messages[id]
	if !ok {
		return errHTTPNotFound
	}
	return respond(ctx, http.StatusOK, msgs)
}

func (api *schoolAPI) stories(ctx echo.Context) error {
	api.dir.mutex.RLock()
	defer api.dir.mutex.RUnlock()
	return respond(ctx, http.StatusOK, api.dir.stories)
}

func (api *schoolAPI) postStory(ctx echo.Context) error {
	acct, err := getContextAccount(ctx, api.dir)
	if err != nil {
		return err
	}

	fileHdr, err := ctx.FormFile("media")
	if err != nil {
		return core.NewValidationError(errors.New("media file is required"))
	}
	if fileHdr.Size > maxStoryBytes {
		return core.NewValidationError(errors.New("media file too large"))
	}
	file, err := fileHdr.Open()
	if err != nil {
		return errors.Wrap(err, "opening media upload")
	}
	defer file.Close()
	// the demo server discards the bytes; the real one stores them
	if _, err := io.Copy(ioutil.Discard, file); err != nil {
		return errors.Wrap(err, "reading media upload")
	}

	story := api.dir.addStory(client.Story{
		Caption:  core.CleanString(ctx.FormValue("caption")),
		MediaURL: "/media/stories/" + fileHdr.Filename,
		PostedBy: acct.Profile.Name,
		PostedAt: time.Now().UTC(),
	})
	return respond(ctx, http.StatusCreated, story)
}
