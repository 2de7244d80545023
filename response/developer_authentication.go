package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/authlete/authlete-go-model/model"
	"github.com/labstack/echo/v4"
)

// MIMEApplicationJSONUTF8 is the content type of callback responses.
const MIMEApplicationJSONUTF8 = "application/json;charset=UTF-8"

var developerAuthenticationCallbackSchema = model.NewSchema("DeveloperAuthenticationCallbackResponse",
	model.Bool("authenticated"),
	model.String("subject"),
	model.String("displayName"),
)

// DeveloperAuthenticationCallbackResponse is what a developer authentication
// callback endpoint returns to Authlete.
type DeveloperAuthenticationCallbackResponse struct {
	model.Record
}

func NewDeveloperAuthenticationCallbackResponse(seed map[string]any) *DeveloperAuthenticationCallbackResponse {
	r := new(DeveloperAuthenticationCallbackResponse)
	r.Init(developerAuthenticationCallbackSchema).Update(seed)
	return r
}

func ParseDeveloperAuthenticationCallbackResponse(v any) *DeveloperAuthenticationCallbackResponse {
	obj, ok := model.AsObject(v)
	if !ok {
		return nil
	}
	return NewDeveloperAuthenticationCallbackResponse(obj)
}

func (r *DeveloperAuthenticationCallbackResponse) UnmarshalJSON(data []byte) error {
	if r.Schema() == nil {
		r.Init(developerAuthenticationCallbackSchema)
	}
	return r.Record.UnmarshalJSON(data)
}

func (r *DeveloperAuthenticationCallbackResponse) Authenticated() bool {
	return r.Bool("authenticated")
}

func (r *DeveloperAuthenticationCallbackResponse) SetAuthenticated(v bool) *DeveloperAuthenticationCallbackResponse {
	r.Set("authenticated", v)
	return r
}

// Subject identifies the authenticated developer.
func (r *DeveloperAuthenticationCallbackResponse) Subject() string {
	return r.Text("subject")
}

func (r *DeveloperAuthenticationCallbackResponse) SetSubject(v string) *DeveloperAuthenticationCallbackResponse {
	r.Set("subject", v)
	return r
}

func (r *DeveloperAuthenticationCallbackResponse) DisplayName() string {
	return r.Text("displayName")
}

func (r *DeveloperAuthenticationCallbackResponse) SetDisplayName(v string) *DeveloperAuthenticationCallbackResponse {
	r.Set("displayName", v)
	return r
}

// Render writes r as the 200 response of an echo handler. Callback
// responses must not be cached.
func (r *DeveloperAuthenticationCallbackResponse) Render(e echo.Context) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("response: encoding %s: %w", developerAuthenticationCallbackSchema.Name(), err)
	}
	h := e.Response().Header()
	h.Set(echo.HeaderCacheControl, "no-store")
	h.Set("Pragma", "no-cache")
	return e.Blob(http.StatusOK, MIMEApplicationJSONUTF8, body)
}
