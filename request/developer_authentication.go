package request

import "github.com/authlete/authlete-go-model/model"

var developerAuthenticationCallbackSchema = model.NewSchema("DeveloperAuthenticationCallbackRequest",
	model.String("id"),
	model.String("password"),
	model.String("sns"),
	model.String("accessToken"),
	model.String("refreshToken"),
	model.Int("expiresIn"),
	model.String("rawTokenResponse"),
)

// DeveloperAuthenticationCallbackRequest is the body Authlete posts to a
// service's developer authentication callback endpoint. For password login
// ID and Password are set; for social login SNS names the network and the
// token attributes carry what it returned.
type DeveloperAuthenticationCallbackRequest struct {
	model.Record
}

func NewDeveloperAuthenticationCallbackRequest(seed map[string]any) *DeveloperAuthenticationCallbackRequest {
	r := new(DeveloperAuthenticationCallbackRequest)
	r.Init(developerAuthenticationCallbackSchema).Update(seed)
	return r
}

func ParseDeveloperAuthenticationCallbackRequest(v any) *DeveloperAuthenticationCallbackRequest {
	obj, ok := model.AsObject(v)
	if !ok {
		return nil
	}
	return NewDeveloperAuthenticationCallbackRequest(obj)
}

func (r *DeveloperAuthenticationCallbackRequest) UnmarshalJSON(data []byte) error {
	if r.Schema() == nil {
		r.Init(developerAuthenticationCallbackSchema)
	}
	return r.Record.UnmarshalJSON(data)
}

func (r *DeveloperAuthenticationCallbackRequest) ID() string {
	return r.Text("id")
}

func (r *DeveloperAuthenticationCallbackRequest) Password() string {
	return r.Text("password")
}

func (r *DeveloperAuthenticationCallbackRequest) SNS() string {
	return r.Text("sns")
}

func (r *DeveloperAuthenticationCallbackRequest) AccessToken() string {
	return r.Text("accessToken")
}

func (r *DeveloperAuthenticationCallbackRequest) RefreshToken() string {
	return r.Text("refreshToken")
}

// ExpiresIn is the access token lifetime in seconds reported by the social
// network, or 0.
func (r *DeveloperAuthenticationCallbackRequest) ExpiresIn() int64 {
	return r.Int("expiresIn")
}

func (r *DeveloperAuthenticationCallbackRequest) RawTokenResponse() string {
	return r.Text("rawTokenResponse")
}

// IsSocialLogin reports whether the developer logged in through a social
// network rather than with an ID and password.
func (r *DeveloperAuthenticationCallbackRequest) IsSocialLogin() bool {
	return r.SNS() != ""
}
