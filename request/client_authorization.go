package request

import "github.com/authlete/authlete-go-model/model"

var clientAuthorizationGetListSchema = model.NewSchema("ClientAuthorizationGetListRequest",
	model.String("subject"),
	model.Int("start"),
	model.Int("end"),
	model.String("developer"),
)

// ClientAuthorizationGetListRequest asks for the clients a user has
// authorized. Start and End select a range of the result list.
type ClientAuthorizationGetListRequest struct {
	model.Record
}

func NewClientAuthorizationGetListRequest(seed map[string]any) *ClientAuthorizationGetListRequest {
	r := new(ClientAuthorizationGetListRequest)
	r.Init(clientAuthorizationGetListSchema).Update(seed)
	return r
}

// ParseClientAuthorizationGetListRequest returns nil when v is nil or not an
// object.
func ParseClientAuthorizationGetListRequest(v any) *ClientAuthorizationGetListRequest {
	obj, ok := model.AsObject(v)
	if !ok {
		return nil
	}
	return NewClientAuthorizationGetListRequest(obj)
}

func (r *ClientAuthorizationGetListRequest) UnmarshalJSON(data []byte) error {
	if r.Schema() == nil {
		r.Init(clientAuthorizationGetListSchema)
	}
	return r.Record.UnmarshalJSON(data)
}

// Subject is the user whose authorizations are listed.
func (r *ClientAuthorizationGetListRequest) Subject() string {
	return r.Text("subject")
}

func (r *ClientAuthorizationGetListRequest) SetSubject(v string) *ClientAuthorizationGetListRequest {
	r.Set("subject", v)
	return r
}

func (r *ClientAuthorizationGetListRequest) Start() int64 {
	return r.Int("start")
}

func (r *ClientAuthorizationGetListRequest) SetStart(v int64) *ClientAuthorizationGetListRequest {
	r.Set("start", v)
	return r
}

func (r *ClientAuthorizationGetListRequest) End() int64 {
	return r.Int("end")
}

func (r *ClientAuthorizationGetListRequest) SetEnd(v int64) *ClientAuthorizationGetListRequest {
	r.Set("end", v)
	return r
}

// Developer restricts the list to clients of one developer.
func (r *ClientAuthorizationGetListRequest) Developer() string {
	return r.Text("developer")
}

func (r *ClientAuthorizationGetListRequest) SetDeveloper(v string) *ClientAuthorizationGetListRequest {
	r.Set("developer", v)
	return r
}
