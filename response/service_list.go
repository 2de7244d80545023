package response

import (
	authlete "github.com/authlete/authlete-go-model"
	"github.com/authlete/authlete-go-model/model"
)

var serviceListSchema = model.NewSchema("ServiceListResponse",
	model.Int("start"),
	model.Int("end"),
	model.Int("totalCount"),
	model.Objects("services", authlete.NewService(nil).Schema(), model.ParseFactory(authlete.ParseService)),
)

// ServiceListResponse is one page of the service list API. Services holds
// the entries from Start (inclusive) to End (exclusive) of TotalCount.
type ServiceListResponse struct {
	model.Record
}

func NewServiceListResponse(seed map[string]any) *ServiceListResponse {
	r := new(ServiceListResponse)
	r.Init(serviceListSchema).Update(seed)
	return r
}

func ParseServiceListResponse(v any) *ServiceListResponse {
	obj, ok := model.AsObject(v)
	if !ok {
		return nil
	}
	return NewServiceListResponse(obj)
}

func (r *ServiceListResponse) UnmarshalJSON(data []byte) error {
	if r.Schema() == nil {
		r.Init(serviceListSchema)
	}
	return r.Record.UnmarshalJSON(data)
}

func (r *ServiceListResponse) Start() int64 {
	return r.Int("start")
}

func (r *ServiceListResponse) SetStart(v int64) *ServiceListResponse {
	r.Set("start", v)
	return r
}

// End is the exclusive index of the last service in this page.
func (r *ServiceListResponse) End() int64 {
	return r.Int("end")
}

func (r *ServiceListResponse) SetEnd(v int64) *ServiceListResponse {
	r.Set("end", v)
	return r
}

// TotalCount is the number of services across all pages.
func (r *ServiceListResponse) TotalCount() int64 {
	return r.Int("totalCount")
}

func (r *ServiceListResponse) SetTotalCount(v int64) *ServiceListResponse {
	r.Set("totalCount", v)
	return r
}

func (r *ServiceListResponse) Services() []*authlete.Service {
	return model.Cast[authlete.Service](r.Models("services"))
}

func (r *ServiceListResponse) SetServices(v []*authlete.Service) *ServiceListResponse {
	r.SetModels("services", model.Upcast(v))
	return r
}
