package authlete

import "github.com/authlete/authlete-go-model/model"

var pairSchema = model.NewSchema("Pair",
	model.String("key"),
	model.String("value"),
)

// Pair is a string key-value pair. Services carry them as metadata;
// scopes and clients carry them as arbitrary attributes.
type Pair struct {
	model.Record
}

// NewPair returns a Pair built from seed. A nil seed yields the defaults.
func NewPair(seed map[string]any) *Pair {
	p := new(Pair)
	p.Init(pairSchema).Update(seed)
	return p
}

// ParsePair returns nil when v is nil or not an object.
func ParsePair(v any) *Pair {
	obj, ok := model.AsObject(v)
	if !ok {
		return nil
	}
	return NewPair(obj)
}

func (p *Pair) UnmarshalJSON(data []byte) error {
	if p.Schema() == nil {
		p.Init(pairSchema)
	}
	return p.Record.UnmarshalJSON(data)
}

// Key returns the key. Keys are not required to be unique.
func (p *Pair) Key() string {
	return p.Text("key")
}

func (p *Pair) SetKey(v string) *Pair {
	p.Set("key", v)
	return p
}

func (p *Pair) Value() string {
	return p.Text("value")
}

func (p *Pair) SetValue(v string) *Pair {
	p.Set("value", v)
	return p
}

var taggedValueSchema = model.NewSchema("TaggedValue",
	model.String("tag"),
	model.String("value"),
)

// TaggedValue is a value qualified by a BCP 47 language tag, such as a
// localized client name.
type TaggedValue struct {
	model.Record
}

// NewTaggedValue returns a TaggedValue built from seed. A nil seed yields the defaults.
func NewTaggedValue(seed map[string]any) *TaggedValue {
	tv := new(TaggedValue)
	tv.Init(taggedValueSchema).Update(seed)
	return tv
}

// ParseTaggedValue returns nil when v is nil or not an object.
func ParseTaggedValue(v any) *TaggedValue {
	obj, ok := model.AsObject(v)
	if !ok {
		return nil
	}
	return NewTaggedValue(obj)
}

func (tv *TaggedValue) UnmarshalJSON(data []byte) error {
	if tv.Schema() == nil {
		tv.Init(taggedValueSchema)
	}
	return tv.Record.UnmarshalJSON(data)
}

// Tag returns the language tag, e.g. "ja" or "en-US".
func (tv *TaggedValue) Tag() string {
	return tv.Text("tag")
}

func (tv *TaggedValue) SetTag(v string) *TaggedValue {
	tv.Set("tag", v)
	return tv
}

func (tv *TaggedValue) Value() string {
	return tv.Text("value")
}

func (tv *TaggedValue) SetValue(v string) *TaggedValue {
	tv.Set("value", v)
	return tv
}

var namedURISchema = model.NewSchema("NamedUri",
	model.String("name"),
	model.String("uri"),
)

// NamedURI pairs an endpoint name with its URI. Services use it for
// mutual-TLS endpoint aliases (RFC 8705).
type NamedURI struct {
	model.Record
}

// NewNamedURI returns a NamedURI built from seed. A nil seed yields the defaults.
func NewNamedURI(seed map[string]any) *NamedURI {
	n := new(NamedURI)
	n.Init(namedURISchema).Update(seed)
	return n
}

// ParseNamedURI returns nil when v is nil or not an object.
func ParseNamedURI(v any) *NamedURI {
	obj, ok := model.AsObject(v)
	if !ok {
		return nil
	}
	return NewNamedURI(obj)
}

func (n *NamedURI) UnmarshalJSON(data []byte) error {
	if n.Schema() == nil {
		n.Init(namedURISchema)
	}
	return n.Record.UnmarshalJSON(data)
}

// Name returns the endpoint name, e.g. "token_endpoint".
func (n *NamedURI) Name() string {
	return n.Text("name")
}

func (n *NamedURI) SetName(v string) *NamedURI {
	n.Set("name", v)
	return n
}

func (n *NamedURI) URI() string {
	return n.Text("uri")
}

func (n *NamedURI) SetURI(v string) *NamedURI {
	n.Set("uri", v)
	return n
}

var snsCredentialsSchema = model.NewSchema("SnsCredentials",
	model.String("sns"),
	model.String("apiKey"),
	model.String("apiSecret"),
)

// SNSCredentials holds the API credentials of one social network service
// used for login.
type SNSCredentials struct {
	model.Record
}

// NewSNSCredentials returns an SNSCredentials built from seed. A nil seed yields the defaults.
func NewSNSCredentials(seed map[string]any) *SNSCredentials {
	c := new(SNSCredentials)
	c.Init(snsCredentialsSchema).Update(seed)
	return c
}

// ParseSNSCredentials returns nil when v is nil or not an object.
func ParseSNSCredentials(v any) *SNSCredentials {
	obj, ok := model.AsObject(v)
	if !ok {
		return nil
	}
	return NewSNSCredentials(obj)
}

func (c *SNSCredentials) UnmarshalJSON(data []byte) error {
	if c.Schema() == nil {
		c.Init(snsCredentialsSchema)
	}
	return c.Record.UnmarshalJSON(data)
}

// SNS returns the network the credentials belong to, e.g.
// "FACEBOOK".
func (c *SNSCredentials) SNS() string {
	return c.Text("sns")
}

func (c *SNSCredentials) SetSNS(v string) *SNSCredentials {
	c.Set("sns", v)
	return c
}

// APIKey returns the API key issued by the network. It is a string, unlike
// Service.APIKey.
func (c *SNSCredentials) APIKey() string {
	return c.Text("apiKey")
}

func (c *SNSCredentials) SetAPIKey(v string) *SNSCredentials {
	c.Set("apiKey", v)
	return c
}

func (c *SNSCredentials) APISecret() string {
	return c.Text("apiSecret")
}

func (c *SNSCredentials) SetAPISecret(v string) *SNSCredentials {
	c.Set("apiSecret", v)
	return c
}

var scopeSchema = model.NewSchema("Scope",
	model.String("name"),
	model.Bool("defaultEntry"),
	model.String("description"),
	model.Objects("descriptions", taggedValueSchema, model.ParseFactory(ParseTaggedValue)),
	model.Objects("attributes", pairSchema, model.ParseFactory(ParsePair)),
)

// Scope is one scope supported by a service.
type Scope struct {
	model.Record
}

// NewScope returns a Scope built from seed. A nil seed yields the defaults.
func NewScope(seed map[string]any) *Scope {
	s := new(Scope)
	s.Init(scopeSchema).Update(seed)
	return s
}

// ParseScope returns nil when v is nil or not an object.
func ParseScope(v any) *Scope {
	obj, ok := model.AsObject(v)
	if !ok {
		return nil
	}
	return NewScope(obj)
}

func (s *Scope) UnmarshalJSON(data []byte) error {
	if s.Schema() == nil {
		s.Init(scopeSchema)
	}
	return s.Record.UnmarshalJSON(data)
}

func (s *Scope) Name() string {
	return s.Text("name")
}

func (s *Scope) SetName(v string) *Scope {
	s.Set("name", v)
	return s
}

// DefaultEntry reports whether the scope is applied when a request names
// no scope.
func (s *Scope) DefaultEntry() bool {
	return s.Bool("defaultEntry")
}

func (s *Scope) SetDefaultEntry(v bool) *Scope {
	s.Set("defaultEntry", v)
	return s
}

func (s *Scope) Description() string {
	return s.Text("description")
}

func (s *Scope) SetDescription(v string) *Scope {
	s.Set("description", v)
	return s
}

// Descriptions returns the localized descriptions.
func (s *Scope) Descriptions() []*TaggedValue {
	return model.Cast[TaggedValue](s.Models("descriptions"))
}

func (s *Scope) SetDescriptions(v []*TaggedValue) *Scope {
	s.SetModels("descriptions", model.Upcast(v))
	return s
}

// Attributes returns the arbitrary key-value pairs attached to the scope.
func (s *Scope) Attributes() []*Pair {
	return model.Cast[Pair](s.Models("attributes"))
}

func (s *Scope) SetAttributes(v []*Pair) *Scope {
	s.SetModels("attributes", model.Upcast(v))
	return s
}

var clientExtensionSchema = model.NewSchema("ClientExtension",
	model.Bool("requestableScopesEnabled"),
	model.Strings("requestableScopes"),
	model.Int("accessTokenDuration"),
	model.Int("refreshTokenDuration"),
)

// ClientExtension holds client settings that are specific to Authlete
// rather than defined by OAuth or OpenID Connect.
type ClientExtension struct {
	model.Record
}

// NewClientExtension returns a ClientExtension built from seed. A nil seed yields the defaults.
func NewClientExtension(seed map[string]any) *ClientExtension {
	e := new(ClientExtension)
	e.Init(clientExtensionSchema).Update(seed)
	return e
}

// ParseClientExtension returns nil when v is nil or not an object.
func ParseClientExtension(v any) *ClientExtension {
	obj, ok := model.AsObject(v)
	if !ok {
		return nil
	}
	return NewClientExtension(obj)
}

func (e *ClientExtension) UnmarshalJSON(data []byte) error {
	if e.Schema() == nil {
		e.Init(clientExtensionSchema)
	}
	return e.Record.UnmarshalJSON(data)
}

// RequestableScopesEnabled reports whether the client is limited to
// RequestableScopes instead of every scope of the service.
func (e *ClientExtension) RequestableScopesEnabled() bool {
	return e.Bool("requestableScopesEnabled")
}

func (e *ClientExtension) SetRequestableScopesEnabled(v bool) *ClientExtension {
	e.Set("requestableScopesEnabled", v)
	return e
}

func (e *ClientExtension) RequestableScopes() []string {
	return e.TextList("requestableScopes")
}

func (e *ClientExtension) SetRequestableScopes(v []string) *ClientExtension {
	e.SetTextList("requestableScopes", v)
	return e
}

// AccessTokenDuration overrides the service access token lifetime when
// non-zero.
func (e *ClientExtension) AccessTokenDuration() int64 {
	return e.Int("accessTokenDuration")
}

func (e *ClientExtension) SetAccessTokenDuration(v int64) *ClientExtension {
	e.Set("accessTokenDuration", v)
	return e
}

// RefreshTokenDuration overrides the service refresh token lifetime when
// non-zero.
func (e *ClientExtension) RefreshTokenDuration() int64 {
	return e.Int("refreshTokenDuration")
}

func (e *ClientExtension) SetRefreshTokenDuration(v int64) *ClientExtension {
	e.Set("refreshTokenDuration", v)
	return e
}
