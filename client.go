package authlete

import "github.com/authlete/authlete-go-model/model"

var clientSchema = model.NewSchema("Client",
	model.String("developer"),
	model.Int("clientId"),
	model.String("clientIdAlias"),
	model.Bool("clientIdAliasEnabled"),
	model.String("clientSecret"),
	model.String("clientType"),
	model.Strings("redirectUris"),
	model.Strings("responseTypes"),
	model.Strings("grantTypes"),
	model.String("applicationType"),
	model.Strings("contacts"),
	model.String("clientName"),
	model.Objects("clientNames", taggedValueSchema, model.ParseFactory(ParseTaggedValue)),
	model.String("logoUri"),
	model.Objects("logoUris", taggedValueSchema, model.ParseFactory(ParseTaggedValue)),
	model.String("clientUri"),
	model.Objects("clientUris", taggedValueSchema, model.ParseFactory(ParseTaggedValue)),
	model.String("policyUri"),
	model.Objects("policyUris", taggedValueSchema, model.ParseFactory(ParseTaggedValue)),
	model.String("tosUri"),
	model.Objects("tosUris", taggedValueSchema, model.ParseFactory(ParseTaggedValue)),
	model.String("jwksUri"),
	model.String("jwks"),
	model.String("derivedSectorIdentifier"),
	model.String("sectorIdentifierUri"),
	model.String("subjectType"),
	model.String("idTokenSignAlg"),
	model.String("idTokenEncryptionAlg"),
	model.String("idTokenEncryptionEnc"),
	model.String("userInfoSignAlg"),
	model.String("userInfoEncryptionAlg"),
	model.String("userInfoEncryptionEnc"),
	model.String("requestSignAlg"),
	model.String("requestEncryptionAlg"),
	model.String("requestEncryptionEnc"),
	model.String("tokenAuthMethod", model.Alias("token_endpoint_auth_method")),
	model.String("tokenAuthSignAlg", model.Alias("token_endpoint_auth_signing_alg")),
	model.Int("defaultMaxAge"),
	model.Strings("defaultAcrs"),
	model.Bool("authTimeRequired"),
	model.String("loginUri"),
	model.Strings("requestUris"),
	model.String("description"),
	model.Objects("descriptions", taggedValueSchema, model.ParseFactory(ParseTaggedValue)),
	model.Int("createdAt"),
	model.Int("modifiedAt"),
	model.Object("extension", clientExtensionSchema, model.ParseFactory(ParseClientExtension)),
	model.String("tlsClientAuthSubjectDn"),
	model.Bool("tlsClientCertificateBoundAccessTokens"),
	model.String("selfSignedCertificateKeyId"),
	model.String("softwareId"),
	model.String("softwareVersion"),
	model.String("authorizationSignAlg"),
	model.String("authorizationEncryptionAlg"),
	model.String("authorizationEncryptionEnc"),
	model.String("bcDeliveryMode"),
	model.String("bcNotificationEndpoint"),
	model.String("bcRequestSignAlg"),
	model.Bool("bcUserCodeRequired"),
	model.Bool("dynamicallyRegistered"),
	model.Objects("attributes", pairSchema, model.ParseFactory(ParsePair)),
)

// Client is a client application registered with a service. Most
// attributes mirror the client metadata of OpenID Connect Dynamic Client
// Registration; the input spellings token_endpoint_auth_method and
// token_endpoint_auth_signing_alg from RFC 7591 are accepted as well.
//
// The zero value is only usable as a json.Unmarshal target; use NewClient
// or ParseClient otherwise.
type Client struct {
	model.Record
}

// NewClient returns a Client built from seed. A nil seed yields the defaults.
func NewClient(seed map[string]any) *Client {
	c := new(Client)
	c.Init(clientSchema).Update(seed)
	return c
}

// ParseClient returns nil when v is nil or not an object.
func ParseClient(v any) *Client {
	obj, ok := model.AsObject(v)
	if !ok {
		return nil
	}
	return NewClient(obj)
}

func (c *Client) UnmarshalJSON(data []byte) error {
	if c.Schema() == nil {
		c.Init(clientSchema)
	}
	return c.Record.UnmarshalJSON(data)
}

// Developer returns the login ID of the developer who owns the client.
func (c *Client) Developer() string {
	return c.Text("developer")
}

func (c *Client) SetDeveloper(v string) *Client {
	c.Set("developer", v)
	return c
}

// ClientID returns the client ID. It is a number in the API; ClientIDAlias
// holds the string form clients may present instead.
func (c *Client) ClientID() int64 {
	return c.Int("clientId")
}

func (c *Client) SetClientID(v int64) *Client {
	c.Set("clientId", v)
	return c
}

func (c *Client) ClientIDAlias() string {
	return c.Text("clientIdAlias")
}

func (c *Client) SetClientIDAlias(v string) *Client {
	c.Set("clientIdAlias", v)
	return c
}

func (c *Client) ClientIDAliasEnabled() bool {
	return c.Bool("clientIdAliasEnabled")
}

func (c *Client) SetClientIDAliasEnabled(v bool) *Client {
	c.Set("clientIdAliasEnabled", v)
	return c
}

func (c *Client) ClientSecret() string {
	return c.Text("clientSecret")
}

func (c *Client) SetClientSecret(v string) *Client {
	c.Set("clientSecret", v)
	return c
}

// ClientType returns "PUBLIC" or "CONFIDENTIAL".
func (c *Client) ClientType() string {
	return c.Text("clientType")
}

func (c *Client) SetClientType(v string) *Client {
	c.Set("clientType", v)
	return c
}

func (c *Client) RedirectURIs() []string {
	return c.TextList("redirectUris")
}

func (c *Client) SetRedirectURIs(v []string) *Client {
	c.SetTextList("redirectUris", v)
	return c
}

func (c *Client) ResponseTypes() []string {
	return c.TextList("responseTypes")
}

func (c *Client) SetResponseTypes(v []string) *Client {
	c.SetTextList("responseTypes", v)
	return c
}

func (c *Client) GrantTypes() []string {
	return c.TextList("grantTypes")
}

func (c *Client) SetGrantTypes(v []string) *Client {
	c.SetTextList("grantTypes", v)
	return c
}

func (c *Client) ApplicationType() string {
	return c.Text("applicationType")
}

func (c *Client) SetApplicationType(v string) *Client {
	c.Set("applicationType", v)
	return c
}

func (c *Client) Contacts() []string {
	return c.TextList("contacts")
}

func (c *Client) SetContacts(v []string) *Client {
	c.SetTextList("contacts", v)
	return c
}

func (c *Client) ClientName() string {
	return c.Text("clientName")
}

func (c *Client) SetClientName(v string) *Client {
	c.Set("clientName", v)
	return c
}

// ClientNames returns the localized client names.
func (c *Client) ClientNames() []*TaggedValue {
	return model.Cast[TaggedValue](c.Models("clientNames"))
}

func (c *Client) SetClientNames(v []*TaggedValue) *Client {
	c.SetModels("clientNames", model.Upcast(v))
	return c
}

func (c *Client) LogoURI() string {
	return c.Text("logoUri")
}

func (c *Client) SetLogoURI(v string) *Client {
	c.Set("logoUri", v)
	return c
}

func (c *Client) LogoURIs() []*TaggedValue {
	return model.Cast[TaggedValue](c.Models("logoUris"))
}

func (c *Client) SetLogoURIs(v []*TaggedValue) *Client {
	c.SetModels("logoUris", model.Upcast(v))
	return c
}

func (c *Client) ClientURI() string {
	return c.Text("clientUri")
}

func (c *Client) SetClientURI(v string) *Client {
	c.Set("clientUri", v)
	return c
}

func (c *Client) ClientURIs() []*TaggedValue {
	return model.Cast[TaggedValue](c.Models("clientUris"))
}

func (c *Client) SetClientURIs(v []*TaggedValue) *Client {
	c.SetModels("clientUris", model.Upcast(v))
	return c
}

func (c *Client) PolicyURI() string {
	return c.Text("policyUri")
}

func (c *Client) SetPolicyURI(v string) *Client {
	c.Set("policyUri", v)
	return c
}

func (c *Client) PolicyURIs() []*TaggedValue {
	return model.Cast[TaggedValue](c.Models("policyUris"))
}

func (c *Client) SetPolicyURIs(v []*TaggedValue) *Client {
	c.SetModels("policyUris", model.Upcast(v))
	return c
}

func (c *Client) TosURI() string {
	return c.Text("tosUri")
}

func (c *Client) SetTosURI(v string) *Client {
	c.Set("tosUri", v)
	return c
}

func (c *Client) TosURIs() []*TaggedValue {
	return model.Cast[TaggedValue](c.Models("tosUris"))
}

func (c *Client) SetTosURIs(v []*TaggedValue) *Client {
	c.SetModels("tosUris", model.Upcast(v))
	return c
}

func (c *Client) JWKSURI() string {
	return c.Text("jwksUri")
}

func (c *Client) SetJWKSURI(v string) *Client {
	c.Set("jwksUri", v)
	return c
}

// JWKS returns the client's JSON Web Key Set as a JSON string.
func (c *Client) JWKS() string {
	return c.Text("jwks")
}

func (c *Client) SetJWKS(v string) *Client {
	c.Set("jwks", v)
	return c
}

// DerivedSectorIdentifier returns the sector identifier computed by Authlete from
// the redirect URIs. It is read-only in the API.
func (c *Client) DerivedSectorIdentifier() string {
	return c.Text("derivedSectorIdentifier")
}

func (c *Client) SetDerivedSectorIdentifier(v string) *Client {
	c.Set("derivedSectorIdentifier", v)
	return c
}

func (c *Client) SectorIdentifierURI() string {
	return c.Text("sectorIdentifierUri")
}

func (c *Client) SetSectorIdentifierURI(v string) *Client {
	c.Set("sectorIdentifierUri", v)
	return c
}

// SubjectType returns "PUBLIC" or "PAIRWISE".
func (c *Client) SubjectType() string {
	return c.Text("subjectType")
}

func (c *Client) SetSubjectType(v string) *Client {
	c.Set("subjectType", v)
	return c
}

func (c *Client) IDTokenSignAlg() string {
	return c.Text("idTokenSignAlg")
}

func (c *Client) SetIDTokenSignAlg(v string) *Client {
	c.Set("idTokenSignAlg", v)
	return c
}

func (c *Client) IDTokenEncryptionAlg() string {
	return c.Text("idTokenEncryptionAlg")
}

func (c *Client) SetIDTokenEncryptionAlg(v string) *Client {
	c.Set("idTokenEncryptionAlg", v)
	return c
}

func (c *Client) IDTokenEncryptionEnc() string {
	return c.Text("idTokenEncryptionEnc")
}

func (c *Client) SetIDTokenEncryptionEnc(v string) *Client {
	c.Set("idTokenEncryptionEnc", v)
	return c
}

func (c *Client) UserInfoSignAlg() string {
	return c.Text("userInfoSignAlg")
}

func (c *Client) SetUserInfoSignAlg(v string) *Client {
	c.Set("userInfoSignAlg", v)
	return c
}

func (c *Client) UserInfoEncryptionAlg() string {
	return c.Text("userInfoEncryptionAlg")
}

func (c *Client) SetUserInfoEncryptionAlg(v string) *Client {
	c.Set("userInfoEncryptionAlg", v)
	return c
}

func (c *Client) UserInfoEncryptionEnc() string {
	return c.Text("userInfoEncryptionEnc")
}

func (c *Client) SetUserInfoEncryptionEnc(v string) *Client {
	c.Set("userInfoEncryptionEnc", v)
	return c
}

func (c *Client) RequestSignAlg() string {
	return c.Text("requestSignAlg")
}

func (c *Client) SetRequestSignAlg(v string) *Client {
	c.Set("requestSignAlg", v)
	return c
}

func (c *Client) RequestEncryptionAlg() string {
	return c.Text("requestEncryptionAlg")
}

func (c *Client) SetRequestEncryptionAlg(v string) *Client {
	c.Set("requestEncryptionAlg", v)
	return c
}

func (c *Client) RequestEncryptionEnc() string {
	return c.Text("requestEncryptionEnc")
}

func (c *Client) SetRequestEncryptionEnc(v string) *Client {
	c.Set("requestEncryptionEnc", v)
	return c
}

// TokenAuthMethod returns the client authentication method used at the token
// endpoint (token_endpoint_auth_method).
func (c *Client) TokenAuthMethod() string {
	return c.Text("tokenAuthMethod")
}

func (c *Client) SetTokenAuthMethod(v string) *Client {
	c.Set("tokenAuthMethod", v)
	return c
}

// TokenAuthSignAlg returns the JWS algorithm for client assertions
// (token_endpoint_auth_signing_alg).
func (c *Client) TokenAuthSignAlg() string {
	return c.Text("tokenAuthSignAlg")
}

func (c *Client) SetTokenAuthSignAlg(v string) *Client {
	c.Set("tokenAuthSignAlg", v)
	return c
}

// DefaultMaxAge returns the default max_age in seconds. Zero means none.
func (c *Client) DefaultMaxAge() int64 {
	return c.Int("defaultMaxAge")
}

func (c *Client) SetDefaultMaxAge(v int64) *Client {
	c.Set("defaultMaxAge", v)
	return c
}

func (c *Client) DefaultACRs() []string {
	return c.TextList("defaultAcrs")
}

func (c *Client) SetDefaultACRs(v []string) *Client {
	c.SetTextList("defaultAcrs", v)
	return c
}

// AuthTimeRequired reports whether ID tokens must carry the auth_time claim.
func (c *Client) AuthTimeRequired() bool {
	return c.Bool("authTimeRequired")
}

func (c *Client) SetAuthTimeRequired(v bool) *Client {
	c.Set("authTimeRequired", v)
	return c
}

func (c *Client) LoginURI() string {
	return c.Text("loginUri")
}

func (c *Client) SetLoginURI(v string) *Client {
	c.Set("loginUri", v)
	return c
}

func (c *Client) RequestURIs() []string {
	return c.TextList("requestUris")
}

func (c *Client) SetRequestURIs(v []string) *Client {
	c.SetTextList("requestUris", v)
	return c
}

func (c *Client) Description() string {
	return c.Text("description")
}

func (c *Client) SetDescription(v string) *Client {
	c.Set("description", v)
	return c
}

func (c *Client) Descriptions() []*TaggedValue {
	return model.Cast[TaggedValue](c.Models("descriptions"))
}

func (c *Client) SetDescriptions(v []*TaggedValue) *Client {
	c.SetModels("descriptions", model.Upcast(v))
	return c
}

func (c *Client) CreatedAt() int64 {
	return c.Int("createdAt")
}

func (c *Client) SetCreatedAt(v int64) *Client {
	c.Set("createdAt", v)
	return c
}

func (c *Client) ModifiedAt() int64 {
	return c.Int("modifiedAt")
}

func (c *Client) SetModifiedAt(v int64) *Client {
	c.Set("modifiedAt", v)
	return c
}

// Extension returns nil when the attribute is absent.
func (c *Client) Extension() *ClientExtension {
	v, _ := c.Model("extension").(*ClientExtension)
	return v
}

// SetExtension stores v. A nil v clears the attribute.
func (c *Client) SetExtension(v *ClientExtension) *Client {
	c.Set("extension", model.Box(v))
	return c
}

// TLSClientAuthSubjectDN returns the expected subject DN of the client
// certificate in PKI mutual TLS.
func (c *Client) TLSClientAuthSubjectDN() string {
	return c.Text("tlsClientAuthSubjectDn")
}

func (c *Client) SetTLSClientAuthSubjectDN(v string) *Client {
	c.Set("tlsClientAuthSubjectDn", v)
	return c
}

func (c *Client) TLSClientCertificateBoundAccessTokens() bool {
	return c.Bool("tlsClientCertificateBoundAccessTokens")
}

func (c *Client) SetTLSClientCertificateBoundAccessTokens(v bool) *Client {
	c.Set("tlsClientCertificateBoundAccessTokens", v)
	return c
}

// SelfSignedCertificateKeyID returns the key ID of the certificate used for
// self-signed mutual TLS.
func (c *Client) SelfSignedCertificateKeyID() string {
	return c.Text("selfSignedCertificateKeyId")
}

func (c *Client) SetSelfSignedCertificateKeyID(v string) *Client {
	c.Set("selfSignedCertificateKeyId", v)
	return c
}

func (c *Client) SoftwareID() string {
	return c.Text("softwareId")
}

func (c *Client) SetSoftwareID(v string) *Client {
	c.Set("softwareId", v)
	return c
}

func (c *Client) SoftwareVersion() string {
	return c.Text("softwareVersion")
}

func (c *Client) SetSoftwareVersion(v string) *Client {
	c.Set("softwareVersion", v)
	return c
}

func (c *Client) AuthorizationSignAlg() string {
	return c.Text("authorizationSignAlg")
}

func (c *Client) SetAuthorizationSignAlg(v string) *Client {
	c.Set("authorizationSignAlg", v)
	return c
}

func (c *Client) AuthorizationEncryptionAlg() string {
	return c.Text("authorizationEncryptionAlg")
}

func (c *Client) SetAuthorizationEncryptionAlg(v string) *Client {
	c.Set("authorizationEncryptionAlg", v)
	return c
}

func (c *Client) AuthorizationEncryptionEnc() string {
	return c.Text("authorizationEncryptionEnc")
}

func (c *Client) SetAuthorizationEncryptionEnc(v string) *Client {
	c.Set("authorizationEncryptionEnc", v)
	return c
}

// BCDeliveryMode returns the CIBA token delivery mode: "POLL", "PING" or "PUSH".
func (c *Client) BCDeliveryMode() string {
	return c.Text("bcDeliveryMode")
}

func (c *Client) SetBCDeliveryMode(v string) *Client {
	c.Set("bcDeliveryMode", v)
	return c
}

func (c *Client) BCNotificationEndpoint() string {
	return c.Text("bcNotificationEndpoint")
}

func (c *Client) SetBCNotificationEndpoint(v string) *Client {
	c.Set("bcNotificationEndpoint", v)
	return c
}

func (c *Client) BCRequestSignAlg() string {
	return c.Text("bcRequestSignAlg")
}

func (c *Client) SetBCRequestSignAlg(v string) *Client {
	c.Set("bcRequestSignAlg", v)
	return c
}

// BCUserCodeRequired reports whether CIBA requests must carry a user code.
func (c *Client) BCUserCodeRequired() bool {
	return c.Bool("bcUserCodeRequired")
}

func (c *Client) SetBCUserCodeRequired(v bool) *Client {
	c.Set("bcUserCodeRequired", v)
	return c
}

// DynamicallyRegistered reports whether the client was created through dynamic
// client registration.
func (c *Client) DynamicallyRegistered() bool {
	return c.Bool("dynamicallyRegistered")
}

func (c *Client) SetDynamicallyRegistered(v bool) *Client {
	c.Set("dynamicallyRegistered", v)
	return c
}

// Attributes returns the arbitrary key-value pairs attached to the client.
func (c *Client) Attributes() []*Pair {
	return model.Cast[Pair](c.Models("attributes"))
}

func (c *Client) SetAttributes(v []*Pair) *Client {
	c.SetModels("attributes", model.Upcast(v))
	return c
}
