package authlete

import "github.com/authlete/authlete-go-model/model"

var serviceSchema = model.NewSchema("Service",
	model.Int("accessTokenDuration"),
	model.String("accessTokenSignAlg"),
	model.String("accessTokenSignatureKeyId"),
	model.String("accessTokenType"),
	model.Int("allowableClockSkew"),
	model.Int("apiKey"),
	model.String("apiSecret"),
	model.String("authenticationCallbackApiKey"),
	model.String("authenticationCallbackApiSecret"),
	model.String("authenticationCallbackEndpoint"),
	model.String("authorizationEndpoint"),
	model.Int("authorizationResponseDuration"),
	model.String("authorizationSignatureKeyId"),
	model.String("backchannelAuthenticationEndpoint"),
	model.Int("backchannelAuthReqIdDuration"),
	model.Bool("backchannelBindingMessageRequiredInFapi"),
	model.Int("backchannelPollingInterval"),
	model.Bool("backchannelUserCodeParameterSupported"),
	model.Bool("clientIdAliasEnabled"),
	model.Int("clientsPerDeveloper"),
	model.Int("createdAt"),
	model.String("description"),
	model.String("developerAuthenticationCallbackApiKey"),
	model.String("developerAuthenticationCallbackApiSecret"),
	model.String("developerAuthenticationCallbackEndpoint"),
	model.Objects("developerSnsCredentials", snsCredentialsSchema, model.ParseFactory(ParseSNSCredentials)),
	model.String("deviceAuthorizationEndpoint"),
	model.Int("deviceFlowCodeDuration"),
	model.Int("deviceFlowPollingInterval"),
	model.String("deviceVerificationUri"),
	model.String("deviceVerificationUriComplete"),
	model.Bool("directAuthorizationEndpointEnabled"),
	model.Bool("directIntrospectionEndpointEnabled"),
	model.Bool("directJwksEndpointEnabled"),
	model.Bool("directRevocationEndpointEnabled"),
	model.Bool("directTokenEndpointEnabled"),
	model.Bool("directUserInfoEndpointEnabled"),
	model.Bool("errorDescriptionOmitted"),
	model.Bool("errorUriOmitted"),
	model.Int("idTokenDuration"),
	model.String("idTokenSignatureKeyId"),
	model.String("introspectionEndpoint"),
	model.String("issuer"),
	model.String("jwks"),
	model.String("jwksUri"),
	model.Objects("metadata", pairSchema, model.ParseFactory(ParsePair)),
	model.Int("modifiedAt"),
	model.Bool("mutualTlsValidatePkiCertChain"),
	model.Int("number"),
	model.Bool("pkceRequired"),
	model.Bool("pkceS256Required"),
	model.String("policyUri"),
	model.Int("refreshTokenDuration"),
	model.Bool("refreshTokenKept"),
	model.String("registrationEndpoint"),
	model.String("revocationEndpoint"),
	model.String("serviceDocumentation"),
	model.String("serviceName"),
	model.Int("serviceOwnerNumber"),
	model.Bool("singleAccessTokenPerSubject"),
	model.Objects("snsCredentials", snsCredentialsSchema, model.ParseFactory(ParseSNSCredentials)),
	model.Strings("supportedAcrs"),
	model.Strings("supportedClaimLocales"),
	model.Strings("supportedClaims"),
	model.Strings("supportedClaimTypes"),
	model.Strings("supportedDeveloperSnses"),
	model.Strings("supportedDisplays"),
	model.Strings("supportedGrantTypes"),
	model.Strings("supportedResponseTypes"),
	model.Objects("supportedScopes", scopeSchema, model.ParseFactory(ParseScope)),
	model.Strings("supportedServiceProfiles"),
	model.Strings("supportedSnses"),
	model.Strings("supportedTokenAuthMethods"),
	model.Strings("supportedBackchannelTokenDeliveryModes"),
	model.Strings("supportedUiLocales"),
	model.Bool("tlsClientCertificateBoundAccessTokens"),
	model.String("tokenEndpoint"),
	model.String("tosUri"),
	model.Strings("trustedRootCertificates"),
	model.String("userCodeCharset"),
	model.Int("userCodeLength"),
	model.String("userInfoEndpoint", model.Alias("userinfo_endpoint")),
	model.String("userInfoSignatureKeyId"),
	model.Bool("dynamicRegistrationSupported"),
	model.String("registrationManagementEndpoint"),
	model.String("requestObjectEndpoint"),
	model.Objects("mtlsEndpointAliases", namedURISchema, model.ParseFactory(ParseNamedURI)),
	model.String("pushedAuthReqEndpoint", model.Alias("pushed_authorization_request_endpoint")),
	model.Int("pushedAuthReqDuration"),
	model.Strings("supportedAuthorizationDataTypes"),
	model.Strings("supportedTrustFrameworks"),
	model.Strings("supportedEvidence"),
	model.Strings("supportedIdentityDocuments"),
	model.Strings("supportedVerificationMethods"),
	model.Strings("supportedVerifiedClaims"),
	model.Bool("missingClientIdAllowed"),
)

// Service is the configuration of one Authlete service, i.e. one
// authorization server. Attributes follow the service API: endpoint URIs,
// token lifetimes in seconds, the supported-value lists advertised in
// discovery metadata, and a few Authlete-specific switches.
//
// Service is usually decoded from an API response:
//
//	var svc authlete.Service
//	if err := json.Unmarshal(body, &svc); err != nil {
//	    return err
//	}
//	fmt.Println(svc.ServiceName(), svc.Issuer())
//
// The zero value is only usable as a json.Unmarshal target; use NewService
// or ParseService otherwise.
type Service struct {
	model.Record
}

// NewService returns a Service built from seed. A nil seed yields the defaults.
func NewService(seed map[string]any) *Service {
	s := new(Service)
	s.Init(serviceSchema).Update(seed)
	return s
}

// ParseService returns nil when v is nil or not an object.
func ParseService(v any) *Service {
	obj, ok := model.AsObject(v)
	if !ok {
		return nil
	}
	return NewService(obj)
}

func (s *Service) UnmarshalJSON(data []byte) error {
	if s.Schema() == nil {
		s.Init(serviceSchema)
	}
	return s.Record.UnmarshalJSON(data)
}

// AccessTokenDuration returns the lifetime of access tokens in seconds.
func (s *Service) AccessTokenDuration() int64 {
	return s.Int("accessTokenDuration")
}

func (s *Service) SetAccessTokenDuration(v int64) *Service {
	s.Set("accessTokenDuration", v)
	return s
}

// AccessTokenSignAlg returns the JWS algorithm used to sign JWT access tokens.
// An empty result means access tokens are opaque.
func (s *Service) AccessTokenSignAlg() string {
	return s.Text("accessTokenSignAlg")
}

func (s *Service) SetAccessTokenSignAlg(v string) *Service {
	s.Set("accessTokenSignAlg", v)
	return s
}

func (s *Service) AccessTokenSignatureKeyID() string {
	return s.Text("accessTokenSignatureKeyId")
}

func (s *Service) SetAccessTokenSignatureKeyID(v string) *Service {
	s.Set("accessTokenSignatureKeyId", v)
	return s
}

// AccessTokenType returns the token type issued with access tokens, normally
// "Bearer".
func (s *Service) AccessTokenType() string {
	return s.Text("accessTokenType")
}

func (s *Service) SetAccessTokenType(v string) *Service {
	s.Set("accessTokenType", v)
	return s
}

// AllowableClockSkew returns the clock skew in seconds tolerated when checking
// time claims.
func (s *Service) AllowableClockSkew() int64 {
	return s.Int("allowableClockSkew")
}

func (s *Service) SetAllowableClockSkew(v int64) *Service {
	s.Set("allowableClockSkew", v)
	return s
}

// APIKey returns the service API key. Unlike the API secret it is a number.
func (s *Service) APIKey() int64 {
	return s.Int("apiKey")
}

func (s *Service) SetAPIKey(v int64) *Service {
	s.Set("apiKey", v)
	return s
}

func (s *Service) APISecret() string {
	return s.Text("apiSecret")
}

func (s *Service) SetAPISecret(v string) *Service {
	s.Set("apiSecret", v)
	return s
}

func (s *Service) AuthenticationCallbackAPIKey() string {
	return s.Text("authenticationCallbackApiKey")
}

func (s *Service) SetAuthenticationCallbackAPIKey(v string) *Service {
	s.Set("authenticationCallbackApiKey", v)
	return s
}

func (s *Service) AuthenticationCallbackAPISecret() string {
	return s.Text("authenticationCallbackApiSecret")
}

func (s *Service) SetAuthenticationCallbackAPISecret(v string) *Service {
	s.Set("authenticationCallbackApiSecret", v)
	return s
}

// AuthenticationCallbackEndpoint returns the URI Authlete calls to authenticate end-users
// in flows that take credentials directly, such as the resource owner password
// flow.
func (s *Service) AuthenticationCallbackEndpoint() string {
	return s.Text("authenticationCallbackEndpoint")
}

func (s *Service) SetAuthenticationCallbackEndpoint(v string) *Service {
	s.Set("authenticationCallbackEndpoint", v)
	return s
}

func (s *Service) AuthorizationEndpoint() string {
	return s.Text("authorizationEndpoint")
}

func (s *Service) SetAuthorizationEndpoint(v string) *Service {
	s.Set("authorizationEndpoint", v)
	return s
}

// AuthorizationResponseDuration returns the lifetime in seconds of JWT authorization
// responses (JARM).
func (s *Service) AuthorizationResponseDuration() int64 {
	return s.Int("authorizationResponseDuration")
}

func (s *Service) SetAuthorizationResponseDuration(v int64) *Service {
	s.Set("authorizationResponseDuration", v)
	return s
}

func (s *Service) AuthorizationSignatureKeyID() string {
	return s.Text("authorizationSignatureKeyId")
}

func (s *Service) SetAuthorizationSignatureKeyID(v string) *Service {
	s.Set("authorizationSignatureKeyId", v)
	return s
}

func (s *Service) BackchannelAuthenticationEndpoint() string {
	return s.Text("backchannelAuthenticationEndpoint")
}

func (s *Service) SetBackchannelAuthenticationEndpoint(v string) *Service {
	s.Set("backchannelAuthenticationEndpoint", v)
	return s
}

// BackchannelAuthReqIDDuration returns the lifetime in seconds of auth_req_id values
// issued by the backchannel authentication endpoint (CIBA).
func (s *Service) BackchannelAuthReqIDDuration() int64 {
	return s.Int("backchannelAuthReqIdDuration")
}

func (s *Service) SetBackchannelAuthReqIDDuration(v int64) *Service {
	s.Set("backchannelAuthReqIdDuration", v)
	return s
}

func (s *Service) BackchannelBindingMessageRequiredInFAPI() bool {
	return s.Bool("backchannelBindingMessageRequiredInFapi")
}

func (s *Service) SetBackchannelBindingMessageRequiredInFAPI(v bool) *Service {
	s.Set("backchannelBindingMessageRequiredInFapi", v)
	return s
}

// BackchannelPollingInterval returns the minimum polling interval in seconds for
// CIBA poll mode.
func (s *Service) BackchannelPollingInterval() int64 {
	return s.Int("backchannelPollingInterval")
}

func (s *Service) SetBackchannelPollingInterval(v int64) *Service {
	s.Set("backchannelPollingInterval", v)
	return s
}

func (s *Service) BackchannelUserCodeParameterSupported() bool {
	return s.Bool("backchannelUserCodeParameterSupported")
}

func (s *Service) SetBackchannelUserCodeParameterSupported(v bool) *Service {
	s.Set("backchannelUserCodeParameterSupported", v)
	return s
}

// ClientIDAliasEnabled reports whether clients may be identified by their alias.
func (s *Service) ClientIDAliasEnabled() bool {
	return s.Bool("clientIdAliasEnabled")
}

func (s *Service) SetClientIDAliasEnabled(v bool) *Service {
	s.Set("clientIdAliasEnabled", v)
	return s
}

// ClientsPerDeveloper returns how many clients one developer may create.
// Zero means no limit.
func (s *Service) ClientsPerDeveloper() int64 {
	return s.Int("clientsPerDeveloper")
}

func (s *Service) SetClientsPerDeveloper(v int64) *Service {
	s.Set("clientsPerDeveloper", v)
	return s
}

// CreatedAt returns the creation time in milliseconds since the Unix epoch.
func (s *Service) CreatedAt() int64 {
	return s.Int("createdAt")
}

func (s *Service) SetCreatedAt(v int64) *Service {
	s.Set("createdAt", v)
	return s
}

func (s *Service) Description() string {
	return s.Text("description")
}

func (s *Service) SetDescription(v string) *Service {
	s.Set("description", v)
	return s
}

func (s *Service) DeveloperAuthenticationCallbackAPIKey() string {
	return s.Text("developerAuthenticationCallbackApiKey")
}

func (s *Service) SetDeveloperAuthenticationCallbackAPIKey(v string) *Service {
	s.Set("developerAuthenticationCallbackApiKey", v)
	return s
}

func (s *Service) DeveloperAuthenticationCallbackAPISecret() string {
	return s.Text("developerAuthenticationCallbackApiSecret")
}

func (s *Service) SetDeveloperAuthenticationCallbackAPISecret(v string) *Service {
	s.Set("developerAuthenticationCallbackApiSecret", v)
	return s
}

// DeveloperAuthenticationCallbackEndpoint returns the URI Authlete calls to authenticate
// developers logging in to the developer console.
func (s *Service) DeveloperAuthenticationCallbackEndpoint() string {
	return s.Text("developerAuthenticationCallbackEndpoint")
}

func (s *Service) SetDeveloperAuthenticationCallbackEndpoint(v string) *Service {
	s.Set("developerAuthenticationCallbackEndpoint", v)
	return s
}

// DeveloperSNSCredentials returns the SNS credentials used for developer login.
func (s *Service) DeveloperSNSCredentials() []*SNSCredentials {
	return model.Cast[SNSCredentials](s.Models("developerSnsCredentials"))
}

func (s *Service) SetDeveloperSNSCredentials(v []*SNSCredentials) *Service {
	s.SetModels("developerSnsCredentials", model.Upcast(v))
	return s
}

func (s *Service) DeviceAuthorizationEndpoint() string {
	return s.Text("deviceAuthorizationEndpoint")
}

func (s *Service) SetDeviceAuthorizationEndpoint(v string) *Service {
	s.Set("deviceAuthorizationEndpoint", v)
	return s
}

// DeviceFlowCodeDuration returns the lifetime in seconds of device and user codes.
func (s *Service) DeviceFlowCodeDuration() int64 {
	return s.Int("deviceFlowCodeDuration")
}

func (s *Service) SetDeviceFlowCodeDuration(v int64) *Service {
	s.Set("deviceFlowCodeDuration", v)
	return s
}

func (s *Service) DeviceFlowPollingInterval() int64 {
	return s.Int("deviceFlowPollingInterval")
}

func (s *Service) SetDeviceFlowPollingInterval(v int64) *Service {
	s.Set("deviceFlowPollingInterval", v)
	return s
}

func (s *Service) DeviceVerificationURI() string {
	return s.Text("deviceVerificationUri")
}

func (s *Service) SetDeviceVerificationURI(v string) *Service {
	s.Set("deviceVerificationUri", v)
	return s
}

func (s *Service) DeviceVerificationURIComplete() string {
	return s.Text("deviceVerificationUriComplete")
}

func (s *Service) SetDeviceVerificationURIComplete(v string) *Service {
	s.Set("deviceVerificationUriComplete", v)
	return s
}

func (s *Service) DirectAuthorizationEndpointEnabled() bool {
	return s.Bool("directAuthorizationEndpointEnabled")
}

func (s *Service) SetDirectAuthorizationEndpointEnabled(v bool) *Service {
	s.Set("directAuthorizationEndpointEnabled", v)
	return s
}

func (s *Service) DirectIntrospectionEndpointEnabled() bool {
	return s.Bool("directIntrospectionEndpointEnabled")
}

func (s *Service) SetDirectIntrospectionEndpointEnabled(v bool) *Service {
	s.Set("directIntrospectionEndpointEnabled", v)
	return s
}

// DirectJWKSEndpointEnabled reports whether Authlete serves the service JWK Set
// itself instead of leaving it to the service implementation.
func (s *Service) DirectJWKSEndpointEnabled() bool {
	return s.Bool("directJwksEndpointEnabled")
}

func (s *Service) SetDirectJWKSEndpointEnabled(v bool) *Service {
	s.Set("directJwksEndpointEnabled", v)
	return s
}

func (s *Service) DirectRevocationEndpointEnabled() bool {
	return s.Bool("directRevocationEndpointEnabled")
}

func (s *Service) SetDirectRevocationEndpointEnabled(v bool) *Service {
	s.Set("directRevocationEndpointEnabled", v)
	return s
}

func (s *Service) DirectTokenEndpointEnabled() bool {
	return s.Bool("directTokenEndpointEnabled")
}

func (s *Service) SetDirectTokenEndpointEnabled(v bool) *Service {
	s.Set("directTokenEndpointEnabled", v)
	return s
}

func (s *Service) DirectUserInfoEndpointEnabled() bool {
	return s.Bool("directUserInfoEndpointEnabled")
}

func (s *Service) SetDirectUserInfoEndpointEnabled(v bool) *Service {
	s.Set("directUserInfoEndpointEnabled", v)
	return s
}

// ErrorDescriptionOmitted reports whether error_description is left out of error
// responses.
func (s *Service) ErrorDescriptionOmitted() bool {
	return s.Bool("errorDescriptionOmitted")
}

func (s *Service) SetErrorDescriptionOmitted(v bool) *Service {
	s.Set("errorDescriptionOmitted", v)
	return s
}

func (s *Service) ErrorURIOmitted() bool {
	return s.Bool("errorUriOmitted")
}

func (s *Service) SetErrorURIOmitted(v bool) *Service {
	s.Set("errorUriOmitted", v)
	return s
}

// IDTokenDuration returns the lifetime of ID tokens in seconds.
func (s *Service) IDTokenDuration() int64 {
	return s.Int("idTokenDuration")
}

func (s *Service) SetIDTokenDuration(v int64) *Service {
	s.Set("idTokenDuration", v)
	return s
}

func (s *Service) IDTokenSignatureKeyID() string {
	return s.Text("idTokenSignatureKeyId")
}

func (s *Service) SetIDTokenSignatureKeyID(v string) *Service {
	s.Set("idTokenSignatureKeyId", v)
	return s
}

func (s *Service) IntrospectionEndpoint() string {
	return s.Text("introspectionEndpoint")
}

func (s *Service) SetIntrospectionEndpoint(v string) *Service {
	s.Set("introspectionEndpoint", v)
	return s
}

// Issuer returns the issuer identifier, the iss claim of ID tokens.
func (s *Service) Issuer() string {
	return s.Text("issuer")
}

func (s *Service) SetIssuer(v string) *Service {
	s.Set("issuer", v)
	return s
}

// JWKS returns the service's JSON Web Key Set as a JSON string.
func (s *Service) JWKS() string {
	return s.Text("jwks")
}

func (s *Service) SetJWKS(v string) *Service {
	s.Set("jwks", v)
	return s
}

func (s *Service) JWKSURI() string {
	return s.Text("jwksUri")
}

func (s *Service) SetJWKSURI(v string) *Service {
	s.Set("jwksUri", v)
	return s
}

// Metadata returns the arbitrary key-value pairs attached to the service.
func (s *Service) Metadata() []*Pair {
	return model.Cast[Pair](s.Models("metadata"))
}

// SetMetadata replaces the metadata. A nil slice clears the attribute.
func (s *Service) SetMetadata(v []*Pair) *Service {
	s.SetModels("metadata", model.Upcast(v))
	return s
}

// ModifiedAt returns the last modification time in milliseconds since the
// Unix epoch.
func (s *Service) ModifiedAt() int64 {
	return s.Int("modifiedAt")
}

func (s *Service) SetModifiedAt(v int64) *Service {
	s.Set("modifiedAt", v)
	return s
}

// MutualTLSValidatePKICertChain reports whether client certificate chains are
// verified against TrustedRootCertificates in PKI mutual TLS.
func (s *Service) MutualTLSValidatePKICertChain() bool {
	return s.Bool("mutualTlsValidatePkiCertChain")
}

func (s *Service) SetMutualTLSValidatePKICertChain(v bool) *Service {
	s.Set("mutualTlsValidatePkiCertChain", v)
	return s
}

// Number returns the service number assigned by Authlete.
func (s *Service) Number() int64 {
	return s.Int("number")
}

func (s *Service) SetNumber(v int64) *Service {
	s.Set("number", v)
	return s
}

func (s *Service) PKCERequired() bool {
	return s.Bool("pkceRequired")
}

func (s *Service) SetPKCERequired(v bool) *Service {
	s.Set("pkceRequired", v)
	return s
}

// PKCES256Required reports whether PKCE requests must use the S256 method.
func (s *Service) PKCES256Required() bool {
	return s.Bool("pkceS256Required")
}

func (s *Service) SetPKCES256Required(v bool) *Service {
	s.Set("pkceS256Required", v)
	return s
}

func (s *Service) PolicyURI() string {
	return s.Text("policyUri")
}

func (s *Service) SetPolicyURI(v string) *Service {
	s.Set("policyUri", v)
	return s
}

func (s *Service) RefreshTokenDuration() int64 {
	return s.Int("refreshTokenDuration")
}

func (s *Service) SetRefreshTokenDuration(v int64) *Service {
	s.Set("refreshTokenDuration", v)
	return s
}

// RefreshTokenKept reports whether the refresh token is kept, rather than
// rotated, when a refresh token is used.
func (s *Service) RefreshTokenKept() bool {
	return s.Bool("refreshTokenKept")
}

func (s *Service) SetRefreshTokenKept(v bool) *Service {
	s.Set("refreshTokenKept", v)
	return s
}

func (s *Service) RegistrationEndpoint() string {
	return s.Text("registrationEndpoint")
}

func (s *Service) SetRegistrationEndpoint(v string) *Service {
	s.Set("registrationEndpoint", v)
	return s
}

func (s *Service) RevocationEndpoint() string {
	return s.Text("revocationEndpoint")
}

func (s *Service) SetRevocationEndpoint(v string) *Service {
	s.Set("revocationEndpoint", v)
	return s
}

func (s *Service) ServiceDocumentation() string {
	return s.Text("serviceDocumentation")
}

func (s *Service) SetServiceDocumentation(v string) *Service {
	s.Set("serviceDocumentation", v)
	return s
}

func (s *Service) ServiceName() string {
	return s.Text("serviceName")
}

func (s *Service) SetServiceName(v string) *Service {
	s.Set("serviceName", v)
	return s
}

// ServiceOwnerNumber returns the number of the account that owns the service.
func (s *Service) ServiceOwnerNumber() int64 {
	return s.Int("serviceOwnerNumber")
}

func (s *Service) SetServiceOwnerNumber(v int64) *Service {
	s.Set("serviceOwnerNumber", v)
	return s
}

// SingleAccessTokenPerSubject reports whether issuing an access token revokes the
// other access tokens of the same subject and client.
func (s *Service) SingleAccessTokenPerSubject() bool {
	return s.Bool("singleAccessTokenPerSubject")
}

func (s *Service) SetSingleAccessTokenPerSubject(v bool) *Service {
	s.Set("singleAccessTokenPerSubject", v)
	return s
}

// SNSCredentials returns the SNS credentials used for end-user login.
func (s *Service) SNSCredentials() []*SNSCredentials {
	return model.Cast[SNSCredentials](s.Models("snsCredentials"))
}

func (s *Service) SetSNSCredentials(v []*SNSCredentials) *Service {
	s.SetModels("snsCredentials", model.Upcast(v))
	return s
}

func (s *Service) SupportedACRs() []string {
	return s.TextList("supportedAcrs")
}

func (s *Service) SetSupportedACRs(v []string) *Service {
	s.SetTextList("supportedAcrs", v)
	return s
}

func (s *Service) SupportedClaimLocales() []string {
	return s.TextList("supportedClaimLocales")
}

func (s *Service) SetSupportedClaimLocales(v []string) *Service {
	s.SetTextList("supportedClaimLocales", v)
	return s
}

func (s *Service) SupportedClaims() []string {
	return s.TextList("supportedClaims")
}

func (s *Service) SetSupportedClaims(v []string) *Service {
	s.SetTextList("supportedClaims", v)
	return s
}

func (s *Service) SupportedClaimTypes() []string {
	return s.TextList("supportedClaimTypes")
}

func (s *Service) SetSupportedClaimTypes(v []string) *Service {
	s.SetTextList("supportedClaimTypes", v)
	return s
}

func (s *Service) SupportedDeveloperSNSes() []string {
	return s.TextList("supportedDeveloperSnses")
}

func (s *Service) SetSupportedDeveloperSNSes(v []string) *Service {
	s.SetTextList("supportedDeveloperSnses", v)
	return s
}

func (s *Service) SupportedDisplays() []string {
	return s.TextList("supportedDisplays")
}

func (s *Service) SetSupportedDisplays(v []string) *Service {
	s.SetTextList("supportedDisplays", v)
	return s
}

func (s *Service) SupportedGrantTypes() []string {
	return s.TextList("supportedGrantTypes")
}

func (s *Service) SetSupportedGrantTypes(v []string) *Service {
	s.SetTextList("supportedGrantTypes", v)
	return s
}

func (s *Service) SupportedResponseTypes() []string {
	return s.TextList("supportedResponseTypes")
}

func (s *Service) SetSupportedResponseTypes(v []string) *Service {
	s.SetTextList("supportedResponseTypes", v)
	return s
}

// SupportedScopes returns the scopes the service recognizes. The result is nil
// when the attribute is absent.
func (s *Service) SupportedScopes() []*Scope {
	return model.Cast[Scope](s.Models("supportedScopes"))
}

// SetSupportedScopes replaces the supported scopes. A nil slice clears the
// attribute; nil elements are kept as null entries.
func (s *Service) SetSupportedScopes(v []*Scope) *Service {
	s.SetModels("supportedScopes", model.Upcast(v))
	return s
}

func (s *Service) SupportedServiceProfiles() []string {
	return s.TextList("supportedServiceProfiles")
}

func (s *Service) SetSupportedServiceProfiles(v []string) *Service {
	s.SetTextList("supportedServiceProfiles", v)
	return s
}

// SupportedSNSes returns the social networks end-users may log in with, e.g.
// "FACEBOOK".
func (s *Service) SupportedSNSes() []string {
	return s.TextList("supportedSnses")
}

func (s *Service) SetSupportedSNSes(v []string) *Service {
	s.SetTextList("supportedSnses", v)
	return s
}

func (s *Service) SupportedTokenAuthMethods() []string {
	return s.TextList("supportedTokenAuthMethods")
}

func (s *Service) SetSupportedTokenAuthMethods(v []string) *Service {
	s.SetTextList("supportedTokenAuthMethods", v)
	return s
}

func (s *Service) SupportedBackchannelTokenDeliveryModes() []string {
	return s.TextList("supportedBackchannelTokenDeliveryModes")
}

func (s *Service) SetSupportedBackchannelTokenDeliveryModes(v []string) *Service {
	s.SetTextList("supportedBackchannelTokenDeliveryModes", v)
	return s
}

func (s *Service) SupportedUILocales() []string {
	return s.TextList("supportedUiLocales")
}

func (s *Service) SetSupportedUILocales(v []string) *Service {
	s.SetTextList("supportedUiLocales", v)
	return s
}

// TLSClientCertificateBoundAccessTokens reports whether access tokens are bound to the
// client certificate (RFC 8705).
func (s *Service) TLSClientCertificateBoundAccessTokens() bool {
	return s.Bool("tlsClientCertificateBoundAccessTokens")
}

func (s *Service) SetTLSClientCertificateBoundAccessTokens(v bool) *Service {
	s.Set("tlsClientCertificateBoundAccessTokens", v)
	return s
}

func (s *Service) TokenEndpoint() string {
	return s.Text("tokenEndpoint")
}

func (s *Service) SetTokenEndpoint(v string) *Service {
	s.Set("tokenEndpoint", v)
	return s
}

func (s *Service) TosURI() string {
	return s.Text("tosUri")
}

func (s *Service) SetTosURI(v string) *Service {
	s.Set("tosUri", v)
	return s
}

// TrustedRootCertificates returns PEM-encoded root certificates trusted for PKI
// mutual TLS.
func (s *Service) TrustedRootCertificates() []string {
	return s.TextList("trustedRootCertificates")
}

func (s *Service) SetTrustedRootCertificates(v []string) *Service {
	s.SetTextList("trustedRootCertificates", v)
	return s
}

// UserCodeCharset returns the character set used for user codes in the
// device flow, e.g. "BASE20" or "NUMERIC".
func (s *Service) UserCodeCharset() string {
	return s.Text("userCodeCharset")
}

func (s *Service) SetUserCodeCharset(v string) *Service {
	s.Set("userCodeCharset", v)
	return s
}

// UserCodeLength returns the length of device flow user codes.
func (s *Service) UserCodeLength() int64 {
	return s.Int("userCodeLength")
}

func (s *Service) SetUserCodeLength(v int64) *Service {
	s.Set("userCodeLength", v)
	return s
}

// UserInfoEndpoint returns the URI of the UserInfo endpoint. Input also accepts
// the OpenID Connect Discovery spelling userinfo_endpoint.
func (s *Service) UserInfoEndpoint() string {
	return s.Text("userInfoEndpoint")
}

func (s *Service) SetUserInfoEndpoint(v string) *Service {
	s.Set("userInfoEndpoint", v)
	return s
}

func (s *Service) UserInfoSignatureKeyID() string {
	return s.Text("userInfoSignatureKeyId")
}

func (s *Service) SetUserInfoSignatureKeyID(v string) *Service {
	s.Set("userInfoSignatureKeyId", v)
	return s
}

func (s *Service) DynamicRegistrationSupported() bool {
	return s.Bool("dynamicRegistrationSupported")
}

func (s *Service) SetDynamicRegistrationSupported(v bool) *Service {
	s.Set("dynamicRegistrationSupported", v)
	return s
}

func (s *Service) RegistrationManagementEndpoint() string {
	return s.Text("registrationManagementEndpoint")
}

func (s *Service) SetRegistrationManagementEndpoint(v string) *Service {
	s.Set("registrationManagementEndpoint", v)
	return s
}

func (s *Service) RequestObjectEndpoint() string {
	return s.Text("requestObjectEndpoint")
}

func (s *Service) SetRequestObjectEndpoint(v string) *Service {
	s.Set("requestObjectEndpoint", v)
	return s
}

// MTLSEndpointAliases returns the endpoint aliases advertised in the
// mtls_endpoint_aliases discovery metadata (RFC 8705).
func (s *Service) MTLSEndpointAliases() []*NamedURI {
	return model.Cast[NamedURI](s.Models("mtlsEndpointAliases"))
}

func (s *Service) SetMTLSEndpointAliases(v []*NamedURI) *Service {
	s.SetModels("mtlsEndpointAliases", model.Upcast(v))
	return s
}

// PushedAuthReqEndpoint returns the URI of the pushed authorization request
// endpoint (RFC 9126).
func (s *Service) PushedAuthReqEndpoint() string {
	return s.Text("pushedAuthReqEndpoint")
}

func (s *Service) SetPushedAuthReqEndpoint(v string) *Service {
	s.Set("pushedAuthReqEndpoint", v)
	return s
}

// PushedAuthReqDuration returns the lifetime in seconds of request_uri values
// issued by the pushed authorization request endpoint.
func (s *Service) PushedAuthReqDuration() int64 {
	return s.Int("pushedAuthReqDuration")
}

func (s *Service) SetPushedAuthReqDuration(v int64) *Service {
	s.Set("pushedAuthReqDuration", v)
	return s
}

func (s *Service) SupportedAuthorizationDataTypes() []string {
	return s.TextList("supportedAuthorizationDataTypes")
}

func (s *Service) SetSupportedAuthorizationDataTypes(v []string) *Service {
	s.SetTextList("supportedAuthorizationDataTypes", v)
	return s
}

func (s *Service) SupportedTrustFrameworks() []string {
	return s.TextList("supportedTrustFrameworks")
}

func (s *Service) SetSupportedTrustFrameworks(v []string) *Service {
	s.SetTextList("supportedTrustFrameworks", v)
	return s
}

func (s *Service) SupportedEvidence() []string {
	return s.TextList("supportedEvidence")
}

func (s *Service) SetSupportedEvidence(v []string) *Service {
	s.SetTextList("supportedEvidence", v)
	return s
}

func (s *Service) SupportedIdentityDocuments() []string {
	return s.TextList("supportedIdentityDocuments")
}

func (s *Service) SetSupportedIdentityDocuments(v []string) *Service {
	s.SetTextList("supportedIdentityDocuments", v)
	return s
}

func (s *Service) SupportedVerificationMethods() []string {
	return s.TextList("supportedVerificationMethods")
}

func (s *Service) SetSupportedVerificationMethods(v []string) *Service {
	s.SetTextList("supportedVerificationMethods", v)
	return s
}

func (s *Service) SupportedVerifiedClaims() []string {
	return s.TextList("supportedVerifiedClaims")
}

func (s *Service) SetSupportedVerifiedClaims(v []string) *Service {
	s.SetTextList("supportedVerifiedClaims", v)
	return s
}

// MissingClientIDAllowed reports whether client_id may be omitted when the client
// is identified by its certificate.
func (s *Service) MissingClientIDAllowed() bool {
	return s.Bool("missingClientIdAllowed")
}

func (s *Service) SetMissingClientIDAllowed(v bool) *Service {
	s.Set("missingClientIdAllowed", v)
	return s
}
