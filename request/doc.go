// Package request holds models for the bodies sent to the Authlete API and
// for the requests Authlete sends to callback endpoints.
package request
