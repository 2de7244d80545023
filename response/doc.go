// Package response holds models for Authlete API responses and for the
// responses a service returns to Authlete's callback requests.
package response
