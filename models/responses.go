// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Adi Pryandito

package models

// Response is the JSON envelope shared by every endpoint.
//
// Message is always present. Data carries the operation payload on
// success (a token object, a user projection, or a list of them).
// Detail enumerates field-level validation failures and is present only
// on validation-error responses.
type Response struct {
	// Message is a short human-readable description of the outcome.
	Message string `json:"message"`

	// Data is the operation payload, omitted when there is none.
	Data any `json:"data,omitempty"`

	// Detail lists every failing field of a rejected request.
	Detail []FieldError `json:"detail,omitempty"`
}

// FieldError describes a single field-level validation failure.
type FieldError struct {
	// Field is the JSON name of the offending request field.
	Field string `json:"field"`

	// Message explains why the field was rejected.
	Message string `json:"message"`
}

// TokenData is the Data payload of a successful login response.
type TokenData struct {
	Token string `json:"token"`
}
