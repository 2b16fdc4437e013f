// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Claims is the payload embedded in an Embryotech bearer token.
type Claims struct {
	// UserID is the server-side account identity.
	UserID int64 `json:"id"`

	// IsAdmin gates the parameter-management affordances. False for
	// regular operators and for any token whose payload could not be
	// decoded.
	IsAdmin bool `json:"is_admin"`

	// ExpiresAt is the token expiry as a Unix timestamp.
	ExpiresAt int64 `json:"exp"`
}

// Expiry returns the expiry instant, or the zero time when the token
// carries no exp claim.
func (claims Claims) Expiry() time.Time {
	if claims.ExpiresAt == 0 {
		return time.Time{}
	}
	return time.Unix(claims.ExpiresAt, 0)
}

// Decode extracts the claim payload from a bearer token. The token is
// expected in the usual header.payload.signature shape; only the
// payload segment is read, and the signature is not verified (the
// client uses claims for display and gating, never authorization).
//
// Returns an error for structurally malformed tokens. Callers that
// gate privileged UI must treat an error exactly like IsAdmin=false.
func Decode(token string) (Claims, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return Claims{}, fmt.Errorf("token has %d segments, want 3", len(segments))
	}

	payload, err := decodeSegment(segments[1])
	if err != nil {
		return Claims{}, fmt.Errorf("decoding token payload: %w", err)
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, fmt.Errorf("parsing token payload: %w", err)
	}
	return claims, nil
}

// IsAdmin reports whether the token carries an admin claim. Decode
// failures are fail-safe (never grant privilege) but observable: the
// failure is logged at WARN through the given logger so a malformed
// token shows up in telemetry instead of silently degrading the UI.
func IsAdmin(token string, logger *slog.Logger) bool {
	claims, err := Decode(token)
	if err != nil {
		if logger != nil {
			logger.Warn("token claims undecodable, treating as non-admin", "error", err)
		}
		return false
	}
	return claims.IsAdmin
}

// decodeSegment decodes a token segment. Tokens in the wild use
// unpadded base64url, but the original dashboard accepted standard
// base64 as well, so both alphabets are tried.
func decodeSegment(segment string) ([]byte, error) {
	if data, err := base64.RawURLEncoding.DecodeString(segment); err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(segment, "="))
}
