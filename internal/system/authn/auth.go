/*
 * Copyright (c) 2026, Vendra Labs Pvt Ltd. (https://www.vendra.io).
 *
 * Vendra Labs licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package authn

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vendra/commerce-storefront-service/internal/system/config"
	systemerrors "github.com/vendra/commerce-storefront-service/internal/system/errors"
	"github.com/vendra/commerce-storefront-service/internal/system/log"
)

const expectedAudience = "storefront-admin"

// ValidateRequest validates the Authorization: Bearer token on a management
// request and checks that the token is scoped to the org in the path.
// Storefront read endpoints never call this; they are public.
func ValidateRequest(r *http.Request, orgHandle string) error {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return unauthorizedError("Missing bearer token.")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := parseAndVerify(tokenString)
	if err != nil {
		log.GetLogger().Debug("Token verification failed", log.Error(err))
		return unauthorizedError("Invalid bearer token.")
	}

	if !validateClaims(orgHandle, claims) {
		return unauthorizedError("Token is not valid for this organization.")
	}
	return nil
}

// parseAndVerify parses the JWT and verifies its HMAC signature against the
// configured secret.
func parseAndVerify(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.GetConfig().Auth.JWTSecret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// validateClaims checks the audience and the org handle claim.
func validateClaims(orgHandle string, claims jwt.MapClaims) bool {
	aud, _ := claims.GetAudience()
	audMatch := false
	for _, a := range aud {
		if a == expectedAudience {
			audMatch = true
			break
		}
	}
	if !audMatch {
		return false
	}

	tokenOrg, _ := claims["org_handle"].(string)
	return tokenOrg != "" && tokenOrg == orgHandle
}

func unauthorizedError(description string) error {
	return systemerrors.NewClientError(systemerrors.ErrorMessage{
		Code:        systemerrors.UNAUTHORIZED.Code,
		Message:     systemerrors.UNAUTHORIZED.Message,
		Description: description,
	}, http.StatusUnauthorized)
}
