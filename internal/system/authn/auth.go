/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
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
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wso2/financial-insights-service/internal/system/config"
	"github.com/wso2/financial-insights-service/internal/system/constants"
	errors2 "github.com/wso2/financial-insights-service/internal/system/errors"
	"github.com/wso2/financial-insights-service/internal/system/log"
)

// Principal describes the authenticated caller of the API surface.
type Principal struct {
	Subject string
	Role    string
}

// IsOperator reports whether the caller carries the operator role.
func (p Principal) IsOperator() bool {
	return p.Role == constants.RoleOperator
}

// ValidateRequest validates the Authorization: Bearer token of the request
// and returns the caller principal.
func ValidateRequest(r *http.Request) (*Principal, error) {

	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return nil, unauthorizedError()
	}
	token := strings.TrimPrefix(header, "Bearer ")

	return ValidateToken(token)
}

// ValidateToken verifies the JWT signature and claims and returns the
// caller principal.
func ValidateToken(tokenString string) (*Principal, error) {

	logger := log.GetLogger()
	conf := config.GetFISRuntime().Config.Auth

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors2.NewClientError(errors2.UNAUTHORIZED, http.StatusUnauthorized)
		}
		return []byte(conf.JWTSecret), nil
	}, jwt.WithExpirationRequired(), jwt.WithAudience(conf.Audience))
	if err != nil {
		logger.Debug("Token validation failed.", log.Error(err))
		return nil, unauthorizedError()
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		logger.Debug("Token does not have a subject claim.")
		return nil, unauthorizedError()
	}

	role, _ := claims["role"].(string)
	if role != constants.RoleOperator && role != constants.RoleConsumer {
		logger.Debug("Token does not have a recognized role claim.", log.String("role", role))
		return nil, unauthorizedError()
	}

	return &Principal{Subject: subject, Role: role}, nil
}

// AuthorizeUserAccess validates the request token and checks that the caller
// may act on the given user's data. Operators may act on any user; consumers
// only on themselves.
func AuthorizeUserAccess(r *http.Request, userId string) (*Principal, error) {

	principal, err := ValidateRequest(r)
	if err != nil {
		return nil, err
	}
	if principal.IsOperator() || principal.Subject == userId {
		return principal, nil
	}
	return nil, errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UNAUTHORIZED.Code,
		Message:     errors2.UNAUTHORIZED.Message,
		Description: "The caller is not permitted to access this user's data.",
	}, http.StatusForbidden)
}

func unauthorizedError() error {
	return errors2.NewClientError(errors2.ErrorMessage{
		Code:        errors2.UNAUTHORIZED.Code,
		Message:     errors2.UNAUTHORIZED.Message,
		Description: "Request authentication failed.",
	}, http.StatusUnauthorized)
}
