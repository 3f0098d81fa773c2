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

package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/wso2/financial-insights-service/internal/persona/model"
	"github.com/wso2/financial-insights-service/internal/persona/store"
	signalStore "github.com/wso2/financial-insights-service/internal/signal/store"
	"github.com/wso2/financial-insights-service/internal/system/constants"
	errors2 "github.com/wso2/financial-insights-service/internal/system/errors"
	"github.com/wso2/financial-insights-service/internal/system/log"
)

// PersonaServiceInterface defines the persona classification service.
type PersonaServiceInterface interface {
	AssignPersona(userId, timeWindow string) (*model.PersonaAssignment, error)
	GetPersonaAssignment(userId, timeWindow string) (*model.PersonaAssignment, error)
}

// PersonaService is the default implementation.
type PersonaService struct{}

// GetPersonaService returns a new instance.
func GetPersonaService() PersonaServiceInterface {
	return &PersonaService{}
}

// AssignPersona classifies the user against the ordered persona rules and
// replaces the stored assignment for the window.
func (ps *PersonaService) AssignPersona(userId, timeWindow string) (*model.PersonaAssignment, error) {

	if err := validateRequest(userId, timeWindow); err != nil {
		return nil, err
	}

	featureSet, err := signalStore.GetFeatureSet(userId, timeWindow)
	if err != nil {
		return nil, err
	}

	persona, criteriaMet, matchScores := Classify(featureSet)
	assignment := model.PersonaAssignment{
		UserId:         userId,
		TimeWindow:     timeWindow,
		PrimaryPersona: persona,
		MatchScores:    matchScores,
		CriteriaMet:    criteriaMet,
		AssignedAt:     time.Now().UTC(),
	}

	if err := store.ReplacePersonaAssignment(assignment); err != nil {
		return nil, err
	}
	log.GetLogger().Info(fmt.Sprintf("Assigned persona %s to user: %s window: %s", persona, userId, timeWindow))
	return &assignment, nil
}

// GetPersonaAssignment returns the stored assignment for the user and window.
func (ps *PersonaService) GetPersonaAssignment(userId, timeWindow string) (*model.PersonaAssignment, error) {

	if err := validateRequest(userId, timeWindow); err != nil {
		return nil, err
	}

	assignment, err := store.GetPersonaAssignment(userId, timeWindow)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.PERSONA_NOT_FOUND.Code,
			Message:     errors2.PERSONA_NOT_FOUND.Message,
			Description: fmt.Sprintf("No persona assignment for user: %s window: %s", userId, timeWindow),
		}, http.StatusNotFound)
	}
	return assignment, nil
}

func validateRequest(userId, timeWindow string) error {

	if userId == "" {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.USER_ID_REQUIRED.Code,
			Message:     errors2.USER_ID_REQUIRED.Message,
			Description: "A user id must be provided.",
		}, http.StatusBadRequest)
	}
	if !constants.AllowedTimeWindows[timeWindow] {
		return errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.INVALID_TIME_WINDOW.Code,
			Message:     errors2.INVALID_TIME_WINDOW.Message,
			Description: fmt.Sprintf("Unsupported time window: %s", timeWindow),
		}, http.StatusBadRequest)
	}
	return nil
}
