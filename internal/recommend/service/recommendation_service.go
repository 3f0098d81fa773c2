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
	"strings"
	"time"

	"github.com/google/uuid"

	catalogmodel "github.com/wso2/financial-insights-service/internal/catalog/model"
	catalogservice "github.com/wso2/financial-insights-service/internal/catalog/service"
	"github.com/wso2/financial-insights-service/internal/guardrail"
	personaprovider "github.com/wso2/financial-insights-service/internal/persona/provider"
	personastore "github.com/wso2/financial-insights-service/internal/persona/store"
	"github.com/wso2/financial-insights-service/internal/recommend/model"
	"github.com/wso2/financial-insights-service/internal/recommend/store"
	signalmodel "github.com/wso2/financial-insights-service/internal/signal/model"
	signalprovider "github.com/wso2/financial-insights-service/internal/signal/provider"
	signalstore "github.com/wso2/financial-insights-service/internal/signal/store"
	"github.com/wso2/financial-insights-service/internal/system/constants"
	errors2 "github.com/wso2/financial-insights-service/internal/system/errors"
	"github.com/wso2/financial-insights-service/internal/system/log"
	traceservice "github.com/wso2/financial-insights-service/internal/trace/service"
)

// RecommendationServiceInterface defines the recommendation pipeline
// orchestrator.
type RecommendationServiceInterface interface {
	GenerateRecommendations(userId, timeWindow string) ([]model.Recommendation, error)
	GetRecommendations(userId, timeWindow string) ([]model.Recommendation, error)
}

// RecommendationService is the default implementation.
type RecommendationService struct{}

// GetRecommendationService returns a new instance.
func GetRecommendationService() RecommendationServiceInterface {
	return &RecommendationService{}
}

// GenerateRecommendations runs the full pipeline for a user and window:
// it ensures signals and a persona assignment exist (computing them on
// demand), matches catalog content, generates rationales, applies the tone
// guardrail and replaces the stored recommendation set. Items whose
// rationale cannot be generated or fails the guardrail are skipped; the
// rest of the batch is still produced.
func (rs *RecommendationService) GenerateRecommendations(userId, timeWindow string) ([]model.Recommendation, error) {

	if err := validateRequest(userId, timeWindow); err != nil {
		return nil, err
	}
	logger := log.GetLogger()

	featureSet, err := signalstore.GetFeatureSet(userId, timeWindow)
	if err != nil {
		return nil, err
	}
	if featureSet == nil {
		featureSet, err = signalprovider.NewSignalProvider().GetSignalService().ComputeAllFeatures(userId, timeWindow)
		if err != nil {
			return nil, err
		}
	}

	assignment, err := personastore.GetPersonaAssignment(userId, timeWindow)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		assignment, err = personaprovider.NewPersonaProvider().GetPersonaService().AssignPersona(userId, timeWindow)
		if err != nil {
			return nil, err
		}
	}

	catalog, err := catalogservice.GetCatalog()
	if err != nil {
		return nil, err
	}

	recommendations := BuildRecommendations(catalog, guardrail.Default(), assignment.PrimaryPersona,
		featureSet, userId, timeWindow)

	if err := store.ReplaceRecommendations(userId, timeWindow, recommendations); err != nil {
		return nil, err
	}
	traceservice.InvalidateTraces(userId)
	logger.Info(fmt.Sprintf("Generated %d recommendations for user: %s window: %s persona: %s",
		len(recommendations), userId, timeWindow, assignment.PrimaryPersona))
	return recommendations, nil
}

// GetRecommendations returns the stored recommendation set for the user
// and window.
func (rs *RecommendationService) GetRecommendations(userId, timeWindow string) ([]model.Recommendation, error) {

	if err := validateRequest(userId, timeWindow); err != nil {
		return nil, err
	}
	return store.GetRecommendations(userId, timeWindow)
}

// BuildRecommendations is the pure matching and generation core. It never
// touches storage, so the full pipeline semantics are testable against an
// in-memory catalog and feature set.
func BuildRecommendations(catalog *catalogmodel.Catalog, validator *guardrail.Validator, persona string,
	featureSet *signalmodel.FeatureSet, userId, timeWindow string) []model.Recommendation {

	logger := log.GetLogger()
	now := time.Now().UTC()

	matched := MatchEducation(catalog, persona, featureSet)
	matched = append(matched, MatchOffers(catalog, featureSet)...)

	var recommendations []model.Recommendation
	for _, item := range matched {
		rationale, signalsUsed, err := GenerateRationale(item.RationaleTemplate, featureSet)
		if err != nil {
			// A partial set is acceptable; an unresolved placeholder only
			// drops this one item.
			logger.Debug(fmt.Sprintf("Skipping content %s for user: %s", item.ContentId, userId),
				log.Error(err))
			continue
		}

		toneResult := validator.Validate(rationale)
		if !toneResult.Passed {
			logger.Warn(fmt.Sprintf("Tone guardrail rejected content %s for user: %s, violations: %s",
				item.ContentId, userId, strings.Join(toneResult.Violations, ", ")))
			continue
		}

		recType := constants.RecommendationEducation
		if item.Type == constants.RecommendationOffer {
			recType = constants.RecommendationOffer
		}
		recommendations = append(recommendations, model.Recommendation{
			RecommendationId: newRecommendationId(),
			UserId:           userId,
			TimeWindow:       timeWindow,
			Type:             recType,
			ContentId:        item.ContentId,
			Title:            item.Title,
			Rationale:        rationale,
			DecisionTrace: model.DecisionTrace{
				PersonaMatch: persona,
				ContentId:    item.ContentId,
				SignalsUsed:  signalsUsed,
				GuardrailsPassed: model.GuardrailTrace{
					ToneCheck:        true,
					EligibilityCheck: true,
				},
				Timestamp: now,
			},
			ShownAt: now,
		})
	}
	return recommendations
}

func newRecommendationId() string {
	return "rec_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
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
