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

package integration

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wso2/financial-insights-service/internal/guardrail"
	personaprovider "github.com/wso2/financial-insights-service/internal/persona/provider"
	recommendprovider "github.com/wso2/financial-insights-service/internal/recommend/provider"
	signalprovider "github.com/wso2/financial-insights-service/internal/signal/provider"
	"github.com/wso2/financial-insights-service/internal/system/constants"
	traceprovider "github.com/wso2/financial-insights-service/internal/trace/provider"
)

const testUserId = "user_integration_1"

// seedHighUtilizationUser inserts a credit card at 68% utilization with a
// recent interest charge, plus a checking account for everyday spending.
func seedHighUtilizationUser(t *testing.T) {
	t.Helper()

	_, err := testDB.DB.Exec(
		`INSERT INTO accounts (account_id, user_id, account_type, account_subtype, balance, credit_limit, mask)
		 VALUES ('acc_cc_1', $1, 'credit', 'credit card', 3400, 5000, '4523'),
		        ('acc_chk_1', $1, 'depository', 'checking', 1250, NULL, '0001')
		 ON CONFLICT (account_id) DO NOTHING`, testUserId)
	require.NoError(t, err)

	recent := time.Now().UTC().AddDate(0, 0, -10)
	_, err = testDB.DB.Exec(
		`INSERT INTO transactions (transaction_id, account_id, user_id, txn_date, amount, merchant_name,
		                           category, payment_channel, pending)
		 VALUES ('txn_interest_1', 'acc_cc_1', $1, $2, -42.50, 'Interest Charged',
		         '{interest}', 'other', FALSE),
		        ('txn_grocery_1', 'acc_chk_1', $1, $2, -86.12, 'Grocery Mart',
		         '{groceries}', 'in store', FALSE)
		 ON CONFLICT (transaction_id) DO NOTHING`, testUserId, recent)
	require.NoError(t, err)
}

func TestPipelineHighUtilizationUser(t *testing.T) {
	seedHighUtilizationUser(t)

	signalService := signalprovider.NewSignalProvider().GetSignalService()
	featureSet, err := signalService.ComputeAllFeatures(testUserId, constants.Window30d)
	require.NoError(t, err)
	require.NotNil(t, featureSet.Credit)
	assert.True(t, featureSet.Credit.Applicable)
	assert.Equal(t, 68.0, featureSet.Credit.TotalUtilization)
	assert.Equal(t, 42.5, featureSet.Credit.InterestCharged)

	// Recomputation is idempotent: the stored set matches the computed one.
	stored, err := signalService.GetFeatureSet(testUserId, constants.Window30d)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, featureSet.Credit.TotalUtilization, stored.Credit.TotalUtilization)

	personaService := personaprovider.NewPersonaProvider().GetPersonaService()
	assignment, err := personaService.AssignPersona(testUserId, constants.Window30d)
	require.NoError(t, err)
	assert.Equal(t, constants.PersonaHighUtilization, assignment.PrimaryPersona)
	assert.NotEmpty(t, assignment.CriteriaMet)

	recommendService := recommendprovider.NewRecommendProvider().GetRecommendationService()
	recommendations, err := recommendService.GenerateRecommendations(testUserId, constants.Window30d)
	require.NoError(t, err)
	require.NotEmpty(t, recommendations)

	validator := guardrail.NewValidator(nil)
	sawUtilization := false
	for _, rec := range recommendations {
		assert.True(t, strings.HasPrefix(rec.RecommendationId, "rec_"),
			"unexpected id format: %s", rec.RecommendationId)
		assert.NotContains(t, rec.Rationale, "{")
		assert.True(t, validator.Validate(rec.Rationale).Passed,
			"rationale failed tone check: %s", rec.Rationale)
		assert.Equal(t, rec.ContentId, rec.DecisionTrace.ContentId)
		if strings.Contains(rec.Rationale, "68%") {
			sawUtilization = true
		}
	}
	assert.True(t, sawUtilization, "expected at least one rationale citing the 68%% utilization")

	fetched, err := recommendService.GetRecommendations(testUserId, constants.Window30d)
	require.NoError(t, err)
	require.Len(t, fetched, len(recommendations))
	generatedRationales := make(map[string]string, len(recommendations))
	for _, rec := range recommendations {
		generatedRationales[rec.RecommendationId] = rec.Rationale
	}
	for _, rec := range fetched {
		rationale, ok := generatedRationales[rec.RecommendationId]
		require.True(t, ok, "fetched recommendation was not generated: %s", rec.RecommendationId)
		assert.Equal(t, rationale, rec.Rationale)
	}

	traceService := traceprovider.NewTraceProvider().GetTraceService()
	trail, err := traceService.GetAuditTrail(testUserId, constants.Window30d)
	require.NoError(t, err)
	require.NotNil(t, trail.FeatureSet)
	require.NotNil(t, trail.PersonaAssignment)
	assert.Equal(t, constants.PersonaHighUtilization, trail.PersonaAssignment.PrimaryPersona)
	assert.Len(t, trail.Recommendations, len(recommendations))
	for _, recTrace := range trail.Recommendations {
		assert.True(t, recTrace.DecisionTrace.GuardrailsPassed.ToneCheck)
		assert.True(t, recTrace.DecisionTrace.GuardrailsPassed.EligibilityCheck)
	}
}

func TestPipelineRegenerationReplacesRecommendations(t *testing.T) {
	seedHighUtilizationUser(t)

	recommendService := recommendprovider.NewRecommendProvider().GetRecommendationService()

	first, err := recommendService.GenerateRecommendations(testUserId, constants.Window30d)
	require.NoError(t, err)
	second, err := recommendService.GenerateRecommendations(testUserId, constants.Window30d)
	require.NoError(t, err)

	// Regeneration replaces the stored set instead of appending to it.
	fetched, err := recommendService.GetRecommendations(testUserId, constants.Window30d)
	require.NoError(t, err)
	assert.Len(t, fetched, len(second))

	firstIds := make(map[string]bool, len(first))
	for _, rec := range first {
		firstIds[rec.RecommendationId] = true
	}
	for _, rec := range fetched {
		assert.False(t, firstIds[rec.RecommendationId],
			"stale recommendation survived regeneration: %s", rec.RecommendationId)
	}
}

func TestPipelineUnknownUserYieldsNoSignals(t *testing.T) {

	userId := fmt.Sprintf("user_missing_%d", time.Now().UnixNano())

	signalService := signalprovider.NewSignalProvider().GetSignalService()
	featureSet, err := signalService.ComputeAllFeatures(userId, constants.Window30d)
	require.NoError(t, err)
	require.NotNil(t, featureSet.Credit)
	assert.False(t, featureSet.Credit.Applicable)
	require.NotNil(t, featureSet.Income)
	assert.False(t, featureSet.Income.HasData)
}
