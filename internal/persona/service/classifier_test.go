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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	signalModel "github.com/wso2/financial-insights-service/internal/signal/model"
	"github.com/wso2/financial-insights-service/internal/system/constants"
)

func featureSetWithCredit(totalUtilization float64) *signalModel.FeatureSet {
	return &signalModel.FeatureSet{
		UserId:     "user_1",
		TimeWindow: constants.Window30d,
		Credit: &signalModel.CreditSignal{
			Applicable:       true,
			TotalUtilization: totalUtilization,
			UtilizationLevel: "high",
		},
		Subscriptions: &signalModel.SubscriptionSignal{},
		Savings:       &signalModel.SavingsSignal{},
		Income:        &signalModel.IncomeSignal{Frequency: "unknown"},
	}
}

func TestClassifyMissingFeatureSet(t *testing.T) {

	persona, criteriaMet, scores := Classify(nil)

	assert.Equal(t, constants.PersonaGeneralWellness, persona)
	require.Len(t, criteriaMet, 1)
	assert.Equal(t, "insufficient data", criteriaMet[0])
	assert.Equal(t, 100.0, scores[constants.PersonaGeneralWellness])
}

func TestClassifyHighUtilization(t *testing.T) {

	persona, criteriaMet, scores := Classify(featureSetWithCredit(68.0))

	assert.Equal(t, constants.PersonaHighUtilization, persona)
	require.Len(t, criteriaMet, 1)
	assert.Contains(t, criteriaMet[0], "credit_utilization >= 0.50")
	assert.Greater(t, scores[constants.PersonaHighUtilization], 50.0)
}

func TestClassifyHighUtilizationBoundary(t *testing.T) {

	// Exactly 50% utilization satisfies the >= threshold.
	persona, _, _ := Classify(featureSetWithCredit(50.0))
	assert.Equal(t, constants.PersonaHighUtilization, persona)

	persona, _, _ = Classify(featureSetWithCredit(49.99))
	assert.Equal(t, constants.PersonaGeneralWellness, persona)
}

func TestClassifyAccountLevelUtilizationTriggers(t *testing.T) {

	fs := featureSetWithCredit(20.0)
	fs.Credit.Accounts = []signalModel.AccountUtilization{
		{AccountId: "acc_a", Utilization: 92.0},
		{AccountId: "acc_b", Utilization: 5.0},
	}

	persona, _, _ := Classify(fs)

	assert.Equal(t, constants.PersonaHighUtilization, persona)
}

func TestClassifyInterestChargedTriggersHighUtilization(t *testing.T) {

	fs := featureSetWithCredit(10.0)
	fs.Credit.InterestCharged = 12.50
	fs.Credit.IsOverdue = true

	persona, _, _ := Classify(fs)

	assert.Equal(t, constants.PersonaHighUtilization, persona)
}

func TestClassifyVariableIncome(t *testing.T) {

	fs := &signalModel.FeatureSet{
		Subscriptions: &signalModel.SubscriptionSignal{},
		Credit:        &signalModel.CreditSignal{},
		Savings:       &signalModel.SavingsSignal{},
		Income: &signalModel.IncomeSignal{
			HasData:          true,
			Frequency:        "irregular",
			MedianPayGapDays: 52,
			CashFlowBuffer:   0.4,
		},
	}

	persona, criteriaMet, _ := Classify(fs)

	assert.Equal(t, constants.PersonaVariableIncome, persona)
	require.Len(t, criteriaMet, 1)
	assert.Contains(t, criteriaMet[0], "cash_flow_buffer < 1.0")
}

func TestClassifyVariableIncomeNeedsIncomeData(t *testing.T) {

	// An unknown pay frequency with no deposits must not classify as
	// variable income.
	fs := &signalModel.FeatureSet{
		Subscriptions: &signalModel.SubscriptionSignal{},
		Credit:        &signalModel.CreditSignal{},
		Savings:       &signalModel.SavingsSignal{},
		Income:        &signalModel.IncomeSignal{Frequency: "unknown"},
	}

	persona, _, _ := Classify(fs)

	assert.Equal(t, constants.PersonaGeneralWellness, persona)
}

func TestClassifySubscriptionHeavy(t *testing.T) {

	fs := &signalModel.FeatureSet{
		Subscriptions: &signalModel.SubscriptionSignal{
			HasData:               true,
			SubscriptionCount:     4,
			MonthlyRecurringSpend: 210.0,
			SubscriptionShare:     11.7,
			TotalSpend:            1800.0,
		},
		Credit:  &signalModel.CreditSignal{},
		Savings: &signalModel.SavingsSignal{},
		Income:  &signalModel.IncomeSignal{HasData: true, Frequency: "biweekly", CashFlowBuffer: 2.0},
	}

	persona, _, _ := Classify(fs)

	assert.Equal(t, constants.PersonaSubscriptionHeavy, persona)
}

func TestClassifySavingsBuilder(t *testing.T) {

	fs := &signalModel.FeatureSet{
		Subscriptions: &signalModel.SubscriptionSignal{HasData: true, SubscriptionCount: 1},
		Credit:        &signalModel.CreditSignal{},
		Savings: &signalModel.SavingsSignal{
			HasData:    true,
			GrowthRate: 4.0,
			NetInflow:  350.0,
		},
		Income: &signalModel.IncomeSignal{HasData: true, Frequency: "biweekly", CashFlowBuffer: 2.0},
	}

	persona, criteriaMet, _ := Classify(fs)

	assert.Equal(t, constants.PersonaSavingsBuilder, persona)
	require.Len(t, criteriaMet, 1)
	assert.Contains(t, criteriaMet[0], "all_credit_utilization < 0.30")
}

func TestClassifySavingsBuilderBlockedByUtilization(t *testing.T) {

	fs := &signalModel.FeatureSet{
		Subscriptions: &signalModel.SubscriptionSignal{},
		Credit: &signalModel.CreditSignal{
			Applicable:       true,
			TotalUtilization: 35.0,
		},
		Savings: &signalModel.SavingsSignal{HasData: true, GrowthRate: 4.0, NetInflow: 350.0},
		Income:  &signalModel.IncomeSignal{HasData: true, Frequency: "biweekly", CashFlowBuffer: 2.0},
	}

	persona, _, _ := Classify(fs)

	assert.Equal(t, constants.PersonaGeneralWellness, persona)
}

func TestClassifyPriorityOrder(t *testing.T) {

	// A user matching every rule must classify as high utilization.
	fs := &signalModel.FeatureSet{
		Subscriptions: &signalModel.SubscriptionSignal{
			HasData:               true,
			SubscriptionCount:     5,
			MonthlyRecurringSpend: 300.0,
			SubscriptionShare:     25.0,
		},
		Credit: &signalModel.CreditSignal{
			Applicable:       true,
			TotalUtilization: 80.0,
			InterestCharged:  40.0,
			IsOverdue:        true,
		},
		Savings: &signalModel.SavingsSignal{HasData: true, GrowthRate: 10.0, NetInflow: 500.0},
		Income: &signalModel.IncomeSignal{
			HasData:          true,
			Frequency:        "irregular",
			MedianPayGapDays: 60,
			CashFlowBuffer:   0.2,
		},
	}

	persona, _, scores := Classify(fs)

	assert.Equal(t, constants.PersonaHighUtilization, persona)
	// Every persona still carries an independent score.
	for _, p := range constants.AllPersonas {
		_, present := scores[p]
		assert.True(t, present, "missing score for %s", p)
	}
}

func TestClassifyScoresScaleWithMargin(t *testing.T) {

	_, _, barely := Classify(featureSetWithCredit(51.0))
	_, _, deep := Classify(featureSetWithCredit(80.0))

	assert.Greater(t, deep[constants.PersonaHighUtilization], barely[constants.PersonaHighUtilization])
}

func TestClassifyScoresBounded(t *testing.T) {

	_, _, scores := Classify(featureSetWithCredit(400.0))

	for persona, score := range scores {
		assert.GreaterOrEqual(t, score, 0.0, persona)
		assert.LessOrEqual(t, score, 100.0, persona)
	}
}
