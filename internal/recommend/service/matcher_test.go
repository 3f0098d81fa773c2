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

	catalogmodel "github.com/wso2/financial-insights-service/internal/catalog/model"
	signalmodel "github.com/wso2/financial-insights-service/internal/signal/model"
	"github.com/wso2/financial-insights-service/internal/system/constants"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func testCatalog() *catalogmodel.Catalog {
	return &catalogmodel.Catalog{
		Education: []catalogmodel.ContentItem{
			{
				ContentId:          "edu_util",
				Type:               constants.RecommendationEducation,
				Title:              "Understanding Credit Utilization",
				ApplicablePersonas: []string{constants.PersonaHighUtilization},
				TriggerSignals:     []string{constants.TriggerCreditUtilizationHigh},
				RationaleTemplate:  "Utilization is {utilization}.",
			},
			{
				ContentId:          "edu_autopay",
				Type:               constants.RecommendationEducation,
				Title:              "How to Set Up Autopay",
				ApplicablePersonas: []string{constants.PersonaHighUtilization},
				TriggerSignals:     []string{constants.TriggerIsOverdue, constants.TriggerMinimumPaymentOnly},
				RationaleTemplate:  "Autopay avoids late fees.",
			},
			{
				ContentId:          "edu_budget",
				Type:               constants.RecommendationEducation,
				Title:              "Budgeting Basics",
				ApplicablePersonas: []string{constants.PersonaGeneralWellness},
				RationaleTemplate:  "A budget helps.",
			},
		},
		Offers: []catalogmodel.ContentItem{
			{
				ContentId: "offer_bt",
				Type:      constants.RecommendationOffer,
				Title:     "Balance Transfer Card",
				EligibilityCriteria: map[string]catalogmodel.Criterion{
					"credit_utilization": {Min: floatPtr(0.5)},
					"is_overdue":         {Equals: boolPtr(false)},
				},
				RationaleTemplate: "You pay {interest_charged} in interest.",
			},
			{
				ContentId: "offer_hysa",
				Type:      constants.RecommendationOffer,
				Title:     "High-Yield Savings Account",
				EligibilityCriteria: map[string]catalogmodel.Criterion{
					"savings_balance": {Min: floatPtr(100)},
				},
				RationaleTemplate: "Grow your {total_savings}.",
			},
			{
				ContentId:         "offer_app",
				Type:              constants.RecommendationOffer,
				Title:             "Budgeting App",
				RationaleTemplate: "Track your spending.",
			},
		},
	}
}

func highUtilizationFeatureSet(utilizationPct float64) *signalmodel.FeatureSet {
	return &signalmodel.FeatureSet{
		UserId:     "user-1",
		TimeWindow: constants.Window30d,
		Credit: &signalmodel.CreditSignal{
			Applicable:       true,
			TotalUtilization: utilizationPct,
			InterestCharged:  0,
		},
		Subscriptions: &signalmodel.SubscriptionSignal{HasData: true},
		Savings:       &signalmodel.SavingsSignal{HasData: true, SavingsBalance: 50},
		Income:        &signalmodel.IncomeSignal{HasData: true, Frequency: "biweekly", CashFlowBuffer: 2},
	}
}

func TestMatchEducation(t *testing.T) {

	catalog := testCatalog()

	t.Run("TriggerFires", func(t *testing.T) {
		matched := MatchEducation(catalog, constants.PersonaHighUtilization, highUtilizationFeatureSet(68))
		assert.Len(t, matched, 1)
		assert.Equal(t, "edu_util", matched[0].ContentId)
	})

	t.Run("FallbackWhenNoTriggerFires", func(t *testing.T) {
		matched := MatchEducation(catalog, constants.PersonaHighUtilization, highUtilizationFeatureSet(20))
		// No trigger fires, so all persona items come back as the fallback.
		assert.Len(t, matched, 2)
	})

	t.Run("EmptyTriggerListAlwaysMatches", func(t *testing.T) {
		matched := MatchEducation(catalog, constants.PersonaGeneralWellness, &signalmodel.FeatureSet{})
		assert.Len(t, matched, 1)
		assert.Equal(t, "edu_budget", matched[0].ContentId)
	})

	t.Run("CapAtMaxItems", func(t *testing.T) {
		var items []catalogmodel.ContentItem
		for i := 0; i < 8; i++ {
			items = append(items, catalogmodel.ContentItem{
				ContentId:          string(rune('a' + i)),
				ApplicablePersonas: []string{constants.PersonaGeneralWellness},
			})
		}
		big := &catalogmodel.Catalog{Education: items}
		matched := MatchEducation(big, constants.PersonaGeneralWellness, &signalmodel.FeatureSet{})
		assert.Len(t, matched, constants.MaxEducationItems)
	})
}

func TestTriggerFires(t *testing.T) {

	testCases := []struct {
		name       string
		trigger    string
		featureSet *signalmodel.FeatureSet
		expected   bool
	}{
		{
			name:       "UtilizationHighAtThreshold",
			trigger:    constants.TriggerCreditUtilizationHigh,
			featureSet: highUtilizationFeatureSet(50),
			expected:   true,
		},
		{
			name:       "UtilizationBelowThreshold",
			trigger:    constants.TriggerCreditUtilizationHigh,
			featureSet: highUtilizationFeatureSet(49.99),
			expected:   false,
		},
		{
			name:    "InterestCharged",
			trigger: constants.TriggerInterestCharged,
			featureSet: &signalmodel.FeatureSet{
				Credit: &signalmodel.CreditSignal{Applicable: true, InterestCharged: 12.4},
			},
			expected: true,
		},
		{
			name:    "IsOverdue",
			trigger: constants.TriggerIsOverdue,
			featureSet: &signalmodel.FeatureSet{
				Credit: &signalmodel.CreditSignal{Applicable: true, IsOverdue: true},
			},
			expected: true,
		},
		{
			name:    "IrregularFrequencyNeedsIncomeData",
			trigger: constants.TriggerIrregularFrequency,
			featureSet: &signalmodel.FeatureSet{
				Income: &signalmodel.IncomeSignal{HasData: false, Frequency: "irregular"},
			},
			expected: false,
		},
		{
			name:    "CashFlowBufferLow",
			trigger: constants.TriggerCashFlowBufferLow,
			featureSet: &signalmodel.FeatureSet{
				Income: &signalmodel.IncomeSignal{HasData: true, CashFlowBuffer: 0.5},
			},
			expected: true,
		},
		{
			name:    "SubscriptionCountHigh",
			trigger: constants.TriggerSubscriptionCountHigh,
			featureSet: &signalmodel.FeatureSet{
				Subscriptions: &signalmodel.SubscriptionSignal{HasData: true, SubscriptionCount: 3},
			},
			expected: true,
		},
		{
			name:    "SavingsGrowthPositive",
			trigger: constants.TriggerSavingsGrowthRatePositive,
			featureSet: &signalmodel.FeatureSet{
				Savings: &signalmodel.SavingsSignal{HasData: true, GrowthRate: 0.5},
			},
			expected: true,
		},
		{
			name:       "MissingSignal",
			trigger:    constants.TriggerEmergencyFundAdequate,
			featureSet: &signalmodel.FeatureSet{},
			expected:   false,
		},
		{
			name:       "UnknownTrigger",
			trigger:    "nonexistent_trigger",
			featureSet: highUtilizationFeatureSet(80),
			expected:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, triggerFires(tc.trigger, tc.featureSet))
		})
	}
}

func TestMatchOffers(t *testing.T) {

	catalog := testCatalog()

	t.Run("HighUtilizationEligibleForBalanceTransfer", func(t *testing.T) {
		featureSet := highUtilizationFeatureSet(68)
		matched := MatchOffers(catalog, featureSet)
		ids := contentIds(matched)
		assert.Contains(t, ids, "offer_bt")
		assert.Contains(t, ids, "offer_app")
		// Savings balance of $50 misses the $100 floor.
		assert.NotContains(t, ids, "offer_hysa")
	})

	t.Run("OverdueBlocksBalanceTransfer", func(t *testing.T) {
		featureSet := highUtilizationFeatureSet(92)
		featureSet.Credit.IsOverdue = true
		matched := MatchOffers(catalog, featureSet)
		assert.NotContains(t, contentIds(matched), "offer_bt")
	})

	t.Run("MissingSignalMakesOfferIneligible", func(t *testing.T) {
		featureSet := &signalmodel.FeatureSet{
			Subscriptions: &signalmodel.SubscriptionSignal{},
			Savings:       &signalmodel.SavingsSignal{SavingsBalance: 500},
		}
		matched := MatchOffers(catalog, featureSet)
		ids := contentIds(matched)
		assert.NotContains(t, ids, "offer_bt")
		assert.Contains(t, ids, "offer_hysa")
	})

	t.Run("UtilizationFractionBoundary", func(t *testing.T) {
		// Criteria are fractions while the signal is a percentage.
		featureSet := highUtilizationFeatureSet(50)
		assert.Contains(t, contentIds(MatchOffers(catalog, featureSet)), "offer_bt")

		featureSet = highUtilizationFeatureSet(49)
		assert.NotContains(t, contentIds(MatchOffers(catalog, featureSet)), "offer_bt")
	})

	t.Run("CapAtMaxOffers", func(t *testing.T) {
		var offers []catalogmodel.ContentItem
		for i := 0; i < 6; i++ {
			offers = append(offers, catalogmodel.ContentItem{ContentId: string(rune('a' + i))})
		}
		big := &catalogmodel.Catalog{Offers: offers}
		matched := MatchOffers(big, &signalmodel.FeatureSet{})
		assert.Len(t, matched, constants.MaxOfferItems)
	})
}

func contentIds(items []catalogmodel.ContentItem) []string {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ContentId
	}
	return ids
}
