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
	catalogmodel "github.com/wso2/financial-insights-service/internal/catalog/model"
	signalmodel "github.com/wso2/financial-insights-service/internal/signal/model"
	"github.com/wso2/financial-insights-service/internal/system/constants"
)

// Trigger thresholds mirror the classifier thresholds for the same
// behaviors.
const (
	triggerUtilizationHighPct = 50.0
	triggerPayGapHighDays     = 45.0
	triggerBufferLowMonths    = 1.0
	triggerSubscriptionCount  = 3
	triggerMonthlyRecurring   = 50.0
	triggerFundAdequateMonths = 3.0
)

// MatchEducation selects education items for the persona whose trigger
// signals fire against the feature set. An item with no trigger signals
// always matches. When no trigger fires at all, the persona's items are
// returned as a fallback so the user is never left without guidance.
// Catalog order is preserved and the result is capped.
func MatchEducation(catalog *catalogmodel.Catalog, persona string, featureSet *signalmodel.FeatureSet) []catalogmodel.ContentItem {

	personaItems := catalog.EducationByPersona(persona)

	var matched []catalogmodel.ContentItem
	for _, item := range personaItems {
		if anyTriggerFires(item.TriggerSignals, featureSet) {
			matched = append(matched, item)
		}
	}
	if len(matched) == 0 {
		matched = personaItems
	}
	if len(matched) > constants.MaxEducationItems {
		matched = matched[:constants.MaxEducationItems]
	}
	return matched
}

// MatchOffers selects partner offers whose eligibility criteria hold for
// the feature set. A criterion referencing a signal the user lacks makes
// the offer ineligible. Catalog order is preserved and the result is
// capped.
func MatchOffers(catalog *catalogmodel.Catalog, featureSet *signalmodel.FeatureSet) []catalogmodel.ContentItem {

	var matched []catalogmodel.ContentItem
	for _, offer := range catalog.Offers {
		if offerEligible(offer.EligibilityCriteria, featureSet) {
			matched = append(matched, offer)
		}
	}
	if len(matched) > constants.MaxOfferItems {
		matched = matched[:constants.MaxOfferItems]
	}
	return matched
}

func anyTriggerFires(triggers []string, featureSet *signalmodel.FeatureSet) bool {

	if len(triggers) == 0 {
		return true
	}
	for _, trigger := range triggers {
		if triggerFires(trigger, featureSet) {
			return true
		}
	}
	return false
}

func triggerFires(trigger string, featureSet *signalmodel.FeatureSet) bool {

	if featureSet == nil {
		return false
	}
	credit := featureSet.Credit
	income := featureSet.Income
	subscriptions := featureSet.Subscriptions
	savings := featureSet.Savings

	switch trigger {
	case constants.TriggerCreditUtilizationHigh:
		return credit != nil && credit.TotalUtilization >= triggerUtilizationHighPct
	case constants.TriggerMinimumPaymentOnly:
		return credit != nil && credit.MinimumPaymentOnly
	case constants.TriggerInterestCharged:
		return credit != nil && credit.InterestCharged > 0
	case constants.TriggerIsOverdue:
		return credit != nil && credit.IsOverdue
	case constants.TriggerIrregularFrequency:
		return income != nil && income.HasData && income.Frequency == "irregular"
	case constants.TriggerMedianPayGapHigh:
		return income != nil && income.MedianPayGapDays > triggerPayGapHighDays
	case constants.TriggerCashFlowBufferLow:
		return income != nil && income.HasData && income.CashFlowBuffer < triggerBufferLowMonths
	case constants.TriggerSubscriptionCountHigh:
		return subscriptions != nil && subscriptions.SubscriptionCount >= triggerSubscriptionCount
	case constants.TriggerMonthlyRecurringHigh:
		return subscriptions != nil && subscriptions.MonthlyRecurringSpend >= triggerMonthlyRecurring
	case constants.TriggerSavingsGrowthRatePositive:
		return savings != nil && savings.GrowthRate > 0
	case constants.TriggerEmergencyFundAdequate:
		return savings != nil && savings.EmergencyFundMonths >= triggerFundAdequateMonths
	case constants.TriggerSavingsBalancePositive:
		return savings != nil && savings.SavingsBalance > 0
	default:
		return false
	}
}

func offerEligible(criteria map[string]catalogmodel.Criterion, featureSet *signalmodel.FeatureSet) bool {

	if len(criteria) == 0 {
		return true
	}
	if featureSet == nil {
		return false
	}

	for field, criterion := range criteria {
		switch field {
		case "credit_utilization":
			if featureSet.Credit == nil {
				return false
			}
			// Criteria express utilization as a fraction; the signal is a
			// percentage.
			if !inBounds(featureSet.Credit.TotalUtilization/100.0, criterion) {
				return false
			}
		case "is_overdue":
			if featureSet.Credit == nil {
				return false
			}
			if criterion.Equals != nil && featureSet.Credit.IsOverdue != *criterion.Equals {
				return false
			}
		case "subscription_count":
			if featureSet.Subscriptions == nil {
				return false
			}
			if !inBounds(float64(featureSet.Subscriptions.SubscriptionCount), criterion) {
				return false
			}
		case "monthly_recurring":
			if featureSet.Subscriptions == nil {
				return false
			}
			if !inBounds(featureSet.Subscriptions.MonthlyRecurringSpend, criterion) {
				return false
			}
		case "savings_balance":
			if featureSet.Savings == nil {
				return false
			}
			if !inBounds(featureSet.Savings.SavingsBalance, criterion) {
				return false
			}
		}
	}
	return true
}

func inBounds(value float64, criterion catalogmodel.Criterion) bool {

	if criterion.Min != nil && value < *criterion.Min {
		return false
	}
	if criterion.Max != nil && value > *criterion.Max {
		return false
	}
	return true
}
