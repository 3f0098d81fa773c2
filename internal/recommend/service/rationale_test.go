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

	signalmodel "github.com/wso2/financial-insights-service/internal/signal/model"
)

func TestFormatCurrency(t *testing.T) {

	testCases := []struct {
		amount   float64
		expected string
	}{
		{0, "$0.00"},
		{25.5, "$25.50"},
		{3400, "$3,400.00"},
		{5000, "$5,000.00"},
		{1234567.89, "$1,234,567.89"},
		{-142.3, "-$142.30"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FormatCurrency(tc.amount))
	}
}

func TestFormatPercent(t *testing.T) {

	assert.Equal(t, "68%", FormatPercent(68.0))
	assert.Equal(t, "68%", FormatPercent(67.6))
	assert.Equal(t, "0%", FormatPercent(0.2))
	assert.Equal(t, "100%", FormatPercent(100.0))
}

func TestGenerateRationale(t *testing.T) {

	featureSet := &signalmodel.FeatureSet{
		UserId:     "user-1",
		TimeWindow: "30d",
		Credit: &signalmodel.CreditSignal{
			Applicable: true,
			Accounts: []signalmodel.AccountUtilization{
				{
					AccountId:   "acc-1",
					Subtype:     "credit card",
					Mask:        "4523",
					Balance:     3400,
					CreditLimit: 5000,
					Utilization: 68.0,
				},
			},
			TotalBalance:     3400,
			TotalLimit:       5000,
			TotalUtilization: 68.0,
			InterestCharged:  42.5,
		},
		Subscriptions: &signalmodel.SubscriptionSignal{
			HasData:               true,
			SubscriptionCount:     4,
			MonthlyRecurringSpend: 210.4,
		},
		Savings: &signalmodel.SavingsSignal{
			HasData:        true,
			SavingsBalance: 8200,
			GrowthRate:     4.2,
		},
		Income: &signalmodel.IncomeSignal{
			HasData:          true,
			Frequency:        "irregular",
			MedianPayGapDays: 47,
			CashFlowBuffer:   0.8,
		},
	}

	t.Run("CreditPlaceholders", func(t *testing.T) {
		rationale, signalsUsed, err := GenerateRationale(
			"Your {card_name} is at {utilization} utilization ({balance} of {limit} limit).", featureSet)
		require.NoError(t, err)
		assert.Equal(t, "Your Credit Card ending in 4523 is at 68% utilization ($3,400.00 of $5,000.00 limit).",
			rationale)
		assert.Len(t, signalsUsed, 4)
		assert.Equal(t, "credit_utilization.accounts[0].utilization", signalsUsed[1].Signal)
		assert.Equal(t, 68.0, signalsUsed[1].Value)
	})

	t.Run("SubscriptionPlaceholders", func(t *testing.T) {
		rationale, _, err := GenerateRationale(
			"You have {subscription_count} subscriptions totaling {monthly_recurring} per month.", featureSet)
		require.NoError(t, err)
		assert.Equal(t, "You have 4 subscriptions totaling $210.40 per month.", rationale)
	})

	t.Run("IncomePlaceholders", func(t *testing.T) {
		rationale, _, err := GenerateRationale(
			"With {median_pay_gap} days between paychecks and a {cash_flow_buffer}-month cash buffer.", featureSet)
		require.NoError(t, err)
		assert.Equal(t, "With 47 days between paychecks and a 0.8-month cash buffer.", rationale)
	})

	t.Run("SavingsPlaceholders", func(t *testing.T) {
		rationale, _, err := GenerateRationale(
			"Your {total_savings} grew by {growth_rate}.", featureSet)
		require.NoError(t, err)
		assert.Equal(t, "Your $8,200.00 grew by 4%.", rationale)
	})

	t.Run("NoPlaceholders", func(t *testing.T) {
		rationale, signalsUsed, err := GenerateRationale("Creating a budget can help.", featureSet)
		require.NoError(t, err)
		assert.Equal(t, "Creating a budget can help.", rationale)
		assert.Empty(t, signalsUsed)
		assert.NotNil(t, signalsUsed)
	})

	t.Run("MissingCreditSignal", func(t *testing.T) {
		noCredit := &signalmodel.FeatureSet{
			Credit: &signalmodel.CreditSignal{Applicable: false},
		}
		_, _, err := GenerateRationale("You pay {interest_charged} in interest.", noCredit)
		assert.Error(t, err)
	})

	t.Run("MissingIncomeData", func(t *testing.T) {
		noIncome := &signalmodel.FeatureSet{
			Income: &signalmodel.IncomeSignal{HasData: false},
		}
		_, _, err := GenerateRationale("Gap is {median_pay_gap} days.", noIncome)
		assert.Error(t, err)
	})

	t.Run("UnknownPlaceholder", func(t *testing.T) {
		_, _, err := GenerateRationale("Value is {mystery_field}.", featureSet)
		assert.Error(t, err)
	})

	t.Run("NoLiteralBracesRemain", func(t *testing.T) {
		rationale, _, err := GenerateRationale(
			"With {total_balance} in debt, paying more than {interest_charged} helps.", featureSet)
		require.NoError(t, err)
		assert.NotContains(t, rationale, "{")
		assert.NotContains(t, rationale, "}")
	})
}

func TestFormatCardNameWithoutMask(t *testing.T) {

	account := signalmodel.AccountUtilization{Subtype: "credit card", Mask: "****"}
	assert.Equal(t, "Credit Card card", formatCardName(account))
}
