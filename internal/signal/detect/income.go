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

package detect

import (
	"math"
	"strings"

	"github.com/wso2/financial-insights-service/internal/signal/model"
	"github.com/wso2/financial-insights-service/internal/system/constants"
	txmodel "github.com/wso2/financial-insights-service/internal/transaction/model"
)

const (
	// Deposits above this amount are treated as payroll even without a
	// payroll keyword on the merchant or category.
	payrollAmountFloor = 500.0

	weeklyGapMin   = 6.0
	weeklyGapMax   = 8.0
	biweeklyGapMin = 13.0
	biweeklyGapMax = 15.0
	monthlyGapMin  = 28.0
	monthlyGapMax  = 31.0
)

var payrollMerchantKeywords = []string{"payroll", "employer", "salary"}

// DetectIncomeStability infers pay cadence and income variability from
// payroll deposits into the user's checking account. Fewer than two payroll
// deposits leaves the frequency unknown.
func DetectIncomeStability(accounts []txmodel.Account, transactions []txmodel.Transaction, windowDays int) model.IncomeSignal {

	var checking *txmodel.Account
	for i := range accounts {
		if accounts[i].Subtype == constants.SubtypeChecking {
			checking = &accounts[i]
			break
		}
	}
	if checking == nil {
		return model.IncomeSignal{Frequency: "unknown"}
	}

	var payDates []int64
	var payAmounts []float64
	checkingSpend := 0.0

	for _, txn := range transactions {
		if txn.AccountId != checking.AccountId {
			continue
		}
		if txn.IsDebit() {
			checkingSpend += math.Abs(txn.Amount)
			continue
		}
		if txn.Amount > 0 && isPayrollDeposit(txn) {
			payDates = append(payDates, txn.Date.Unix())
			payAmounts = append(payAmounts, txn.Amount)
		}
	}

	if len(payDates) < 2 {
		return model.IncomeSignal{Frequency: "unknown", DepositCount: len(payDates)}
	}

	intervals := make([]float64, 0, len(payDates)-1)
	for i := 1; i < len(payDates); i++ {
		intervals = append(intervals, float64(payDates[i]-payDates[i-1])/86400.0)
	}
	medianGap := median(intervals)

	meanAmount := mean(payAmounts)
	variation := 0.0
	if meanAmount > 0 {
		variation = stdev(payAmounts) / meanAmount * 100
	}

	monthsInWindow := float64(windowDays) / 30.0
	avgMonthlyExpenses := 0.0
	if monthsInWindow > 0 {
		avgMonthlyExpenses = checkingSpend / monthsInWindow
	}
	buffer := 0.0
	if avgMonthlyExpenses > 0 {
		buffer = checking.Balance / avgMonthlyExpenses
	}

	return model.IncomeSignal{
		HasData:                true,
		DepositCount:           len(payDates),
		Frequency:              payFrequency(medianGap),
		MedianPayGapDays:       round2(medianGap),
		AvgDepositAmount:       round2(meanAmount),
		CoefficientOfVariation: round2(variation),
		CashFlowBuffer:         round2(buffer),
	}
}

func payFrequency(medianGapDays float64) string {
	switch {
	case medianGapDays >= weeklyGapMin && medianGapDays <= weeklyGapMax:
		return "weekly"
	case medianGapDays >= biweeklyGapMin && medianGapDays <= biweeklyGapMax:
		return "biweekly"
	case medianGapDays >= monthlyGapMin && medianGapDays <= monthlyGapMax:
		return "monthly"
	default:
		return "irregular"
	}
}

func isPayrollDeposit(txn txmodel.Transaction) bool {
	if txn.Amount > payrollAmountFloor {
		return true
	}
	merchant := strings.ToLower(txn.MerchantName)
	for _, keyword := range payrollMerchantKeywords {
		if strings.Contains(merchant, keyword) {
			return true
		}
	}
	return txn.CategoryContains("income")
}
