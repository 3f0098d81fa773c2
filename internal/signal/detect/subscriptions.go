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
	"sort"

	"github.com/wso2/financial-insights-service/internal/signal/model"
	txmodel "github.com/wso2/financial-insights-service/internal/transaction/model"
)

const (
	minRecurringOccurrences = 3
	weeksPerMonth           = 4.33

	monthlyIntervalMin = 25.0
	monthlyIntervalMax = 34.0
	weeklyIntervalMin  = 6.0
	weeklyIntervalMax  = 8.0
)

// DetectSubscriptions finds recurring merchant payments among the given
// transactions. A merchant is recurring when it has at least three debits
// whose average interval falls in the monthly (25-34 day) or weekly
// (6-8 day) band. Weekly spend is normalized to monthly with a factor of
// 4.33 weeks per month.
func DetectSubscriptions(transactions []txmodel.Transaction) model.SubscriptionSignal {

	type merchantTxn struct {
		date   int64 // unix seconds, transactions are pre-sorted by date
		amount float64
	}

	byMerchant := make(map[string][]merchantTxn)
	totalSpend := 0.0

	for _, txn := range transactions {
		if !txn.IsDebit() {
			continue
		}
		merchant := txn.MerchantName
		if merchant == "" {
			merchant = "Unknown"
		}
		byMerchant[merchant] = append(byMerchant[merchant], merchantTxn{
			date:   txn.Date.Unix(),
			amount: math.Abs(txn.Amount),
		})
		totalSpend += math.Abs(txn.Amount)
	}

	if totalSpend == 0 {
		return model.SubscriptionSignal{}
	}

	merchants := make([]string, 0, len(byMerchant))
	for merchant := range byMerchant {
		merchants = append(merchants, merchant)
	}
	sort.Strings(merchants)

	signal := model.SubscriptionSignal{HasData: true, TotalSpend: round2(totalSpend)}
	monthlyRecurring := 0.0

	for _, merchant := range merchants {
		txns := byMerchant[merchant]
		if len(txns) < minRecurringOccurrences {
			continue
		}
		sort.Slice(txns, func(i, j int) bool { return txns[i].date < txns[j].date })

		intervals := make([]float64, 0, len(txns)-1)
		amounts := make([]float64, 0, len(txns)-1)
		for i := 1; i < len(txns); i++ {
			days := float64(txns[i].date-txns[i-1].date) / 86400.0
			intervals = append(intervals, days)
			amounts = append(amounts, txns[i].amount)
		}

		avgInterval := mean(intervals)
		avgAmount := mean(amounts)

		isMonthly := avgInterval >= monthlyIntervalMin && avgInterval <= monthlyIntervalMax
		isWeekly := avgInterval >= weeklyIntervalMin && avgInterval <= weeklyIntervalMax
		if !isMonthly && !isWeekly {
			continue
		}

		cadence := "monthly"
		monthlyAmount := avgAmount
		if isWeekly && !isMonthly {
			cadence = "weekly"
			monthlyAmount = avgAmount * weeksPerMonth
		}
		monthlyRecurring += monthlyAmount

		signal.RecurringMerchants = append(signal.RecurringMerchants, model.RecurringMerchant{
			MerchantName:    merchant,
			Occurrences:     len(txns),
			AvgAmount:       round2(avgAmount),
			AvgIntervalDays: round2(avgInterval),
			Cadence:         cadence,
			MonthlyAmount:   round2(monthlyAmount),
		})
	}

	signal.SubscriptionCount = len(signal.RecurringMerchants)
	signal.MonthlyRecurringSpend = round2(monthlyRecurring)
	signal.SubscriptionShare = round2(monthlyRecurring / totalSpend * 100)
	return signal
}
