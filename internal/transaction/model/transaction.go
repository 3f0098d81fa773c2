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

package model

import (
	"strings"
	"time"
)

// Transaction is a single account transaction. Amount follows the source
// data convention: negative values are debits (money out), positive values
// are credits (money in).
type Transaction struct {
	TransactionId  string    `json:"transaction_id"`
	AccountId      string    `json:"account_id"`
	UserId         string    `json:"user_id"`
	Date           time.Time `json:"date"`
	Amount         float64   `json:"amount"`
	MerchantName   string    `json:"merchant_name,omitempty"`
	Category       []string  `json:"category,omitempty"`
	PaymentChannel string    `json:"payment_channel,omitempty"`
	Pending        bool      `json:"pending"`
}

// Account is a financial account owned by a user.
type Account struct {
	AccountId   string   `json:"account_id"`
	UserId      string   `json:"user_id"`
	Type        string   `json:"type"`
	Subtype     string   `json:"subtype,omitempty"`
	Balance     float64  `json:"balance"`
	CreditLimit *float64 `json:"credit_limit,omitempty"`
	Mask        string   `json:"mask,omitempty"`
}

// IsDebit reports whether the transaction moved money out of the account.
func (t Transaction) IsDebit() bool {
	return t.Amount < 0
}

// CategoryContains reports whether any category entry contains the given
// substring, case-insensitively. Detectors use this for interest and fee
// classification.
func (t Transaction) CategoryContains(substr string) bool {
	lowered := strings.ToLower(substr)
	for _, c := range t.Category {
		if strings.Contains(strings.ToLower(c), lowered) {
			return true
		}
	}
	return false
}
