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

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {

	c := NewCache(time.Minute)
	c.Set("traces:user_1:30d", "value")

	value, found := c.Get("traces:user_1:30d")
	require.True(t, found)
	assert.Equal(t, "value", value)

	_, found = c.Get("traces:user_2:30d")
	assert.False(t, found)
}

func TestCacheExpiration(t *testing.T) {

	c := NewCache(10 * time.Millisecond)
	c.Set("key", 1)

	time.Sleep(20 * time.Millisecond)
	_, found := c.Get("key")
	assert.False(t, found)
}

func TestCacheInvalidatePrefix(t *testing.T) {

	c := NewCache(time.Minute)
	c.Set("traces:user_1:30d", 1)
	c.Set("traces:user_1:180d", 2)
	c.Set("traces:user_2:30d", 3)

	c.Invalidate("traces:user_1:")

	_, found := c.Get("traces:user_1:30d")
	assert.False(t, found)
	_, found = c.Get("traces:user_1:180d")
	assert.False(t, found)
	_, found = c.Get("traces:user_2:30d")
	assert.True(t, found)
}
