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

// Criterion bounds one eligibility field of a partner offer. Min and Max
// are inclusive; Equals requires an exact boolean match.
type Criterion struct {
	Min    *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max    *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	Equals *bool    `yaml:"equals,omitempty" json:"equals,omitempty"`
}

// ContentItem is one catalog entry, either an education article or a
// partner offer. Education items match on persona and trigger signals;
// offers match on eligibility criteria only.
type ContentItem struct {
	ContentId           string               `yaml:"content_id" json:"content_id"`
	Type                string               `yaml:"type" json:"type"`
	Title               string               `yaml:"title" json:"title"`
	Category            string               `yaml:"category,omitempty" json:"category,omitempty"`
	Partner             string               `yaml:"partner,omitempty" json:"partner,omitempty"`
	ApplicablePersonas  []string             `yaml:"personas,omitempty" json:"personas,omitempty"`
	TriggerSignals      []string             `yaml:"trigger_signals,omitempty" json:"trigger_signals,omitempty"`
	Summary             string               `yaml:"summary" json:"summary"`
	RationaleTemplate   string               `yaml:"rationale_template" json:"rationale_template"`
	EligibilityCriteria map[string]Criterion `yaml:"eligibility_criteria,omitempty" json:"eligibility_criteria,omitempty"`
	Metadata            map[string]string    `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// Catalog is the full content inventory loaded from the catalog file.
type Catalog struct {
	Education []ContentItem `yaml:"education" json:"education"`
	Offers    []ContentItem `yaml:"offers" json:"offers"`
}

// EducationByPersona returns the education items applicable to a persona,
// in catalog order.
func (c *Catalog) EducationByPersona(persona string) []ContentItem {

	var items []ContentItem
	for _, item := range c.Education {
		for _, p := range item.ApplicablePersonas {
			if p == persona {
				items = append(items, item)
				break
			}
		}
	}
	return items
}

// ItemById returns the catalog entry with the given id, or nil.
func (c *Catalog) ItemById(contentId string) *ContentItem {

	for i := range c.Education {
		if c.Education[i].ContentId == contentId {
			return &c.Education[i]
		}
	}
	for i := range c.Offers {
		if c.Offers[i].ContentId == contentId {
			return &c.Offers[i]
		}
	}
	return nil
}
