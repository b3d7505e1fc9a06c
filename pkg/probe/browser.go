// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package probe

import (
	"regexp"
	"slices"
	"strings"
)

// Browser names reported by DetectBrowser.
const (
	BrowserEdge             = "Edge"
	BrowserChrome           = "Chrome"
	BrowserFirefox          = "Firefox"
	BrowserSafari           = "Safari"
	BrowserOpera            = "Opera"
	BrowserInternetExplorer = "Internet Explorer"
	BrowserUnknown          = "Unknown"
)

// IconGlobe is the icon of an unidentified browser.
const IconGlobe = "globe"

// RecommendedBrowsers are flagged IsRecommended.
var RecommendedBrowsers = []string{BrowserChrome, BrowserEdge}

type browserRule struct {
	name   string
	icon   string
	tokens []string
	// versions are tried in order; the first match wins.
	versions []*regexp.Regexp
}

// browserRules are evaluated in order and the first rule with a matching
// token wins. Chromium derivatives carry the Chrome token and Chrome
// carries Safari, so the order decides the classification.
var browserRules = []browserRule{
	{
		name:     BrowserEdge,
		icon:     "edge",
		tokens:   []string{"Edg"},
		versions: versionPatterns(`Edge?/`),
	},
	{
		name:     BrowserChrome,
		icon:     "chrome",
		tokens:   []string{"Chrome"},
		versions: versionPatterns(`Chrome/`),
	},
	{
		name:     BrowserFirefox,
		icon:     "firefox",
		tokens:   []string{"Firefox"},
		versions: versionPatterns(`Firefox/`),
	},
	{
		name:     BrowserSafari,
		icon:     "safari",
		tokens:   []string{"Safari"},
		versions: versionPatterns(`Version/`),
	},
	{
		name:     BrowserOpera,
		icon:     "opera",
		tokens:   []string{"OPR", "Opera"},
		versions: versionPatterns(`OPR/`, `Version/`, `Opera[/ ]`),
	},
	{
		name:     BrowserInternetExplorer,
		icon:     "internet-explorer",
		tokens:   []string{"Trident", "MSIE"},
		versions: versionPatterns(`MSIE `, `rv:`),
	},
}

func versionPatterns(prefixes ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(prefixes))
	for i, prefix := range prefixes {
		out[i] = regexp.MustCompile(prefix + `(\d+(?:\.\d+)*)`)
	}
	return out
}

// DetectBrowser classifies the client identifying string by ordered token
// checks. A matched browser whose version cannot be extracted reports an
// empty version.
func (p *Probe) DetectBrowser() BrowserInfo {
	return p.detectBrowser(p.provider.UserAgent())
}

func (p *Probe) detectBrowser(ua string) BrowserInfo {
	for _, rule := range browserRules {
		if !containsAny(ua, rule.tokens) {
			continue
		}
		info := BrowserInfo{
			Name:          rule.name,
			Version:       extractVersion(ua, rule.versions),
			Icon:          rule.icon,
			IsRecommended: slices.Contains(RecommendedBrowsers, rule.name),
		}
		if info.Version == "" {
			p.log.Debug("browser version not found", "browser", rule.name, "userAgent", ua)
		}
		return info
	}
	return BrowserInfo{
		Name: BrowserUnknown,
		Icon: IconGlobe,
	}
}

func containsAny(s string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func extractVersion(ua string, patterns []*regexp.Regexp) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(ua); m != nil {
			return m[1]
		}
	}
	return ""
}
