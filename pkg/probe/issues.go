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

import "fmt"

// DetectEnvironmentIssues lists advisories in a fixed order: browser,
// fullscreen, acceleration, mobile, connection.
func (p *Probe) DetectEnvironmentIssues() []Issue {
	return issuesFor(conditions{
		browser:     p.DetectBrowser(),
		fullscreen:  p.IsFullscreen(),
		accelerated: p.IsHardwareAccelerationEnabled(),
		mobile:      p.IsMobileDevice(),
		slow:        p.IsSlowConnection(),
	})
}

// conditions are the answers advisories are derived from.
type conditions struct {
	browser     BrowserInfo
	fullscreen  bool
	accelerated bool
	mobile      bool
	slow        bool
}

func conditionsOf(s SystemInfo) conditions {
	return conditions{
		browser:     s.Browser,
		fullscreen:  s.IsFullscreen,
		accelerated: s.Acceleration.HardwareAccelerated,
		mobile:      s.IsMobile,
		slow:        s.IsSlowConnection,
	}
}

func issuesFor(c conditions) []Issue {
	issues := []Issue{}

	if b := c.browser; !b.IsRecommended {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Message:  fmt.Sprintf("%s is not a recommended browser; use Chrome or Edge for the most accurate results", b.Name),
			Code:     CodeBrowserNotRecommended,
		})
	}

	if !c.fullscreen {
		issues = append(issues, Issue{
			Severity: SeverityInfo,
			Message:  "Fullscreen mode is recommended for accurate benchmark results",
			Code:     CodeNotFullscreen,
		})
	}

	if !c.accelerated {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Message:  "Hardware acceleration is disabled or unavailable; GPU results will not reflect real performance",
			Code:     CodeNoHardwareAcceleration,
		})
	}

	if c.mobile {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Message:  "Mobile device detected; results are not comparable with desktop systems",
			Code:     CodeMobileDevice,
		})
	}

	if c.slow {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Message:  "Slow network connection detected; asset loading may affect results",
			Code:     CodeSlowConnection,
		})
	}

	return issues
}

// HasErrors reports whether any issue has error severity.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
