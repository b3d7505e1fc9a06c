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

package platform

// Composite assembles a Provider from independent capability sources,
// for example a profile for the browser facts and the live host for
// Navigator facts.
type Composite struct {
	Identity
	Document
	Graphics
	Display
	Touch
	Network
	Navigator
}

// Override returns a Composite of p with any non-nil part of o replacing
// the corresponding capability.
func Override(p Provider, o Composite) *Composite {
	c := &Composite{
		Identity:  p,
		Document:  p,
		Graphics:  p,
		Display:   p,
		Touch:     p,
		Network:   p,
		Navigator: p,
	}
	if o.Identity != nil {
		c.Identity = o.Identity
	}
	if o.Document != nil {
		c.Document = o.Document
	}
	if o.Graphics != nil {
		c.Graphics = o.Graphics
	}
	if o.Display != nil {
		c.Display = o.Display
	}
	if o.Touch != nil {
		c.Touch = o.Touch
	}
	if o.Network != nil {
		c.Network = o.Network
	}
	if o.Navigator != nil {
		c.Navigator = o.Navigator
	}
	return c
}
