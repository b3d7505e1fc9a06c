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

package host

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	gopsutilNet "github.com/shirou/gopsutil/v4/net"
	"golang.org/x/text/language"

	"github.com/NVIDIA/envprobe/pkg/errors"
	"github.com/NVIDIA/envprobe/pkg/platform"
)

const bytesPerGiB = 1 << 30

// Locale environment variables, in precedence order.
var localeEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Facts are the native host readings reported through platform.Navigator.
type Facts struct {
	Cores     int      `json:"cores" yaml:"cores"`
	MemoryGiB float64  `json:"memoryGiB" yaml:"memoryGiB"`
	Platform  string   `json:"platform" yaml:"platform"`
	Languages []string `json:"languages" yaml:"languages"`
	Online    bool     `json:"online" yaml:"online"`
}

// Provider implements platform.Navigator over native host facts. Values a
// host cannot know (do-not-track, cookies) are delegated to an optional base
// navigator.
type Provider struct {
	facts Facts
	base  platform.Navigator
}

var _ platform.Navigator = (*Provider)(nil)

// New reads the host facts. base may be nil.
func New(ctx context.Context, base platform.Navigator) (*Provider, error) {
	facts, err := Collect(ctx)
	if err != nil {
		return nil, err
	}
	return FromFacts(facts, base), nil
}

// FromFacts returns a Provider over previously collected facts.
func FromFacts(f Facts, base platform.Navigator) *Provider {
	if f.Languages == nil {
		f.Languages = []string{}
	}
	return &Provider{facts: f, base: base}
}

// Collect reads logical cores, total memory, OS platform, locale and online
// state. Only a failure to count cores is fatal; other readings degrade to
// their zero values.
func Collect(ctx context.Context) (Facts, error) {
	var f Facts

	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return f, errors.Wrap(errors.ErrCodeInternal, "failed to count cpu cores", err)
	}
	f.Cores = cores

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		slog.Debug("failed to read virtual memory", "error", err)
	} else {
		f.MemoryGiB = RoundMemory(vm.Total)
	}

	if info, err := host.InfoWithContext(ctx); err != nil {
		slog.Debug("failed to read host info", "error", err)
	} else {
		f.Platform = platformName(info.OS, info.KernelArch)
	}

	f.Languages = LanguagesFromEnv(os.Getenv)

	ifaces, err := gopsutilNet.InterfacesWithContext(ctx)
	if err != nil {
		slog.Debug("failed to list network interfaces", "error", err)
	} else {
		f.Online = anyInterfaceUp(ifaces)
	}

	slog.Debug("host facts collected",
		"cores", f.Cores,
		"memoryGiB", f.MemoryGiB,
		"platform", f.Platform,
		"online", f.Online)

	return f, nil
}

// RoundMemory converts bytes to GiB, rounded down to the nearest power of two
// the way browsers coarsen device memory. Values below 1 GiB report 0.25 or 0.5.
func RoundMemory(total uint64) float64 {
	gib := float64(total) / bytesPerGiB
	if gib <= 0 {
		return 0
	}
	v := 0.25
	for v*2 <= gib {
		v *= 2
	}
	return v
}

func platformName(goos, arch string) string {
	switch {
	case goos == "":
		return ""
	case arch == "":
		return goos
	default:
		return goos + " " + arch
	}
}

// LanguagesFromEnv derives a single-entry language list from the POSIX
// locale variables, e.g. "en_US.UTF-8" becomes "en-US". "C" and "POSIX"
// locales yield no languages.
func LanguagesFromEnv(getenv func(string) string) []string {
	for _, name := range localeEnvVars {
		v := getenv(name)
		if v == "" {
			continue
		}
		if i := strings.IndexAny(v, ".@"); i >= 0 {
			v = v[:i]
		}
		if v == "C" || v == "POSIX" || v == "" {
			return []string{}
		}
		tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
		if err != nil {
			slog.Debug("unparseable locale", "variable", name, "value", v, "error", err)
			return []string{}
		}
		return []string{tag.String()}
	}
	return []string{}
}

func anyInterfaceUp(ifaces gopsutilNet.InterfaceStatList) bool {
	for _, iface := range ifaces {
		up, loopback := false, false
		for _, flag := range iface.Flags {
			switch flag {
			case "up":
				up = true
			case "loopback":
				loopback = true
			}
		}
		if up && !loopback {
			return true
		}
	}
	return false
}

// Facts returns a copy of the collected facts.
func (p *Provider) Facts() Facts {
	f := p.facts
	f.Languages = append([]string{}, p.facts.Languages...)
	return f
}

// HardwareConcurrency implements platform.Navigator.
func (p *Provider) HardwareConcurrency() int { return p.facts.Cores }

// DeviceMemory implements platform.Navigator.
func (p *Provider) DeviceMemory() float64 { return p.facts.MemoryGiB }

// Platform implements platform.Navigator.
func (p *Provider) Platform() string { return p.facts.Platform }

// Languages implements platform.Navigator.
func (p *Provider) Languages() []string { return append([]string{}, p.facts.Languages...) }

// DoNotTrack implements platform.Navigator.
func (p *Provider) DoNotTrack() string {
	if p.base == nil {
		return ""
	}
	return p.base.DoNotTrack()
}

// CookiesEnabled implements platform.Navigator.
func (p *Provider) CookiesEnabled() bool {
	if p.base == nil {
		return false
	}
	return p.base.CookiesEnabled()
}

// Online implements platform.Navigator.
func (p *Provider) Online() bool { return p.facts.Online }
