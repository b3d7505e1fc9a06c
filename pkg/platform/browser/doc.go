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

// Package browser implements platform.Provider over the live browser APIs
// through syscall/js. It is only built for GOOS=js GOARCH=wasm.
//
// Vendor-prefixed APIs are consulted in platform.FullscreenVendors order:
//
//	fullscreenElement        requestFullscreen        exitFullscreen
//	webkitFullscreenElement  webkitRequestFullscreen  webkitExitFullscreen
//	mozFullScreenElement     mozRequestFullScreen     mozCancelFullScreen
//	msFullscreenElement      msRequestFullscreen      msExitFullscreen
//
// The connection record is read from navigator.connection, then
// navigator.mozConnection, then navigator.webkitConnection. Rendering
// contexts are created on detached canvases and lost on Release.
//
// JavaScript exceptions raised by the platform surface as errors from
// NewContext and the GLContext methods.
package browser
