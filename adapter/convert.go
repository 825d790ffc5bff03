/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package adapter

import (
	"dirpx.dev/status"
	"dirpx.dev/status/apis"
)

// ToView converts a status into a portable StatusView.
//
// The view is intended for structured logging and API payloads. An OK status
// produces a view with code "ok" and no message; callers that only render
// failures should guard with IsOK first.
func ToView(st status.Status) apis.StatusView {
	v := apis.StatusView{
		Code:     st.Code().Ident(),
		CodeName: st.Code().String(),
		Message:  st.Message(),
	}
	if pc := st.PosixCode(); pc != status.NoPosixCode {
		v.PosixCode = int32(pc)
	}
	return v
}

// ToDescriptor converts a status together with its resolved transport
// projection into a flat Descriptor.
//
// The descriptor is intended for structured logging, tracing, or message-bus
// propagation: it carries both the logical category and the concrete
// transport statuses (HTTP and gRPC) it resolved to.
func ToDescriptor(st status.Status, tr apis.Transport) apis.Descriptor {
	d := apis.Descriptor{
		Code:       st.Code().Ident(),
		HTTPStatus: tr.HTTP,
		GRPCCode:   int(tr.GRPC),
		Message:    st.Message(),
	}
	if pc := st.PosixCode(); pc != status.NoPosixCode {
		d.PosixCode = int32(pc)
	}
	return d
}
